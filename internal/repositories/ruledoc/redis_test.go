package ruledoc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	apperrors "github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/ruledoc"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	store ruledoc.Store
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock

	store, err := ruledoc.NewRedis(&ruledoc.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisStoreTestSuite) TestConfigValidation() {
	_, err := ruledoc.NewRedis(nil)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = ruledoc.NewRedis(&ruledoc.RedisConfig{})
	s.True(apperrors.IsInvalidArgument(err))

	client, _ := redismock.NewClientMock()
	_, err = ruledoc.NewRedis(&ruledoc.RedisConfig{Client: client, TTL: -time.Second})
	s.True(apperrors.IsInvalidArgument(err))

	cfg := &ruledoc.RedisConfig{Client: client}
	s.Require().NoError(cfg.Validate())
	s.Equal(ruledoc.DefaultTTL, cfg.TTL)
}

func (s *RedisStoreTestSuite) TestKey() {
	s.Equal("ruledoc:spell_list:Wizard Spells", ruledoc.Key(rules.KindSpellList, "Wizard Spells"))
}

func (s *RedisStoreTestSuite) TestGet() {
	s.Run("hit", func() {
		s.mock.ExpectGet("ruledoc:class:Wizard").SetVal(`{"name":"Wizard"}`)

		data, err := s.store.Get(s.ctx, rules.KindClass, "Wizard")
		s.Require().NoError(err)
		s.Equal(`{"name":"Wizard"}`, string(data))
	})

	s.Run("miss", func() {
		s.mock.ExpectGet("ruledoc:race:Elf").RedisNil()

		_, err := s.store.Get(s.ctx, rules.KindRace, "Elf")
		s.True(apperrors.IsNotFound(err))
	})

	s.Run("redis down", func() {
		s.mock.ExpectGet("ruledoc:race:Elf").SetErr(errors.New("connection refused"))

		_, err := s.store.Get(s.ctx, rules.KindRace, "Elf")
		s.True(apperrors.IsUnavailable(err))
	})

	s.Run("empty name", func() {
		_, err := s.store.Get(s.ctx, rules.KindRace, "")
		s.True(apperrors.IsInvalidArgument(err))
	})
}

func (s *RedisStoreTestSuite) TestPut() {
	s.Run("writes with ttl", func() {
		s.mock.ExpectSet("ruledoc:background:Sage", []byte(`{"name":"Sage"}`), time.Hour).SetVal("OK")

		s.NoError(s.store.Put(s.ctx, rules.KindBackground, "Sage", []byte(`{"name":"Sage"}`)))
	})

	s.Run("redis down", func() {
		s.mock.ExpectSet("ruledoc:background:Sage", []byte(`{}`), time.Hour).SetErr(errors.New("timeout"))

		err := s.store.Put(s.ctx, rules.KindBackground, "Sage", []byte(`{}`))
		s.True(apperrors.IsUnavailable(err))
	})

	s.Run("empty data", func() {
		err := s.store.Put(s.ctx, rules.KindBackground, "Sage", nil)
		s.True(apperrors.IsInvalidArgument(err))
	})
}
