package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

func TestNewClientRequiresAddress(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{DialTimeout: time.Second})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	assert.True(t, errors.IsUnavailable(err))
}
