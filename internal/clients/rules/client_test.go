package rules_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	defs "github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type memoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func (m *memoryStore) Get(_ context.Context, kind defs.Kind, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[string(kind)+":"+name]
	if !ok {
		return nil, errors.NotFound("not stored")
	}
	return data, nil
}

func (m *memoryStore) Put(_ context.Context, kind defs.Kind, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[string(kind)+":"+name] = data
	return nil
}

type ClientTestSuite struct {
	suite.Suite
	server     *httptest.Server
	hits       map[string]*atomic.Int32
	release    chan struct{}
	indexDelay time.Duration
	client     rules.Client
	ctx        context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.release = nil
	s.indexDelay = 0

	index := defs.Index{
		Classes:     []defs.IndexEntry{{Name: "Wizard", URL: "classes/wizard.json"}},
		Races:       []defs.IndexEntry{{Name: "Elf", URL: "races/elf.json"}},
		Backgrounds: []defs.IndexEntry{
			{Name: "Sage", URL: "backgrounds/sage.json"},
			{Name: "Broken", URL: "broken.json"},
			{Name: "Offline", URL: "offline.json"},
		},
		SpellLists:  []defs.IndexEntry{{Name: "Wizard Spells", URL: "spells/wizard.json"}},
	}
	documents := map[string]any{
		"/rules/index.json": index,
		"/rules/classes/wizard.json": defs.ClassDefinition{
			Name:   "Wizard",
			HitDie: 6,
			Features: []defs.FeatureDefinition{{
				Name: "Spellcasting",
				Spells: &defs.SpellsDefinition{
					CastingAbility: dnd5e.AbilityIntelligence,
					List:           defs.SpellListSource{Ref: "Wizard Spells"},
				},
			}},
			Levels: []defs.ClassLevelRules{{Features: []string{"Spellcasting"}}},
		},
		"/rules/races/elf.json":         defs.RaceDefinition{Name: "Elf", Speed: 30},
		"/rules/backgrounds/sage.json":  defs.BackgroundDefinition{Name: "Sage"},
		"/rules/spells/wizard.json":     defs.SpellListDefinition{Name: "Wizard Spells", Spells: []defs.SpellDefinition{{Name: "Light"}}},
	}

	s.hits = make(map[string]*atomic.Int32)
	for path := range documents {
		s.hits[path] = &atomic.Int32{}
	}
	s.hits["/rules/broken.json"] = &atomic.Int32{}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if counter, ok := s.hits[r.URL.Path]; ok {
			counter.Add(1)
		}
		if r.URL.Path == "/rules/index.json" && s.indexDelay > 0 {
			time.Sleep(s.indexDelay)
		}
		if s.release != nil && r.URL.Path != "/rules/index.json" {
			<-s.release
		}
		if r.URL.Path == "/rules/offline.json" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path == "/rules/broken.json" {
			_, _ = w.Write([]byte("{not json"))
			return
		}
		doc, ok := documents[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(doc)
	}))

	var err error
	s.client, err = rules.New(&rules.Config{BaseURL: s.server.URL + "/rules"})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestConfigValidation() {
	_, err := rules.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = rules.New(&rules.Config{})
	s.True(errors.IsInvalidArgument(err))

	cfg := &rules.Config{BaseURL: "http://localhost"}
	s.Require().NoError(cfg.Validate())
	s.Equal(30*time.Second, cfg.HTTPTimeout)
}

func (s *ClientTestSuite) TestLoadCachesDocument() {
	_, ok := s.client.Class("Wizard")
	s.False(ok, "nothing is cached before a load")

	s.Require().NoError(s.client.Load(s.ctx, defs.KindClass, "Wizard"))
	s.Require().NoError(s.client.Load(s.ctx, defs.KindClass, "Wizard"))

	def, ok := s.client.Class("Wizard")
	s.Require().True(ok)
	s.Equal(6, def.HitDie)
	s.Equal(int32(1), s.hits["/rules/classes/wizard.json"].Load())
	s.Equal(int32(1), s.hits["/rules/index.json"].Load())
}

func (s *ClientTestSuite) TestLoadErrors() {
	testCases := []struct {
		name  string
		kind  defs.Kind
		doc   string
		check func(error) bool
	}{
		{name: "empty name", kind: defs.KindRace, doc: "", check: errors.IsInvalidArgument},
		{name: "not in index", kind: defs.KindRace, doc: "Dwarf", check: errors.IsNotFound},
		{name: "malformed document", kind: defs.KindBackground, doc: "Broken", check: errors.IsInternal},
		{name: "host error", kind: defs.KindBackground, doc: "Offline", check: errors.IsUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.client.Load(s.ctx, tc.kind, tc.doc)
			s.Require().Error(err)
			s.True(tc.check(err), "got %v", err)
		})
	}

	_, ok := s.client.Background("Broken")
	s.False(ok)
}

func (s *ClientTestSuite) TestConcurrentLoadsShareOneRequest() {
	s.release = make(chan struct{})

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.client.Load(s.ctx, defs.KindRace, "Elf")
		}(i)
	}

	s.Eventually(func() bool {
		return s.hits["/rules/races/elf.json"].Load() == 1
	}, time.Second, 5*time.Millisecond)
	close(s.release)
	wg.Wait()

	for _, err := range errs {
		s.NoError(err)
	}
	s.Equal(int32(1), s.hits["/rules/races/elf.json"].Load())
}

func (s *ClientTestSuite) TestFetchInBackground() {
	s.client.Fetch(defs.KindBackground, "Sage")
	s.client.Fetch(defs.KindBackground, "Sage")

	s.Eventually(func() bool {
		_, ok := s.client.Background("Sage")
		return ok
	}, time.Second, 5*time.Millisecond)

	s.client.Fetch(defs.KindBackground, "Sage")
	s.Equal(int32(1), s.hits["/rules/backgrounds/sage.json"].Load())
}

func (s *ClientTestSuite) TestLoadStopsWaitingOnCancel() {
	s.release = make(chan struct{})
	defer close(s.release)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.client.Load(ctx, defs.KindRace, "Elf")
	s.True(errors.IsCanceled(err), "got %v", err)
}

func (s *ClientTestSuite) TestWarmLoadsReferencedDocuments() {
	ch := dnd5e.NewCharacter("char-1")
	ch.Identity.Classes = []dnd5e.ClassLevel{{Class: "Wizard", Level: 1}}
	ch.Identity.Race = "Elf"
	ch.Identity.Background = "Unknown Background"

	s.Require().NoError(s.client.Warm(s.ctx, ch))

	_, ok := s.client.Class("Wizard")
	s.True(ok)
	_, ok = s.client.Race("Elf")
	s.True(ok)
	list, ok := s.client.SpellList("Wizard Spells")
	s.Require().True(ok, "spell lists referenced by loaded classes are warmed too")
	s.Equal("Light", list.Spells[0].Name)
}

func (s *ClientTestSuite) TestAvailable() {
	entries, err := s.client.Available(s.ctx, defs.KindBackground)
	s.Require().NoError(err)
	s.Len(entries, 3)
	s.Equal("Sage", entries[0].Name)

	_, err = s.client.Available(s.ctx, defs.Kind("monster"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestAbandonedIndexRequestDoesNotFailOtherLoads() {
	s.indexDelay = 200 * time.Millisecond

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()
	_, err := s.client.Available(ctx, defs.KindClass)
	s.True(errors.IsDeadlineExceeded(err), "got %v", err)

	s.Require().NoError(s.client.Load(s.ctx, defs.KindClass, "Wizard"))
	_, ok := s.client.Class("Wizard")
	s.True(ok)
	s.Equal(int32(1), s.hits["/rules/index.json"].Load(), "the load joins the index request already in flight")

	entries, err := s.client.Available(s.ctx, defs.KindClass)
	s.Require().NoError(err)
	s.Equal("Wizard", entries[0].Name)
}

func (s *ClientTestSuite) TestStoreServesAndReceivesDocuments() {
	store := &memoryStore{docs: map[string][]byte{
		"race:Elf": []byte(`{"name":"Elf","speed":35}`),
	}}
	client, err := rules.New(&rules.Config{BaseURL: s.server.URL + "/rules", Store: store})
	s.Require().NoError(err)

	s.Require().NoError(client.Load(s.ctx, defs.KindRace, "Elf"))
	elf, ok := client.Race("Elf")
	s.Require().True(ok)
	s.Equal(35, elf.Speed)
	s.Zero(s.hits["/rules/races/elf.json"].Load())

	s.Require().NoError(client.Load(s.ctx, defs.KindBackground, "Sage"))
	s.Contains(store.docs, "background:Sage")
}
