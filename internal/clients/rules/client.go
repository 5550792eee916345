// Package rules fetches rule documents over HTTP and caches them by name
package rules

//go:generate mockgen -destination=mock/mock_client.go -package=rulesmock github.com/KirkDiggler/rpg-sheet/internal/clients/rules Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	defs "github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	indexPath       = "index.json"
	indexFlightKey  = "index"
	maxDocumentSize = 8 << 20
)

// Client is the rule-document registry used by orchestrators.
// Catalog lookups only see documents already loaded; they never block.
type Client interface {
	engine.Catalog

	// Fetch starts loading a document in the background.
	// Already cached or in-flight documents are left alone.
	Fetch(kind defs.Kind, name string)

	// Load blocks until the document is cached or the fetch fails
	Load(ctx context.Context, kind defs.Kind, name string) error

	// Warm loads every document a character references
	Warm(ctx context.Context, ch *dnd5e.Character) error

	// Available lists the index entries of one document kind
	Available(ctx context.Context, kind defs.Kind) ([]defs.IndexEntry, error)
}

// DocumentStore persists raw documents between process restarts
type DocumentStore interface {
	Get(ctx context.Context, kind defs.Kind, name string) ([]byte, error)
	Put(ctx context.Context, kind defs.Kind, name string, data []byte) error
}

// Config contains configuration options for the rules client.
type Config struct {
	// BaseURL hosts index.json; document URLs in the index are relative to it
	BaseURL string
	// HTTPClient is optional, one is built from HTTPTimeout when nil
	HTTPClient *http.Client
	// HTTPTimeout for document requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// Store is an optional second-level cache of raw documents
	Store DocumentStore
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.BaseURL == "" {
		vb.RequiredField("BaseURL")
	} else if _, err := url.Parse(cfg.BaseURL); err != nil {
		vb.InvalidField("BaseURL", err.Error())
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	baseURL *url.URL
	http    *http.Client
	store   DocumentStore
	flights singleflight.Group

	mu          sync.RWMutex
	index       *defs.Index
	classes     map[string]*defs.ClassDefinition
	races       map[string]*defs.RaceDefinition
	backgrounds map[string]*defs.BackgroundDefinition
	spellLists  map[string]*defs.SpellListDefinition
}

// New creates a new rules client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid rules base url")
	}
	// Resolve relative document paths against the directory, not the last segment
	if base.Path == "" || base.Path[len(base.Path)-1] != '/' {
		base.Path += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:     base,
		http:        httpClient,
		store:       cfg.Store,
		classes:     make(map[string]*defs.ClassDefinition),
		races:       make(map[string]*defs.RaceDefinition),
		backgrounds: make(map[string]*defs.BackgroundDefinition),
		spellLists:  make(map[string]*defs.SpellListDefinition),
	}, nil
}

func (c *client) Class(name string) (*defs.ClassDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.classes[name]
	return def, ok
}

func (c *client) Race(name string) (*defs.RaceDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.races[name]
	return def, ok
}

func (c *client) Background(name string) (*defs.BackgroundDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.backgrounds[name]
	return def, ok
}

func (c *client) SpellList(name string) (*defs.SpellListDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.spellLists[name]
	return def, ok
}

func (c *client) cached(kind defs.Kind, name string) bool {
	switch kind {
	case defs.KindClass:
		_, ok := c.Class(name)
		return ok
	case defs.KindRace:
		_, ok := c.Race(name)
		return ok
	case defs.KindBackground:
		_, ok := c.Background(name)
		return ok
	case defs.KindSpellList:
		_, ok := c.SpellList(name)
		return ok
	default:
		return false
	}
}

func flightKey(kind defs.Kind, name string) string {
	return string(kind) + ":" + name
}

func (c *client) Fetch(kind defs.Kind, name string) {
	if name == "" || c.cached(kind, name) {
		return
	}

	// DoChan joins an in-flight fetch instead of starting another; nobody waits on the result
	c.flights.DoChan(flightKey(kind, name), func() (interface{}, error) {
		ctx := context.Background()
		if err := c.fetch(ctx, kind, name); err != nil {
			slog.ErrorContext(ctx, "failed to fetch rule document",
				"kind", kind,
				"name", name,
				"error", err)
			return nil, err
		}
		return nil, nil
	})
}

func (c *client) Load(ctx context.Context, kind defs.Kind, name string) error {
	if name == "" {
		return errors.InvalidArgumentf("%s name is required", kind)
	}
	if c.cached(kind, name) {
		return nil
	}

	result := c.flights.DoChan(flightKey(kind, name), func() (interface{}, error) {
		// Shared by every waiter, so one caller's cancellation must not abort it
		return nil, c.fetch(context.WithoutCancel(ctx), kind, name)
	})

	select {
	case <-ctx.Done():
		return errors.FromContext(ctx, "stopped waiting for rule document")
	case res := <-result:
		if res.Err != nil {
			slog.ErrorContext(ctx, "failed to load rule document",
				"kind", kind,
				"name", name,
				"error", res.Err)
		}
		return res.Err
	}
}

func (c *client) Warm(ctx context.Context, ch *dnd5e.Character) error {
	if ch == nil {
		return errors.InvalidArgument("character is required")
	}

	g, gctx := errgroup.WithContext(ctx)
	load := func(kind defs.Kind, name string) {
		if name == "" {
			return
		}
		g.Go(func() error {
			if err := c.Load(gctx, kind, name); err != nil {
				slog.WarnContext(gctx, "skipping rule document while warming",
					"character_id", ch.ID,
					"kind", kind,
					"name", name,
					"error", err)
			}
			return nil
		})
	}

	for _, cl := range ch.Identity.Classes {
		load(defs.KindClass, cl.Class)
	}
	load(defs.KindRace, ch.Identity.Race)
	load(defs.KindBackground, ch.Identity.Background)
	if err := g.Wait(); err != nil {
		return err
	}

	// Spell lists are only known once the documents that reference them are loaded
	g, gctx = errgroup.WithContext(ctx)
	for _, name := range c.spellListRefs(ch) {
		load(defs.KindSpellList, name)
	}
	return g.Wait()
}

func (c *client) spellListRefs(ch *dnd5e.Character) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, feature := range engine.CharacterFeatureDefinitions(ch, c) {
		if feature.Spells == nil || feature.Spells.List.Ref == "" || seen[feature.Spells.List.Ref] {
			continue
		}
		seen[feature.Spells.List.Ref] = true
		refs = append(refs, feature.Spells.List.Ref)
	}
	return refs
}

func (c *client) Available(ctx context.Context, kind defs.Kind) ([]defs.IndexEntry, error) {
	index, err := c.loadIndex(ctx)
	if err != nil {
		return nil, err
	}

	switch kind {
	case defs.KindClass:
		return index.Classes, nil
	case defs.KindRace:
		return index.Races, nil
	case defs.KindBackground:
		return index.Backgrounds, nil
	case defs.KindSpellList:
		return index.SpellLists, nil
	default:
		return nil, errors.InvalidArgumentf("unknown document kind %q", kind)
	}
}

func (c *client) loadIndex(ctx context.Context) (*defs.Index, error) {
	c.mu.RLock()
	index := c.index
	c.mu.RUnlock()
	if index != nil {
		return index, nil
	}

	result := c.flights.DoChan(indexFlightKey, func() (interface{}, error) {
		// Document loads join this flight too, so it outlives the caller that started it
		data, err := c.get(context.WithoutCancel(ctx), indexPath)
		if err != nil {
			return nil, err
		}
		var loaded defs.Index
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, errors.Wrap(err, "malformed rules index")
		}
		c.mu.Lock()
		c.index = &loaded
		c.mu.Unlock()
		return &loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.FromContext(ctx, "stopped waiting for rules index")
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*defs.Index), nil
	}
}

func (c *client) fetch(ctx context.Context, kind defs.Kind, name string) error {
	if c.store != nil {
		data, err := c.store.Get(ctx, kind, name)
		switch {
		case err == nil:
			if decodeErr := c.decode(kind, name, data); decodeErr == nil {
				slog.DebugContext(ctx, "rule document served from store", "kind", kind, "name", name)
				return nil
			}
			slog.WarnContext(ctx, "discarding unreadable stored rule document", "kind", kind, "name", name)
		case !errors.IsNotFound(err):
			slog.WarnContext(ctx, "rule document store unavailable", "kind", kind, "name", name, "error", err)
		}
	}

	index, err := c.loadIndex(ctx)
	if err != nil {
		return err
	}

	entry, ok := index.Entry(kind, name)
	if !ok {
		return errors.NotFoundf("%s %s is not in the rules index", kind, name)
	}

	data, err := c.get(ctx, entry.URL)
	if err != nil {
		return err
	}

	if err := c.decode(kind, name, data); err != nil {
		return err
	}

	if c.store != nil {
		if err := c.store.Put(ctx, kind, name, data); err != nil {
			slog.WarnContext(ctx, "failed to store rule document", "kind", kind, "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "loaded rule document", "kind", kind, "name", name, "bytes", len(data))
	return nil
}

// decode parses a document and publishes it to the matching cache
func (c *client) decode(kind defs.Kind, name string, data []byte) error {
	switch kind {
	case defs.KindClass:
		return decodeInto(c, data, name, c.classes)
	case defs.KindRace:
		return decodeInto(c, data, name, c.races)
	case defs.KindBackground:
		return decodeInto(c, data, name, c.backgrounds)
	case defs.KindSpellList:
		return decodeInto(c, data, name, c.spellLists)
	default:
		return errors.InvalidArgumentf("unknown document kind %q", kind)
	}
}

func decodeInto[T any](c *client, data []byte, name string, cache map[string]*T) error {
	var def T
	if err := json.Unmarshal(data, &def); err != nil {
		return errors.Wrapf(err, "malformed rule document %s", name)
	}
	c.mu.Lock()
	cache[name] = &def
	c.mu.Unlock()
	return nil
}

func (c *client) get(ctx context.Context, ref string) ([]byte, error) {
	target, err := c.baseURL.Parse(ref)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid document url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "rule document request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		return nil, errors.Newf(code, "rule document %s returned %s", target.Path, resp.Status).
			WithMeta("status", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to read %s", target.Path))
	}
	return data, nil
}
