// Package ruledoc caches raw rule documents in Redis with a TTL
package ruledoc

import (
	"context"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const keyPrefix = "ruledoc:"

// DefaultTTL applies when the config leaves TTL unset
const DefaultTTL = 24 * time.Hour

// Store reads and writes cached documents; it satisfies the rules client's DocumentStore
type Store interface {
	// Get returns errors.NotFound when the document is not cached or has expired
	Get(ctx context.Context, kind rules.Kind, name string) ([]byte, error)
	Put(ctx context.Context, kind rules.Kind, name string, data []byte) error
}

// RedisConfig contains configuration for the Redis document cache.
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
}

// Validate validates the RedisConfig and applies the default TTL.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgumentf("ttl cannot be negative: %s", cfg.TTL)
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return nil
}

type redisStore struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed document cache
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisStore{client: cfg.Client, ttl: cfg.TTL}, nil
}

// Key returns the cache key of a document
func Key(kind rules.Kind, name string) string {
	return keyPrefix + string(kind) + ":" + name
}

func (r *redisStore) Get(ctx context.Context, kind rules.Kind, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.InvalidArgument("document name cannot be empty")
	}

	data, err := r.client.Get(ctx, Key(kind, name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %s is not cached", kind, name)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read cached rule document")
	}
	return data, nil
}

func (r *redisStore) Put(ctx context.Context, kind rules.Kind, name string, data []byte) error {
	if name == "" {
		return errors.InvalidArgument("document name cannot be empty")
	}
	if len(data) == 0 {
		return errors.InvalidArgument("document data cannot be empty")
	}

	if err := r.client.Set(ctx, Key(kind, name), data, r.ttl).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to cache rule document")
	}

	slog.DebugContext(ctx, "cached rule document",
		"kind", kind,
		"name", name,
		"ttl", r.ttl.String())
	return nil
}
