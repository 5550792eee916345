// Package redis wraps the go-redis client so repositories depend on an interface
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	UseTLS       bool
}

// NewClient creates a Redis client for a single instance.
// The connection is lazy; call Ping to check the server is reachable.
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.InvalidArgument("redis: address is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:         addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping verifies the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
