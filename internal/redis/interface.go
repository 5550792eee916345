package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories use; *redis.Client satisfies it
type Client interface {
	redis.UniversalClient
}
