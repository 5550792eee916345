// Package idgen hands out character IDs
package idgen

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator produces random v4 UUIDs, optionally prefixed as "<prefix>_<uuid>"
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator; an empty prefix yields bare UUIDs
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// SequentialGenerator counts up from 1. Tests use it for stable IDs.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in the sequence
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return fmt.Sprintf("%s_%s", prefix, id)
}
