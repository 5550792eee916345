// Package rules holds the read-only rule documents a character is derived from
package rules

// LevelTable is a sparse level -> value mapping.
// JSON objects keyed by level ("1", "5", ...) decode directly into it.
type LevelTable[T any] map[int]T

// ResolveAtLevel returns the value at the greatest key <= level,
// or the zero value when no such key exists. Levels between entries
// keep the value of the last threshold; nothing is interpolated.
func ResolveAtLevel[T any](table LevelTable[T], level int) T {
	var (
		result T
		best   int
		found  bool
	)
	for key, value := range table {
		if key > level {
			continue
		}
		if !found || key > best {
			best = key
			result = value
			found = true
		}
	}
	return result
}

// At is a convenience for ResolveAtLevel
func (t LevelTable[T]) At(level int) T {
	return ResolveAtLevel(t, level)
}
