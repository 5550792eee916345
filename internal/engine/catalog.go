// Package engine applies rule documents to characters.
//
// Every function here mutates the character it is handed and nothing else.
// Lookups against the Catalog are total: a document that is not loaded yet
// turns the dependent step into a no-op so a later call can finish the work.
package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// Catalog exposes the rule documents loaded so far, keyed by name
type Catalog interface {
	Class(name string) (*rules.ClassDefinition, bool)
	Race(name string) (*rules.RaceDefinition, bool)
	Background(name string) (*rules.BackgroundDefinition, bool)
	SpellList(name string) (*rules.SpellListDefinition, bool)
}

// StaticCatalog is an in-memory Catalog over fixed documents
type StaticCatalog struct {
	Classes     map[string]*rules.ClassDefinition
	Races       map[string]*rules.RaceDefinition
	Backgrounds map[string]*rules.BackgroundDefinition
	SpellLists  map[string]*rules.SpellListDefinition
}

// Class implements Catalog
func (c *StaticCatalog) Class(name string) (*rules.ClassDefinition, bool) {
	def, ok := c.Classes[name]
	return def, ok && def != nil
}

// Race implements Catalog
func (c *StaticCatalog) Race(name string) (*rules.RaceDefinition, bool) {
	def, ok := c.Races[name]
	return def, ok && def != nil
}

// Background implements Catalog
func (c *StaticCatalog) Background(name string) (*rules.BackgroundDefinition, bool) {
	def, ok := c.Backgrounds[name]
	return def, ok && def != nil
}

// SpellList implements Catalog
func (c *StaticCatalog) SpellList(name string) (*rules.SpellListDefinition, bool) {
	def, ok := c.SpellLists[name]
	return def, ok && def != nil
}

// resolveSpellList returns the spells a feature draws from, empty when a referenced list is not loaded
func resolveSpellList(source rules.SpellListSource, catalog Catalog) []rules.SpellDefinition {
	if len(source.Inline) > 0 {
		return source.Inline
	}
	if source.Ref == "" || catalog == nil {
		return nil
	}
	list, ok := catalog.SpellList(source.Ref)
	if !ok {
		return nil
	}
	return list.Spells
}
