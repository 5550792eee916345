package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeCharacter is the rpg-toolkit entity type of a character sheet
const EntityTypeCharacter = "character"

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Compile-time check that Character can be handed to rpg-toolkit
var _ core.Entity = (*Character)(nil)
