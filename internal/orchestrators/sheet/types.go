package sheet

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *dnd5e.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []dnd5e.CharacterSummary
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// LevelUpInput defines the request for gaining one level in a class
type LevelUpInput struct {
	CharacterID string
	ClassName   string
	// Subclass is optional; an empty value keeps the current choice
	Subclass string
}

// LevelUpOutput defines the response for gaining a level
type LevelUpOutput struct {
	Character *dnd5e.Character
	// ClassLevel is the class's level after the call
	ClassLevel int
	// Applied is false when the class document has no rules for the next level
	Applied bool
}

// ApplyRaceInput defines the request for applying a race
type ApplyRaceInput struct {
	CharacterID string
	Race        string
}

// ApplyRaceOutput defines the response for applying a race
type ApplyRaceOutput struct {
	Character *dnd5e.Character
}

// ApplyBackgroundInput defines the request for applying a background
type ApplyBackgroundInput struct {
	CharacterID string
	Background  string
}

// ApplyBackgroundOutput defines the response for applying a background
type ApplyBackgroundOutput struct {
	Character *dnd5e.Character
}

// FillDescriptionsInput defines the request for the description fill pass
type FillDescriptionsInput struct {
	CharacterID string
}

// FillDescriptionsOutput defines the response for the description fill pass
type FillDescriptionsOutput struct {
	Character *dnd5e.Character
	Filled    int
}

// UpdateFieldValueInput defines a data-entry edit of one feature field
type UpdateFieldValueInput struct {
	CharacterID string
	FeatureKey  string
	FieldName   string
	Value       string
}

// UpdateFieldValueOutput defines the response for a field edit
type UpdateFieldValueOutput struct {
	Character *dnd5e.Character
}

// SelectChoiceOptionInput fills one slot of a choice field
type SelectChoiceOptionInput struct {
	CharacterID string
	FeatureKey  string
	FieldName   string
	Index       int
	Option      dnd5e.ChoiceOption
}

// SelectChoiceOptionOutput defines the response for a choice selection
type SelectChoiceOptionOutput struct {
	Character *dnd5e.Character
}

// SpendHitDieInput defines the request for spending a hit die
type SpendHitDieInput struct {
	CharacterID string
	ClassName   string
}

// SpendHitDieOutput defines the response for spending a hit die
type SpendHitDieOutput struct {
	Character *dnd5e.Character
	Roll      *engine.HitDieRoll
}

// LongRestInput defines the request for a long rest
type LongRestInput struct {
	CharacterID string
}

// LongRestOutput defines the response for a long rest
type LongRestOutput struct {
	Character         *dnd5e.Character
	HitDiceRestored   int
	HitPointsRestored int
}

// ShareCharacterInput defines the request for a share token
type ShareCharacterInput struct {
	CharacterID string
}

// ShareCharacterOutput defines the response for a share token
type ShareCharacterOutput struct {
	Token string
}
