package v1alpha1

import (
	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// CharacterResponse carries the character after any operation that changes or reads one
type CharacterResponse struct {
	Character *dnd5e.Character `json:"character"`
}

type CreateCharacterRequest struct {
	Name string `json:"name,omitempty"`
}

type GetCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type ListCharactersRequest struct{}

type ListCharactersResponse struct {
	Characters []dnd5e.CharacterSummary `json:"characters"`
}

type DeleteCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type DeleteCharacterResponse struct{}

type LevelUpRequest struct {
	CharacterID string `json:"character_id"`
	ClassName   string `json:"class_name"`
	Subclass    string `json:"subclass,omitempty"`
}

type LevelUpResponse struct {
	Character  *dnd5e.Character `json:"character"`
	ClassLevel int              `json:"class_level"`
	Applied    bool             `json:"applied"`
}

type ApplyRaceRequest struct {
	CharacterID string `json:"character_id"`
	Race        string `json:"race"`
}

type ApplyBackgroundRequest struct {
	CharacterID string `json:"character_id"`
	Background  string `json:"background"`
}

type FillDescriptionsRequest struct {
	CharacterID string `json:"character_id"`
}

type FillDescriptionsResponse struct {
	Character *dnd5e.Character `json:"character"`
	Filled    int              `json:"filled"`
}

type UpdateFieldValueRequest struct {
	CharacterID string `json:"character_id"`
	FeatureKey  string `json:"feature_key"`
	FieldName   string `json:"field_name"`
	Value       string `json:"value"`
}

type SelectChoiceOptionRequest struct {
	CharacterID string             `json:"character_id"`
	FeatureKey  string             `json:"feature_key"`
	FieldName   string             `json:"field_name"`
	Index       int                `json:"index"`
	Option      dnd5e.ChoiceOption `json:"option"`
}

type SpendHitDieRequest struct {
	CharacterID string `json:"character_id"`
	ClassName   string `json:"class_name"`
}

type SpendHitDieResponse struct {
	Character *dnd5e.Character `json:"character"`
	Sides     int              `json:"sides"`
	Rolled    int              `json:"rolled"`
	Healed    int              `json:"healed"`
}

type LongRestRequest struct {
	CharacterID string `json:"character_id"`
}

type LongRestResponse struct {
	Character         *dnd5e.Character `json:"character"`
	HitDiceRestored   int              `json:"hit_dice_restored"`
	HitPointsRestored int              `json:"hit_points_restored"`
}

type ShareCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type ShareCharacterResponse struct {
	Token string `json:"token"`
}

type ImportCharacterRequest struct {
	Token string `json:"token"`
}

// ImportCharacterResponse reports how the import resolved.
// Differences is only set when the local copy is newer and nothing was saved.
type ImportCharacterResponse struct {
	State       string           `json:"state"`
	Character   *dnd5e.Character `json:"character"`
	Differences []diff.Group     `json:"differences,omitempty"`
}

type ConfirmImportRequest struct {
	Token string `json:"token"`
}

type ListRuleDocumentsRequest struct {
	Kind string `json:"kind"`
}

type ListRuleDocumentsResponse struct {
	Documents []rules.IndexEntry `json:"documents"`
}
