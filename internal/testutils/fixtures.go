package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"

	// TestUpdatedAt is a fixed save time, 2025-01-01T00:00:00Z in milliseconds
	TestUpdatedAt int64 = 1735689600000
)

// CreateTestCharacter creates a first-level fighter with descriptions filled in
func CreateTestCharacter(id string) *dnd5e.Character {
	ch := dnd5e.NewCharacter(id)
	ch.Identity.Name = TestCharacterName
	ch.Identity.Race = "Dwarf"
	ch.Identity.RaceApplied = true
	ch.Identity.Classes = []dnd5e.ClassLevel{{
		Class:         "Fighter",
		Level:         1,
		AppliedLevels: []int{1},
		HitDieSides:   10,
	}}
	ch.Abilities.Constitution = 14
	ch.Combat.HPMax = 12
	ch.Combat.HPCurrent = 12
	ch.Combat.HitDiceTotal = "1d10"
	ch.Combat.HitDiceRemaining = "1d10"
	ch.Features = []dnd5e.Feature{{Name: "Second Wind", Description: "Regain hit points as a bonus action."}}
	ch.RacialTraits = []dnd5e.RacialTrait{{Name: "Darkvision", Description: "See in dim light within 60 feet."}}
	ch.FeatureData["Second Wind"] = &dnd5e.FeatureData{
		Fields: []dnd5e.FeatureField{
			{Name: "Healing", Description: "Dice rolled when used.", Value: dnd5e.DieValue("1d10")},
			{Name: "Uses", Description: "Uses per short rest.", Value: dnd5e.PointsValue{Max: 1}},
		},
	}
	ch.UpdatedAt = TestUpdatedAt
	return ch
}

// CreateTestFighterClass returns a two-level fighter rule document
func CreateTestFighterClass() *rules.ClassDefinition {
	return &rules.ClassDefinition{
		Name:         "Fighter",
		Description:  "A master of martial combat.",
		HitDie:       10,
		SavingThrows: []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		Features: []rules.FeatureDefinition{
			{
				Name:        "Second Wind",
				Description: "Regain hit points as a bonus action.",
				Fields: []rules.FieldDefinition{
					{Name: "Healing", Description: "Dice rolled when used.", Kind: dnd5e.FieldKindDie,
						Dice: rules.LevelTable[string]{1: "1d10"}},
					{Name: "Uses", Description: "Uses per short rest.", Kind: dnd5e.FieldKindPoints,
						Points: rules.LevelTable[int]{1: 1}},
				},
			},
			{Name: "Action Surge", Description: "Take one additional action."},
		},
		Levels: []rules.ClassLevelRules{
			{Features: []string{"Second Wind"}},
			{Features: []string{"Action Surge"}},
		},
	}
}
