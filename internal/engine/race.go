package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// minAbilityScore is the floor applied after racial and background modifiers
const minAbilityScore = 1

// ApplyRace applies a race document.
// Callers must not apply the same race twice; RaceApplied only records that it happened.
func ApplyRace(def *rules.RaceDefinition, ch *dnd5e.Character) {
	if def == nil || ch == nil {
		return
	}

	applyAbilityModifiers(def.AbilityModifiers, ch)

	if def.Speed > 0 {
		ch.Combat.Speed = def.Speed
	}

	for _, proficiency := range def.Proficiencies {
		ch.AddProficiency(proficiency)
	}

	for _, trait := range def.Traits {
		if dnd5e.FindRacialTrait(ch.RacialTraits, trait.Name) != nil {
			continue
		}
		ch.RacialTraits = append(ch.RacialTraits, dnd5e.RacialTrait{
			Name:        trait.Name,
			Description: trait.Description,
		})
	}

	level := ch.Level()
	for i := range def.Features {
		ApplyFeature(&def.Features[i], level, ch)
	}

	ch.Identity.Race = def.Name
	ch.Identity.RaceApplied = true
}

// ApplyBackground applies a background document; features are granted at level 1
func ApplyBackground(def *rules.BackgroundDefinition, ch *dnd5e.Character) {
	if def == nil || ch == nil {
		return
	}

	applyAbilityModifiers(def.AbilityModifiers, ch)

	for _, skill := range def.SkillProficiencies {
		ch.GrantSkill(skill)
	}

	for _, proficiency := range def.Proficiencies {
		ch.AddProficiency(proficiency)
	}

	for i := range def.Features {
		ApplyFeature(&def.Features[i], 1, ch)
	}

	ch.Identity.Background = def.Name
	ch.Identity.BackgroundApplied = true
}

func applyAbilityModifiers(modifiers map[dnd5e.Ability]int, ch *dnd5e.Character) {
	for _, ability := range dnd5e.Abilities {
		modifier, ok := modifiers[ability]
		if !ok {
			continue
		}
		score := ch.Abilities.Get(ability) + modifier
		if score < minAbilityScore {
			score = minAbilityScore
		}
		ch.Abilities.Set(ability, score)
	}
}
