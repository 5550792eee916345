// Package merge restores data that sharing strips out of a character
package merge

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// RestoreStripped copies stripped data from local into imported, in place.
//
// Death saves and temporary hit points are always taken from local. Blank
// descriptions of features, racial traits, choice options and spells are
// filled from the first same-named local entry. Feature-data fields are
// paired by feature key then by position, and their descriptions are always
// overwritten from the local field at the same index.
func RestoreStripped(imported, local *dnd5e.Character) {
	if imported == nil || local == nil {
		return
	}

	imported.Combat.DeathSaveSuccesses = local.Combat.DeathSaveSuccesses
	imported.Combat.DeathSaveFailures = local.Combat.DeathSaveFailures
	imported.Combat.HPTemp = local.Combat.HPTemp

	for i := range imported.Features {
		feature := &imported.Features[i]
		if feature.Description != "" {
			continue
		}
		if source := dnd5e.FindFeature(local.Features, feature.Name); source != nil {
			feature.Description = source.Description
		}
	}

	for i := range imported.RacialTraits {
		trait := &imported.RacialTraits[i]
		if trait.Description != "" {
			continue
		}
		if source := dnd5e.FindRacialTrait(local.RacialTraits, trait.Name); source != nil {
			trait.Description = source.Description
		}
	}

	for key, data := range imported.FeatureData {
		source, ok := local.FeatureData[key]
		if !ok || data == nil || source == nil {
			continue
		}
		restoreFields(data.Fields, source.Fields)
		restoreSpells(data.Spells, source.Spells)
	}
}

// restoreFields pairs fields by position; only nested choice options match by name
func restoreFields(imported, local []dnd5e.FeatureField) {
	for i := range imported {
		if i >= len(local) {
			return
		}
		imported[i].Description = local[i].Description

		importedOptions := imported[i].Choices()
		localOptions := local[i].Choices()
		for j := range importedOptions {
			option := &importedOptions[j]
			if option.Description != "" {
				continue
			}
			if source := dnd5e.FindChoiceOption(localOptions, option.Name); source != nil {
				option.Description = source.Description
			}
		}
	}
}

func restoreSpells(imported, local *dnd5e.SpellData) {
	if imported == nil || local == nil {
		return
	}
	for i := range imported.Spells {
		spell := &imported.Spells[i]
		if spell.Description != "" {
			continue
		}
		if source := dnd5e.FindSpell(local.Spells, spell.Name); source != nil {
			spell.Description = source.Description
		}
	}
}
