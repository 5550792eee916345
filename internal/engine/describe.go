package engine

import (
	"sort"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// FillDescriptions copies rule text into every blank description on the character
// and returns how many entries were filled. Non-empty text is never touched, so
// the pass can run as often as needed, including while documents are still loading.
func FillDescriptions(ch *dnd5e.Character, catalog Catalog) int {
	if ch == nil || catalog == nil {
		return 0
	}

	features := CharacterFeatureDefinitions(ch, catalog)
	filled := 0

	for i := range ch.Features {
		feature := &ch.Features[i]
		if feature.Description != "" {
			continue
		}
		if def := findFeaturePtr(features, feature.Name); def != nil && def.Description != "" {
			feature.Description = def.Description
			filled++
		}
	}

	if race, ok := catalog.Race(ch.Identity.Race); ok && ch.Identity.Race != "" {
		for i := range ch.RacialTraits {
			trait := &ch.RacialTraits[i]
			if trait.Description != "" {
				continue
			}
			if def := rules.FindTrait(race.Traits, trait.Name); def != nil && def.Description != "" {
				trait.Description = def.Description
				filled++
			}
		}
	}

	keys := make([]string, 0, len(ch.FeatureData))
	for key := range ch.FeatureData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		data := ch.FeatureData[key]
		def := findFeaturePtr(features, key)
		if data == nil || def == nil {
			continue
		}
		filled += fillFieldDescriptions(data, def, features)
		filled += fillSpellDescriptions(data, def, catalog)
	}

	return filled
}

func fillFieldDescriptions(data *dnd5e.FeatureData, def *rules.FeatureDefinition, features []*rules.FeatureDefinition) int {
	filled := 0
	for i := range data.Fields {
		field := &data.Fields[i]
		fieldDef := rules.FindField(def.Fields, field.Name)
		if fieldDef == nil {
			continue
		}

		if field.Description == "" && fieldDef.Description != "" {
			field.Description = fieldDef.Description
			filled++
		}

		choice, ok := field.Value.(dnd5e.ChoiceValue)
		if !ok {
			continue
		}
		options := ResolveOptions(fieldDef.Options, def, features)
		for j := range choice.Options {
			option := &choice.Options[j]
			if option.Name == "" || option.Description != "" {
				continue
			}
			if optionDef := rules.FindOption(options, option.Name); optionDef != nil && optionDef.Description != "" {
				option.Description = optionDef.Description
				filled++
			}
		}
	}
	return filled
}

func fillSpellDescriptions(data *dnd5e.FeatureData, def *rules.FeatureDefinition, catalog Catalog) int {
	if data.Spells == nil || def.Spells == nil {
		return 0
	}

	spellDefs := resolveSpellList(def.Spells.List, catalog)
	filled := 0
	for i := range data.Spells.Spells {
		spell := &data.Spells.Spells[i]
		if spell.Name == "" || spell.Description != "" {
			continue
		}
		if spellDef := rules.FindSpell(spellDefs, spell.Name); spellDef != nil && spellDef.Description != "" {
			spell.Description = spellDef.Description
			filled++
		}
	}
	return filled
}
