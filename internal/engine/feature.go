package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// ApplyFeature grants a feature at the given level.
// Safe to call repeatedly: the feature is listed once and fields and spells
// only escalate toward the values resolved for level.
func ApplyFeature(def *rules.FeatureDefinition, level int, ch *dnd5e.Character) {
	if def == nil || ch == nil {
		return
	}

	if !ch.HasFeature(def.Name) {
		ch.Features = append(ch.Features, dnd5e.Feature{
			Name:        def.Name,
			Description: def.Description,
		})
	}

	for _, language := range def.Languages {
		ch.AddLanguage(language)
	}

	if def.Spells != nil {
		applySpells(def, level, ch)
	}

	if len(def.Fields) > 0 {
		applyFields(def, level, ch)
	}
}

func applySpells(def *rules.FeatureDefinition, level int, ch *dnd5e.Character) {
	data := ch.FeatureDataFor(def.Name)
	if data.Spells == nil {
		data.Spells = &dnd5e.SpellData{
			CastingAbility: def.Spells.CastingAbility,
			Spells:         []dnd5e.Spell{},
		}
	}

	raiseSpellSlots(def.Spells, ch)

	progression := def.Spells.Levels.At(level)
	cantrips, spells := data.Spells.CountNonSticky()

	for ; cantrips < progression.CantripsKnown; cantrips++ {
		data.Spells.Spells = append(data.Spells.Spells, dnd5e.Spell{Level: 0})
	}

	if spells < progression.SpellsKnown {
		defaultLevel := ch.HighestSlotLevel()
		if defaultLevel == 0 {
			defaultLevel = dnd5e.MinSpellLevel
		}
		for ; spells < progression.SpellsKnown; spells++ {
			data.Spells.Spells = append(data.Spells.Spells, dnd5e.Spell{Level: defaultLevel})
		}
	}

	for _, spellDef := range def.Spells.List.Inline {
		if !spellDef.Sticky || spellDef.MinLevel > level {
			continue
		}
		if existing := dnd5e.FindSpell(data.Spells.Spells, spellDef.Name); existing != nil {
			existing.Sticky = true
			existing.Prepared = true
			continue
		}
		data.Spells.Spells = append(data.Spells.Spells, dnd5e.Spell{
			Name:        spellDef.Name,
			Level:       spellDef.Level,
			Description: spellDef.Description,
			Prepared:    true,
			Sticky:      true,
		})
	}
}

// raiseSpellSlots lifts slot totals to the table at the character's caster level, never lowering them
func raiseSpellSlots(def *rules.SpellsDefinition, ch *dnd5e.Character) {
	casterLevel := ch.CasterLevel()
	if casterLevel < 1 {
		return
	}
	slots := def.Levels.At(casterLevel).SpellSlots
	for i, total := range slots {
		spellLevel := i + 1
		if spellLevel > dnd5e.MaxSpellLevel {
			break
		}
		slot := ch.SpellSlot(spellLevel)
		if total > slot.Total {
			slot.Total = total
		}
	}
}

func applyFields(def *rules.FeatureDefinition, level int, ch *dnd5e.Character) {
	data := ch.FeatureDataFor(def.Name)

	if len(data.Fields) == 0 {
		data.Fields = make([]dnd5e.FeatureField, 0, len(def.Fields))
		for i := range def.Fields {
			data.Fields = append(data.Fields, materializeField(&def.Fields[i], level))
		}
		return
	}

	for i := range data.Fields {
		field := &data.Fields[i]
		fieldDef := rules.FindField(def.Fields, field.Name)
		if fieldDef == nil {
			continue
		}
		escalateField(field, fieldDef, level)
	}
}

func materializeField(def *rules.FieldDefinition, level int) dnd5e.FeatureField {
	field := dnd5e.FeatureField{
		Name:        def.Name,
		Description: def.Description,
	}

	switch def.Kind {
	case dnd5e.FieldKindDie:
		field.Value = dnd5e.DieValue(def.Dice.At(level))
	case dnd5e.FieldKindBonus:
		field.Value = dnd5e.BonusValue(def.Bonus.At(level))
	case dnd5e.FieldKindPoints:
		field.Value = dnd5e.PointsValue{Max: def.Points.At(level)}
	case dnd5e.FieldKindChoice:
		field.Value = dnd5e.ChoiceValue{Options: make([]dnd5e.ChoiceOption, max(0, def.Slots.At(level)))}
	default:
		// Unknown kinds materialize as an empty choice so the sheet still renders
		field.Value = dnd5e.ChoiceValue{Options: []dnd5e.ChoiceOption{}}
	}

	return field
}

// escalateField updates a materialized field in place, dispatching on the stored variant
func escalateField(field *dnd5e.FeatureField, def *rules.FieldDefinition, level int) {
	switch value := field.Value.(type) {
	case dnd5e.DieValue:
		if def.Kind == dnd5e.FieldKindDie {
			field.Value = dnd5e.DieValue(def.Dice.At(level))
		}
	case dnd5e.BonusValue:
		if def.Kind == dnd5e.FieldKindBonus {
			field.Value = dnd5e.BonusValue(def.Bonus.At(level))
		}
	case dnd5e.PointsValue:
		if def.Kind == dnd5e.FieldKindPoints {
			value.Max = def.Points.At(level)
			field.Value = value
		}
	case dnd5e.ChoiceValue:
		if def.Kind != dnd5e.FieldKindChoice {
			return
		}
		target := def.Slots.At(level)
		options := value.Options
		if options == nil {
			options = []dnd5e.ChoiceOption{}
		}
		for len(options) < target {
			options = append(options, dnd5e.ChoiceOption{})
		}
		field.Value = dnd5e.ChoiceValue{Options: options}
	}
}
