package dnd5e

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FieldKind tags the variant carried by a FieldValue
type FieldKind string

// Field kinds
const (
	FieldKindDie    FieldKind = "die"
	FieldKindBonus  FieldKind = "bonus"
	FieldKindPoints FieldKind = "points"
	FieldKindChoice FieldKind = "choice"
)

// FieldValue is the sealed sum of field variants.
// Use a type switch on DieValue, BonusValue, PointsValue and ChoiceValue.
type FieldValue interface {
	Kind() FieldKind
	isFieldValue()
}

// DieValue is a dice expression such as "1d8"
type DieValue string

// BonusValue is a signed bonus
type BonusValue int

// PointsValue is a spendable pool
type PointsValue struct {
	Used int `json:"used"`
	Max  int `json:"max"`
}

// ChoiceValue is an ordered list of selected options
type ChoiceValue struct {
	Options []ChoiceOption `json:"options"`
}

// ChoiceOption is one selection slot of a choice field
type ChoiceOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Level       int    `json:"level"`
}

// Kind implements FieldValue
func (DieValue) Kind() FieldKind { return FieldKindDie }

// Kind implements FieldValue
func (BonusValue) Kind() FieldKind { return FieldKindBonus }

// Kind implements FieldValue
func (PointsValue) Kind() FieldKind { return FieldKindPoints }

// Kind implements FieldValue
func (ChoiceValue) Kind() FieldKind { return FieldKindChoice }

func (DieValue) isFieldValue()    {}
func (BonusValue) isFieldValue()  {}
func (PointsValue) isFieldValue() {}
func (ChoiceValue) isFieldValue() {}

// FeatureData holds structured per-feature state keyed by feature name on the character
type FeatureData struct {
	Fields []FeatureField `json:"fields"`
	Spells *SpellData     `json:"spells,omitempty"`
}

// FeatureField is a typed, level-scaling value attached to a feature
type FeatureField struct {
	Name        string
	Description string
	Value       FieldValue
}

// Choices returns the options of a choice field, nil for other kinds
func (f *FeatureField) Choices() []ChoiceOption {
	if choice, ok := f.Value.(ChoiceValue); ok {
		return choice.Options
	}
	return nil
}

type featureFieldJSON struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Kind        FieldKind      `json:"kind"`
	Die         string         `json:"die,omitempty"`
	Bonus       int            `json:"bonus,omitempty"`
	Points      *PointsValue   `json:"points,omitempty"`
	Options     []ChoiceOption `json:"options,omitempty"`
}

// MarshalJSON writes the value flattened next to a kind tag
func (f FeatureField) MarshalJSON() ([]byte, error) {
	out := featureFieldJSON{
		Name:        f.Name,
		Description: f.Description,
	}

	switch v := f.Value.(type) {
	case DieValue:
		out.Kind = FieldKindDie
		out.Die = string(v)
	case BonusValue:
		out.Kind = FieldKindBonus
		out.Bonus = int(v)
	case PointsValue:
		out.Kind = FieldKindPoints
		points := v
		out.Points = &points
	case ChoiceValue:
		out.Kind = FieldKindChoice
		out.Options = v.Options
		if out.Options == nil {
			out.Options = []ChoiceOption{}
		}
	case nil:
		return nil, fmt.Errorf("field %q has no value", f.Name)
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the kind tag and rebuilds the matching variant
func (f *FeatureField) UnmarshalJSON(data []byte) error {
	var in featureFieldJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	f.Name = in.Name
	f.Description = in.Description

	switch in.Kind {
	case FieldKindDie:
		f.Value = DieValue(in.Die)
	case FieldKindBonus:
		f.Value = BonusValue(in.Bonus)
	case FieldKindPoints:
		if in.Points == nil {
			f.Value = PointsValue{}
		} else {
			f.Value = *in.Points
		}
	case FieldKindChoice:
		options := in.Options
		if options == nil {
			options = []ChoiceOption{}
		}
		f.Value = ChoiceValue{Options: options}
	default:
		return fmt.Errorf("field %q has unknown kind %q", in.Name, in.Kind)
	}

	return nil
}

// SpellData is the spell list owned by one spellcasting feature
type SpellData struct {
	CastingAbility Ability `json:"casting_ability"`
	Spells         []Spell `json:"spells"`
}

// Spell is a known or prepared spell
type Spell struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Prepared    bool   `json:"prepared"`
	Sticky      bool   `json:"sticky,omitempty"`
}

// CountNonSticky returns how many removable cantrips and leveled spells are listed
func (s *SpellData) CountNonSticky() (cantrips, spells int) {
	for _, spell := range s.Spells {
		if spell.Sticky {
			continue
		}
		if spell.Level == 0 {
			cantrips++
		} else {
			spells++
		}
	}
	return cantrips, spells
}

// FindSpell returns the first spell with the given name
func FindSpell(spells []Spell, name string) *Spell {
	for i := range spells {
		if spells[i].Name == name {
			return &spells[i]
		}
	}
	return nil
}

// FindChoiceOption returns the first option with the given name
func FindChoiceOption(options []ChoiceOption, name string) *ChoiceOption {
	for i := range options {
		if options[i].Name == name {
			return &options[i]
		}
	}
	return nil
}

// SpellcastingView is the aggregated view of one spellcasting feature
type SpellcastingView struct {
	FeatureKey     string
	CastingAbility Ability
	Spells         []Spell
}

// Spellcasting aggregates every feature-data entry that declares spells, sorted by feature key
func (c *Character) Spellcasting() []SpellcastingView {
	keys := make([]string, 0, len(c.FeatureData))
	for key, data := range c.FeatureData {
		if data != nil && data.Spells != nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	views := make([]SpellcastingView, 0, len(keys))
	for _, key := range keys {
		spells := c.FeatureData[key].Spells
		views = append(views, SpellcastingView{
			FeatureKey:     key,
			CastingAbility: spells.CastingAbility,
			Spells:         spells.Spells,
		})
	}
	return views
}

// FeatureDataFor returns the entry for a feature, creating it when missing
func (c *Character) FeatureDataFor(featureName string) *FeatureData {
	if c.FeatureData == nil {
		c.FeatureData = make(map[string]*FeatureData)
	}
	data, ok := c.FeatureData[featureName]
	if !ok || data == nil {
		data = &FeatureData{}
		c.FeatureData[featureName] = data
	}
	return data
}

// SpellSlot returns the slot entry for a spell level, creating it when missing
func (c *Character) SpellSlot(level int) *SpellSlotLevel {
	for i := range c.SpellSlots {
		if c.SpellSlots[i].Level == level {
			return &c.SpellSlots[i]
		}
	}
	c.SpellSlots = append(c.SpellSlots, SpellSlotLevel{Level: level})
	sort.Slice(c.SpellSlots, func(i, j int) bool { return c.SpellSlots[i].Level < c.SpellSlots[j].Level })
	for i := range c.SpellSlots {
		if c.SpellSlots[i].Level == level {
			return &c.SpellSlots[i]
		}
	}
	return nil
}
