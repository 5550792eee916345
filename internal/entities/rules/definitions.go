package rules

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Kind identifies which cache a rule document belongs to
type Kind string

// Document kinds
const (
	KindClass      Kind = "class"
	KindRace       Kind = "race"
	KindBackground Kind = "background"
	KindSpellList  Kind = "spell_list"
)

// Index lists every fetchable rule document by name
type Index struct {
	Classes     []IndexEntry `json:"classes"`
	Races       []IndexEntry `json:"races"`
	Backgrounds []IndexEntry `json:"backgrounds"`
	SpellLists  []IndexEntry `json:"spell_lists"`
}

// IndexEntry points at one document
type IndexEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Entry finds the index entry of a document by kind and name
func (i *Index) Entry(kind Kind, name string) (IndexEntry, bool) {
	var entries []IndexEntry
	switch kind {
	case KindClass:
		entries = i.Classes
	case KindRace:
		entries = i.Races
	case KindBackground:
		entries = i.Backgrounds
	case KindSpellList:
		entries = i.SpellLists
	}
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return IndexEntry{}, false
}

// ClassDefinition is a class rule document
type ClassDefinition struct {
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	HitDie        int                  `json:"hit_die"`
	Proficiencies []dnd5e.Proficiency  `json:"proficiencies"`
	SavingThrows  []dnd5e.Ability      `json:"saving_throws"`
	Features      []FeatureDefinition  `json:"features"`
	Levels        []ClassLevelRules    `json:"levels"`
	Subclasses    []SubclassDefinition `json:"subclasses"`
}

// ClassLevelRules names the features newly unlocked at one class level
type ClassLevelRules struct {
	Features []string `json:"features"`
}

// RulesAt returns the rules for a class level; Levels[0] is level 1
func (c *ClassDefinition) RulesAt(level int) (ClassLevelRules, bool) {
	if level < 1 || level > len(c.Levels) {
		return ClassLevelRules{}, false
	}
	return c.Levels[level-1], true
}

// Subclass finds a subclass by name
func (c *ClassDefinition) Subclass(name string) *SubclassDefinition {
	if name == "" {
		return nil
	}
	for i := range c.Subclasses {
		if c.Subclasses[i].Name == name {
			return &c.Subclasses[i]
		}
	}
	return nil
}

// SubclassDefinition is a subclass nested inside a class document
type SubclassDefinition struct {
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Features    []FeatureDefinition            `json:"features"`
	Levels      LevelTable[SubclassLevelRules] `json:"levels"`
}

// SubclassLevelRules names subclass features unlocked at a level
type SubclassLevelRules struct {
	Features []string `json:"features"`
}

// MinLevel is the first level with subclass rules, 1 when none are declared
func (s *SubclassDefinition) MinLevel() int {
	lowest := 0
	for level := range s.Levels {
		if lowest == 0 || level < lowest {
			lowest = level
		}
	}
	if lowest == 0 {
		return 1
	}
	return lowest
}

// FeatureDefinition describes a grantable feature
type FeatureDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Languages   []string          `json:"languages,omitempty"`
	Stackable   bool              `json:"stackable,omitempty"`
	Spells      *SpellsDefinition `json:"spells,omitempty"`
	Fields      []FieldDefinition `json:"fields,omitempty"`
}

// FieldDefinition describes one typed, level-scaling field of a feature.
// Only the table matching Kind is read.
type FieldDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Kind        dnd5e.FieldKind    `json:"kind"`
	Dice        LevelTable[string] `json:"dice,omitempty"`
	Bonus       LevelTable[int]    `json:"bonus,omitempty"`
	Points      LevelTable[int]    `json:"points,omitempty"`
	Slots       LevelTable[int]    `json:"slots,omitempty"`
	Options     *OptionSource      `json:"options,omitempty"`
}

// OptionSource is either an inline option list or a reference to another field's options.
// Ref is "Feature/Field", or just "Field" for a sibling field of the same feature.
type OptionSource struct {
	Inline []OptionDefinition `json:"inline,omitempty"`
	Ref    string             `json:"ref,omitempty"`
}

// OptionDefinition is one selectable option of a choice field
type OptionDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost,omitempty"`
	Level       int    `json:"level,omitempty"`
}

// SpellsDefinition declares that a feature grants spellcasting
type SpellsDefinition struct {
	CastingAbility    dnd5e.Ability               `json:"casting_ability"`
	CasterCoefficient float64                     `json:"caster_coefficient"`
	List              SpellListSource             `json:"list"`
	Levels            LevelTable[SpellLevelRules] `json:"levels"`
}

// SpellListSource is either an inline spell list or the name of a spell-list document
type SpellListSource struct {
	Inline []SpellDefinition `json:"inline,omitempty"`
	Ref    string            `json:"ref,omitempty"`
}

// SpellLevelRules is the spell progression at a level
type SpellLevelRules struct {
	CantripsKnown int   `json:"cantrips_known"`
	SpellsKnown   int   `json:"spells_known"`
	SpellSlots    []int `json:"spell_slots,omitempty"`
}

// SpellDefinition is a spell as authored in a rule document
type SpellDefinition struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Sticky      bool   `json:"sticky,omitempty"`
	MinLevel    int    `json:"min_level,omitempty"`
}

// SpellListDefinition is a standalone spell-list document
type SpellListDefinition struct {
	Name   string            `json:"name"`
	Spells []SpellDefinition `json:"spells"`
}

// RaceDefinition is a race rule document
type RaceDefinition struct {
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	AbilityModifiers map[dnd5e.Ability]int `json:"ability_modifiers"`
	Speed            int                   `json:"speed,omitempty"`
	Proficiencies    []dnd5e.Proficiency   `json:"proficiencies,omitempty"`
	Traits           []TraitDefinition     `json:"traits"`
	Features         []FeatureDefinition   `json:"features"`
}

// TraitDefinition is a named racial trait
type TraitDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BackgroundDefinition is a background rule document
type BackgroundDefinition struct {
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	AbilityModifiers   map[dnd5e.Ability]int `json:"ability_modifiers,omitempty"`
	SkillProficiencies []dnd5e.Skill         `json:"skill_proficiencies"`
	Proficiencies      []dnd5e.Proficiency   `json:"proficiencies,omitempty"`
	Features           []FeatureDefinition   `json:"features"`
}

// FindFeature looks a feature definition up by name
func FindFeature(defs []FeatureDefinition, name string) *FeatureDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

// FindField looks a field definition up by name
func FindField(defs []FieldDefinition, name string) *FieldDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

// FindSpell looks a spell definition up by name
func FindSpell(defs []SpellDefinition, name string) *SpellDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

// FindTrait looks a racial trait up by name
func FindTrait(defs []TraitDefinition, name string) *TraitDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

// FindOption looks an option up by name
func FindOption(defs []OptionDefinition, name string) *OptionDefinition {
	for i := range defs {
		if defs[i].Name == name {
			return &defs[i]
		}
	}
	return nil
}

// SplitOptionRef splits "Feature/Field" into its parts; feature is empty for bare field refs
func SplitOptionRef(ref string) (feature, field string) {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return "", ref
}
