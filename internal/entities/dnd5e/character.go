// Package dnd5e implements the D&D 5e character sheet entities
package dnd5e

import (
	"fmt"
	"sort"
	"strings"
)

// Default values for a blank sheet
const (
	DefaultCharacterName = "New Character"
	DefaultAbilityScore  = 10
	DefaultArmorClass    = 10
	DefaultSpeed         = 30
	DefaultHitDieSides   = 8
)

// Character is the mutable aggregate derived from rule documents and edited by the player.
// NOTE: Derived numbers (modifiers, bonuses, DCs) are computed on demand and never stored.
type Character struct {
	ID            string                     `json:"id"`
	Identity      Identity                   `json:"identity"`
	Abilities     AbilityScores              `json:"abilities"`
	SavingThrows  []Ability                  `json:"saving_throws"`
	Skills        map[Skill]ProficiencyLevel `json:"skills"`
	Combat        CombatStats                `json:"combat"`
	Personality   Personality                `json:"personality"`
	Features      []Feature                  `json:"features"`
	Equipment     Equipment                  `json:"equipment"`
	FeatureData   map[string]*FeatureData    `json:"feature_data"`
	SpellSlots    []SpellSlotLevel           `json:"spell_slots"`
	Proficiencies []Proficiency              `json:"proficiencies"`
	Languages     []string                   `json:"languages"`
	RacialTraits  []RacialTrait              `json:"racial_traits"`
	Notes         string                     `json:"notes"`
	UpdatedAt     int64                      `json:"updated_at"`
}

// Identity holds who the character is
type Identity struct {
	Name              string       `json:"name"`
	Classes           []ClassLevel `json:"classes"`
	Race              string       `json:"race"`
	Background        string       `json:"background"`
	Alignment         Alignment    `json:"alignment"`
	ExperiencePoints  int          `json:"experience_points"`
	RaceApplied       bool         `json:"race_applied"`
	BackgroundApplied bool         `json:"background_applied"`
}

// ClassLevel tracks one class the character has taken.
// AppliedLevels only grows; each level is recorded exactly once.
type ClassLevel struct {
	Class             string  `json:"class"`
	Subclass          string  `json:"subclass,omitempty"`
	Level             int     `json:"level"`
	AppliedLevels     []int   `json:"applied_levels"`
	HitDieSides       int     `json:"hit_die_sides"`
	HitDiceUsed       int     `json:"hit_dice_used"`
	CasterCoefficient float64 `json:"caster_coefficient"`
}

// HasApplied reports whether rules for the given level were already applied
func (cl *ClassLevel) HasApplied(level int) bool {
	for _, applied := range cl.AppliedLevels {
		if applied == level {
			return true
		}
	}
	return false
}

// MarkApplied records a level as applied, keeping the set sorted
func (cl *ClassLevel) MarkApplied(level int) {
	if cl.HasApplied(level) {
		return
	}
	cl.AppliedLevels = append(cl.AppliedLevels, level)
	sort.Ints(cl.AppliedLevels)
}

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability
func (a *AbilityScores) Get(ability Ability) int {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set stores the score for an ability
func (a *AbilityScores) Set(ability Ability, value int) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}

// CombatStats holds combat numbers tracked on the sheet
type CombatStats struct {
	ArmorClass          int    `json:"armor_class"`
	Speed               int    `json:"speed"`
	HPMax               int    `json:"hp_max"`
	HPCurrent           int    `json:"hp_current"`
	HPTemp              int    `json:"hp_temp"`
	HitDiceTotal        string `json:"hit_dice_total"`
	HitDiceRemaining    string `json:"hit_dice_remaining"`
	DeathSaveSuccesses  int    `json:"death_save_successes"`
	DeathSaveFailures   int    `json:"death_save_failures"`
	InitiativeMiscBonus int    `json:"initiative_misc_bonus"`
}

// Personality holds the free-text roleplay fields
type Personality struct {
	History           string `json:"history"`
	PersonalityTraits string `json:"personality_traits"`
	Ideals            string `json:"ideals"`
	Bonds             string `json:"bonds"`
	Flaws             string `json:"flaws"`
}

// Feature is a named grant on the sheet
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RacialTrait is a named trait granted by race
type RacialTrait struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Equipment holds carried gear and money
type Equipment struct {
	Weapons  []Weapon `json:"weapons"`
	Armor    []Armor  `json:"armor"`
	Items    []Item   `json:"items"`
	Currency Currency `json:"currency"`
}

// Weapon is a wielded weapon entry
type Weapon struct {
	Name        string `json:"name"`
	AttackBonus string `json:"attack_bonus"`
	Damage      string `json:"damage"`
	DamageType  string `json:"damage_type"`
}

// Armor is a worn armor entry
type Armor struct {
	Name       string `json:"name"`
	ArmorClass int    `json:"armor_class"`
	Equipped   bool   `json:"equipped"`
}

// Item is a carried item
type Item struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// Currency holds the five coin denominations
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// String renders the purse as a single line
func (c Currency) String() string {
	return fmt.Sprintf("%d cp, %d sp, %d ep, %d gp, %d pp", c.CP, c.SP, c.EP, c.GP, c.PP)
}

// SpellSlotLevel tracks slots of one spell level
type SpellSlotLevel struct {
	Level int `json:"level"`
	Total int `json:"total"`
	Used  int `json:"used"`
}

// CharacterIndex is the list of stored summaries
type CharacterIndex struct {
	Characters []CharacterSummary `json:"characters"`
}

// CharacterSummary is the list-page view of a character
type CharacterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Level int    `json:"level"`
}

// NewCharacter returns a blank sheet with defaults filled in
func NewCharacter(id string) *Character {
	skills := make(map[Skill]ProficiencyLevel, len(Skills))
	for _, skill := range Skills {
		skills[skill] = ProficiencyNone
	}

	slots := make([]SpellSlotLevel, 0, MaxSpellLevel)
	for level := MinSpellLevel; level <= MaxSpellLevel; level++ {
		slots = append(slots, SpellSlotLevel{Level: level})
	}

	return &Character{
		ID: id,
		Identity: Identity{
			Name:      DefaultCharacterName,
			Alignment: AlignmentTrueNeutral,
		},
		Abilities: AbilityScores{
			Strength:     DefaultAbilityScore,
			Dexterity:    DefaultAbilityScore,
			Constitution: DefaultAbilityScore,
			Intelligence: DefaultAbilityScore,
			Wisdom:       DefaultAbilityScore,
			Charisma:     DefaultAbilityScore,
		},
		SavingThrows: []Ability{},
		Skills:       skills,
		Combat: CombatStats{
			ArmorClass: DefaultArmorClass,
			Speed:      DefaultSpeed,
		},
		Features:      []Feature{},
		FeatureData:   map[string]*FeatureData{},
		SpellSlots:    slots,
		Proficiencies: []Proficiency{},
		Languages:     []string{},
		RacialTraits:  []RacialTrait{},
	}
}

// FindClass returns the class entry with the given name
func (c *Character) FindClass(name string) *ClassLevel {
	for i := range c.Identity.Classes {
		if c.Identity.Classes[i].Class == name {
			return &c.Identity.Classes[i]
		}
	}
	return nil
}

// EnsureClass returns the class entry with the given name, appending one if missing
func (c *Character) EnsureClass(name string) *ClassLevel {
	if cl := c.FindClass(name); cl != nil {
		return cl
	}
	c.Identity.Classes = append(c.Identity.Classes, ClassLevel{
		Class:       name,
		HitDieSides: DefaultHitDieSides,
	})
	return &c.Identity.Classes[len(c.Identity.Classes)-1]
}

// HasFeature reports whether a feature with the given name was granted
func (c *Character) HasFeature(name string) bool {
	return FindFeature(c.Features, name) != nil
}

// HasSavingThrow reports whether the character is proficient in an ability's saving throw
func (c *Character) HasSavingThrow(ability Ability) bool {
	return contains(c.SavingThrows, ability)
}

// HasProficiency reports whether an armor/weapon proficiency is held
func (c *Character) HasProficiency(p Proficiency) bool {
	return contains(c.Proficiencies, p)
}

// AddSavingThrow adds a saving throw proficiency once
func (c *Character) AddSavingThrow(ability Ability) {
	c.SavingThrows = insertUnique(c.SavingThrows, ability)
}

// AddProficiency adds an armor/weapon proficiency once
func (c *Character) AddProficiency(p Proficiency) {
	c.Proficiencies = insertUnique(c.Proficiencies, p)
}

// AddLanguage adds a language once
func (c *Character) AddLanguage(language string) {
	if strings.TrimSpace(language) == "" {
		return
	}
	c.Languages = insertUnique(c.Languages, language)
}

// SkillLevel returns the proficiency level for a skill
func (c *Character) SkillLevel(skill Skill) ProficiencyLevel {
	if level, ok := c.Skills[skill]; ok && level != "" {
		return level
	}
	return ProficiencyNone
}

// GrantSkill raises a skill to proficient without lowering expertise
func (c *Character) GrantSkill(skill Skill) {
	if c.Skills == nil {
		c.Skills = make(map[Skill]ProficiencyLevel)
	}
	if c.SkillLevel(skill) == ProficiencyNone {
		c.Skills[skill] = ProficiencyProficient
	}
}

// ClassSummary renders "Fighter 3 / Wizard 2"
func (c *Character) ClassSummary() string {
	parts := make([]string, 0, len(c.Identity.Classes))
	for _, cl := range c.Identity.Classes {
		if cl.Class == "" {
			continue
		}
		if cl.Subclass != "" {
			parts = append(parts, fmt.Sprintf("%s (%s) %d", cl.Class, cl.Subclass, cl.Level))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", cl.Class, cl.Level))
	}
	return strings.Join(parts, " / ")
}

// Summary returns the index entry for this character
func (c *Character) Summary() CharacterSummary {
	return CharacterSummary{
		ID:    c.ID,
		Name:  c.Identity.Name,
		Class: c.ClassSummary(),
		Level: c.Level(),
	}
}

// FindFeature returns the first feature with the given name
func FindFeature(features []Feature, name string) *Feature {
	for i := range features {
		if features[i].Name == name {
			return &features[i]
		}
	}
	return nil
}

// FindRacialTrait returns the first racial trait with the given name
func FindRacialTrait(traits []RacialTrait, name string) *RacialTrait {
	for i := range traits {
		if traits[i].Name == name {
			return &traits[i]
		}
	}
	return nil
}

func contains[T comparable](values []T, v T) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

func insertUnique[T comparable](values []T, v T) []T {
	if contains(values, v) {
		return values
	}
	return append(values, v)
}
