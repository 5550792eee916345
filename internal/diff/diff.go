// Package diff compares two snapshots of the same character field by field
package diff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Section groups related rows
type Section string

// Sections in the order they are emitted
const (
	SectionIdentity      Section = "identity"
	SectionAbilities     Section = "abilities"
	SectionCombat        Section = "combat"
	SectionSavingThrows  Section = "saving_throws"
	SectionSkills        Section = "skills"
	SectionFeatures      Section = "features"
	SectionEquipment     Section = "equipment"
	SectionSpellcasting  Section = "spellcasting"
	SectionProficiencies Section = "proficiencies"
	SectionPersonality   Section = "personality"
	SectionRacialTraits  Section = "racial_traits"
	SectionNotes         Section = "notes"
)

// Title returns a display heading for the section
func (s Section) Title() string {
	switch s {
	case SectionIdentity:
		return "Identity"
	case SectionAbilities:
		return "Ability Scores"
	case SectionCombat:
		return "Combat"
	case SectionSavingThrows:
		return "Saving Throws"
	case SectionSkills:
		return "Skills"
	case SectionFeatures:
		return "Features"
	case SectionEquipment:
		return "Equipment"
	case SectionSpellcasting:
		return "Spellcasting"
	case SectionProficiencies:
		return "Proficiencies & Languages"
	case SectionPersonality:
		return "Personality"
	case SectionRacialTraits:
		return "Racial Traits"
	case SectionNotes:
		return "Notes"
	default:
		return string(s)
	}
}

// Text rendering constants
const (
	MaxTextLength      = 50
	Ellipsis           = "…"
	EnableSpellcasting = "enable spellcasting"
	Placeholder        = "—"
)

// Row is one differing field
type Row struct {
	Section  Section `json:"section"`
	Label    string  `json:"label"`
	Local    string  `json:"local"`
	Imported string  `json:"imported"`
}

// Group is the rows of one section
type Group struct {
	Section Section `json:"section"`
	Rows    []Row   `json:"rows"`
}

// Compare returns every rendered field that differs between local and imported.
// Death saves and temporary hit points are never compared since shared snapshots do not carry them.
// An empty result means the snapshots are equivalent.
func Compare(local, imported *dnd5e.Character) []Row {
	if local == nil || imported == nil {
		return nil
	}

	c := &comparer{}
	c.identity(local, imported)
	c.abilities(local, imported)
	c.combat(local, imported)
	c.savingThrows(local, imported)
	c.skills(local, imported)
	c.features(local, imported)
	c.equipment(local, imported)
	c.spellcasting(local, imported)
	c.proficiencies(local, imported)
	c.personality(local, imported)
	c.racialTraits(local, imported)
	c.notes(local, imported)
	return c.rows
}

// Sections groups rows by section, keeping emission order and omitting empty sections
func Sections(rows []Row) []Group {
	var groups []Group
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].Section != row.Section {
			groups = append(groups, Group{Section: row.Section})
		}
		last := &groups[len(groups)-1]
		last.Rows = append(last.Rows, row)
	}
	return groups
}

type comparer struct {
	rows []Row
}

func (c *comparer) add(section Section, label, local, imported string) {
	if local == imported {
		return
	}
	c.rows = append(c.rows, Row{
		Section:  section,
		Label:    label,
		Local:    local,
		Imported: imported,
	})
}

func (c *comparer) identity(local, imported *dnd5e.Character) {
	c.add(SectionIdentity, "Name", local.Identity.Name, imported.Identity.Name)
	c.add(SectionIdentity, "Class", local.ClassSummary(), imported.ClassSummary())
	c.add(SectionIdentity, "Race", local.Identity.Race, imported.Identity.Race)
	c.add(SectionIdentity, "Background", local.Identity.Background, imported.Identity.Background)
	c.add(SectionIdentity, "Alignment",
		local.Identity.Alignment.DisplayName(), imported.Identity.Alignment.DisplayName())
	c.add(SectionIdentity, "Experience Points",
		strconv.Itoa(local.Identity.ExperiencePoints), strconv.Itoa(imported.Identity.ExperiencePoints))
}

func (c *comparer) abilities(local, imported *dnd5e.Character) {
	for _, ability := range dnd5e.Abilities {
		c.add(SectionAbilities, ability.DisplayName(),
			strconv.Itoa(local.Abilities.Get(ability)), strconv.Itoa(imported.Abilities.Get(ability)))
	}
}

func (c *comparer) combat(local, imported *dnd5e.Character) {
	l, i := local.Combat, imported.Combat
	c.add(SectionCombat, "Armor Class", strconv.Itoa(l.ArmorClass), strconv.Itoa(i.ArmorClass))
	c.add(SectionCombat, "Speed", strconv.Itoa(l.Speed), strconv.Itoa(i.Speed))
	c.add(SectionCombat, "HP Max", strconv.Itoa(l.HPMax), strconv.Itoa(i.HPMax))
	c.add(SectionCombat, "HP Current", strconv.Itoa(l.HPCurrent), strconv.Itoa(i.HPCurrent))
	c.add(SectionCombat, "Hit Dice", l.HitDiceTotal, i.HitDiceTotal)
	c.add(SectionCombat, "Hit Dice Remaining", l.HitDiceRemaining, i.HitDiceRemaining)
	c.add(SectionCombat, "Initiative Bonus",
		strconv.Itoa(l.InitiativeMiscBonus), strconv.Itoa(i.InitiativeMiscBonus))
}

func (c *comparer) savingThrows(local, imported *dnd5e.Character) {
	for _, ability := range dnd5e.Abilities {
		c.add(SectionSavingThrows, ability.DisplayName(), saveGlyph(local, ability), saveGlyph(imported, ability))
	}
}

func saveGlyph(ch *dnd5e.Character, ability dnd5e.Ability) string {
	if ch.HasSavingThrow(ability) {
		return dnd5e.ProficiencyProficient.Glyph()
	}
	return dnd5e.ProficiencyNone.Glyph()
}

func (c *comparer) skills(local, imported *dnd5e.Character) {
	for _, skill := range dnd5e.Skills {
		c.add(SectionSkills, skill.DisplayName(), local.SkillLevel(skill).Glyph(), imported.SkillLevel(skill).Glyph())
	}
}

func (c *comparer) features(local, imported *dnd5e.Character) {
	c.add(SectionFeatures, "Features",
		summarize(local.Features, featureName), summarize(imported.Features, featureName))
}

func (c *comparer) equipment(local, imported *dnd5e.Character) {
	l, i := local.Equipment, imported.Equipment
	c.add(SectionEquipment, "Weapons", summarize(l.Weapons, weaponName), summarize(i.Weapons, weaponName))
	c.add(SectionEquipment, "Armor", summarize(l.Armor, armorName), summarize(i.Armor, armorName))
	c.add(SectionEquipment, "Items", summarize(l.Items, itemName), summarize(i.Items, itemName))
	c.add(SectionEquipment, "Currency", l.Currency.String(), i.Currency.String())
}

func (c *comparer) spellcasting(local, imported *dnd5e.Character) {
	c.add(SectionSpellcasting, "Spell Slots", slotSummary(local), slotSummary(imported))

	keys := spellcastingKeys(local, imported)
	for _, key := range keys {
		l := spellData(local, key)
		i := spellData(imported, key)

		switch {
		case l != nil && i == nil:
			c.add(SectionSpellcasting, key, EnableSpellcasting, Placeholder)
		case l == nil && i != nil:
			c.add(SectionSpellcasting, key, Placeholder, EnableSpellcasting)
		default:
			c.add(SectionSpellcasting, key+" Casting Ability",
				l.CastingAbility.DisplayName(), i.CastingAbility.DisplayName())
			c.add(SectionSpellcasting, key+" Spells",
				summarize(l.Spells, spellName), summarize(i.Spells, spellName))
		}
	}
}

func spellData(ch *dnd5e.Character, key string) *dnd5e.SpellData {
	data, ok := ch.FeatureData[key]
	if !ok || data == nil {
		return nil
	}
	return data.Spells
}

// spellcastingKeys is the sorted union of spellcasting feature keys on both sides
func spellcastingKeys(local, imported *dnd5e.Character) []string {
	seen := make(map[string]struct{})
	for _, ch := range []*dnd5e.Character{local, imported} {
		for key, data := range ch.FeatureData {
			if data != nil && data.Spells != nil {
				seen[key] = struct{}{}
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func slotSummary(ch *dnd5e.Character) string {
	parts := make([]string, 0, len(ch.SpellSlots))
	for _, slot := range ch.SpellSlots {
		if slot.Total > 0 {
			parts = append(parts, fmt.Sprintf("%d: %d", slot.Level, slot.Total))
		}
	}
	return strings.Join(parts, ", ")
}

func (c *comparer) proficiencies(local, imported *dnd5e.Character) {
	c.add(SectionProficiencies, "Proficiencies",
		summarize(local.Proficiencies, proficiencyName), summarize(imported.Proficiencies, proficiencyName))
	c.add(SectionProficiencies, "Languages",
		summarize(local.Languages, languageName), summarize(imported.Languages, languageName))
}

func (c *comparer) personality(local, imported *dnd5e.Character) {
	l, i := local.Personality, imported.Personality
	c.add(SectionPersonality, "History", Truncate(l.History), Truncate(i.History))
	c.add(SectionPersonality, "Personality Traits", Truncate(l.PersonalityTraits), Truncate(i.PersonalityTraits))
	c.add(SectionPersonality, "Ideals", Truncate(l.Ideals), Truncate(i.Ideals))
	c.add(SectionPersonality, "Bonds", Truncate(l.Bonds), Truncate(i.Bonds))
	c.add(SectionPersonality, "Flaws", Truncate(l.Flaws), Truncate(i.Flaws))
}

func (c *comparer) racialTraits(local, imported *dnd5e.Character) {
	c.add(SectionRacialTraits, "Racial Traits",
		summarize(local.RacialTraits, traitName), summarize(imported.RacialTraits, traitName))
}

func (c *comparer) notes(local, imported *dnd5e.Character) {
	c.add(SectionNotes, "Notes", Truncate(local.Notes), Truncate(imported.Notes))
}

// Truncate shortens text to MaxTextLength characters, marking the cut with an ellipsis
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxTextLength {
		return text
	}
	return string(runes[:MaxTextLength]) + Ellipsis
}

// summarize renders "count: name, name" for a named collection
func summarize[T any](items []T, name func(T) string) string {
	if len(items) == 0 {
		return "0"
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, name(item))
	}
	return fmt.Sprintf("%d: %s", len(items), strings.Join(names, ", "))
}

func featureName(f dnd5e.Feature) string { return f.Name }
func weaponName(w dnd5e.Weapon) string { return w.Name }
func armorName(a dnd5e.Armor) string { return a.Name }
func itemName(i dnd5e.Item) string { return i.Name }
func spellName(s dnd5e.Spell) string {
	if s.Name == "" {
		return Placeholder
	}
	return s.Name
}
func traitName(t dnd5e.RacialTrait) string { return t.Name }
func languageName(l string) string { return l }
func proficiencyName(p dnd5e.Proficiency) string { return p.DisplayName() }
