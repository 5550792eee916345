package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

type DiffTestSuite struct {
	suite.Suite
	local    *dnd5e.Character
	imported *dnd5e.Character
}

func TestDiffSuite(t *testing.T) {
	suite.Run(t, new(DiffTestSuite))
}

func buildCharacter() *dnd5e.Character {
	ch := dnd5e.NewCharacter("char-1")
	ch.Identity.Name = "Vex"
	ch.Identity.Race = "Elf"
	ch.Identity.Classes = []dnd5e.ClassLevel{{Class: "Wizard", Level: 3, HitDieSides: 6, CasterCoefficient: 1}}
	ch.Abilities.Intelligence = 16
	ch.AddSavingThrow(dnd5e.AbilityIntelligence)
	ch.Skills[dnd5e.SkillArcana] = dnd5e.ProficiencyProficient
	ch.Features = []dnd5e.Feature{{Name: "Spellcasting"}, {Name: "Arcane Recovery"}}
	ch.Equipment.Weapons = []dnd5e.Weapon{{Name: "Quarterstaff"}}
	ch.Equipment.Currency = dnd5e.Currency{GP: 10}
	ch.FeatureData["Spellcasting"] = &dnd5e.FeatureData{
		Spells: &dnd5e.SpellData{
			CastingAbility: dnd5e.AbilityIntelligence,
			Spells:         []dnd5e.Spell{{Name: "Fire Bolt"}, {Name: "Shield", Level: 1}},
		},
	}
	ch.SpellSlot(1).Total = 4
	ch.SpellSlot(2).Total = 2
	ch.Languages = []string{"Common", "Elvish"}
	ch.Personality.History = "Raised in a library."
	ch.RacialTraits = []dnd5e.RacialTrait{{Name: "Darkvision"}}
	ch.Notes = "Owes the guild 50gp."
	return ch
}

func (s *DiffTestSuite) SetupTest() {
	s.local = buildCharacter()
	s.imported = buildCharacter()
}

func (s *DiffTestSuite) TestIdenticalSnapshots() {
	s.Empty(diff.Compare(s.local, s.local))
	s.Empty(diff.Compare(s.local, s.imported))
	s.Empty(diff.Sections(nil))
}

func (s *DiffTestSuite) TestStrippedFieldsIgnored() {
	s.imported.Combat.DeathSaveFailures = 2
	s.imported.Combat.DeathSaveSuccesses = 1
	s.imported.Combat.HPTemp = 7

	s.Empty(diff.Compare(s.local, s.imported))
}

func (s *DiffTestSuite) TestSectionOrder() {
	s.imported.Notes = "Paid off the guild."
	s.imported.Identity.Name = "Vex the Wise"
	s.imported.Abilities.Intelligence = 18
	s.imported.Combat.HPMax = 20

	rows := diff.Compare(s.local, s.imported)

	s.Require().Len(rows, 4)
	s.Equal(diff.SectionIdentity, rows[0].Section)
	s.Equal(diff.SectionAbilities, rows[1].Section)
	s.Equal(diff.SectionCombat, rows[2].Section)
	s.Equal(diff.SectionNotes, rows[3].Section)

	s.Equal(diff.Row{Section: diff.SectionIdentity, Label: "Name", Local: "Vex", Imported: "Vex the Wise"}, rows[0])
	s.Equal("16", rows[1].Local)
	s.Equal("18", rows[1].Imported)
}

func (s *DiffTestSuite) TestGlyphs() {
	s.imported.SavingThrows = nil
	s.imported.Skills[dnd5e.SkillArcana] = dnd5e.ProficiencyExpertise

	rows := diff.Compare(s.local, s.imported)

	s.Require().Len(rows, 2)
	s.Equal(diff.SectionSavingThrows, rows[0].Section)
	s.Equal("●", rows[0].Local)
	s.Equal("○", rows[0].Imported)
	s.Equal(diff.SectionSkills, rows[1].Section)
	s.Equal("●", rows[1].Local)
	s.Equal("◉", rows[1].Imported)
}

func (s *DiffTestSuite) TestCollectionSummaries() {
	s.imported.Features = append(s.imported.Features, dnd5e.Feature{Name: "Sculpt Spells"})
	s.imported.Equipment.Currency.GP = 25

	rows := diff.Compare(s.local, s.imported)

	s.Require().Len(rows, 2)
	s.Equal("2: Spellcasting, Arcane Recovery", rows[0].Local)
	s.Equal("3: Spellcasting, Arcane Recovery, Sculpt Spells", rows[0].Imported)
	s.Equal("Currency", rows[1].Label)
	s.Equal("0 cp, 0 sp, 0 ep, 10 gp, 0 pp", rows[1].Local)
}

func (s *DiffTestSuite) TestFeatureDescriptionsNotCompared() {
	s.imported.Features[0].Description = "Cast wizard spells."

	s.Empty(diff.Compare(s.local, s.imported))
}

func (s *DiffTestSuite) TestSpellcasting() {
	s.imported.SpellSlot(2).Total = 3
	s.imported.FeatureData["Spellcasting"].Spells.Spells = append(
		s.imported.FeatureData["Spellcasting"].Spells.Spells, dnd5e.Spell{Level: 2})
	s.imported.FeatureData["Pact Magic"] = &dnd5e.FeatureData{
		Spells: &dnd5e.SpellData{CastingAbility: dnd5e.AbilityCharisma},
	}

	rows := diff.Compare(s.local, s.imported)

	s.Require().Len(rows, 3)
	s.Equal(diff.Row{
		Section: diff.SectionSpellcasting, Label: "Spell Slots",
		Local: "1: 4, 2: 2", Imported: "1: 4, 2: 3",
	}, rows[0])
	s.Equal(diff.Row{
		Section: diff.SectionSpellcasting, Label: "Pact Magic",
		Local: diff.Placeholder, Imported: diff.EnableSpellcasting,
	}, rows[1])
	s.Equal("Spellcasting Spells", rows[2].Label)
	s.Equal("3: Fire Bolt, Shield, —", rows[2].Imported)
}

func (s *DiffTestSuite) TestTruncation() {
	long := strings.Repeat("a", 60)
	s.imported.Personality.History = long
	s.imported.Notes = strings.Repeat("é", 50)

	rows := diff.Compare(s.local, s.imported)

	s.Require().Len(rows, 2)
	s.Equal(strings.Repeat("a", 50)+"…", rows[0].Imported)
	s.Equal(strings.Repeat("é", 50), rows[1].Imported, "exactly fifty characters are kept whole")
}

func (s *DiffTestSuite) TestTruncatedTextsThatOnlyDifferPastTheCutAreEqual() {
	s.local.Notes = strings.Repeat("b", 50) + "one"
	s.imported.Notes = strings.Repeat("b", 50) + "two"

	s.Empty(diff.Compare(s.local, s.imported))
}

func (s *DiffTestSuite) TestSymmetry() {
	s.imported.Identity.Name = "Other"
	s.imported.Abilities.Strength = 8
	s.imported.Skills[dnd5e.SkillStealth] = dnd5e.ProficiencyProficient
	s.imported.Languages = []string{"Common"}
	delete(s.imported.FeatureData, "Spellcasting")
	s.imported.RacialTraits = nil

	forward := diff.Compare(s.local, s.imported)
	backward := diff.Compare(s.imported, s.local)

	s.Require().Len(backward, len(forward))
	for i := range forward {
		s.Equal(forward[i].Section, backward[i].Section)
		s.Equal(forward[i].Label, backward[i].Label)
		s.Equal(forward[i].Local, backward[i].Imported)
		s.Equal(forward[i].Imported, backward[i].Local)
	}
}

func (s *DiffTestSuite) TestSectionsGrouping() {
	s.imported.Identity.Name = "Other"
	s.imported.Identity.Race = "Human"
	s.imported.Notes = ""

	groups := diff.Sections(diff.Compare(s.local, s.imported))

	s.Require().Len(groups, 2)
	s.Equal(diff.SectionIdentity, groups[0].Section)
	s.Len(groups[0].Rows, 2)
	s.Equal(diff.SectionNotes, groups[1].Section)
	s.Equal("Notes", groups[1].Section.Title())
}

func (s *DiffTestSuite) TestNilSnapshots() {
	s.Nil(diff.Compare(nil, s.imported))
	s.Nil(diff.Compare(s.local, nil))
}
