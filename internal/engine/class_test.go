package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

type ClassLevelTestSuite struct {
	suite.Suite
	character *dnd5e.Character
}

func TestClassLevelSuite(t *testing.T) {
	suite.Run(t, new(ClassLevelTestSuite))
}

func (s *ClassLevelTestSuite) SetupTest() {
	s.character = dnd5e.NewCharacter("char-1")
	s.character.Abilities.Constitution = 14
}

func (s *ClassLevelTestSuite) clone(ch *dnd5e.Character) *dnd5e.Character {
	data, err := json.Marshal(ch)
	s.Require().NoError(err)
	var out dnd5e.Character
	s.Require().NoError(json.Unmarshal(data, &out))
	return &out
}

func (s *ClassLevelTestSuite) TestFirstLevel() {
	applied := engine.ApplyClassLevel(fighterClass(), "", 1, s.character)
	s.Require().True(applied)

	s.Equal(12, s.character.Combat.HPMax)
	s.Equal(12, s.character.Combat.HPCurrent)
	s.Equal("1d10", s.character.Combat.HitDiceTotal)
	s.Equal("1d10", s.character.Combat.HitDiceRemaining)

	cl := s.character.FindClass("Fighter")
	s.Require().NotNil(cl)
	s.Equal(1, cl.Level)
	s.Equal(10, cl.HitDieSides)
	s.Equal([]int{1}, cl.AppliedLevels)
	s.Zero(cl.CasterCoefficient)

	s.Equal([]dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution}, s.character.SavingThrows)
	s.True(s.character.HasProficiency(dnd5e.ProficiencyMartialWeapons))

	s.Require().Len(s.character.Features, 2)
	s.Equal("Second Wind", s.character.Features[0].Name)
	s.Equal("Fighting Style", s.character.Features[1].Name)

	healing := fieldByName(s.character, "Second Wind", "Healing")
	s.Require().NotNil(healing)
	s.Equal(dnd5e.DieValue("1d10"), healing.Value)
	s.Equal("Hit points regained.", healing.Description)

	uses := fieldByName(s.character, "Second Wind", "Uses")
	s.Require().NotNil(uses)
	s.Equal(dnd5e.PointsValue{Used: 0, Max: 1}, uses.Value)

	style := fieldByName(s.character, "Fighting Style", "Style")
	s.Require().NotNil(style)
	s.Len(style.Choices(), 1)
}

func (s *ClassLevelTestSuite) TestReapplyingSameLevelIsNoOp() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	snapshot := s.clone(s.character)

	applied := engine.ApplyClassLevel(fighterClass(), "", 1, s.character)

	s.False(applied)
	s.Equal(snapshot, s.character)
}

func (s *ClassLevelTestSuite) TestMissingLevelRulesIsNoOp() {
	snapshot := s.clone(s.character)

	s.False(engine.ApplyClassLevel(fighterClass(), "", 4, s.character))
	s.False(engine.ApplyClassLevel(fighterClass(), "", 0, s.character))
	s.False(engine.ApplyClassLevel(nil, "", 1, s.character))

	s.Equal(snapshot, s.character)
}

func (s *ClassLevelTestSuite) TestHitPointProgression() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.character.Combat.HPCurrent = 3

	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))

	// d10 averages to 10/2 + 1, plus CON +2
	s.Equal(20, s.character.Combat.HPMax)
	s.Equal(20, s.character.Combat.HPCurrent, "leveling restores current hp to max")
	s.Equal("2d10", s.character.Combat.HitDiceTotal)
}

func (s *ClassLevelTestSuite) TestSecondLevelGrantsAndEscalates() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))

	s.True(s.character.HasFeature("Action Surge"))
	s.Equal([]string{"Battle Cant"}, s.character.Languages)

	bonus := fieldByName(s.character, "Action Surge", "Bonus")
	s.Require().NotNil(bonus)
	s.Equal(dnd5e.BonusValue(1), bonus.Value)

	cl := s.character.FindClass("Fighter")
	s.Equal([]int{1, 2}, cl.AppliedLevels)
	s.Equal(2, cl.Level)
}

func (s *ClassLevelTestSuite) TestOwnedFeaturesEscalateWithoutLosingState() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))

	uses := fieldByName(s.character, "Second Wind", "Uses")
	uses.Value = dnd5e.PointsValue{Used: 1, Max: 1}

	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 3, s.character))

	uses = fieldByName(s.character, "Second Wind", "Uses")
	s.Equal(dnd5e.PointsValue{Used: 1, Max: 2}, uses.Value)

	bonus := fieldByName(s.character, "Action Surge", "Bonus")
	s.Equal(dnd5e.BonusValue(2), bonus.Value)
}

func (s *ClassLevelTestSuite) TestNonStackableRegrantIsSkipped() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))

	style := fieldByName(s.character, "Fighting Style", "Style")
	style.Value = dnd5e.ChoiceValue{Options: []dnd5e.ChoiceOption{{Name: "Defense"}}}
	before := s.clone(s.character)

	// Level 3 names Fighting Style again
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 3, s.character))

	s.Len(s.character.Features, len(before.Features))
	style = fieldByName(s.character, "Fighting Style", "Style")
	s.Equal([]dnd5e.ChoiceOption{{Name: "Defense"}}, style.Choices())
	s.Equal(before.Languages, s.character.Languages)
}

func (s *ClassLevelTestSuite) TestStackableRegrantEscalates() {
	class := fighterClass()
	class.Features[1].Stackable = true

	s.Require().True(engine.ApplyClassLevel(class, "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(class, "", 2, s.character))
	s.Require().True(engine.ApplyClassLevel(class, "", 3, s.character))

	style := fieldByName(s.character, "Fighting Style", "Style")
	s.Len(style.Choices(), 3)
	s.Len(s.character.Features, 3, "stacking never duplicates the feature entry")
}

func (s *ClassLevelTestSuite) TestSubclassFeaturesOnlyOnceChosen() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "Battle Master", 3, s.character))

	s.Equal("Battle Master", s.character.FindClass("Fighter").Subclass)
	s.True(s.character.HasFeature("Maneuvers"))

	known := fieldByName(s.character, "Maneuvers", "Known")
	s.Require().NotNil(known)
	s.Len(known.Choices(), 2)
	s.Equal("Fighter (Battle Master) 3", s.character.ClassSummary())
}

func (s *ClassLevelTestSuite) TestSubclassIgnoredWithoutChoice() {
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 2, s.character))
	s.Require().True(engine.ApplyClassLevel(fighterClass(), "", 3, s.character))

	s.False(s.character.HasFeature("Maneuvers"))
}

func (s *ClassLevelTestSuite) TestSpellcastingProgression() {
	s.character.Abilities.Constitution = 10
	s.character.Abilities.Intelligence = 16
	wizard := wizardClass()

	s.Require().True(engine.ApplyClassLevel(wizard, "", 1, s.character))

	cl := s.character.FindClass("Wizard")
	s.Equal(1.0, cl.CasterCoefficient)
	s.Equal(6, s.character.Combat.HPMax)
	s.Equal(2, s.character.SpellSlot(1).Total)

	spells := s.character.FeatureData["Spellcasting"].Spells
	s.Require().NotNil(spells)
	s.Equal(dnd5e.AbilityIntelligence, spells.CastingAbility)
	cantrips, known := spells.CountNonSticky()
	s.Equal(3, cantrips)
	s.Equal(2, known)
	s.Nil(dnd5e.FindSpell(spells.Spells, "Magic Missile"), "sticky spell waits for its level")

	dc, ok := s.character.SpellSaveDC("Spellcasting")
	s.True(ok)
	s.Equal(13, dc)
	attack, ok := s.character.SpellAttackBonus("Spellcasting")
	s.True(ok)
	s.Equal(5, attack)

	s.Require().True(engine.ApplyClassLevel(wizard, "", 2, s.character))

	spells = s.character.FeatureData["Spellcasting"].Spells
	s.Equal(3, s.character.SpellSlot(1).Total)
	missile := dnd5e.FindSpell(spells.Spells, "Magic Missile")
	s.Require().NotNil(missile)
	s.True(missile.Sticky)
	s.True(missile.Prepared)
	s.Len(spells.Spells, 7)

	s.Require().True(engine.ApplyClassLevel(wizard, "", 3, s.character))

	spells = s.character.FeatureData["Spellcasting"].Spells
	s.Equal(4, s.character.SpellSlot(1).Total)
	s.Equal(2, s.character.SpellSlot(2).Total)
	s.Len(spells.Spells, 8, "sticky spells are never inserted twice")
	s.Equal(2, spells.Spells[len(spells.Spells)-1].Level, "new spells default to the highest available slot level")
	s.Equal(14, s.character.Combat.HPMax)
}

func (s *ClassLevelTestSuite) TestMulticlassCasterLevelAndHitDice() {
	fighter := fighterClass()
	wizard := wizardClass()

	s.Require().True(engine.ApplyClassLevel(fighter, "", 1, s.character))
	s.Require().True(engine.ApplyClassLevel(fighter, "", 2, s.character))
	s.Require().True(engine.ApplyClassLevel(wizard, "", 1, s.character))

	s.Equal(3, s.character.Level())
	s.Equal(1, s.character.CasterLevel())
	s.Equal("2d10 + 1d6", s.character.Combat.HitDiceTotal)
	s.Equal("Fighter 2 / Wizard 1", s.character.ClassSummary())
}
