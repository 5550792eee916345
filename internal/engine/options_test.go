package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

type OptionsTestSuite struct {
	suite.Suite
	features  []*rules.FeatureDefinition
	maneuvers *rules.FeatureDefinition
}

func TestOptionsSuite(t *testing.T) {
	suite.Run(t, new(OptionsTestSuite))
}

func (s *OptionsTestSuite) SetupTest() {
	fighter := fighterClass()
	s.features = nil
	for i := range fighter.Features {
		s.features = append(s.features, &fighter.Features[i])
	}
	s.maneuvers = &fighter.Subclasses[0].Features[0]
	s.features = append(s.features, s.maneuvers)
}

func (s *OptionsTestSuite) TestInline() {
	known := rules.FindField(s.maneuvers.Fields, "Known")

	options := engine.ResolveOptions(known.Options, s.maneuvers, s.features)

	s.Len(options, 2)
	s.Equal("Riposte", options[0].Name)
}

func (s *OptionsTestSuite) TestSiblingReference() {
	favored := rules.FindField(s.maneuvers.Fields, "Favored")

	options := engine.ResolveOptions(favored.Options, s.maneuvers, s.features)

	s.Require().Len(options, 2)
	s.Equal("Trip Attack", options[1].Name)
}

func (s *OptionsTestSuite) TestCrossFeatureReference() {
	echo := rules.FindField(s.maneuvers.Fields, "Style Echo")

	options := engine.ResolveOptions(echo.Options, s.maneuvers, s.features)

	s.Require().Len(options, 2)
	s.Equal("Defense", options[0].Name)
}

func (s *OptionsTestSuite) TestUnresolvableReferences() {
	testCases := []struct {
		name   string
		source *rules.OptionSource
	}{
		{name: "nil source", source: nil},
		{name: "missing feature", source: &rules.OptionSource{Ref: "Nope/Style"}},
		{name: "missing field", source: &rules.OptionSource{Ref: "Fighting Style/Nope"}},
		{name: "field without options", source: &rules.OptionSource{Ref: "Second Wind/Healing"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			options := engine.ResolveOptions(tc.source, s.maneuvers, s.features)
			s.NotNil(options)
			s.Empty(options)
		})
	}
}

func (s *OptionsTestSuite) TestCyclicReferenceTerminates() {
	loop := &rules.FeatureDefinition{
		Name: "Loop",
		Fields: []rules.FieldDefinition{
			{Name: "A", Kind: dnd5e.FieldKindChoice, Options: &rules.OptionSource{Ref: "B"}},
			{Name: "B", Kind: dnd5e.FieldKindChoice, Options: &rules.OptionSource{Ref: "Loop/A"}},
		},
	}

	options := engine.ResolveOptions(loop.Fields[0].Options, loop, []*rules.FeatureDefinition{loop})

	s.Empty(options)
}

func (s *OptionsTestSuite) TestCharacterFeatureDefinitionsOrder() {
	ch := dnd5e.NewCharacter("char-1")
	ch.Identity.Classes = []dnd5e.ClassLevel{{Class: "Fighter", Subclass: "Battle Master", Level: 3}}
	ch.Identity.Race = "Elf"
	ch.Identity.Background = "Soldier"

	catalog := &engine.StaticCatalog{
		Classes:     map[string]*rules.ClassDefinition{"Fighter": fighterClass()},
		Races:       map[string]*rules.RaceDefinition{"Elf": elfRace()},
		Backgrounds: map[string]*rules.BackgroundDefinition{"Soldier": soldierBackground()},
	}

	features := engine.CharacterFeatureDefinitions(ch, catalog)

	names := make([]string, 0, len(features))
	for _, feature := range features {
		names = append(names, feature.Name)
	}
	s.Equal([]string{
		"Second Wind", "Fighting Style", "Action Surge", "Maneuvers",
		"Military Rank", "Elven Tongue",
	}, names)
}
