package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	rulesmock "github.com/KirkDiggler/rpg-sheet/internal/clients/rules/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/repositories/character/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/share"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const testCharID = "char_7"

type ImporterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *charactermock.MockRepository
	mockRules *rulesmock.MockClient
	orch      importer.Service
	ctx       context.Context
	local     *dnd5e.Character
	token     string
}

func TestImporterSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockRules = rulesmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	// Rule documents are unavailable, so only restore can bring text back
	catalog := &engine.StaticCatalog{}
	s.mockRules.EXPECT().Class(gomock.Any()).DoAndReturn(catalog.Class).AnyTimes()
	s.mockRules.EXPECT().Race(gomock.Any()).DoAndReturn(catalog.Race).AnyTimes()
	s.mockRules.EXPECT().Background(gomock.Any()).DoAndReturn(catalog.Background).AnyTimes()
	s.mockRules.EXPECT().SpellList(gomock.Any()).DoAndReturn(catalog.SpellList).AnyTimes()
	s.mockRules.EXPECT().Warm(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	orch, err := importer.NewOrchestrator(&importer.Config{
		CharacterRepo: s.mockRepo,
		RulesClient:   s.mockRules,
	})
	s.Require().NoError(err)
	s.orch = orch

	s.local = testutils.CreateTestCharacter(testCharID)
	s.local.Combat.HPTemp = 5

	shared := testutils.CreateTestCharacter(testCharID)
	shared.Combat.HPCurrent = 7
	stripped, err := share.StripForSharing(shared)
	s.Require().NoError(err)
	s.token, err = share.Encode(stripped)
	s.Require().NoError(err)
}

func (s *ImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImporterTestSuite) expectLocal(ch *dnd5e.Character) {
	if ch == nil {
		s.mockRepo.EXPECT().
			Load(s.ctx, character.LoadInput{ID: testCharID}).
			Return(nil, errors.NotFoundf("character with ID %s not found", testCharID))
		return
	}
	s.mockRepo.EXPECT().
		Load(s.ctx, character.LoadInput{ID: testCharID}).
		Return(&character.LoadOutput{Character: ch}, nil)
}

func (s *ImporterTestSuite) expectSave() *dnd5e.Character {
	saved := &dnd5e.Character{}
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.SaveInput) (*character.SaveOutput, error) {
			*saved = *input.Character
			return &character.SaveOutput{Character: input.Character}, nil
		})
	return saved
}

func (s *ImporterTestSuite) TestNewOrchestratorValidation() {
	_, err := importer.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = importer.NewOrchestrator(&importer.Config{CharacterRepo: s.mockRepo})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ImporterTestSuite) TestImportWithoutLocalCopy() {
	s.expectLocal(nil)
	saved := s.expectSave()

	out, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.Require().NoError(err)

	s.Equal(importer.StateNoLocalCopy, out.State)
	s.Empty(out.Differences)
	s.Equal(7, saved.Combat.HPCurrent)
	s.Empty(saved.Features[0].Description, "no local copy and no documents leaves text blank")
}

func (s *ImporterTestSuite) TestImportOverOlderLocalCopy() {
	s.local.UpdatedAt = testutils.TestUpdatedAt - 1
	s.expectLocal(s.local)
	saved := s.expectSave()

	out, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.Require().NoError(err)

	s.Equal(importer.StateLocalOlder, out.State)
	s.Equal(7, saved.Combat.HPCurrent, "imported values win")
	s.Equal(5, saved.Combat.HPTemp, "stripped values come from the local copy")
	s.Equal("Regain hit points as a bonus action.", saved.Features[0].Description)
	s.Equal("See in dim light within 60 feet.", saved.RacialTraits[0].Description)
	s.Equal("Dice rolled when used.", saved.FeatureData["Second Wind"].Fields[0].Description)
	s.Equal(testutils.TestUpdatedAt, saved.UpdatedAt, "the import keeps its own timestamp")
}

func (s *ImporterTestSuite) TestImportWithEqualTimestamps() {
	s.expectLocal(s.local)
	s.expectSave()

	out, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.Require().NoError(err)
	s.Equal(importer.StateLocalOlder, out.State)
}

func (s *ImporterTestSuite) TestImportBehindNewerLocalCopy() {
	s.local.UpdatedAt = testutils.TestUpdatedAt + 1
	s.expectLocal(s.local)

	out, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.Require().NoError(err)

	s.Equal(importer.StateLocalNewer, out.State)
	s.Contains(out.Differences, diff.Row{
		Section:  diff.SectionCombat,
		Label:    "HP Current",
		Local:    "12",
		Imported: "7",
	})
}

func (s *ImporterTestSuite) TestConfirmOverwritesNewerLocalCopy() {
	s.local.UpdatedAt = testutils.TestUpdatedAt + 1
	s.expectLocal(s.local)
	saved := s.expectSave()

	out, err := s.orch.Confirm(s.ctx, &importer.ConfirmInput{Token: s.token})
	s.Require().NoError(err)

	s.Equal(7, out.Character.Combat.HPCurrent)
	s.Equal(5, saved.Combat.HPTemp)
	s.Equal("Regain hit points as a bonus action.", saved.Features[0].Description)
}

func (s *ImporterTestSuite) TestConfirmWithoutLocalCopy() {
	s.expectLocal(nil)
	s.expectSave()

	_, err := s.orch.Confirm(s.ctx, &importer.ConfirmInput{Token: s.token})
	s.Require().NoError(err)
}

func (s *ImporterTestSuite) TestBadToken() {
	_, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: "not a token"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.Confirm(s.ctx, &importer.ConfirmInput{Token: ""})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ImporterTestSuite) TestStorageFailure() {
	s.mockRepo.EXPECT().
		Load(s.ctx, character.LoadInput{ID: testCharID}).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.True(errors.IsInternal(err))
}

func (s *ImporterTestSuite) TestFillsFromRulesWhenNoLocalCopy() {
	catalog := &engine.StaticCatalog{
		Classes: map[string]*rules.ClassDefinition{"Fighter": testutils.CreateTestFighterClass()},
	}
	ctrl := gomock.NewController(s.T())
	mockRules := rulesmock.NewMockClient(ctrl)
	mockRules.EXPECT().Class(gomock.Any()).DoAndReturn(catalog.Class).AnyTimes()
	mockRules.EXPECT().Race(gomock.Any()).DoAndReturn(catalog.Race).AnyTimes()
	mockRules.EXPECT().Background(gomock.Any()).DoAndReturn(catalog.Background).AnyTimes()
	mockRules.EXPECT().SpellList(gomock.Any()).DoAndReturn(catalog.SpellList).AnyTimes()
	mockRules.EXPECT().Warm(s.ctx, gomock.Any()).Return(nil)

	orch, err := importer.NewOrchestrator(&importer.Config{CharacterRepo: s.mockRepo, RulesClient: mockRules})
	s.Require().NoError(err)

	s.expectLocal(nil)
	saved := s.expectSave()

	_, err = orch.Import(s.ctx, &importer.ImportInput{Token: s.token})
	s.Require().NoError(err)
	s.Equal("Regain hit points as a bonus action.", saved.Features[0].Description)
}
