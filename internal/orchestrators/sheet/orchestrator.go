// Package sheet implements the character sheet use cases over the engine,
// the character repository and the rule-document client
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	rulesclient "github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/share"
)

// Service defines the character sheet operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Rule application
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	ApplyRace(ctx context.Context, input *ApplyRaceInput) (*ApplyRaceOutput, error)
	ApplyBackground(ctx context.Context, input *ApplyBackgroundInput) (*ApplyBackgroundOutput, error)
	FillDescriptions(ctx context.Context, input *FillDescriptionsInput) (*FillDescriptionsOutput, error)

	// Play-time edits
	UpdateFieldValue(ctx context.Context, input *UpdateFieldValueInput) (*UpdateFieldValueOutput, error)
	SelectChoiceOption(ctx context.Context, input *SelectChoiceOptionInput) (*SelectChoiceOptionOutput, error)
	SpendHitDie(ctx context.Context, input *SpendHitDieInput) (*SpendHitDieOutput, error)
	LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error)

	ShareCharacter(ctx context.Context, input *ShareCharacterInput) (*ShareCharacterOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	CharacterRepo character.Repository
	RulesClient   rulesclient.Client
	IDGenerator   idgen.Generator
	// Clock stamps UpdatedAt; defaults to the system clock
	Clock clock.Clock
	// DiceRoller rolls hit dice; defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RulesClient == nil {
		vb.RequiredField("RulesClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	rules         rulesclient.Client
	idGen         idgen.Generator
	clock         clock.Clock
	roller        dice.Roller
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		rules:         cfg.RulesClient,
		idGen:         cfg.IDGenerator,
		clock:         c,
		roller:        roller,
	}, nil
}

func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch := dnd5e.NewCharacter(o.idGen.Generate())
	if name := strings.TrimSpace(input.Name); name != "" {
		ch.Identity.Name = name
	}
	engine.RecalculateHitDice(ch)

	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created character",
		"character_id", ch.ID,
		"name", ch.Identity.Name)

	return &CreateCharacterOutput{Character: ch}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: ch}, nil
}

func (o *orchestrator) ListCharacters(
	ctx context.Context,
	_ *ListCharactersInput,
) (*ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, character.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, character.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	slog.InfoContext(ctx, "deleted character", "character_id", input.CharacterID)
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	errors.ValidateRequired("ClassName", input.ClassName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	def, err := o.classDocument(ctx, input.ClassName)
	if err != nil {
		return nil, err
	}

	subclass := input.Subclass
	targetLevel := 1
	if cl := ch.FindClass(def.Name); cl != nil {
		targetLevel = cl.Level + 1
		if subclass == "" {
			subclass = cl.Subclass
		}
	}
	if subclass != "" && def.Subclass(subclass) == nil {
		return nil, errors.NotFoundf("class %s has no subclass %s", def.Name, subclass)
	}

	applied := engine.ApplyClassLevel(def, subclass, targetLevel, ch)
	if !applied {
		slog.InfoContext(ctx, "no rules to apply for class level",
			"character_id", ch.ID,
			"class", def.Name,
			"level", targetLevel)
		current := 0
		if cl := ch.FindClass(def.Name); cl != nil {
			current = cl.Level
		}
		return &LevelUpOutput{Character: ch, ClassLevel: current}, nil
	}

	o.fill(ctx, ch)
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "applied class level",
		"character_id", ch.ID,
		"class", def.Name,
		"subclass", subclass,
		"level", targetLevel,
		"hp_max", ch.Combat.HPMax)

	return &LevelUpOutput{Character: ch, ClassLevel: targetLevel, Applied: true}, nil
}

func (o *orchestrator) ApplyRace(ctx context.Context, input *ApplyRaceInput) (*ApplyRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	errors.ValidateRequired("Race", input.Race, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if ch.Identity.RaceApplied {
		return nil, errors.FailedPreconditionf("race %s is already applied", ch.Identity.Race).
			WithMeta("character_id", ch.ID)
	}

	if err := o.loadDocument(ctx, rules.KindRace, input.Race); err != nil {
		return nil, err
	}
	def, ok := o.rules.Race(input.Race)
	if !ok {
		return nil, errors.Unavailablef("race %s is not loaded", input.Race)
	}

	engine.ApplyRace(def, ch)
	o.fill(ctx, ch)
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "applied race", "character_id", ch.ID, "race", def.Name)
	return &ApplyRaceOutput{Character: ch}, nil
}

func (o *orchestrator) ApplyBackground(
	ctx context.Context,
	input *ApplyBackgroundInput,
) (*ApplyBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("CharacterID", input.CharacterID, vb)
	errors.ValidateRequired("Background", input.Background, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if ch.Identity.BackgroundApplied {
		return nil, errors.FailedPreconditionf("background %s is already applied", ch.Identity.Background).
			WithMeta("character_id", ch.ID)
	}

	if err := o.loadDocument(ctx, rules.KindBackground, input.Background); err != nil {
		return nil, err
	}
	def, ok := o.rules.Background(input.Background)
	if !ok {
		return nil, errors.Unavailablef("background %s is not loaded", input.Background)
	}

	engine.ApplyBackground(def, ch)
	o.fill(ctx, ch)
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "applied background", "character_id", ch.ID, "background", def.Name)
	return &ApplyBackgroundOutput{Character: ch}, nil
}

func (o *orchestrator) FillDescriptions(
	ctx context.Context,
	input *FillDescriptionsInput,
) (*FillDescriptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	filled := o.fill(ctx, ch)
	if filled > 0 {
		if err := o.save(ctx, ch); err != nil {
			return nil, err
		}
	}

	return &FillDescriptionsOutput{Character: ch, Filled: filled}, nil
}

func (o *orchestrator) UpdateFieldValue(
	ctx context.Context,
	input *UpdateFieldValueInput,
) (*UpdateFieldValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := engine.SetFieldValue(ch, input.FeatureKey, input.FieldName, input.Value); err != nil {
		return nil, err
	}
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	return &UpdateFieldValueOutput{Character: ch}, nil
}

func (o *orchestrator) SelectChoiceOption(
	ctx context.Context,
	input *SelectChoiceOptionInput,
) (*SelectChoiceOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	err = engine.SelectChoiceOption(ch, input.FeatureKey, input.FieldName, input.Index, input.Option)
	if err != nil {
		return nil, err
	}
	o.fill(ctx, ch)
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	return &SelectChoiceOptionOutput{Character: ch}, nil
}

func (o *orchestrator) SpendHitDie(ctx context.Context, input *SpendHitDieInput) (*SpendHitDieOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	roll, err := engine.SpendHitDie(ch, input.ClassName, o.roller)
	if err != nil {
		return nil, err
	}
	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "spent hit die",
		"character_id", ch.ID,
		"class", input.ClassName,
		"rolled", roll.Rolled,
		"healed", roll.Healed)

	return &SpendHitDieOutput{Character: ch, Roll: roll}, nil
}

func (o *orchestrator) LongRest(ctx context.Context, input *LongRestInput) (*LongRestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	healed := ch.Combat.HPMax - ch.Combat.HPCurrent
	if healed < 0 {
		healed = 0
	}
	ch.Combat.HPCurrent = ch.Combat.HPMax
	ch.Combat.HPTemp = 0
	ch.Combat.DeathSaveSuccesses = 0
	ch.Combat.DeathSaveFailures = 0
	restored := engine.RestoreHitDice(ch)

	if err := o.save(ctx, ch); err != nil {
		return nil, err
	}

	return &LongRestOutput{Character: ch, HitDiceRestored: restored, HitPointsRestored: healed}, nil
}

func (o *orchestrator) ShareCharacter(
	ctx context.Context,
	input *ShareCharacterInput,
) (*ShareCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	stripped, err := share.StripForSharing(ch)
	if err != nil {
		return nil, err
	}
	token, err := share.Encode(stripped)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "encoded share token", "character_id", ch.ID, "length", len(token))
	return &ShareCharacterOutput{Token: token}, nil
}

func (o *orchestrator) load(ctx context.Context, id string) (*dnd5e.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Load(ctx, character.LoadInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", id)
	}
	return out.Character, nil
}

func (o *orchestrator) save(ctx context.Context, ch *dnd5e.Character) error {
	ch.UpdatedAt = o.clock.Now().UnixMilli()
	if _, err := o.characterRepo.Save(ctx, character.SaveInput{Character: ch}); err != nil {
		return errors.Wrapf(err, "failed to save character %s", ch.ID)
	}
	return nil
}

// loadDocument blocks on a rule document; transport failures surface as Unavailable
func (o *orchestrator) loadDocument(ctx context.Context, kind rules.Kind, name string) error {
	err := o.rules.Load(ctx, kind, name)
	switch {
	case err == nil:
		return nil
	case errors.IsNotFound(err), errors.IsInvalidArgument(err), errors.IsCanceled(err),
		errors.IsDeadlineExceeded(err):
		return err
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, "rule document unavailable").
			WithMeta("kind", string(kind)).
			WithMeta("name", name)
	}
}

func (o *orchestrator) classDocument(ctx context.Context, name string) (*rules.ClassDefinition, error) {
	if err := o.loadDocument(ctx, rules.KindClass, name); err != nil {
		return nil, err
	}
	def, ok := o.rules.Class(name)
	if !ok {
		return nil, errors.Unavailablef("class %s is not loaded", name)
	}
	return def, nil
}

// fill warms every referenced document and runs the description pass.
// Warm failures are logged by the client; missing documents leave blanks for a later pass.
func (o *orchestrator) fill(ctx context.Context, ch *dnd5e.Character) int {
	if err := o.rules.Warm(ctx, ch); err != nil {
		slog.WarnContext(ctx, "failed to warm rule documents", "character_id", ch.ID, "error", err)
	}
	filled := engine.FillDescriptions(ch, o.rules)
	if filled > 0 {
		slog.DebugContext(ctx, "filled descriptions", "character_id", ch.ID, "count", filled)
	}
	return filled
}
