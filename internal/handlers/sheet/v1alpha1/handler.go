package v1alpha1

import (
	"context"

	rulesclient "github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService  sheet.Service
	ImportService importer.Service
	RulesClient   rulesclient.Client
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.ImportService == nil {
		vb.RequiredField("ImportService")
	}
	if c.RulesClient == nil {
		vb.RequiredField("RulesClient")
	}
	return vb.Build()
}

// Handler implements SheetServiceServer on top of the orchestrators
type Handler struct {
	sheetService  sheet.Service
	importService importer.Service
	rulesClient   rulesclient.Client
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService:  cfg.SheetService,
		importService: cfg.ImportService,
		rulesClient:   cfg.RulesClient,
	}, nil
}

func requireCharacterID(id string) error {
	if id == "" {
		return errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}
	return nil
}

// CreateCharacter creates an empty character sheet
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *CreateCharacterRequest,
) (*CharacterResponse, error) {
	out, err := h.sheetService.CreateCharacter(ctx, &sheet.CreateCharacterInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// GetCharacter returns one stored character
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *GetCharacterRequest,
) (*CharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}

	out, err := h.sheetService.GetCharacter(ctx, &sheet.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// ListCharacters returns summaries of every stored character
func (h *Handler) ListCharacters(
	ctx context.Context,
	_ *ListCharactersRequest,
) (*ListCharactersResponse, error) {
	out, err := h.sheetService.ListCharacters(ctx, &sheet.ListCharactersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ListCharactersResponse{Characters: out.Characters}, nil
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *DeleteCharacterRequest,
) (*DeleteCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}

	if _, err := h.sheetService.DeleteCharacter(ctx, &sheet.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteCharacterResponse{}, nil
}

// LevelUp gains one level in a class
func (h *Handler) LevelUp(
	ctx context.Context,
	req *LevelUpRequest,
) (*LevelUpResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.ClassName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("class_name is required"))
	}

	out, err := h.sheetService.LevelUp(ctx, &sheet.LevelUpInput{
		CharacterID: req.CharacterID,
		ClassName:   req.ClassName,
		Subclass:    req.Subclass,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LevelUpResponse{
		Character:  out.Character,
		ClassLevel: out.ClassLevel,
		Applied:    out.Applied,
	}, nil
}

// ApplyRace applies a race document to the character
func (h *Handler) ApplyRace(
	ctx context.Context,
	req *ApplyRaceRequest,
) (*CharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.Race == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("race is required"))
	}

	out, err := h.sheetService.ApplyRace(ctx, &sheet.ApplyRaceInput{
		CharacterID: req.CharacterID,
		Race:        req.Race,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// ApplyBackground applies a background document to the character
func (h *Handler) ApplyBackground(
	ctx context.Context,
	req *ApplyBackgroundRequest,
) (*CharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.Background == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("background is required"))
	}

	out, err := h.sheetService.ApplyBackground(ctx, &sheet.ApplyBackgroundInput{
		CharacterID: req.CharacterID,
		Background:  req.Background,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// FillDescriptions fills blank description text from the rule documents
func (h *Handler) FillDescriptions(
	ctx context.Context,
	req *FillDescriptionsRequest,
) (*FillDescriptionsResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}

	out, err := h.sheetService.FillDescriptions(ctx, &sheet.FillDescriptionsInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &FillDescriptionsResponse{Character: out.Character, Filled: out.Filled}, nil
}

// UpdateFieldValue edits the value of one feature field
func (h *Handler) UpdateFieldValue(
	ctx context.Context,
	req *UpdateFieldValueRequest,
) (*CharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.FeatureKey == "" || req.FieldName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("feature_key and field_name are required"))
	}

	out, err := h.sheetService.UpdateFieldValue(ctx, &sheet.UpdateFieldValueInput{
		CharacterID: req.CharacterID,
		FeatureKey:  req.FeatureKey,
		FieldName:   req.FieldName,
		Value:       req.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// SelectChoiceOption fills one slot of a choice field
func (h *Handler) SelectChoiceOption(
	ctx context.Context,
	req *SelectChoiceOptionRequest,
) (*CharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.FeatureKey == "" || req.FieldName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("feature_key and field_name are required"))
	}

	out, err := h.sheetService.SelectChoiceOption(ctx, &sheet.SelectChoiceOptionInput{
		CharacterID: req.CharacterID,
		FeatureKey:  req.FeatureKey,
		FieldName:   req.FieldName,
		Index:       req.Index,
		Option:      req.Option,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// SpendHitDie rolls one hit die and heals the character
func (h *Handler) SpendHitDie(
	ctx context.Context,
	req *SpendHitDieRequest,
) (*SpendHitDieResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}
	if req.ClassName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("class_name is required"))
	}

	out, err := h.sheetService.SpendHitDie(ctx, &sheet.SpendHitDieInput{
		CharacterID: req.CharacterID,
		ClassName:   req.ClassName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SpendHitDieResponse{
		Character: out.Character,
		Sides:     out.Roll.Sides,
		Rolled:    out.Roll.Rolled,
		Healed:    out.Roll.Healed,
	}, nil
}

// LongRest restores hit points and half of the spent hit dice
func (h *Handler) LongRest(
	ctx context.Context,
	req *LongRestRequest,
) (*LongRestResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}

	out, err := h.sheetService.LongRest(ctx, &sheet.LongRestInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LongRestResponse{
		Character:         out.Character,
		HitDiceRestored:   out.HitDiceRestored,
		HitPointsRestored: out.HitPointsRestored,
	}, nil
}

// ShareCharacter returns a share token for the character
func (h *Handler) ShareCharacter(
	ctx context.Context,
	req *ShareCharacterRequest,
) (*ShareCharacterResponse, error) {
	if err := requireCharacterID(req.CharacterID); err != nil {
		return nil, err
	}

	out, err := h.sheetService.ShareCharacter(ctx, &sheet.ShareCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &ShareCharacterResponse{Token: out.Token}, nil
}

// ImportCharacter imports a share token, or reports differences when the local copy is newer
func (h *Handler) ImportCharacter(
	ctx context.Context,
	req *ImportCharacterRequest,
) (*ImportCharacterResponse, error) {
	if req.Token == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token is required"))
	}

	out, err := h.importService.Import(ctx, &importer.ImportInput{Token: req.Token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ImportCharacterResponse{
		State:     string(out.State),
		Character: out.Character,
	}
	if len(out.Differences) > 0 {
		resp.Differences = diff.Sections(out.Differences)
	}
	return resp, nil
}

// ConfirmImport imports a share token over a newer local copy
func (h *Handler) ConfirmImport(
	ctx context.Context,
	req *ConfirmImportRequest,
) (*CharacterResponse, error) {
	if req.Token == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token is required"))
	}

	out, err := h.importService.Confirm(ctx, &importer.ConfirmInput{Token: req.Token})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &CharacterResponse{Character: out.Character}, nil
}

// ListRuleDocuments lists the rule documents of one kind from the rules index
func (h *Handler) ListRuleDocuments(
	ctx context.Context,
	req *ListRuleDocumentsRequest,
) (*ListRuleDocumentsResponse, error) {
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	entries, err := h.rulesClient.Available(ctx, rules.Kind(req.Kind))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if entries == nil {
		entries = []rules.IndexEntry{}
	}
	return &ListRuleDocumentsResponse{Documents: entries}, nil
}
