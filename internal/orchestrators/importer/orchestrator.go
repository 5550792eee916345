// Package importer reconciles shared characters with the locally stored copy
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"

	rulesclient "github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/merge"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/share"
)

// Service defines the import operations
type Service interface {
	// Import decodes a share token and saves it unless the stored copy is newer
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// Confirm saves the import even when the stored copy is newer
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)
}

// Config holds the dependencies for the import orchestrator
type Config struct {
	CharacterRepo character.Repository
	RulesClient   rulesclient.Client
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
	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	rules         rulesclient.Client
}

// NewOrchestrator creates a new import orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		rules:         cfg.RulesClient,
	}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	imported, err := share.Decode(input.Token)
	if err != nil {
		return nil, err
	}

	local, err := o.loadLocal(ctx, imported.ID)
	if err != nil {
		return nil, err
	}

	switch {
	case local == nil:
		if err := o.persist(ctx, imported, nil); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "imported new character", "character_id", imported.ID)
		return &ImportOutput{State: StateNoLocalCopy, Character: imported}, nil

	case imported.UpdatedAt >= local.UpdatedAt:
		if err := o.persist(ctx, imported, local); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "imported character over older local copy",
			"character_id", imported.ID,
			"local_updated_at", local.UpdatedAt,
			"imported_updated_at", imported.UpdatedAt)
		return &ImportOutput{State: StateLocalOlder, Character: imported}, nil

	default:
		differences := diff.Compare(local, imported)
		slog.InfoContext(ctx, "local copy is newer than import",
			"character_id", imported.ID,
			"local_updated_at", local.UpdatedAt,
			"imported_updated_at", imported.UpdatedAt,
			"differences", len(differences))
		return &ImportOutput{State: StateLocalNewer, Character: imported, Differences: differences}, nil
	}
}

func (o *orchestrator) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	imported, err := share.Decode(input.Token)
	if err != nil {
		return nil, err
	}

	local, err := o.loadLocal(ctx, imported.ID)
	if err != nil {
		return nil, err
	}

	if err := o.persist(ctx, imported, local); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "confirmed import", "character_id", imported.ID, "replaced_local", local != nil)
	return &ConfirmOutput{Character: imported}, nil
}

// loadLocal returns nil without error when nothing is stored under the ID
func (o *orchestrator) loadLocal(ctx context.Context, id string) (*dnd5e.Character, error) {
	out, err := o.characterRepo.Load(ctx, character.LoadInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to load local copy of %s", id)
	}
	return out.Character, nil
}

// persist restores stripped text from the local copy, fills what is still blank from rule
// documents and saves. The import keeps its own UpdatedAt.
func (o *orchestrator) persist(ctx context.Context, imported, local *dnd5e.Character) error {
	if local != nil {
		merge.RestoreStripped(imported, local)
	}

	if err := o.rules.Warm(ctx, imported); err != nil {
		slog.WarnContext(ctx, "failed to warm rule documents for import", "character_id", imported.ID, "error", err)
	}
	engine.FillDescriptions(imported, o.rules)

	if _, err := o.characterRepo.Save(ctx, character.SaveInput{Character: imported}); err != nil {
		return errors.Wrapf(err, "failed to save imported character %s", imported.ID)
	}
	return nil
}
