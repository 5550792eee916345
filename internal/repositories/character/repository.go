// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Load retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save creates or replaces a character and its index summary
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a character and its index summary
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the summaries of every stored character
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Reindex rebuilds the summary index from the stored characters.
	// Unreadable characters are left in place and reported, not indexed.
	// Returns errors.Internal for storage failures
	Reindex(ctx context.Context, input ReindexInput) (*ReindexOutput, error)
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	ID string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	Character *dnd5e.Character
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *dnd5e.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character *dnd5e.Character
	// Created is true when no character with this ID existed before
	Created bool
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []dnd5e.CharacterSummary
}

// ReindexInput defines the input for rebuilding the index
type ReindexInput struct{}

// ReindexOutput reports what the rebuild found
type ReindexOutput struct {
	Indexed int
	// Corrupt holds the IDs of stored characters that could not be decoded
	Corrupt []string
}
