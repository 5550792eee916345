package importer

import (
	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// State is how an imported character relates to the stored copy with the same ID
type State string

// Import states
const (
	// StateNoLocalCopy means nothing was stored under the ID; the import was saved
	StateNoLocalCopy State = "no_local_copy"
	// StateLocalOlder means the stored copy was not newer; stripped text was restored and the import saved
	StateLocalOlder State = "local_older"
	// StateLocalNewer means the stored copy is newer; nothing was saved and the caller must confirm
	StateLocalNewer State = "local_newer"
)

// ImportInput defines the request for importing a share token
type ImportInput struct {
	Token string
}

// ImportOutput defines the response for an import
type ImportOutput struct {
	State State
	// Character is the saved character, or the decoded import when State is StateLocalNewer
	Character *dnd5e.Character
	// Differences lists local against imported values; only set for StateLocalNewer
	Differences []diff.Row
}

// ConfirmInput defines the request for overwriting a newer local copy
type ConfirmInput struct {
	Token string
}

// ConfirmOutput defines the response for a confirmed import
type ConfirmOutput struct {
	Character *dnd5e.Character
}
