package share

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// StripForSharing returns a copy without free-text descriptions, death saves or temporary hit points.
// Everything removed here can be restored from a local copy or refilled from rule documents.
func StripForSharing(ch *dnd5e.Character) (*dnd5e.Character, error) {
	if ch == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	stripped, err := clone(ch)
	if err != nil {
		return nil, err
	}

	stripped.Combat.DeathSaveSuccesses = 0
	stripped.Combat.DeathSaveFailures = 0
	stripped.Combat.HPTemp = 0

	for i := range stripped.Features {
		stripped.Features[i].Description = ""
	}
	for i := range stripped.RacialTraits {
		stripped.RacialTraits[i].Description = ""
	}

	for _, data := range stripped.FeatureData {
		if data == nil {
			continue
		}
		for i := range data.Fields {
			data.Fields[i].Description = ""
			options := data.Fields[i].Choices()
			for j := range options {
				options[j].Description = ""
			}
		}
		if data.Spells != nil {
			for i := range data.Spells.Spells {
				data.Spells.Spells[i].Description = ""
			}
		}
	}

	return stripped, nil
}

// clone deep-copies through the JSON form so no slice or map is shared with the original
func clone(ch *dnd5e.Character) (*dnd5e.Character, error) {
	raw, err := json.Marshal(ch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}
	var out dnd5e.Character
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "failed to copy character")
	}
	return &out, nil
}
