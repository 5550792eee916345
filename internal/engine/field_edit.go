package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// diceNotation accepts "NdM", "dM" and an optional flat modifier such as "2d6+3"
var diceNotation = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// ValidDiceNotation reports whether s is a dice expression the sheet accepts
func ValidDiceNotation(s string) bool {
	matches := diceNotation.FindStringSubmatch(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	if matches == nil {
		return false
	}
	if matches[1] != "" {
		if count, err := strconv.Atoi(matches[1]); err != nil || count <= 0 {
			return false
		}
	}
	size, err := strconv.Atoi(matches[2])
	return err == nil && size > 0
}

// SetFieldValue parses raw text into a die, bonus or points field.
// On any parse failure the stored value is left untouched.
func SetFieldValue(ch *dnd5e.Character, featureKey, fieldName, raw string) error {
	field, err := findField(ch, featureKey, fieldName)
	if err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)

	switch value := field.Value.(type) {
	case dnd5e.DieValue:
		if !ValidDiceNotation(raw) {
			return errors.InvalidArgumentf("invalid dice notation: %s", raw).
				WithMeta("field", fieldName)
		}
		field.Value = dnd5e.DieValue(strings.ToLower(strings.ReplaceAll(raw, " ", "")))
	case dnd5e.BonusValue:
		bonus, err := strconv.Atoi(strings.TrimPrefix(raw, "+"))
		if err != nil {
			return errors.InvalidArgumentf("invalid bonus: %s", raw).
				WithMeta("field", fieldName)
		}
		field.Value = dnd5e.BonusValue(bonus)
	case dnd5e.PointsValue:
		used, err := strconv.Atoi(raw)
		if err != nil {
			return errors.InvalidArgumentf("invalid points used: %s", raw).
				WithMeta("field", fieldName)
		}
		if used < 0 || used > value.Max {
			return errors.OutOfRangef("points used must be between 0 and %d", value.Max).
				WithMeta("field", fieldName)
		}
		value.Used = used
		field.Value = value
	case dnd5e.ChoiceValue:
		return errors.InvalidArgumentf("field %s is a choice; select an option instead", fieldName)
	default:
		return errors.Internalf("field %s has no value", fieldName)
	}

	return nil
}

// SelectChoiceOption fills one slot of a choice field
func SelectChoiceOption(ch *dnd5e.Character, featureKey, fieldName string, index int, option dnd5e.ChoiceOption) error {
	field, err := findField(ch, featureKey, fieldName)
	if err != nil {
		return err
	}

	choice, ok := field.Value.(dnd5e.ChoiceValue)
	if !ok {
		return errors.InvalidArgumentf("field %s is not a choice", fieldName)
	}
	if index < 0 || index >= len(choice.Options) {
		return errors.OutOfRangef("option index %d out of range", index).
			WithMeta("field", fieldName).
			WithMeta("slots", len(choice.Options))
	}

	choice.Options[index] = option
	field.Value = choice
	return nil
}

func findField(ch *dnd5e.Character, featureKey, fieldName string) (*dnd5e.FeatureField, error) {
	if ch == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	data, ok := ch.FeatureData[featureKey]
	if !ok || data == nil {
		return nil, errors.NotFoundf("feature %s has no data", featureKey)
	}
	for i := range data.Fields {
		if data.Fields[i].Name == fieldName {
			return &data.Fields[i], nil
		}
	}
	return nil, errors.NotFoundf("field %s not found on feature %s", fieldName, featureKey)
}
