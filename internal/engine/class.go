package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// ApplyClassLevel applies the rules of one class level and reports whether anything changed.
// subclass may be empty to keep the subclass already recorded on the character.
// A level that was already applied, or that the class has no rules for, is a no-op.
func ApplyClassLevel(def *rules.ClassDefinition, subclass string, targetLevel int, ch *dnd5e.Character) bool {
	if def == nil || ch == nil {
		return false
	}

	levelRules, ok := def.RulesAt(targetLevel)
	if !ok {
		return false
	}

	if existing := ch.FindClass(def.Name); existing != nil && existing.HasApplied(targetLevel) {
		return false
	}

	cl := ch.EnsureClass(def.Name)
	if subclass != "" {
		cl.Subclass = subclass
	}
	if def.HitDie > 0 {
		cl.HitDieSides = def.HitDie
	}
	if targetLevel > cl.Level {
		cl.Level = targetLevel
	}

	subclassDef := def.Subclass(cl.Subclass)
	visible := visibleFeatures(def, subclassDef)
	cl.CasterCoefficient = casterCoefficient(visible)

	if targetLevel == 1 {
		for _, ability := range def.SavingThrows {
			ch.AddSavingThrow(ability)
		}
		for _, proficiency := range def.Proficiencies {
			ch.AddProficiency(proficiency)
		}
	}

	granted := make(map[string]bool, len(levelRules.Features))
	for _, name := range levelRules.Features {
		granted[name] = true
	}
	if subclassDef != nil {
		if subclassRules, ok := subclassDef.Levels[targetLevel]; ok {
			for _, name := range subclassRules.Features {
				granted[name] = true
			}
		}
	}

	for i := range visible {
		feature := visible[i]
		owned := ch.HasFeature(feature.Name)
		newlyGranted := granted[feature.Name]

		if newlyGranted && owned && !feature.Stackable {
			continue
		}
		if newlyGranted || owned {
			ApplyFeature(feature, targetLevel, ch)
		}
	}

	hitDie := cl.HitDieSides
	conModifier := ch.AbilityModifier(dnd5e.AbilityConstitution)
	if targetLevel == 1 {
		ch.Combat.HPMax += hitDie + conModifier
	} else {
		ch.Combat.HPMax += hitDie/2 + 1 + conModifier
	}
	ch.Combat.HPCurrent = ch.Combat.HPMax

	cl.MarkApplied(targetLevel)
	RecalculateHitDice(ch)

	return true
}

// visibleFeatures lists the class's own features followed by the chosen subclass's
func visibleFeatures(def *rules.ClassDefinition, subclass *rules.SubclassDefinition) []*rules.FeatureDefinition {
	visible := make([]*rules.FeatureDefinition, 0, len(def.Features))
	for i := range def.Features {
		visible = append(visible, &def.Features[i])
	}
	if subclass != nil {
		for i := range subclass.Features {
			visible = append(visible, &subclass.Features[i])
		}
	}
	return visible
}

func casterCoefficient(features []*rules.FeatureDefinition) float64 {
	coefficient := 0.0
	for _, feature := range features {
		if feature.Spells != nil && feature.Spells.CasterCoefficient > coefficient {
			coefficient = feature.Spells.CasterCoefficient
		}
	}
	return coefficient
}
