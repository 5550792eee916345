package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

// maxOptionRefDepth bounds chains of option references
const maxOptionRefDepth = 8

// ResolveOptions returns the selectable options of a choice field.
// owner is the feature declaring the field; features is every feature the
// reference may point into. Unresolvable references yield an empty list.
func ResolveOptions(
	source *rules.OptionSource,
	owner *rules.FeatureDefinition,
	features []*rules.FeatureDefinition,
) []rules.OptionDefinition {
	return resolveOptions(source, owner, features, 0)
}

func resolveOptions(
	source *rules.OptionSource,
	owner *rules.FeatureDefinition,
	features []*rules.FeatureDefinition,
	depth int,
) []rules.OptionDefinition {
	if source == nil || depth > maxOptionRefDepth {
		return []rules.OptionDefinition{}
	}
	if len(source.Inline) > 0 || source.Ref == "" {
		if source.Inline == nil {
			return []rules.OptionDefinition{}
		}
		return source.Inline
	}

	featureName, fieldName := rules.SplitOptionRef(source.Ref)

	target := owner
	if featureName != "" {
		target = findFeaturePtr(features, featureName)
	}
	if target == nil {
		return []rules.OptionDefinition{}
	}

	field := rules.FindField(target.Fields, fieldName)
	if field == nil {
		return []rules.OptionDefinition{}
	}

	return resolveOptions(field.Options, target, features, depth+1)
}

func findFeaturePtr(features []*rules.FeatureDefinition, name string) *rules.FeatureDefinition {
	for _, feature := range features {
		if feature != nil && feature.Name == name {
			return feature
		}
	}
	return nil
}

// CharacterFeatureDefinitions lists every feature definition that can apply to a character,
// in lookup order: declared classes with their subclasses, then background, then race.
// Documents not yet in the catalog are skipped.
func CharacterFeatureDefinitions(ch *dnd5e.Character, catalog Catalog) []*rules.FeatureDefinition {
	if ch == nil || catalog == nil {
		return nil
	}

	var features []*rules.FeatureDefinition
	for _, cl := range ch.Identity.Classes {
		def, ok := catalog.Class(cl.Class)
		if !ok {
			continue
		}
		features = append(features, visibleFeatures(def, def.Subclass(cl.Subclass))...)
	}

	if ch.Identity.Background != "" {
		if def, ok := catalog.Background(ch.Identity.Background); ok {
			for i := range def.Features {
				features = append(features, &def.Features[i])
			}
		}
	}

	if ch.Identity.Race != "" {
		if def, ok := catalog.Race(ch.Identity.Race); ok {
			for i := range def.Features {
				features = append(features, &def.Features[i])
			}
		}
	}

	return features
}
