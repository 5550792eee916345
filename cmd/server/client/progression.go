package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	className    string
	subclassName string
	featureKey   string
	fieldName    string
	fieldValue   string
)

var levelUpCmd = &cobra.Command{
	Use:   "level-up <character-id>",
	Short: "Gain one level in a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.LevelUp(ctx, &v1alpha1.LevelUpRequest{
				CharacterID: args[0],
				ClassName:   className,
				Subclass:    subclassName,
			})
			if err != nil {
				return fmt.Errorf("failed to level up: %w", err)
			}
			if !resp.Applied {
				fmt.Printf("No rules for %s level %d; nothing changed\n", className, resp.ClassLevel+1)
			}
			return printCharacter(resp.Character)
		})
	},
}

var applyRaceCmd = &cobra.Command{
	Use:   "apply-race <character-id> <race>",
	Short: "Apply a race to a character",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.ApplyRace(ctx, &v1alpha1.ApplyRaceRequest{CharacterID: args[0], Race: args[1]})
			if err != nil {
				return fmt.Errorf("failed to apply race: %w", err)
			}
			return printCharacter(resp.Character)
		})
	},
}

var applyBackgroundCmd = &cobra.Command{
	Use:   "apply-background <character-id> <background>",
	Short: "Apply a background to a character",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.ApplyBackground(ctx, &v1alpha1.ApplyBackgroundRequest{
				CharacterID: args[0],
				Background:  args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to apply background: %w", err)
			}
			return printCharacter(resp.Character)
		})
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill <character-id>",
	Short: "Fill blank descriptions from the rule documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.FillDescriptions(ctx, &v1alpha1.FillDescriptionsRequest{CharacterID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to fill descriptions: %w", err)
			}
			fmt.Printf("Filled %d descriptions\n", resp.Filled)
			return nil
		})
	},
}

var setFieldCmd = &cobra.Command{
	Use:   "set-field <character-id>",
	Short: "Edit the value of a feature field",
	Long: `Edit a die, bonus or points field of a feature.
Dice use NdM notation, bonuses are integers and points set the used count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.UpdateFieldValue(ctx, &v1alpha1.UpdateFieldValueRequest{
				CharacterID: args[0],
				FeatureKey:  featureKey,
				FieldName:   fieldName,
				Value:       fieldValue,
			})
			if err != nil {
				return fmt.Errorf("failed to update field: %w", err)
			}
			return printCharacter(resp.Character)
		})
	},
}

func init() {
	levelUpCmd.Flags().StringVar(&className, "class", "", "Class name (required)")
	levelUpCmd.Flags().StringVar(&subclassName, "subclass", "", "Subclass name (optional)")
	_ = levelUpCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	setFieldCmd.Flags().StringVar(&featureKey, "feature", "", "Feature key (required)")
	setFieldCmd.Flags().StringVar(&fieldName, "field", "", "Field name (required)")
	setFieldCmd.Flags().StringVar(&fieldValue, "value", "", "New value")
	_ = setFieldCmd.MarkFlagRequired("feature") // nolint:errcheck // safe to ignore in init
	_ = setFieldCmd.MarkFlagRequired("field")   // nolint:errcheck // safe to ignore in init
}
