package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var hitDieClass string

var spendHitDieCmd = &cobra.Command{
	Use:   "spend-hit-die <character-id>",
	Short: "Roll a hit die and heal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.SpendHitDie(ctx, &v1alpha1.SpendHitDieRequest{
				CharacterID: args[0],
				ClassName:   hitDieClass,
			})
			if err != nil {
				return fmt.Errorf("failed to spend hit die: %w", err)
			}
			if outputJSON {
				return printJSON(resp)
			}
			fmt.Printf("Rolled d%d: %d, healed %d (HP %d/%d)\n",
				resp.Sides, resp.Rolled, resp.Healed, resp.Character.Combat.HPCurrent, resp.Character.Combat.HPMax)
			return nil
		})
	},
}

var longRestCmd = &cobra.Command{
	Use:   "long-rest <character-id>",
	Short: "Take a long rest",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.LongRest(ctx, &v1alpha1.LongRestRequest{CharacterID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to take long rest: %w", err)
			}
			if outputJSON {
				return printJSON(resp)
			}
			fmt.Printf("Restored %d hit points and %d hit dice\n", resp.HitPointsRestored, resp.HitDiceRestored)
			return nil
		})
	},
}

func init() {
	spendHitDieCmd.Flags().StringVar(&hitDieClass, "class", "", "Class whose hit die to spend (required)")
	_ = spendHitDieCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init
}
