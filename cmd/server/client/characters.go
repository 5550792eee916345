package client

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var characterName string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty character sheet",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{Name: characterName})
			if err != nil {
				return fmt.Errorf("failed to create character: %w", err)
			}
			return printCharacter(resp.Character)
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <character-id>",
	Short: "Show a character sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.GetCharacter(ctx, &v1alpha1.GetCharacterRequest{CharacterID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get character: %w", err)
			}
			return printCharacter(resp.Character)
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.ListCharacters(ctx, &v1alpha1.ListCharactersRequest{})
			if err != nil {
				return fmt.Errorf("failed to list characters: %w", err)
			}
			if outputJSON {
				return printJSON(resp.Characters)
			}
			if len(resp.Characters) == 0 {
				fmt.Println("No characters stored")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tCLASS\tLEVEL")
			for _, summary := range resp.Characters {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", summary.ID, summary.Name, summary.Class, summary.Level)
			}
			return w.Flush()
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			if _, err := client.DeleteCharacter(ctx, &v1alpha1.DeleteCharacterRequest{CharacterID: args[0]}); err != nil {
				return fmt.Errorf("failed to delete character: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	createCmd.Flags().StringVar(&characterName, "name", "", "Character name (optional)")
}
