package client

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/diff"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var confirmImport bool

var shareCmd = &cobra.Command{
	Use:   "share <character-id>",
	Short: "Print a share token for a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.ShareCharacter(ctx, &v1alpha1.ShareCharacterRequest{CharacterID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to share character: %w", err)
			}
			fmt.Println(resp.Token)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <token>",
	Short: "Import a shared character",
	Long: `Import a shared character token.
When the stored copy is newer the differences are printed and nothing is saved;
re-run with --confirm to overwrite it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			if confirmImport {
				resp, err := client.ConfirmImport(ctx, &v1alpha1.ConfirmImportRequest{Token: args[0]})
				if err != nil {
					return fmt.Errorf("failed to import character: %w", err)
				}
				return printCharacter(resp.Character)
			}

			resp, err := client.ImportCharacter(ctx, &v1alpha1.ImportCharacterRequest{Token: args[0]})
			if err != nil {
				return fmt.Errorf("failed to import character: %w", err)
			}
			if outputJSON {
				return printJSON(resp)
			}

			switch resp.State {
			case "local_newer":
				fmt.Println("The stored copy is newer than this token. Nothing was saved.")
				if err := printDifferences(resp.Differences); err != nil {
					return err
				}
				fmt.Println("\nRe-run with --confirm to overwrite the stored copy.")
				return nil
			case "local_older":
				fmt.Println("Updated the stored copy")
			default:
				fmt.Println("Imported a new character")
			}
			return printCharacter(resp.Character)
		})
	},
}

func printDifferences(groups []diff.Group) error {
	if len(groups) == 0 {
		fmt.Println("No differences")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, group := range groups {
		_, _ = fmt.Fprintf(w, "\n%s\n", group.Section.Title())
		_, _ = fmt.Fprintln(w, "\tFIELD\tSTORED\tIMPORTED")
		for _, row := range group.Rows {
			_, _ = fmt.Fprintf(w, "\t%s\t%s\t%s\n", row.Label, row.Local, row.Imported)
		}
	}
	return w.Flush()
}

func init() {
	importCmd.Flags().BoolVar(&confirmImport, "confirm", false, "Overwrite a newer stored copy")
}
