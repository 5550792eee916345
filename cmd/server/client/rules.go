package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var rulesCmd = &cobra.Command{
	Use:       "rules <class|race|background|spell_list>",
	Short:     "List rule documents available on the rules host",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"class", "race", "background", "spell_list"},
	RunE: func(_ *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.SheetServiceClient) error {
			resp, err := client.ListRuleDocuments(ctx, &v1alpha1.ListRuleDocumentsRequest{Kind: args[0]})
			if err != nil {
				return fmt.Errorf("failed to list rule documents: %w", err)
			}
			if outputJSON {
				return printJSON(resp.Documents)
			}
			for _, doc := range resp.Documents {
				if doc.Description != "" {
					fmt.Printf("%s - %s\n", doc.Name, doc.Description)
					continue
				}
				fmt.Println(doc.Name)
			}
			return nil
		})
	},
}
