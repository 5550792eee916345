// Package client provides commands that call the rpg-sheet gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
	outputJSON bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the rpg-sheet service",
	Long:  `Client commands call a running rpg-sheet server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print raw JSON responses")

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)

	ClientCmd.AddCommand(levelUpCmd)
	ClientCmd.AddCommand(applyRaceCmd)
	ClientCmd.AddCommand(applyBackgroundCmd)
	ClientCmd.AddCommand(fillCmd)
	ClientCmd.AddCommand(setFieldCmd)

	ClientCmd.AddCommand(spendHitDieCmd)
	ClientCmd.AddCommand(longRestCmd)

	ClientCmd.AddCommand(shareCmd)
	ClientCmd.AddCommand(importCmd)

	ClientCmd.AddCommand(rulesCmd)
}

// createSheetClient creates a sheet service client
func createSheetClient() (*v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

// withClient dials the server and runs fn with a request-scoped context
func withClient(fn func(ctx context.Context, client *v1alpha1.SheetServiceClient) error) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return nil
}

func printCharacter(ch *dnd5e.Character) error {
	if outputJSON {
		return printJSON(ch)
	}
	if ch == nil {
		fmt.Println("No character returned")
		return nil
	}

	fmt.Printf("%s (%s)\n", ch.Identity.Name, ch.ID)
	if summary := ch.ClassSummary(); summary != "" {
		fmt.Printf("Class: %s\n", summary)
	}
	if ch.Identity.Race != "" {
		fmt.Printf("Race: %s\n", ch.Identity.Race)
	}
	if ch.Identity.Background != "" {
		fmt.Printf("Background: %s\n", ch.Identity.Background)
	}
	fmt.Printf("HP: %d/%d", ch.Combat.HPCurrent, ch.Combat.HPMax)
	if ch.Combat.HPTemp > 0 {
		fmt.Printf(" (+%d temp)", ch.Combat.HPTemp)
	}
	fmt.Printf("  AC: %d  Speed: %d\n", ch.Combat.ArmorClass, ch.Combat.Speed)
	if ch.Combat.HitDiceTotal != "" {
		fmt.Printf("Hit Dice: %s of %s\n", ch.Combat.HitDiceRemaining, ch.Combat.HitDiceTotal)
	}

	if len(ch.Features) > 0 {
		fmt.Println("\nFeatures:")
		for _, feature := range ch.Features {
			fmt.Printf("  - %s\n", feature.Name)
		}
	}
	if len(ch.RacialTraits) > 0 {
		fmt.Println("\nRacial Traits:")
		for _, trait := range ch.RacialTraits {
			fmt.Printf("  - %s\n", trait.Name)
		}
	}
	return nil
}
