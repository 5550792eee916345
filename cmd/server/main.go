// Package main is the entry point for the rpg-sheet server and client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "RPG character sheet gRPC server",
	Long:  `rpg-sheet keeps D&D 5e character sheets, levels them from rule documents and shares them as tokens.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
