package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the character list index from stored sheets",
	Long: `Scan every stored character, rebuild the summary index used by list,
and report the ids whose stored data can no longer be read.`,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
}

func runReindex(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	out, err := reindex(ctx, redisClient)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Indexed %d characters\n", out.Indexed)
	if len(out.Corrupt) > 0 {
		fmt.Fprintf(w, "Unreadable: %s\n", strings.Join(out.Corrupt, ", "))
	}
	return nil
}

func reindex(ctx context.Context, redisClient redis.Client) (*character.ReindexOutput, error) {
	repo, err := character.NewRedis(&character.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	return repo.Reindex(ctx, character.ReindexInput{})
}

func connectRedis(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redis.Ping(ctx, redisClient); err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	return redisClient, nil
}
