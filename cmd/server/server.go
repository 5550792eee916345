package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	rulesclient "github.com/KirkDiggler/rpg-sheet/internal/clients/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/importer"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/ruledoc"
)

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rpg-sheet gRPC server backed by Redis and the configured rules host.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides RPG_SHEET_GRPC_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}()

	handler, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "rules_base_url", cfg.RulesBaseURL)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func buildHandler(cfg *config.Config, redisClient redis.Client) (*v1alpha1.Handler, error) {
	docStore, err := ruledoc.NewRedis(&ruledoc.RedisConfig{
		Client: redisClient,
		TTL:    cfg.RulesCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rule document store: %w", err)
	}

	rules, err := rulesclient.New(&rulesclient.Config{
		BaseURL:     cfg.RulesBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		Store:       docStore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rules client: %w", err)
	}

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	sheetService, err := sheet.NewOrchestrator(&sheet.Config{
		CharacterRepo: characterRepo,
		RulesClient:   rules,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	importService, err := importer.NewOrchestrator(&importer.Config{
		CharacterRepo: characterRepo,
		RulesClient:   rules,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create import orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService:  sheetService,
		ImportService: importService,
		RulesClient:   rules,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet handler: %w", err)
	}
	return handler, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
