// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds everything the server needs to start
type Config struct {
	GRPCPort      int           `env:"RPG_SHEET_GRPC_PORT"       envDefault:"50051"`
	RedisAddr     string        `env:"RPG_SHEET_REDIS_ADDR"      envDefault:"localhost:6379"`
	RedisPassword string        `env:"RPG_SHEET_REDIS_PASSWORD"`
	RedisDB       int           `env:"RPG_SHEET_REDIS_DB"        envDefault:"0"`
	RulesBaseURL  string        `env:"RPG_SHEET_RULES_BASE_URL"`
	HTTPTimeout   time.Duration `env:"RPG_SHEET_HTTP_TIMEOUT"    envDefault:"30s"`
	RulesCacheTTL time.Duration `env:"RPG_SHEET_RULES_CACHE_TTL" envDefault:"24h"`
	LogLevel      string        `env:"RPG_SHEET_LOG_LEVEL"       envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("RPG_SHEET_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("RPG_SHEET_REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateRequired("RPG_SHEET_RULES_BASE_URL", c.RulesBaseURL, vb)
	if c.RulesBaseURL != "" {
		if u, err := url.Parse(c.RulesBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.InvalidField("RPG_SHEET_RULES_BASE_URL", "must be an absolute URL")
		}
	}
	if c.HTTPTimeout <= 0 {
		vb.InvalidField("RPG_SHEET_HTTP_TIMEOUT", "must be positive")
	}
	if c.RulesCacheTTL < 0 {
		vb.InvalidField("RPG_SHEET_RULES_CACHE_TTL", "must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("RPG_SHEET_LOG_LEVEL", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps debug, info, warn and error onto slog levels
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
}
