package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atomiclang/atomic/pkg/config/env"
)

// AppConfig carries interpreter settings sourced from the environment.
type AppConfig struct {
	ENV       string
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

func LoadConfig() (*AppConfig, error) {
	appEnv := os.Getenv("ENV")

	if err := env.LoadDotEnv(appEnv, ".env"); err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		ENV:       appEnv,
		LogFormat: env.GetOr("ATOMIC_LOG_FORMAT", "text"),
	}

	switch strings.ToLower(env.GetOr("ATOMIC_LOG_LEVEL", "warn")) {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "info":
		cfg.LogLevel = slog.LevelInfo
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("config: unknown ATOMIC_LOG_LEVEL %q", os.Getenv("ATOMIC_LOG_LEVEL"))
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("config: unknown ATOMIC_LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the process-wide slog logger from the config.
func (c *AppConfig) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
