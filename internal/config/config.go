// Package config holds the analyzer settings. The dataset path, output
// directory, and figure names are fixed products of the program; only the
// ambient logging knobs are read from the environment.
package config

import (
	"errors"
	"os"
)

// Config holds all analyzer settings.
type Config struct {
	InputPath string
	OutputDir string
	LogLevel  string
	LogFormat string
}

// Load builds the configuration, applying defaults where env vars are unset.
func Load() (*Config, error) {
	cfg := &Config{
		InputPath: envOrDefault("INPUT_PATH", "nuclear_explosions.csv"),
		OutputDir: envOrDefault("OUTPUT_DIR", "."),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid LOG_LEVEL")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("invalid LOG_FORMAT")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
