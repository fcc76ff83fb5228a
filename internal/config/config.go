// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultDataset  = "termsnake"
	defaultLogLevel = "info"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Config holds all runtime configuration.
type Config struct {
	// Seed for food placement. Zero picks a time-based seed.
	Seed int64

	LogFile  string
	LogLevel log.Level

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads a .env file if present, then the SNAKE_* environment variables.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogFile:          os.Getenv("SNAKE_LOG_FILE"),
		HoneycombAPIKey:  os.Getenv("SNAKE_HONEYCOMB_API_KEY"),
		HoneycombDataset: os.Getenv("SNAKE_HONEYCOMB_DATASET"),
	}
	if cfg.HoneycombDataset == "" {
		cfg.HoneycombDataset = defaultDataset
	}

	if raw := os.Getenv("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	level := os.Getenv("SNAKE_LOG_LEVEL")
	if level == "" {
		level = defaultLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("SNAKE_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

// ApplyOTelEnv maps the Honeycomb settings onto the standard OTEL_* variables.
// Nothing is set when no API key is configured, so an explicit
// OTEL_EXPORTER_OTLP_ENDPOINT still works on its own.
func (c *Config) ApplyOTelEnv() {
	if c.HoneycombAPIKey == "" {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", c.HoneycombAPIKey, c.HoneycombDataset))
}
