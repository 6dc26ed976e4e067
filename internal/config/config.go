// Package config loads pwactl settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that command-line flags may override.
type Config struct {
	DataDir  string `env:"PWACTL_DATA_DIR"`
	LogLevel string `env:"PWACTL_LOG_LEVEL" envDefault:"info"`
	Output   string `env:"PWACTL_OUTPUT" envDefault:"table"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}
