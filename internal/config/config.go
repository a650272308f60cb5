package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is process configuration, loaded from the environment.
type Config struct {
	// DBPath overrides the save database location.
	DBPath string `env:"SL_DB"`
	// BalanceFile points at an optional YAML balance override.
	BalanceFile string `env:"SL_BALANCE"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
