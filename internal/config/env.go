package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment configuration of the bindbridge CLI.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"BINDBRIDGE_LOG_LEVEL" envDefault:"info"`
	// LogFormat is "console" or "json".
	LogFormat string `env:"BINDBRIDGE_LOG_FORMAT" envDefault:"console"`
	// CacheSize bounds the resolution cache.
	CacheSize int `env:"BINDBRIDGE_CACHE_SIZE" envDefault:"256"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
