// Package config loads process configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// RedisAddr enables the Redis result cache when non-empty; left
	// empty, results are cached in process memory.
	RedisAddr string `env:"REDIS_ADDR"`

	// DefaultPaths is the Monte Carlo path count used when a request
	// does not specify one.
	DefaultPaths int `env:"DEFAULT_PATHS" envDefault:"2000"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
