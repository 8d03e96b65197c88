package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, loaded from the environment
type Config struct {
	// Addr host/port for the HTTP server
	Host string `env:"SKILLRANK_HOST" envDefault:""`
	Port int    `env:"SKILLRANK_PORT" envDefault:"8080"`

	// Storage selects the storage backend ("memory" or "redis")
	Storage string `env:"SKILLRANK_STORAGE" envDefault:"memory"`

	// RedisURL is required when Storage is "redis"
	RedisURL string `env:"SKILLRANK_REDIS_URL"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"SKILLRANK_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
