package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	Store    string     `env:"STORE" envDefault:"sqlite"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/codehunt.db"`
	RedisURL string     `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../frontend/dist"`

	// Bcrypt hash of the admin password. Admin endpoints return 401 for
	// every request while this is unset.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	switch cfg.Store {
	case "memory", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("unknown STORE %q (want memory, sqlite, or redis)", cfg.Store)
	}
	return &cfg, nil
}
