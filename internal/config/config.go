package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	TelegramToken string        `env:"TELEGRAM_TOKEN,required"`
	AdminIDs      []int64       `env:"ADMIN_IDS" envSeparator:","`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate required fields
	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("at least one admin ID is required")
	}

	return &cfg, nil
}

// IsAdmin reports whether id is on the administrator allow-list.
func (c *Config) IsAdmin(id int64) bool {
	for _, adminID := range c.AdminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}
