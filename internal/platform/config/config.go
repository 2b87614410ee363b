package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const todayLayout = "2006-01-02"

// Check captures configuration for the registration checker.
type Check struct {
	LogLevel string `env:"REGCHECK_LOG_LEVEL" envDefault:"info"`
	Format   string `env:"REGCHECK_FORMAT" envDefault:"json"`
	// Today pins the reference date (yyyy-mm-dd) so batch runs are reproducible.
	// Empty means the system clock.
	Today string `env:"REGCHECK_TODAY"`
}

// FromEnv builds a Check config from environment variables so main stays lean.
// Values in a local .env file are loaded first when present; real environment
// variables win over them.
func FromEnv() (Check, error) {
	_ = godotenv.Load()

	var cfg Check
	if err := env.Parse(&cfg); err != nil {
		return Check{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Format != "json" && cfg.Format != "yaml" {
		return Check{}, fmt.Errorf("REGCHECK_FORMAT must be json or yaml, got %q", cfg.Format)
	}
	if _, err := cfg.ReferenceTime(); err != nil {
		return Check{}, err
	}
	return cfg, nil
}

// ReferenceTime returns the pinned day at midnight UTC, or the zero time when
// Today is unset.
func (c Check) ReferenceTime() (time.Time, error) {
	if c.Today == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(todayLayout, c.Today)
	if err != nil {
		return time.Time{}, fmt.Errorf("REGCHECK_TODAY must be yyyy-mm-dd: %w", err)
	}
	return t, nil
}
