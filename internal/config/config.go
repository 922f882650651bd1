// Package config reads the hotelquote settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/tarifa/money"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"prod"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Currency of the hotel catalog
	Currency money.Currency `env:"HOTELQUOTE_CURRENCY" envDefault:"BRL"`
	// Prompt prints "Input:" before reading each request
	Prompt bool `env:"HOTELQUOTE_PROMPT" envDefault:"true"`
	// ShowPrices prints every hotel total along with the cheapest name
	ShowPrices bool `env:"HOTELQUOTE_SHOW_PRICES"`
}

// Load reads variables from the given .env files, or ./.env when none is
// given, without overriding the environment, and then parses the environment.
// Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDev reports whether the program runs in a development environment.
func (c *Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Currency == money.XXX {
		errs = append(errs, "HOTELQUOTE_CURRENCY must name a currency")
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}
