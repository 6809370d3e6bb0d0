// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is read first if present; real
// environment variables take precedence over it.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the knobs for one run of the game.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	ClearScreen bool   `env:"GUESS_CLEAR_SCREEN" envDefault:"false"`
	ParseHint   bool   `env:"GUESS_PARSE_HINT" envDefault:"true"`
}

// Load reads .env (best effort) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse decodes the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
