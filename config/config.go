// Package config reads the moneytracker settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/logger"
	"github.com/etnz/moneytracker/storage"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by every command.
type Config struct {
	// Storage is the backend name, see storage.Backends.
	Storage string `env:"MT_STORAGE" envDefault:"dir"`
	// StoragePath is the directory of the "dir" and "sqlite" backends.
	// Defaults to a moneytracker directory under the user config dir.
	StoragePath string `env:"MT_STORAGE_PATH"`
	LogLevel    string `env:"MT_LOG_LEVEL" envDefault:"warn"`
	// Currency is used when the snapshot has no preference yet.
	Currency string `env:"MT_CURRENCY" envDefault:"MXN"`
}

// Load reads an optional .env file from dotenv paths (the working directory
// .env when none is given), then parses the environment. Variables already
// set take precedence over the file.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = DefaultStoragePath()
	}
	return cfg, nil
}

// DefaultStoragePath returns the per user data directory.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".moneytracker"
	}
	return filepath.Join(dir, "moneytracker")
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(storage.Backends, c.Storage) {
		problems = append(problems, fmt.Sprintf("invalid storage %q: must be one of %v", c.Storage, storage.Backends))
	}
	if c.Storage != storage.MemoryBackend && strings.TrimSpace(c.StoragePath) == "" {
		problems = append(problems, fmt.Sprintf("storage path cannot be empty with the %s backend", c.Storage))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := moneytracker.ValidCurrency(c.Currency); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
