// Package config loads runtime configuration from YAML files. Every Load
// starts from code defaults, so a missing file is a valid zero-setup run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rates holds session-wide tuning multipliers. Only drop quality lives
// here; experience scaling is part of the balance tables.
type Rates struct {
	DropQualityMultiplier float64 `yaml:"drop_quality_multiplier"`
}

// DefaultRates returns Rates with x1 multipliers.
func DefaultRates() Rates {
	return Rates{
		DropQualityMultiplier: 1.0,
	}
}

// DatabaseConfig holds PostgreSQL connection parameters for the
// progression store. When Enabled is false the in-memory store is used.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Game holds all configuration for a game session.
type Game struct {
	// Simulation
	TickRate int `yaml:"tick_rate"` // fixed update frequency, Hz

	// Balance overrides file. Empty means built-in tables only.
	BalancePath string `yaml:"balance_path"`

	// Progression
	SaveSecret       string         `yaml:"save_secret"`
	AutosaveInterval int            `yaml:"autosave_interval"` // seconds
	Database         DatabaseConfig `yaml:"database"`

	Rates Rates `yaml:"rates"`
}

// DefaultGame returns Game config with sensible defaults.
func DefaultGame() Game {
	return Game{
		TickRate:         30,
		SaveSecret:       "brimstone-dev",
		AutosaveInterval: 30,
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     5432,
			User:     "brimstone",
			Password: "brimstone",
			DBName:   "brimstone",
			SSLMode:  "disable",
		},
		Rates: DefaultRates(),
	}
}

// LoadGame loads game config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TickRate <= 0 {
		return cfg, fmt.Errorf("config %s: tick_rate must be positive, got %d", path, cfg.TickRate)
	}

	return cfg, nil
}
