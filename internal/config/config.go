// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Strip   StripConfig   `toml:"strip"`
	Storage StorageConfig `toml:"storage"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// StripConfig holds strip geometry settings, in terminal columns.
type StripConfig struct {
	CellWidth        int `toml:"cell_width"`        // width of one cell
	CellGap          int `toml:"cell_gap"`          // columns between cells
	PlaceholderWidth int `toml:"placeholder_width"` // header width before measurement
	ScrollStep       int `toml:"scroll_step"`       // columns per h/l keypress
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "mocha",
		},
		Strip: StripConfig{
			CellWidth:        18,
			CellGap:          1,
			PlaceholderWidth: 120,
			ScrollStep:       4,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "stickystrip.db"
	}
	return filepath.Join(home, ".local", "share", "stickystrip", "stickystrip.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "stickystrip", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STICKYSTRIP_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("STICKYSTRIP_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("STICKYSTRIP_CELL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Strip.CellWidth = n
		}
	}
	if v := os.Getenv("STICKYSTRIP_SCROLL_STEP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Strip.ScrollStep = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Strip.CellWidth <= 0 {
		return errors.New("cell_width must be positive")
	}
	if c.Strip.CellGap < 0 {
		return errors.New("cell_gap must be non-negative")
	}
	if c.Strip.PlaceholderWidth < 0 {
		return errors.New("placeholder_width must be non-negative")
	}
	if c.Strip.ScrollStep <= 0 {
		return errors.New("scroll_step must be positive")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// SaveTo writes the configuration to the given path, creating directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
