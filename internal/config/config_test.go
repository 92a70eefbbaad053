package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected default theme mocha, got %q", cfg.UI.Theme)
	}
	if cfg.Strip.PlaceholderWidth != 120 {
		t.Errorf("expected placeholder width 120, got %d", cfg.Strip.PlaceholderWidth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Strip.CellWidth != Default().Strip.CellWidth {
		t.Errorf("missing file should yield defaults")
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
theme = "latte"

[strip]
cell_width = 24
scroll_step = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %q", cfg.UI.Theme)
	}
	if cfg.Strip.CellWidth != 24 {
		t.Errorf("expected cell_width 24, got %d", cfg.Strip.CellWidth)
	}
	// Unset fields keep defaults.
	if cfg.Strip.CellGap != Default().Strip.CellGap {
		t.Errorf("expected default cell_gap, got %d", cfg.Strip.CellGap)
	}
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("STICKYSTRIP_THEME", "latte")
	t.Setenv("STICKYSTRIP_CELL_WIDTH", "30")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected env theme latte, got %q", cfg.UI.Theme)
	}
	if cfg.Strip.CellWidth != 30 {
		t.Errorf("expected env cell_width 30, got %d", cfg.Strip.CellWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cell width", func(c *Config) { c.Strip.CellWidth = 0 }},
		{"negative gap", func(c *Config) { c.Strip.CellGap = -1 }},
		{"negative placeholder", func(c *Config) { c.Strip.PlaceholderWidth = -1 }},
		{"zero scroll step", func(c *Config) { c.Strip.ScrollStep = 0 }},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	cfg.Strip.ScrollStep = 6

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.UI.Theme != "latte" || loaded.Strip.ScrollStep != 6 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
