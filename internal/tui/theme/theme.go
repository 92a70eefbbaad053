// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme, as hex strings.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cell blocks, subtle highlight
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Secondary text, gaps
	Accent      string `toml:"accent"`       // Title, borders
	Header      string `toml:"header"`       // Sticky header background
	HeaderText  string `toml:"header_text"`  // Sticky header foreground
	Cell        string `toml:"cell"`         // Cell background
	CellAlt     string `toml:"cell_alt"`     // Alternate cell shade per section
	Warning     string `toml:"warning"`      // Status/error messages
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}

	return &t, nil
}

// Available returns the names of all embedded themes, sorted.
func Available() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".toml")
		if name != e.Name() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
