// Package tui provides the terminal user interface for stickystrip.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nivekalunya/stickystrip/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	AppStyle   lipgloss.Style
	TitleStyle lipgloss.Style

	// Header lane
	HeaderStyle lipgloss.Style // one sticky header block, full opacity
	LaneStyle   lipgloss.Style // empty space in either lane

	// Cell lane
	CellStyle    lipgloss.Style
	CellAltStyle lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style
	PromptStyle  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		AppStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Background(p.Bg),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Background(p.Bg),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.HeaderText).
			Background(p.Header),
		LaneStyle: lipgloss.NewStyle().
			Background(p.Bg),

		CellStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.Cell),
		CellAltStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.CellAlt),

		StatusStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.Bg),
		WarningStyle: lipgloss.NewStyle().
			Foreground(p.Warning).
			Background(p.Bg),
		HelpStyle: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			Background(p.Bg),
		PromptStyle: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.BgHighlight).
			Padding(0, 1),
	}
}

// HeaderFaded returns the header style with its colors blended toward the
// background by the given opacity, the terminal rendering of the
// positioner's fade.
func (s *Styles) HeaderFaded(opacity float64) lipgloss.Style {
	if opacity >= 1 {
		return s.HeaderStyle
	}
	return s.HeaderStyle.
		Foreground(s.palette.Fade(s.palette.HeaderText, opacity)).
		Background(s.palette.Fade(s.palette.Header, opacity))
}
