package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nivekalunya/stickystrip/internal/tui/commands"
	"github.com/nivekalunya/stickystrip/internal/tui/theme"
)

const statusLifetime = 3 * time.Second

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeJump {
		return m.handleJumpKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.config.Strip.ScrollStep

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Scrolling
	case "h", "left":
		m.scrollBy(-step)
	case "l", "right":
		m.scrollBy(step)
	case "H", "pgup":
		m.scrollBy(-m.layout.LaneW)
	case "L", "pgdown":
		m.scrollBy(m.layout.LaneW)
	case "0", "home":
		m.scrollTo(0)
	case "$", "end":
		m.scrollTo(m.layout.MaxScroll)

	// Jump to section
	case "g":
		m.mode = ModeJump
		m.jump.SetValue("")
		m.jump.Focus()

	// Theme cycling
	case "t":
		next := nextTheme(m.theme.Name)
		if err := m.applyTheme(next); err != nil {
			m.setStatus(fmt.Sprintf("theme %s: %v", next, err), true)
		} else {
			m.setStatus("theme: "+next, false)
		}
		return m, commands.ClearStatusAfter(statusLifetime)

	// Copy layout to clipboard
	case "y":
		if err := clipboard.WriteAll(m.formatLayout()); err != nil {
			m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
		} else {
			m.setStatus("layout copied", false)
		}
		return m, commands.ClearStatusAfter(statusLifetime)

	// Reload catalog
	case "r":
		m.loading = true
		return m, commands.LoadCatalog(m.repo)

	case "?":
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// handleJumpKeys handles keys while typing a section name.
func (m Model) handleJumpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.jump.Blur()
		return m, nil

	case "enter":
		name := m.jump.Value()
		m.mode = ModeNormal
		m.jump.Blur()
		if !m.jumpToSection(name) {
			m.setStatus(fmt.Sprintf("no section %q", name), true)
			return m, commands.ClearStatusAfter(statusLifetime)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// nextTheme returns the theme after name in the embedded theme list.
func nextTheme(name string) string {
	names := theme.Available()
	if len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
