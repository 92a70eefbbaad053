package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nivekalunya/stickystrip/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayoutCache(msg.Width, msg.Height)
		// A narrower viewport can strand the scroll offset past the end.
		m.scrollTo(m.scrollX)
		m.reportPositions()
		return m, nil

	case commands.CatalogLoadedMsg:
		m.loading = false
		if err := m.setCatalog(msg.Items, msg.Headers); err != nil {
			m.err = err
			return m, nil
		}
		logEvent("catalog_loaded", map[string]any{
			"items":   len(msg.Items),
			"headers": len(msg.Headers),
		})
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusWarn = false
		return m, nil
	}

	return m, nil
}
