// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nivekalunya/stickystrip/internal/item"
)

// CatalogLoadedMsg is sent when the item catalog is loaded.
type CatalogLoadedMsg struct {
	Items   []*item.Item
	Headers map[string]item.Header
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadCatalog loads the items and header bindings from the repository.
func LoadCatalog(repo item.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		items, err := repo.ListItems(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		headers, err := repo.ListHeaders(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return CatalogLoadedMsg{Items: items, Headers: headers}
	}
}

// ClearStatusAfter clears the status message after the given delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
