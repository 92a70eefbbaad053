// Package ui provides the command line interface for stickystrip.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nivekalunya/stickystrip/internal/config"
	"github.com/nivekalunya/stickystrip/internal/item"
	"github.com/nivekalunya/stickystrip/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   item.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo item.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "stickystrip",
		Short: "A horizontally scrolling strip with sticky section headers",
		Long: `Stickystrip renders a horizontally scrolling strip of cells whose
section headers pin to the left edge and are pushed off-screen by the
next section's header, fading as they go.

Run without arguments for the interactive strip; use the subcommands to
inspect the catalog and the computed layout.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to stickystrip-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.itemsCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.seedCmd())
	a.root.AddCommand(a.layoutCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("stickystrip %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the catalog database if no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := tui.OpenRepo(a.config)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if one was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
