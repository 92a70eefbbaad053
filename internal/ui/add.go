package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nivekalunya/stickystrip/internal/item"
)

func (a *App) addCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an item to the catalog",
		Long: `Add an item at the end of the strip. The first item of a new section
gets the section's header binding automatically.

Example:
  stickystrip add "Night Drive" --section Synthwave`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return errors.New("title must not be empty")
			}
			if strings.TrimSpace(section) == "" {
				return errors.New("--section is required")
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := context.Background()

			existing, err := a.repo.ListItems(ctx)
			if err != nil {
				return fmt.Errorf("listing items: %w", err)
			}
			newSection := true
			for _, it := range existing {
				if it.Section == section {
					newSection = false
					break
				}
			}

			it := &item.Item{Title: title, Section: section}
			if err := a.repo.CreateItem(ctx, it); err != nil {
				return fmt.Errorf("adding item: %w", err)
			}
			if newSection {
				if err := a.repo.SetHeader(ctx, it.ID, item.Header{Title: section}); err != nil {
					return fmt.Errorf("binding section header: %w", err)
				}
			}

			fmt.Printf("Added %s (%s)\n", formatSection(title), formatMuted(it.ID))
			if newSection {
				fmt.Printf("New section %s gets the header binding\n", formatSection(section))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Section the item belongs to (required)")

	return cmd
}
