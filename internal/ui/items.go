package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) itemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the catalog items, grouped by section",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			items, err := a.repo.ListItems(ctx)
			if err != nil {
				return fmt.Errorf("listing items: %w", err)
			}
			headers, err := a.repo.ListHeaders(ctx)
			if err != nil {
				return fmt.Errorf("listing headers: %w", err)
			}

			if len(items) == 0 {
				fmt.Println(formatMuted("catalog is empty; run 'stickystrip seed'"))
				return nil
			}

			section := ""
			for _, it := range items {
				if it.Section != section {
					section = it.Section
					fmt.Println(formatSection(section))
				}
				marker := " "
				if _, ok := headers[it.ID]; ok {
					marker = "*" // carries the section's header binding
				}
				fmt.Printf("  %s %-24s %s\n", marker, it.Title, formatMuted(it.ID))
			}
			return nil
		},
	}
}
