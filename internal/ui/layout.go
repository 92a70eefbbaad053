package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nivekalunya/stickystrip/internal/config"
	"github.com/nivekalunya/stickystrip/internal/item"
	"github.com/nivekalunya/stickystrip/internal/sticky"
)

func (a *App) layoutCmd() *cobra.Command {
	var (
		offset int
		width  int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed header layout at a scroll offset",
		Long: `Compute the sticky header layout for the catalog at the given scroll
offset and print one row per header: its title, leading-edge offset,
opacity, and measured width.

Example:
  stickystrip layout --offset 28`,
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

			layout, err := computeLayout(items, headers, a.config.Strip, offset)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = termWidth()
			}
			printLayout(layout, offset, width)
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Scroll offset in columns")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (default: terminal width)")

	return cmd
}

// computeLayout runs the positioner once for a fixed scroll offset, the same
// wiring the TUI performs on every scroll change.
func computeLayout(items []*item.Item, headers map[string]item.Header, strip config.StripConfig, offset int) ([]sticky.HeaderPlacement[item.Header], error) {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	pos, err := sticky.New(ids, headers,
		sticky.WithPlaceholderWidth[item.Header](float64(strip.PlaceholderWidth)))
	if err != nil {
		return nil, fmt.Errorf("building positioner: %w", err)
	}

	for id, h := range headers {
		w := runewidth.StringWidth(" " + h.Title + " ")
		if err := pos.ReportHeaderWidth(id, float64(w)); err != nil {
			return nil, err
		}
	}
	for i, it := range items {
		pos.ReportCellMoved(it.ID, float64(i*(strip.CellWidth+strip.CellGap)-offset))
	}

	return pos.HeaderLayout(), nil
}

// printLayout writes the layout table to stdout, truncated to width columns.
func printLayout(layout []sticky.HeaderPlacement[item.Header], offset, width int) {
	fmt.Println(formatHeader(fmt.Sprintf("Header layout at scroll offset %d", offset)))

	if len(layout) == 0 {
		fmt.Println(formatMuted("  (no headers)"))
		return
	}

	for _, pl := range layout {
		row := fmt.Sprintf("  %-20s offset=%7.1f  opacity=%.2f  width=%.0f",
			pl.Header.Title, pl.Offset, pl.Opacity, pl.Width)
		row = runewidth.Truncate(row, width, "…")

		switch {
		case pl.Opacity >= 1:
			fmt.Println(strings.Replace(row, pl.Header.Title, formatSection(pl.Header.Title), 1))
		case pl.Opacity > 0:
			fmt.Println(strings.Replace(row, pl.Header.Title, formatFaded(pl.Header.Title), 1))
		default:
			fmt.Println(formatMuted(row))
		}
	}
}
