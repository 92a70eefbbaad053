package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the catalog to the built-in demo data",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if err := a.repo.Seed(context.Background()); err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}

			fmt.Println("Catalog reset to demo data")
			return nil
		},
	}
}
