package ui

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/nivekalunya/stickystrip/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()

			if write {
				if err := a.config.SaveTo(path); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", path)
				return nil
			}

			data, err := toml.Marshal(a.config)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			fmt.Println(formatMuted("# " + path))
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the effective config to the default path")

	return cmd
}
