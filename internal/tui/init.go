package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nivekalunya/stickystrip/internal/config"
	"github.com/nivekalunya/stickystrip/internal/db"
	"github.com/nivekalunya/stickystrip/internal/item"
)

// OpenRepo opens the catalog database, creating and seeding it on first run.
func OpenRepo(cfg *config.Config) (item.Repository, error) {
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	ctx := context.Background()
	empty, err := repo.Empty(ctx)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	if empty {
		if err := repo.Seed(ctx); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("seeding demo catalog: %w", err)
		}
	}

	return repo, nil
}
