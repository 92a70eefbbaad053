package db

import (
	"context"
	"fmt"

	"github.com/nivekalunya/stickystrip/internal/item"
)

// demoSections is the built-in demo catalog: a record shelf grouped by genre.
// The first title of each section gets the header binding.
var demoSections = []struct {
	name   string
	titles []string
}{
	{"Synthwave", []string{"Night Drive", "Neon Tide", "Afterglow", "Chrome Heart"}},
	{"Jazz", []string{"Blue Corner", "Midnight Walk", "Round Two"}},
	{"Ambient", []string{"Slow Light", "Glacier", "Undertow", "Still Air", "Low Orbit"}},
	{"Post-Rock", []string{"Signal Fire", "The Long Field"}},
	{"Soundtrack", []string{"Last Reel", "Open Credits", "Intermission"}},
}

// Seed resets the catalog to the built-in demo data.
func (s *SQLite) Seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM headers`); err != nil {
		return fmt.Errorf("clearing headers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	pos := 0
	for _, sec := range demoSections {
		for i, title := range sec.titles {
			id := item.Slug(sec.name, title)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO items (id, title, section, position) VALUES (?, ?, ?, ?)`,
				id, title, sec.name, pos,
			); err != nil {
				return fmt.Errorf("seeding item %q: %w", id, err)
			}
			if i == 0 {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO headers (item_id, title) VALUES (?, ?)`,
					id, sec.name,
				); err != nil {
					return fmt.Errorf("seeding header for %q: %w", id, err)
				}
			}
			pos++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// Empty reports whether the catalog has no items.
func (s *SQLite) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return false, fmt.Errorf("counting items: %w", err)
	}
	return n == 0, nil
}
