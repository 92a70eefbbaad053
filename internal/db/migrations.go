package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS items (
			id       TEXT PRIMARY KEY,
			title    TEXT NOT NULL,
			section  TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS headers (
			item_id TEXT PRIMARY KEY REFERENCES items(id),
			title   TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating catalog tables: %w", err)
	}

	return nil
}
