// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nivekalunya/stickystrip/internal/item"
)

// SQLite implements item.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListItems returns all items ordered by position.
func (s *SQLite) ListItems(ctx context.Context) ([]*item.Item, error) {
	query := `
		SELECT id, title, section, position
		FROM items
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Section, &it.Position); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// ListHeaders returns the item-id -> header map.
func (s *SQLite) ListHeaders(ctx context.Context) (map[string]item.Header, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item_id, title FROM headers`)
	if err != nil {
		return nil, fmt.Errorf("listing headers: %w", err)
	}
	defer rows.Close()

	headers := make(map[string]item.Header)
	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("scanning header: %w", err)
		}
		headers[id] = item.Header{Title: title}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating headers: %w", err)
	}

	return headers, nil
}

// CreateItem appends an item to the catalog. A zero Position places the item
// after the current last one.
func (s *SQLite) CreateItem(ctx context.Context, it *item.Item) error {
	if it.ID == "" {
		it.ID = item.Slug(it.Section, it.Title)
	}

	pos := it.Position
	if pos == 0 {
		var max sql.NullInt64
		if err := s.db.QueryRowContext(ctx, `SELECT MAX(position) FROM items`).Scan(&max); err != nil {
			return fmt.Errorf("finding last position: %w", err)
		}
		if max.Valid {
			pos = int(max.Int64) + 1
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, title, section, position) VALUES (?, ?, ?, ?)`,
		it.ID, it.Title, it.Section, pos,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", item.ErrDuplicateItem, it.ID)
		}
		return fmt.Errorf("inserting item: %w", err)
	}
	it.Position = pos

	return nil
}

// SetHeader binds a header to an item, replacing any existing binding.
func (s *SQLite) SetHeader(ctx context.Context, itemID string, h item.Header) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM items WHERE id = ?`, itemID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", item.ErrItemNotFound, itemID)
	}
	if err != nil {
		return fmt.Errorf("checking item: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO headers (item_id, title) VALUES (?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET title = excluded.title`,
		itemID, h.Title,
	)
	if err != nil {
		return fmt.Errorf("binding header: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint error.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
