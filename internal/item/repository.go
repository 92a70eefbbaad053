package item

import "context"

// Repository defines the storage interface for the strip catalog.
type Repository interface {
	// ListItems returns all items ordered by Position.
	ListItems(ctx context.Context) ([]*Item, error)

	// ListHeaders returns the sparse item-id -> header binding map.
	ListHeaders(ctx context.Context) (map[string]Header, error)

	// CreateItem appends an item to the catalog. An empty Position means
	// "after the current last item". Returns ErrDuplicateItem if the ID is
	// already taken.
	CreateItem(ctx context.Context, it *Item) error

	// SetHeader binds a header to an item, replacing any existing binding.
	// Returns ErrItemNotFound if the item does not exist.
	SetHeader(ctx context.Context, itemID string, h Header) error

	// Seed resets the catalog to the built-in demo data.
	Seed(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}
