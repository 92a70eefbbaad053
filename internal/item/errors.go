package item

import "errors"

// Repository errors.
var (
	ErrDuplicateItem = errors.New("item id already exists")
	ErrItemNotFound  = errors.New("item not found")
)
