// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key-value blob store. It stands in for the browser's
// persisted storage: the cart, favorites and admin token are each one entry
// under a stable key. Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
