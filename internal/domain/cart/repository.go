// internal/domain/cart/repository.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
)

// Repository loads and saves the serialized cart collection. Injecting it
// into the store keeps the persistence mechanism swappable and testable.
type Repository interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}

type storeRepository struct {
	store storage.Store
	key   string
}

// NewRepository creates a Repository that keeps the cart as one JSON entry
// in the given store. The key must stay stable across app versions so the
// cart survives upgrades.
func NewRepository(store storage.Store, key string) Repository {
	return &storeRepository{store: store, key: key}
}

func (r *storeRepository) Load(ctx context.Context) ([]LineItem, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Unreadable payloads (old schema, corruption) reset to an empty
		// cart instead of wedging the store.
		return []LineItem{}, nil
	}
	return items, nil
}

func (r *storeRepository) Save(ctx context.Context, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
