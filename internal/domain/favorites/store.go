// internal/domain/favorites/store.go
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/petshop-storefront/internal/domain/catalog"
	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
)

// Repository loads and saves the serialized favorites collection
type Repository interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

type storeRepository struct {
	store storage.Store
	key   string
}

// NewRepository keeps the favorites as one JSON entry in the given store
func NewRepository(store storage.Store, key string) Repository {
	return &storeRepository{store: store, key: key}
}

func (r *storeRepository) Load(ctx context.Context) ([]Item, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}, nil
	}
	return items, nil
}

func (r *storeRepository) Save(ctx context.Context, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

// Store holds the user's saved-for-later products with the same
// write-through persistence contract as the cart store.
type Store struct {
	mu    sync.Mutex
	repo  Repository
	items []Item
	now   func() time.Time
}

// NewStore creates a favorites store seeded from the repository
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize favorites: %w", err)
	}
	return &Store{repo: repo, items: items, now: time.Now}, nil
}

// Add saves the product. Adding an id already present is a no-op.
func (s *Store) Add(ctx context.Context, product catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		for _, item := range s.items {
			if item.ProductID == product.ID {
				return
			}
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		s.items = append(s.items, Item{
			ProductID: product.ID,
			Title:     product.Title,
			Image:     image,
			Price:     product.Price,
			AddedAt:   s.now().UTC(),
		})
	})
}

// Remove deletes the entry for the given product id, no-op when absent
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].ProductID == productID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return
			}
		}
	})
}

// Toggle adds the product when absent and removes it when present,
// returning whether the product is favorited afterwards
func (s *Store) Toggle(ctx context.Context, product catalog.Product) (bool, error) {
	if s.Contains(product.ID) {
		return false, s.Remove(ctx, product.ID)
	}
	return true, s.Add(ctx, product)
}

// Clear empties the favorites
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		s.items = []Item{}
	})
}

// Contains reports whether the product is favorited
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy in insertion order
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of favorited products
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) mutate(ctx context.Context, fn func()) error {
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)

	fn()

	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = snapshot
		return err
	}
	return nil
}
