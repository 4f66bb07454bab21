// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

// Store holds the authoritative client-side shopping cart. All reads and
// writes go through it; no other component touches the collection directly.
//
// Every mutation persists write-through via the injected Repository. When a
// save fails the in-memory change is rolled back and the error returned, so
// memory and storage never diverge past a single failed write.
type Store struct {
	mu    sync.Mutex
	repo  Repository
	items []LineItem
}

// NewStore creates a cart store seeded from the repository, which is the
// source of truth across restarts
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	items, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cart: %w", err)
	}
	return &Store{repo: repo, items: items}, nil
}

// Add puts the product in the cart. A product already present has its
// quantity incremented by 1; anything else is appended with quantity 1.
// No stock or maximum-quantity check is made here.
func (s *Store) Add(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].ID == item.ID {
				s.items[i].Quantity++
				return
			}
		}
		s.items = append(s.items, LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
			Image:    item.Image,
			Size:     item.Size,
		})
	})
}

// Remove deletes the line item with the given id. Removing an absent id is
// a no-op, so the call is idempotent.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return
			}
		}
	})
}

// UpdateQuantity sets the quantity for the given id. Quantities below 1 are
// ignored: removal goes through Remove, never through a zero quantity.
// Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Quantity = quantity
				return
			}
		}
	})
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutate(ctx, func() {
		s.items = []LineItem{}
	})
}

// Reload replaces the in-memory collection with the persisted one. Hook for
// reconciling after another writer (a second tab, another process) changed
// the underlying storage.
func (s *Store) Reload(ctx context.Context) error {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

// ItemQuantity returns the quantity for the given id, 0 when absent
func (s *Store) ItemQuantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item.Quantity
		}
	}
	return 0
}

// Items returns a snapshot copy of the cart in insertion order
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of price * quantity over all line items
func (s *Store) Total() catalog.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total catalog.Cents
	for _, item := range s.items {
		total += item.Price * catalog.Cents(item.Quantity)
	}
	return total
}

// Count returns the sum of all quantities (items, not lines)
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Totals returns all derived aggregates in one read
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := Totals{Lines: len(s.items)}
	for _, item := range s.items {
		totals.Count += item.Quantity
		totals.Subtotal += item.Price * catalog.Cents(item.Quantity)
	}
	return totals
}

// mutate applies fn to the collection and persists the result, restoring
// the previous collection when the save fails. Callers hold the lock.
func (s *Store) mutate(ctx context.Context, fn func()) error {
	snapshot := make([]LineItem, len(s.items))
	copy(snapshot, s.items)

	fn()

	if err := s.repo.Save(ctx, s.items); err != nil {
		s.items = snapshot
		return err
	}
	return nil
}
