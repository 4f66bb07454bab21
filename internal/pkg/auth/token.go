// internal/pkg/auth/token.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
)

// TokenStore persists the admin bearer token under a stable storage key.
// The token is opaque: it is stored and forwarded, never parsed.
// TokenStore implements the API client's token source.
type TokenStore struct {
	store storage.Store
	key   string
}

// NewTokenStore creates a token store backed by the given storage
func NewTokenStore(store storage.Store, key string) *TokenStore {
	return &TokenStore{store: store, key: key}
}

// SetToken saves the token, replacing any previous one
func (t *TokenStore) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("auth: refusing to store an empty token")
	}
	if err := t.store.Set(ctx, t.key, []byte(token)); err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	return nil
}

// Token returns the stored token, or an empty string when none is stored.
// An empty token means requests go out unauthenticated.
func (t *TokenStore) Token(ctx context.Context) (string, error) {
	data, err := t.store.Get(ctx, t.key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth token: %w", err)
	}
	return string(data), nil
}

// Clear forgets the stored token
func (t *TokenStore) Clear(ctx context.Context) error {
	if err := t.store.Delete(ctx, t.key); err != nil {
		return fmt.Errorf("failed to clear auth token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a token is currently stored
func (t *TokenStore) IsAuthenticated(ctx context.Context) bool {
	token, err := t.Token(ctx)
	return err == nil && token != ""
}
