package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
	"github.com/your-org/petshop-storefront/internal/pkg/auth"
)

func TestTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		tokens := auth.NewTokenStore(storage.NewMemoryStore(), "petjoyz_admin_token")

		token, err := tokens.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, tokens.IsAuthenticated(ctx))

		require.NoError(t, tokens.SetToken(ctx, "opaque-token"))

		token, err = tokens.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", token)
		assert.True(t, tokens.IsAuthenticated(ctx))
	})

	t.Run("ClearForgetsToken", func(t *testing.T) {
		tokens := auth.NewTokenStore(storage.NewMemoryStore(), "petjoyz_admin_token")
		require.NoError(t, tokens.SetToken(ctx, "opaque-token"))
		require.NoError(t, tokens.Clear(ctx))

		token, err := tokens.Token(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, tokens.IsAuthenticated(ctx))
	})

	t.Run("EmptyTokenRejected", func(t *testing.T) {
		tokens := auth.NewTokenStore(storage.NewMemoryStore(), "petjoyz_admin_token")
		require.Error(t, tokens.SetToken(ctx, "  "))
	})

	t.Run("PersistsAcrossInstances", func(t *testing.T) {
		backing := storage.NewMemoryStore()
		first := auth.NewTokenStore(backing, "petjoyz_admin_token")
		require.NoError(t, first.SetToken(ctx, "opaque-token"))

		second := auth.NewTokenStore(backing, "petjoyz_admin_token")
		token, err := second.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", token)
	})
}
