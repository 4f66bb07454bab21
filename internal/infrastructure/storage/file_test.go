package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/petshop-storefront/internal/infrastructure/storage"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		store, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "petjoyz-cart", []byte(`[{"id":"p1"}]`)))

		data, err := store.Get(ctx, "petjoyz-cart")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"p1"}]`, string(data))
	})

	t.Run("MissingKeyReturnsErrNotFound", func(t *testing.T) {
		store, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Get(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		store, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "k", []byte("one")))
		require.NoError(t, store.Set(ctx, "k", []byte("two")))

		data, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", string(data))
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		store, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		require.NoError(t, store.Delete(ctx, "k"))
		require.NoError(t, store.Delete(ctx, "k"))

		_, err = store.Get(ctx, "k")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("KeysAreFilesystemSafe", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "../escape/attempt", []byte("v")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

		data, err := store.Get(ctx, "../escape/attempt")
		require.NoError(t, err)
		assert.Equal(t, "v", string(data))
	})

	t.Run("NoTempFilesLeftBehind", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "a", []byte("1")))
		require.NoError(t, store.Set(ctx, "b", []byte("2")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTripAndDelete", func(t *testing.T) {
		store := storage.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		data, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", string(data))

		require.NoError(t, store.Delete(ctx, "k"))
		_, err = store.Get(ctx, "k")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k", []byte("abc")))

		data, err := store.Get(ctx, "k")
		require.NoError(t, err)
		data[0] = 'x'

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})
}
