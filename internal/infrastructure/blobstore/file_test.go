package blobstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("clave ausente", func(t *testing.T) {
		_, err := store.Get(ctx, "retailmaster_orders")
		require.ErrorIs(t, err, repository.ErrKeyNotFound)
	})

	t.Run("ida y vuelta", func(t *testing.T) {
		payload := []byte(`[{"id":"O1","customer":"Laura"}]`)
		require.NoError(t, store.Set(ctx, "retailmaster_orders", payload))

		got, err := store.Get(ctx, "retailmaster_orders")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("sobrescritura", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("v1")))
		require.NoError(t, store.Set(ctx, "k", []byte("v2")))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	t.Run("clave ausente", func(t *testing.T) {
		_, err := store.Get(ctx, "nada")
		require.ErrorIs(t, err, repository.ErrKeyNotFound)
	})

	t.Run("devuelve copias", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte("abc")))

		got, err := store.Get(ctx, "k")
		require.NoError(t, err)
		got[0] = 'x' // mutar la copia no afecta lo guardado

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
