package blobstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
)

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := blobstore.NewOrderRepository(blobstore.NewMemoryStore())

	t.Run("coleccion vacia", func(t *testing.T) {
		orders, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)

		got, err := repo.GetByID(ctx, "no-existe")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("append y lectura", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, &entity.Order{ID: "O1", Customer: "Laura", Status: entity.StatusPending}))
		require.NoError(t, repo.Append(ctx, &entity.Order{ID: "O2", Customer: "Pedro", Status: entity.StatusCompleted}))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "O1", orders[0].ID)
		assert.Equal(t, "O2", orders[1].ID)

		got, err := repo.GetByID(ctx, "O2")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Pedro", got.Customer)
	})

	t.Run("update existente y ausente", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, &entity.Order{ID: "O1", Customer: "Laura", Status: entity.StatusCancelled}))

		got, err := repo.GetByID(ctx, "O1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, got.Status)

		err = repo.Update(ctx, &entity.Order{ID: "fantasma"})
		require.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("delete existente y ausente", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "O1"))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "O2", orders[0].ID)

		require.ErrorIs(t, repo.Delete(ctx, "O1"), domain.ErrOrderNotFound)
	})
}
