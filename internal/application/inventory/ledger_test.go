package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailmaster-api/internal/application/inventory"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

func newLedger(t *testing.T) (*inventory.StockLedger, *blobstore.ProductRepository, context.Context) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	products := blobstore.NewProductRepository(store)
	logs := blobstore.NewInventoryLogRepository(store)
	return inventory.NewStockLedger(products, logs, log), products, context.Background()
}

func TestAdjust(t *testing.T) {
	ledger, products, ctx := newLedger(t)
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "P1", SKU: "SKU-P1", Name: "Camiseta", Price: decimal.NewFromInt(10), Stock: 5,
	}))

	t.Run("venta descuenta", func(t *testing.T) {
		stock, err := ledger.Adjust(ctx, "P1", -3)
		require.NoError(t, err)
		assert.Equal(t, 2, stock)
	})

	t.Run("devolución suma", func(t *testing.T) {
		stock, err := ledger.Adjust(ctx, "P1", 1)
		require.NoError(t, err)
		assert.Equal(t, 3, stock)
	})

	// Sin piso: la sobreventa deja stock negativo
	t.Run("puede quedar negativo", func(t *testing.T) {
		stock, err := ledger.Adjust(ctx, "P1", -10)
		require.NoError(t, err)
		assert.Equal(t, -7, stock)
	})

	t.Run("producto desconocido", func(t *testing.T) {
		_, err := ledger.Adjust(ctx, "NO-EXISTE", 1)
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestAppendLog_CompletaIDYTimestamp(t *testing.T) {
	ledger, _, ctx := newLedger(t)

	err := ledger.AppendLog(ctx, entity.InventoryLogEntry{
		ProductID:      "P1",
		ProductName:    "Camiseta",
		QuantityChange: -2,
		ReasonType:     entity.ReasonTypeSale,
		Reason:         "Sale - Order #O1",
		UserID:         "system",
	})
	require.NoError(t, err)

	entries, err := ledger.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestHistoryByProduct_SoloDelProducto(t *testing.T) {
	ledger, _, ctx := newLedger(t)

	for _, e := range []entity.InventoryLogEntry{
		{ProductID: "P1", QuantityChange: -1, ReasonType: entity.ReasonTypeSale},
		{ProductID: "P2", QuantityChange: -2, ReasonType: entity.ReasonTypeSale},
		{ProductID: "P1", QuantityChange: 1, ReasonType: entity.ReasonTypeReturn},
	} {
		require.NoError(t, ledger.AppendLog(ctx, e))
	}

	entries, err := ledger.HistoryByProduct(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ReasonTypeSale, entries[0].ReasonType)
	assert.Equal(t, entity.ReasonTypeReturn, entries[1].ReasonType)
}
