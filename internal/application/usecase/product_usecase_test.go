package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailmaster-api/internal/application/dto"
	"github.com/jhoicas/retailmaster-api/internal/application/usecase"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, context.Context) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	return usecase.NewProductUseCase(blobstore.NewProductRepository(store)), context.Background()
}

func TestProductCreate(t *testing.T) {
	uc, ctx := newProductUC(t)

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		SKU: "TSHIRT-1", Name: "Camiseta", Price: decimal.NewFromInt(25),
		Cost: decimal.NewFromInt(9), Stock: 40, ReorderLevel: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 40, p.Stock)

	t.Run("sku duplicado", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "TSHIRT-1", Name: "Otra"})
		require.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("sin sku", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sin SKU"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("precio negativo", func(t *testing.T) {
		_, err := uc.Create(ctx, dto.CreateProductRequest{
			SKU: "NEG", Name: "Negativo", Price: decimal.NewFromInt(-1),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	uc, ctx := newProductUC(t)
	p, err := uc.Create(ctx, dto.CreateProductRequest{
		SKU: "MUG-1", Name: "Mug", Price: decimal.NewFromInt(12), Stock: 60,
	})
	require.NoError(t, err)

	newName := "Mug con logo"
	newPrice := decimal.NewFromInt(14)
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Mug con logo", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(14)))
	assert.Equal(t, 60, updated.Stock)
}

func TestProductListLowStock(t *testing.T) {
	uc, ctx := newProductUC(t)
	_, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "A", Name: "Alto", Stock: 50, ReorderLevel: 10})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "B", Name: "Bajo", Stock: 3, ReorderLevel: 10})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "C", Name: "Justo", Stock: 10, ReorderLevel: 10})
	require.NoError(t, err)

	low, err := uc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "B", low[0].SKU)
	assert.Equal(t, "C", low[1].SKU)
}

func TestProductDelete(t *testing.T) {
	uc, ctx := newProductUC(t)
	p, err := uc.Create(ctx, dto.CreateProductRequest{SKU: "DEL", Name: "Borrar"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, p.ID))
	_, err = uc.Get(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	t.Run("inexistente", func(t *testing.T) {
		err := uc.Delete(ctx, "NO-EXISTE")
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
