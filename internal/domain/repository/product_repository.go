package repository

import (
	"context"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos.
// GetByID y GetBySKU devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
