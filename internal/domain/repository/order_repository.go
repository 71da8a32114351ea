package repository

import (
	"context"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes.
// List preserva el orden de inserción.
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Append(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
}
