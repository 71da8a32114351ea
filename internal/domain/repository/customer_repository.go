package repository

import (
	"context"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
// GetByID devuelve (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
