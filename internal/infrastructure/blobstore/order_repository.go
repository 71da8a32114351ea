package blobstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// OrderRepository implementa repository.OrderRepository sobre el blob store.
type OrderRepository struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(store repository.BlobStore) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) load(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := loadCollection(ctx, r.store, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// List devuelve todas las órdenes en orden de inserción.
func (r *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID devuelve la orden o (nil, nil) si no existe.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

// Append agrega la orden al final de la colección.
func (r *OrderRepository) Append(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, order)
	return saveCollection(ctx, r.store, KeyOrders, orders)
}

// Update reemplaza la orden con el mismo ID.
func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, o := range orders {
		if o.ID == order.ID {
			orders[i] = order
			return saveCollection(ctx, r.store, KeyOrders, orders)
		}
	}
	return fmt.Errorf("orden %s: %w", order.ID, domain.ErrOrderNotFound)
}

// Delete elimina la orden por ID. No tiene efectos en cascada.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := orders[:0]
	found := false
	for _, o := range orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return fmt.Errorf("orden %s: %w", id, domain.ErrOrderNotFound)
	}
	return saveCollection(ctx, r.store, KeyOrders, kept)
}
