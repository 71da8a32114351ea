package blobstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// CustomerRepository implementa repository.CustomerRepository sobre el blob store.
type CustomerRepository struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(store repository.BlobStore) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) load(ctx context.Context) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	if err := loadCollection(ctx, r.store, KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// List devuelve todos los clientes.
func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customers, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Create agrega el cliente a la colección.
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customers, err := r.load(ctx)
	if err != nil {
		return err
	}
	customers = append(customers, customer)
	return saveCollection(ctx, r.store, KeyCustomers, customers)
}

// Update reemplaza el cliente con el mismo ID.
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customers, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, c := range customers {
		if c.ID == customer.ID {
			customers[i] = customer
			return saveCollection(ctx, r.store, KeyCustomers, customers)
		}
	}
	return fmt.Errorf("cliente %s: %w", customer.ID, domain.ErrNotFound)
}

// Delete elimina el cliente por ID.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customers, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := customers[:0]
	found := false
	for _, c := range customers {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return saveCollection(ctx, r.store, KeyCustomers, kept)
}
