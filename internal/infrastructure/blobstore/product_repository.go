package blobstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre el blob store.
type ProductRepository struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store repository.BlobStore) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) load(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := loadCollection(ctx, r.store, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List devuelve todos los productos.
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetBySKU devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

// Create agrega el producto a la colección.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	products = append(products, product)
	return saveCollection(ctx, r.store, KeyProducts, products)
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return saveCollection(ctx, r.store, KeyProducts, products)
		}
	}
	return fmt.Errorf("producto %s: %w", product.ID, domain.ErrProductNotFound)
}

// Delete elimina el producto por ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	products, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("producto %s: %w", id, domain.ErrProductNotFound)
	}
	return saveCollection(ctx, r.store, KeyProducts, kept)
}
