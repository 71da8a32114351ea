package blobstore

import (
	"context"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// InventoryLogRepository implementa el historial append-only de inventario
// sobre el blob store.
type InventoryLogRepository struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewInventoryLogRepository construye el repositorio.
func NewInventoryLogRepository(store repository.BlobStore) *InventoryLogRepository {
	return &InventoryLogRepository{store: store}
}

func (r *InventoryLogRepository) load(ctx context.Context) ([]*entity.InventoryLogEntry, error) {
	var entries []*entity.InventoryLogEntry
	if err := loadCollection(ctx, r.store, KeyInventoryLogs, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// List devuelve todas las entradas en orden de inserción.
func (r *InventoryLogRepository) List(ctx context.Context) ([]*entity.InventoryLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// ListByProduct devuelve las entradas de un producto.
func (r *InventoryLogRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.InventoryLogEntry, 0)
	for _, e := range entries {
		if e.ProductID == productID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Append agrega la entrada al final del historial. Las entradas previas
// nunca se modifican.
func (r *InventoryLogRepository) Append(ctx context.Context, entry *entity.InventoryLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return saveCollection(ctx, r.store, KeyInventoryLogs, entries)
}
