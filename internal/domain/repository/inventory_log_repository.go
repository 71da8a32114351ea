package repository

import (
	"context"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto del historial de inventario.
// Append-only: las entradas existentes nunca se tocan.
type InventoryLogRepository interface {
	List(ctx context.Context) ([]*entity.InventoryLogEntry, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryLogEntry, error)
	Append(ctx context.Context, entry *entity.InventoryLogEntry) error
}
