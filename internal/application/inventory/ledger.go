// Package inventory implementa el libro de inventario: ajustes de stock y el
// historial append-only de movimientos.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

// StockLedger ajusta el stock de productos y registra cada movimiento.
// Cada mutación de stock va seguida de una entrada en el historial
// (write-after-write; no hay atomicidad entre ambos escritos).
type StockLedger struct {
	products repository.ProductRepository
	logs     repository.InventoryLogRepository
	log      *logger.Logger
}

// NewStockLedger construye el libro de inventario.
func NewStockLedger(
	products repository.ProductRepository,
	logs repository.InventoryLogRepository,
	log *logger.Logger,
) *StockLedger {
	return &StockLedger{products: products, logs: logs, log: log}
}

// Adjust suma delta al stock del producto (negativo = venta, positivo =
// devolución) y devuelve el stock resultante. El stock puede quedar negativo
// si se sobrevende; no hay piso forzado. Producto desconocido devuelve
// ErrProductNotFound.
func (l *StockLedger) Adjust(ctx context.Context, productID string, delta int) (int, error) {
	product, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("buscar producto %s: %w", productID, err)
	}
	if product == nil {
		return 0, fmt.Errorf("producto %s: %w", productID, domain.ErrProductNotFound)
	}

	product.Stock += delta
	product.UpdatedAt = time.Now()
	if err := l.products.Update(ctx, product); err != nil {
		return 0, fmt.Errorf("actualizar stock de %s: %w", productID, err)
	}

	l.log.Debug().
		Str("product_id", productID).
		Int("delta", delta).
		Int("stock", product.Stock).
		Msg("stock ajustado")

	return product.Stock, nil
}

// AppendLog registra una entrada en el historial de inventario. Completa ID y
// Timestamp si vienen vacíos. Las entradas previas nunca se modifican.
func (l *StockLedger) AppendLog(ctx context.Context, entry entity.InventoryLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := l.logs.Append(ctx, &entry); err != nil {
		return fmt.Errorf("registrar movimiento de %s: %w", entry.ProductID, err)
	}
	return nil
}

// History devuelve el historial completo de movimientos.
func (l *StockLedger) History(ctx context.Context) ([]*entity.InventoryLogEntry, error) {
	return l.logs.List(ctx)
}

// HistoryByProduct devuelve los movimientos de un producto.
func (l *StockLedger) HistoryByProduct(ctx context.Context, productID string) ([]*entity.InventoryLogEntry, error) {
	return l.logs.ListByProduct(ctx, productID)
}
