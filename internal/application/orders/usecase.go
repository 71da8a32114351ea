// Package orders implementa el CRUD de órdenes y sus efectos sobre el
// inventario al momento de la venta.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/retailmaster-api/internal/application/inventory"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	domorder "github.com/jhoicas/retailmaster-api/internal/domain/order"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

// UseCase casos de uso sobre órdenes.
type UseCase struct {
	orders repository.OrderRepository
	ledger *inventory.StockLedger
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orders repository.OrderRepository,
	ledger *inventory.StockLedger,
	log *logger.Logger,
) *UseCase {
	return &UseCase{orders: orders, ledger: ledger, log: log}
}

// List devuelve todas las órdenes en orden de inserción.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Order, error) {
	return uc.orders.List(ctx)
}

// Get devuelve una orden por ID o ErrOrderNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("orden %s: %w", id, domain.ErrOrderNotFound)
	}
	return order, nil
}

// Create valida la orden, descuenta el inventario de los ítems de catálogo y
// la persiste.
//
// El inventario se muta ANTES de persistir la orden: si el guardado falla, el
// stock queda descontado sin compensación. Ventana de inconsistencia conocida
// del diseño original; se conserva porque el contrato del blob store (Set
// plano por clave) no permite atomicidad entre colecciones.
func (uc *UseCase) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, fmt.Errorf("la orden requiere al menos un ítem: %w", domain.ErrInvalidInput)
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("ítem %s: cantidad debe ser > 0: %w", item.ID, domain.ErrInvalidInput)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("ítem %s: precio negativo: %w", item.ID, domain.ErrInvalidInput)
		}
	}

	if order.ID == "" {
		order.ID = generateOrderID()
	}
	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	if order.Status == "" {
		order.Status = entity.StatusPending
	}
	if !order.Status.Valid() {
		return nil, fmt.Errorf("estado %q: %w", order.Status, domain.ErrInvalidInput)
	}

	existing, err := uc.orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("orden %s: %w", order.ID, domain.ErrDuplicate)
	}

	uc.deductInventory(ctx, order)

	if err := uc.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("persistir orden %s: %w", order.ID, err)
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("customer", order.Customer).
		Int("items", len(order.Items)).
		Msg("orden creada")

	return order, nil
}

// deductInventory descuenta el stock de cada ítem de catálogo y registra el
// movimiento como venta. Best-effort: un fallo en un ítem no detiene los
// demás ni aborta la creación de la orden.
func (uc *UseCase) deductInventory(ctx context.Context, order *entity.Order) {
	for _, item := range order.Items {
		if !item.Inventoried() {
			continue
		}
		if _, err := uc.ledger.Adjust(ctx, item.ID, -item.Quantity); err != nil {
			uc.log.Warn().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ID).
				Msg("no se pudo descontar inventario")
			continue
		}
		err := uc.ledger.AppendLog(ctx, entity.InventoryLogEntry{
			ProductID:      item.ID,
			ProductName:    item.Name,
			QuantityChange: -item.Quantity,
			ReasonType:     entity.ReasonTypeSale,
			Reason:         fmt.Sprintf("Sale - Order #%s", order.ID),
			UserID:         "system",
			Notes:          fmt.Sprintf("Automatic deduction from order %s", order.ID),
		})
		if err != nil {
			uc.log.Warn().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ID).
				Msg("no se pudo registrar el movimiento de venta")
		}
	}
}

// UpdateStatus cambia el estado de una orden respetando la tabla de
// transiciones: refunded y partial-refunded solo se alcanzan vía el
// procesador de reembolsos.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	order, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	if !domorder.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, status, domain.ErrInvalidTransition)
	}
	order.Status = status
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina la orden. No revierte los efectos previos sobre el
// inventario: el stock descontado y sus movimientos permanecen.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.orders.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("order_id", id).Msg("orden eliminada")
	return nil
}

// generateOrderID crea un ID legible: ORD-YYYYMMDD-XXXX.
func generateOrderID() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
