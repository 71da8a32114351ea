// Package order contiene la lógica pura de conciliación orden/reembolso:
// cantidades reembolsadas acumuladas, detección de reembolso total y el
// guard contra sobre-reembolsos.
package order

import (
	"fmt"

	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// RefundedQuantities suma, por ID de ítem, las cantidades reembolsadas a lo
// largo de todo el historial de reembolsos de la orden.
func RefundedQuantities(o *entity.Order) map[string]int {
	refunded := make(map[string]int)
	for _, r := range o.Refunds {
		for _, item := range r.Items {
			refunded[item.ID] += item.Quantity
		}
	}
	return refunded
}

// RemainingQuantities devuelve, por ID de ítem, la cantidad aún no
// reembolsada de cada línea de la orden.
func RemainingQuantities(o *entity.Order) map[string]int {
	refunded := RefundedQuantities(o)
	remaining := make(map[string]int, len(o.Items))
	for _, item := range o.Items {
		rest := item.Quantity - refunded[item.ID]
		if rest < 0 {
			rest = 0
		}
		remaining[item.ID] = rest
	}
	return remaining
}

// IsFullyRefunded indica si cada línea de la orden alcanzó (o superó) su
// cantidad ordenada dentro del historial de reembolsos.
func IsFullyRefunded(o *entity.Order) bool {
	if len(o.Refunds) == 0 {
		return false
	}
	refunded := RefundedQuantities(o)
	for _, item := range o.Items {
		if refunded[item.ID] < item.Quantity {
			return false
		}
	}
	return true
}

// ValidateRefundItems verifica que las líneas solicitadas no excedan la
// cantidad pendiente de reembolso de la orden. Líneas con ID desconocido
// también se rechazan. Devuelve ErrOverRefund envuelto con el detalle.
func ValidateRefundItems(o *entity.Order, items []entity.RefundItem) error {
	remaining := RemainingQuantities(o)
	requested := make(map[string]int)
	for _, item := range items {
		requested[item.ID] += item.Quantity
	}
	for id, qty := range requested {
		rest, ok := remaining[id]
		if !ok {
			return fmt.Errorf("ítem %s no pertenece a la orden %s: %w", id, o.ID, domain.ErrInvalidInput)
		}
		if qty > rest {
			return fmt.Errorf("ítem %s: solicitado %d, pendiente %d: %w", id, qty, rest, domain.ErrOverRefund)
		}
	}
	return nil
}
