// Package refunds implementa el núcleo de orquestación del módulo: la
// conciliación orden / inventario / historial al procesar un reembolso.
//
// Política deliberada de "mejor esfuerzo con reporte": la operación completa
// solo falla si la orden no existe o la solicitud es inválida. Las fallas de
// restauración de inventario (pasos intermedios) se acumulan y se devuelven
// en el resultado junto con una operación globalmente exitosa. No hay
// atomicidad ni rollback entre pasos.
package refunds

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/retailmaster-api/internal/application/dto"
	"github.com/jhoicas/retailmaster-api/internal/application/inventory"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	domorder "github.com/jhoicas/retailmaster-api/internal/domain/order"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

// Processor orquesta el procesamiento de reembolsos.
type Processor struct {
	orders  repository.OrderRepository
	refunds repository.RefundRepository
	ledger  *inventory.StockLedger
	log     *logger.Logger
}

// NewProcessor construye el procesador.
func NewProcessor(
	orders repository.OrderRepository,
	refunds repository.RefundRepository,
	ledger *inventory.StockLedger,
	log *logger.Logger,
) *Processor {
	return &Processor{orders: orders, refunds: refunds, ledger: ledger, log: log}
}

// Process ejecuta el reembolso completo sobre la orden destino:
//
//  1. Busca la orden (ErrOrderNotFound aborta todo).
//  2. Guard contra sobre-reembolso ANTES de cualquier efecto secundario:
//     la suma de cantidades reembolsadas por ítem nunca excede la ordenada.
//  3. Restaura inventario de los ítems en condición "new" y de catálogo, uno
//     por uno; las fallas se acumulan sin abortar y cada éxito deja un
//     movimiento "return" en el historial de inventario.
//  4. Anexa el registro inmutable de reembolso a la orden.
//  5. Deriva el estado: refunded si cada ítem alcanzó su cantidad ordenada,
//     partial-refunded en caso contrario.
//  6. Acumula un resumen legible en las notas de la orden (nunca las
//     sobreescribe).
//  7. Persiste la orden actualizada.
//  8. Anexa el reembolso al historial global.
//  9. Devuelve qué ítems regresaron al inventario y cuáles fallaron.
func (p *Processor) Process(ctx context.Context, req dto.RefundRequest) (*dto.RefundResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	order, err := p.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("buscar orden %s: %w", req.OrderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("orden %s: %w", req.OrderID, domain.ErrOrderNotFound)
	}

	if err := domorder.ValidateRefundItems(order, req.Items); err != nil {
		return nil, err
	}

	restored, invErrors := p.restoreInventory(ctx, order, req.Items)

	refund := entity.Refund{
		ID:        generateRefundID(),
		Timestamp: req.Timestamp,
		Amount:    req.Amount,
		Items:     req.Items,
		Method:    req.Method,
		Note:      req.Note,
	}
	order.Refunds = append(order.Refunds, refund)

	fully := domorder.IsFullyRefunded(order)
	if fully {
		order.Status = entity.StatusRefunded
	} else {
		order.Status = entity.StatusPartialRefunded
	}

	appendNote(order, req, restored, invErrors)

	if err := p.orders.Update(ctx, order); err != nil {
		// Efectos de inventario ya aplicados: sin rollback, ventana conocida.
		return nil, fmt.Errorf("persistir orden %s tras reembolso: %w", order.ID, err)
	}

	global := refund
	global.OrderID = order.ID
	global.Customer = order.Customer
	if err := p.refunds.Append(ctx, &global); err != nil {
		// La orden ya quedó actualizada; el historial global se reporta como
		// falla parcial en vez de abortar.
		p.log.Error().Err(err).Str("order_id", order.ID).Msg("no se pudo anexar al historial global de reembolsos")
		invErrors = append(invErrors, fmt.Sprintf("refund history not recorded: %v", err))
	}

	p.log.Info().
		Str("order_id", order.ID).
		Str("refund_id", refund.ID).
		Str("status", string(order.Status)).
		Int("restored", len(restored)).
		Int("errors", len(invErrors)).
		Msg("reembolso procesado")

	return &dto.RefundResult{
		Refund:          refund,
		OrderStatus:     order.Status,
		FullyRefunded:   fully,
		RestoredItems:   restored,
		InventoryErrors: invErrors,
	}, nil
}

func validate(req dto.RefundRequest) error {
	if req.OrderID == "" {
		return fmt.Errorf("orderId requerido: %w", domain.ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("el reembolso requiere al menos un ítem: %w", domain.ErrInvalidInput)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("ítem %s: cantidad debe ser > 0: %w", item.ID, domain.ErrInvalidInput)
		}
	}
	if req.Amount.IsNegative() {
		return fmt.Errorf("monto negativo: %w", domain.ErrInvalidInput)
	}
	if !req.Method.Valid() {
		return fmt.Errorf("método %q: %w", req.Method, domain.ErrInvalidInput)
	}
	return nil
}

// restoreInventory devuelve al stock cada línea restaurable. Cada ajuste es
// independiente: una falla se acumula y se continúa con el resto.
func (p *Processor) restoreInventory(ctx context.Context, order *entity.Order, items []entity.RefundItem) (restored, errs []string) {
	for _, item := range items {
		if !item.Restockable() {
			continue
		}
		if _, err := p.ledger.Adjust(ctx, item.ID, item.Quantity); err != nil {
			p.log.Error().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ID).
				Msg("no se pudo restaurar inventario")
			errs = append(errs, fmt.Sprintf("failed to update inventory for %s: %v", item.Name, err))
			continue
		}
		restored = append(restored, fmt.Sprintf("%d x %s", item.Quantity, item.Name))

		err := p.ledger.AppendLog(ctx, entity.InventoryLogEntry{
			ProductID:      item.ID,
			ProductName:    item.Name,
			QuantityChange: item.Quantity,
			ReasonType:     entity.ReasonTypeReturn,
			Reason:         fmt.Sprintf("Return - Refund from Order #%s", order.ID),
			UserID:         "system",
			Notes:          fmt.Sprintf("Item returned in new condition from refund of order %s", order.ID),
		})
		if err != nil {
			p.log.Error().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ID).
				Msg("no se pudo registrar el movimiento de devolución")
			errs = append(errs, fmt.Sprintf("movement not logged for %s: %v", item.Name, err))
		}
	}
	return restored, errs
}

// appendNote acumula el resumen del reembolso en las notas de la orden. El
// texto persistido se mantiene en inglés por compatibilidad con los datos del
// front-end original.
func appendNote(order *entity.Order, req dto.RefundRequest, restored, errs []string) {
	note := fmt.Sprintf("Refund processed on %s. Amount: $%s.",
		req.Timestamp.Format("2006-01-02 15:04"), req.Amount.StringFixed(2))
	if req.Note != "" {
		note += " " + req.Note
	}
	if len(restored) > 0 {
		note += "\n\nItems returned to inventory: " + strings.Join(restored, ", ")
	}
	if len(errs) > 0 {
		note += "\n\nInventory update issues: " + strings.Join(errs, ", ")
	}
	if order.Notes != "" {
		order.Notes += "\n\n" + note
	} else {
		order.Notes = note
	}
}

// generateRefundID crea un ID único incluso en llamadas dentro del mismo
// milisegundo: prefijo REF- heredado + marca de tiempo + sufijo aleatorio.
func generateRefundID() string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("REF-%d-%s", time.Now().UnixMilli(), suffix)
}
