package dto

import (
	"time"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RefundRequest es la solicitud de reembolso sobre una orden existente.
type RefundRequest struct {
	OrderID   string              `json:"orderId"`
	Timestamp time.Time           `json:"timestamp"`
	Amount    decimal.Decimal     `json:"amount"`
	Items     []entity.RefundItem `json:"items"`
	Method    entity.RefundMethod `json:"method"`
	Note      string              `json:"note,omitempty"`
}

// RefundResult es el resultado del procesamiento. Las fallas de inventario no
// abortan la operación: se reportan aquí, ítem por ítem.
type RefundResult struct {
	Refund          entity.Refund      `json:"refund"`
	OrderStatus     entity.OrderStatus `json:"orderStatus"`
	FullyRefunded   bool               `json:"fullyRefunded"`
	RestoredItems   []string           `json:"restoredItems,omitempty"` // "2 x Camiseta"
	InventoryErrors []string           `json:"inventoryErrors,omitempty"`
}
