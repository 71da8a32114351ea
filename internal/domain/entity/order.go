package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden. Los valores en minúscula vienen del
// formato persistido original (claves retailmaster_* en el blob store).
type OrderStatus string

const (
	StatusPending         OrderStatus = "pending"
	StatusCompleted       OrderStatus = "completed"
	StatusCancelled       OrderStatus = "cancelled"
	StatusRefunded        OrderStatus = "refunded"
	StatusPartialRefunded OrderStatus = "partial-refunded"
)

// Valid indica si el estado es uno de los conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusRefunded, StatusPartialRefunded:
		return true
	}
	return false
}

// Prefijo heredado para ítems fuera de catálogo en datos ya persistidos.
// Los registros nuevos deben usar el campo explícito Custom.
const customIDPrefix = "custom-"

// Order representa una orden de venta del punto de venta.
// Refunds es append-only: una vez escrito, un reembolso nunca se modifica.
type Order struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Customer string          `json:"customer"`
	Items    []OrderItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Status   OrderStatus     `json:"status"`
	Payment  *PaymentInfo    `json:"payment,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Refunds  []Refund        `json:"refunds,omitempty"`
	Tags     []string        `json:"tags,omitempty"`
}

// OrderItem es una línea de la orden. Custom marca ítems fuera de catálogo,
// exentos de efectos sobre el inventario.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Discount *ItemDiscount   `json:"discount,omitempty"`
	Custom   bool            `json:"custom,omitempty"`
}

// Inventoried indica si la línea afecta el stock. Reconoce tanto el campo
// explícito Custom como el prefijo "custom-" de los datos heredados.
func (i OrderItem) Inventoried() bool {
	return !i.Custom && !strings.HasPrefix(i.ID, customIDPrefix)
}

// ItemDiscount descuento aplicado a una línea.
type ItemDiscount struct {
	Amount decimal.Decimal `json:"amount"`
}

// Métodos de pago de una orden.
const (
	PaymentMethodCash    = "cash"
	PaymentMethodCard    = "card"
	PaymentMethodDigital = "digital"
)

// PaymentInfo detalle del pago de la orden.
type PaymentInfo struct {
	Method       string          `json:"method"`
	CardType     string          `json:"cardType,omitempty"`
	Provider     string          `json:"provider,omitempty"`
	CashReceived decimal.Decimal `json:"cashReceived,omitempty"`
	Change       decimal.Decimal `json:"change,omitempty"`
}
