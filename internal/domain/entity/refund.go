package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de devolución del dinero.
type RefundMethod string

const (
	RefundMethodCash        RefundMethod = "cash"
	RefundMethodCard        RefundMethod = "card"
	RefundMethodStoreCredit RefundMethod = "store-credit"
)

// Valid indica si el método es uno de los conocidos.
func (m RefundMethod) Valid() bool {
	switch m {
	case RefundMethodCash, RefundMethodCard, RefundMethodStoreCredit:
		return true
	}
	return false
}

// Condiciones del ítem devuelto. Solo ConditionNew regresa al inventario.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionOpened  ItemCondition = "opened"
	ConditionDamaged ItemCondition = "damaged"
)

// Refund es un registro inmutable de reembolso. Vive en dos lugares: dentro de
// Order.Refunds (sin OrderID ni Customer) y en el historial global de
// reembolsos (con ambos campos).
type Refund struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId,omitempty"`
	Customer  string          `json:"customer,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
	Items     []RefundItem    `json:"items"`
	Method    RefundMethod    `json:"method"`
	Note      string          `json:"note,omitempty"`
}

// RefundItem es una línea de reembolso.
type RefundItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Condition ItemCondition   `json:"condition"`
	Custom    bool            `json:"custom,omitempty"`
}

// Inventoried indica si la línea puede regresar al stock (misma convención que
// OrderItem: campo explícito o prefijo heredado).
func (i RefundItem) Inventoried() bool {
	return !i.Custom && !strings.HasPrefix(i.ID, customIDPrefix)
}

// Restockable indica si la línea efectivamente regresa al inventario:
// ítem de catálogo y en condición nueva.
func (i RefundItem) Restockable() bool {
	return i.Inventoried() && i.Condition == ConditionNew
}
