package entity

import "time"

// Motivos de un movimiento de inventario.
const (
	ReasonTypeSale       = "sale"
	ReasonTypeReturn     = "return"
	ReasonTypeAdjustment = "adjustment"
	ReasonTypeRestock    = "restock"
)

// InventoryLogEntry es una entrada append-only del historial de inventario.
// Nunca se modifica ni se elimina una entrada ya escrita.
type InventoryLogEntry struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	QuantityChange int       `json:"quantityChange"` // con signo: negativo venta, positivo devolución
	ReasonType     string    `json:"reasonType"`
	Reason         string    `json:"reason"`
	UserID         string    `json:"userId"`
	Notes          string    `json:"notes,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
