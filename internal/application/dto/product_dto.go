package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. Stock inicial se fija aquí; los
// cambios posteriores van por el libro de inventario.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorderLevel"`
}

// UpdateProductRequest actualización parcial de producto. Campos nil no se
// tocan. Stock no es actualizable por esta vía (se maneja vía movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	ReorderLevel *int             `json:"reorderLevel,omitempty"`
}
