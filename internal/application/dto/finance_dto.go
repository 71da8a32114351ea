package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceSummaryDTO resumen financiero de un rango de fechas.
type FinanceSummaryDTO struct {
	From          time.Time            `json:"from"`
	To            time.Time            `json:"to"`
	GrossSales    decimal.Decimal      `json:"grossSales"`
	RefundedTotal decimal.Decimal      `json:"refundedTotal"`
	NetRevenue    decimal.Decimal      `json:"netRevenue"`
	OrderCount    int                  `json:"orderCount"`
	RefundCount   int                  `json:"refundCount"`
	ByMethod      []MethodBreakdownDTO `json:"byMethod"`
}

// MethodBreakdownDTO ventas agrupadas por método de pago.
type MethodBreakdownDTO struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}
