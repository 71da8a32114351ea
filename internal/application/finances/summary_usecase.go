// Package finances contiene los casos de uso de reportes financieros del
// back-office (la vista Finances de la aplicación).
package finances

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/retailmaster-api/internal/application/dto"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SummaryUseCase calcula el resumen financiero sobre órdenes y reembolsos.
type SummaryUseCase struct {
	orders  repository.OrderRepository
	refunds repository.RefundRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(orders repository.OrderRepository, refunds repository.RefundRepository) *SummaryUseCase {
	return &SummaryUseCase{orders: orders, refunds: refunds}
}

// Summary agrega ventas y reembolsos dentro del rango [from, to]:
// ventas brutas (órdenes no canceladas), total reembolsado, ingreso neto y
// desglose por método de pago.
func (uc *SummaryUseCase) Summary(ctx context.Context, from, to time.Time) (*dto.FinanceSummaryDTO, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("finanzas: listar órdenes: %w", err)
	}
	refunds, err := uc.refunds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("finanzas: listar reembolsos: %w", err)
	}

	gross := decimal.Zero
	orderCount := 0
	type methodAgg struct {
		total decimal.Decimal
		count int
	}
	byMethod := make(map[string]*methodAgg)

	for _, o := range orders {
		if o.Status == entity.StatusCancelled {
			continue
		}
		if !inRange(o.Date, from, to) {
			continue
		}
		gross = gross.Add(o.Total)
		orderCount++

		method := "unknown"
		if o.Payment != nil && o.Payment.Method != "" {
			method = o.Payment.Method
		}
		agg := byMethod[method]
		if agg == nil {
			agg = &methodAgg{total: decimal.Zero}
			byMethod[method] = agg
		}
		agg.total = agg.total.Add(o.Total)
		agg.count++
	}

	refunded := decimal.Zero
	refundCount := 0
	for _, r := range refunds {
		if !inRange(r.Timestamp, from, to) {
			continue
		}
		refunded = refunded.Add(r.Amount)
		refundCount++
	}

	breakdown := make([]dto.MethodBreakdownDTO, 0, len(byMethod))
	for method, agg := range byMethod {
		breakdown = append(breakdown, dto.MethodBreakdownDTO{
			Method: method,
			Total:  agg.total.Round(2),
			Count:  agg.count,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Method < breakdown[j].Method })

	return &dto.FinanceSummaryDTO{
		From:          from,
		To:            to,
		GrossSales:    gross.Round(2),
		RefundedTotal: refunded.Round(2),
		NetRevenue:    gross.Sub(refunded).Round(2),
		OrderCount:    orderCount,
		RefundCount:   refundCount,
		ByMethod:      breakdown,
	}, nil
}

// inRange verifica t dentro de [from, to], con extremos opcionales (zero = sin límite).
func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
