// Package pdf genera el reporte financiero en PDF del back-office.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Período del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Ventas brutas / Reembolsos / Ingreso neto        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Método de pago | Órdenes | Total                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/retailmaster-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 40, Blue: 85}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// FinanceReportGenerator genera el PDF del resumen financiero usando Maroto v2.
type FinanceReportGenerator struct{}

// NewFinanceReportGenerator construye el generador.
func NewFinanceReportGenerator() *FinanceReportGenerator { return &FinanceReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *FinanceReportGenerator) Generate(storeName string, summary *dto.FinanceSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeName, summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Desglose por método de pago
	m.AddRows(tableHeaderRow())
	for _, r := range methodRows(summary.ByMethod) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y período del reporte (der).
func headerRow(storeName string, summary *dto.FinanceSummaryDTO) core.Row {
	period := fmt.Sprintf("%s — %s",
		summary.From.Format("02/01/2006"), summary.To.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte financiero", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// metricsRow: las tres métricas principales de la vista de finanzas.
func metricsRow(summary *dto.FinanceSummaryDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 7,
			}),
		)
	}
	return row.New(16).Add(
		metric(fmt.Sprintf("VENTAS BRUTAS (%d órdenes)", summary.OrderCount),
			"$"+summary.GrossSales.StringFixed(2)),
		metric(fmt.Sprintf("REEMBOLSOS (%d)", summary.RefundCount),
			"-$"+summary.RefundedTotal.StringFixed(2)),
		metric("INGRESO NETO", "$"+summary.NetRevenue.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera del desglose por método de pago.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Método de pago", 6, align.Left),
		h("Órdenes", 2, align.Center),
		h("Total", 4, align.Right),
	)
}

// methodRows: una fila por método de pago.
func methodRows(breakdown []dto.MethodBreakdownDTO) []core.Row {
	result := make([]core.Row, 0, len(breakdown))
	for _, b := range breakdown {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				b.Method,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", b.Count),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				"$"+b.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
