// Package pdf implementa la exportación del reporte de ventas a PDF con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período filtrado                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Stock | Unidades vendidas | Total ventas | Ganancia   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Productos | Unid. | Total Bs | Ganancia Bs   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/perfumanager/pos-api/internal/application/analytics"
	"github.com/perfumanager/pos-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 88, Green: 28, Blue: 135}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSalesReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(
	_ context.Context,
	report *dto.SalesReportResponse,
	period dto.SalesReportRequest,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableSaleRows(report.Sales) {
		m.AddRows(r)
	}
	if len(report.Sales) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin ventas para el filtro seleccionado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período filtrado (der).
func headerRow(period dto.SalesReportRequest) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Perfume Manager", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(period), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// kpiRow: los cuatro indicadores agregados en una fila.
func kpiRow(k dto.SalesReportKPIs) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		kpi("PRODUCTOS EN STOCK", fmt.Sprintf("%d", k.StockOnHand)),
		kpi("UNIDADES VENDIDAS", fmt.Sprintf("%d", k.UnitsSold)),
		kpi("TOTAL VENTAS", "Bs "+k.TotalSales.StringFixed(2)),
		kpi("GANANCIA", "Bs "+k.TotalProfit.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera de la tabla de ventas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Productos", 5, align.Left),
		h("Unid.", 1, align.Center),
		h("Total Bs", 2, align.Right),
		h("Ganancia Bs", 2, align.Right),
	)
}

// tableSaleRows: una fila por venta enriquecida.
func tableSaleRows(sales []dto.SaleReportRow) []core.Row {
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.SaleDate,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				nonEmpty(s.Products, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", s.Units),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				s.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				s.Profit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(p dto.SalesReportRequest) string {
	switch {
	case p.FromDate != "" && p.ToDate != "":
		return p.FromDate + " a " + p.ToDate
	case p.FromDate != "":
		return "desde " + p.FromDate
	case p.ToDate != "":
		return "hasta " + p.ToDate
	default:
		return "todo el historial"
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
