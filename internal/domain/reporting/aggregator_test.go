package reporting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/reporting"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func catalogoBase() map[int64]*entity.Product {
	return reporting.ProductIndex([]*entity.Product{
		{ID: 1, Name: "Sauvage", PurchaseCost: dec("120"), SalePrice: dec("200"), Stock: 10},
		{ID: 2, Name: "Invictus", PurchaseCost: dec("90"), SalePrice: dec("150"), Stock: 4},
	})
}

func TestEnrich_MetricasPorVenta(t *testing.T) {
	// Venta de 3 Sauvage a 200 con costo 120: ganancia (200-120)*3 = 240.
	sales := []*entity.Sale{{
		ID:          5,
		SaleDate:    "2024-03-01",
		TotalAmount: dec("600"),
		Items:       []entity.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: dec("200")}},
	}}

	out := reporting.Enrich(sales, catalogoBase(), "")
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Units)
	assert.Equal(t, "240.00", out[0].Profit.StringFixed(2))
	assert.Equal(t, "600.00", out[0].Revenue.StringFixed(2))
	assert.Equal(t, "Sauvage x3", out[0].Names)
}

func TestEnrich_RevenueEsElTotalGuardado(t *testing.T) {
	// El total almacenado (redondeado por el servidor) manda, aunque difiera
	// de la suma de líneas.
	sales := []*entity.Sale{{
		ID:          1,
		SaleDate:    "2024-03-02",
		TotalAmount: dec("599.99"),
		Items:       []entity.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: dec("200")}},
	}}

	out := reporting.Enrich(sales, catalogoBase(), "")
	require.Len(t, out, 1)
	assert.Equal(t, "599.99", out[0].Revenue.StringFixed(2))
}

func TestEnrich_ProductoBorradoNoRevienta(t *testing.T) {
	// El producto 99 no existe en el catálogo: sus unidades cuentan,
	// su ganancia aporta 0 y no aparece en el resumen de nombres.
	sales := []*entity.Sale{{
		ID:          7,
		SaleDate:    "2024-03-03",
		TotalAmount: dec("500"),
		Items: []entity.SaleItem{
			{ProductID: 99, Quantity: 2, UnitPrice: dec("100")},
			{ProductID: 1, Quantity: 1, UnitPrice: dec("200")},
		},
	}}

	out := reporting.Enrich(sales, catalogoBase(), "")
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Units, "las unidades del producto borrado cuentan")
	assert.Equal(t, "80.00", out[0].Profit.StringFixed(2), "solo el Sauvage aporta ganancia")
	assert.Equal(t, "Sauvage x1", out[0].Names)
}

func TestEnrich_FiltroPorNombre(t *testing.T) {
	sales := []*entity.Sale{
		{ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("200"),
			Items: []entity.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: dec("200")}}},
		{ID: 2, SaleDate: "2024-03-02", TotalAmount: dec("150"),
			Items: []entity.SaleItem{{ProductID: 2, Quantity: 1, UnitPrice: dec("150")}}},
	}

	out := reporting.Enrich(sales, catalogoBase(), "SAUVAGE")
	require.Len(t, out, 1, "el filtro es case-insensitive")
	assert.Equal(t, int64(1), out[0].Sale.ID)

	out = reporting.Enrich(sales, catalogoBase(), "")
	assert.Len(t, out, 2, "filtro vacío muestra todo")
}

func TestEnrich_VentaSinProductosResueltosNoMatcheaConFiltro(t *testing.T) {
	sales := []*entity.Sale{{
		ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("100"),
		Items: []entity.SaleItem{{ProductID: 99, Quantity: 1, UnitPrice: dec("100")}},
	}}

	assert.Empty(t, reporting.Enrich(sales, catalogoBase(), "sauvage"))
	assert.Len(t, reporting.Enrich(sales, catalogoBase(), ""), 1)
}

func TestEnrich_OrdenFechaDescendenteEstable(t *testing.T) {
	item := []entity.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: dec("200")}}
	sales := []*entity.Sale{
		{ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("200"), Items: item},
		{ID: 2, SaleDate: "2024-03-05", TotalAmount: dec("200"), Items: item},
		{ID: 3, SaleDate: "2024-03-05", TotalAmount: dec("200"), Items: item},
		{ID: 4, SaleDate: "2024-03-03", TotalAmount: dec("200"), Items: item},
	}

	out := reporting.Enrich(sales, catalogoBase(), "")
	require.Len(t, out, 4)
	ids := []int64{out[0].Sale.ID, out[1].Sale.ID, out[2].Sale.ID, out[3].Sale.ID}
	assert.Equal(t, []int64{2, 3, 4, 1}, ids, "fecha desc, empate conserva orden de llegada")
}

func TestComputeKPIs(t *testing.T) {
	sales := []*entity.Sale{
		{ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("600"),
			Items: []entity.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: dec("200")}}},
		{ID: 2, SaleDate: "2024-03-02", TotalAmount: dec("150"),
			Items: []entity.SaleItem{{ProductID: 2, Quantity: 1, UnitPrice: dec("150")}}},
	}

	k := reporting.ComputeKPIs(reporting.Enrich(sales, catalogoBase(), ""))
	assert.Equal(t, 4, k.UnitsSold)
	assert.Equal(t, "750.00", k.TotalSales.StringFixed(2))
	assert.Equal(t, "300.00", k.TotalProfit.StringFixed(2)) // 240 + 60
}

// Pura: misma entrada, misma salida, tantas veces como se llame.
func TestEnrich_Determinista(t *testing.T) {
	sales := []*entity.Sale{{
		ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("600"),
		Items: []entity.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: dec("200")}},
	}}
	cat := catalogoBase()

	a := reporting.ComputeKPIs(reporting.Enrich(sales, cat, ""))
	b := reporting.ComputeKPIs(reporting.Enrich(sales, cat, ""))
	assert.Equal(t, a.UnitsSold, b.UnitsSold)
	assert.True(t, a.TotalSales.Equal(b.TotalSales))
	assert.True(t, a.TotalProfit.Equal(b.TotalProfit))
}

func TestStockOnHand_CatalogoCompletoSinFiltro(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Stock: 10},
		{ID: 2, Stock: 4},
		{ID: 3, Stock: 0},
	}
	assert.Equal(t, 14, reporting.StockOnHand(products))
}
