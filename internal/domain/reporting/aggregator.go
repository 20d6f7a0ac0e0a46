// Package reporting cruza las ventas históricas con el catálogo para derivar
// métricas por venta (unidades, ingreso, ganancia) y KPIs agregados. Todo es
// función pura de (ventas, catálogo, filtro): no hay estado derivado guardado
// que pueda quedar obsoleto.
package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/domain/entity"
)

// EnrichedSale una venta con sus métricas derivadas.
// Revenue se lee del TotalAmount almacenado en la venta, no se recalcula
// desde las líneas: el registro puede guardar un valor ya redondeado.
type EnrichedSale struct {
	Sale    *entity.Sale
	Units   int
	Profit  decimal.Decimal
	Revenue decimal.Decimal
	// Names resumen legible "nombre xCant, ..." solo con productos resueltos,
	// en el orden de los items.
	Names string
}

// KPIs agregados sobre el conjunto filtrado de ventas.
type KPIs struct {
	UnitsSold   int
	TotalSales  decimal.Decimal
	TotalProfit decimal.Decimal
}

// ProductIndex índice por ID para resolver el costo de compra.
func ProductIndex(products []*entity.Product) map[int64]*entity.Product {
	m := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

// Enrich deriva las métricas de cada venta y aplica el filtro por nombre de
// producto. Un producto borrado del catálogo no rompe nada: sus unidades
// cuentan, su ganancia aporta 0 y queda fuera del resumen de nombres.
// El resultado va ordenado por fecha de venta descendente; empates conservan
// el orden de llegada (orden estable).
func Enrich(sales []*entity.Sale, catalog map[int64]*entity.Product, nameFilter string) []EnrichedSale {
	query := strings.ToLower(strings.TrimSpace(nameFilter))

	out := make([]EnrichedSale, 0, len(sales))
	for _, s := range sales {
		units := 0
		profit := decimal.Zero
		var names []string

		for _, it := range s.Items {
			units += it.Quantity
			qty := decimal.NewFromInt(int64(it.Quantity))
			if prod, ok := catalog[it.ProductID]; ok {
				profit = profit.Add(it.UnitPrice.Sub(prod.PurchaseCost).Mul(qty))
				names = append(names, fmt.Sprintf("%s x%d", prod.Name, it.Quantity))
			}
		}

		summary := strings.Join(names, ", ")
		if query != "" && !strings.Contains(strings.ToLower(summary), query) {
			continue
		}

		out = append(out, EnrichedSale{
			Sale:    s,
			Units:   units,
			Profit:  profit,
			Revenue: s.TotalAmount,
			Names:   summary,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sale.SaleDate > out[j].Sale.SaleDate
	})
	return out
}

// ComputeKPIs pliega el conjunto filtrado: suma de unidades, de TotalAmount
// (no del revenue recalculado) y de ganancia.
func ComputeKPIs(enriched []EnrichedSale) KPIs {
	k := KPIs{TotalSales: decimal.Zero, TotalProfit: decimal.Zero}
	for _, e := range enriched {
		k.UnitsSold += e.Units
		k.TotalSales = k.TotalSales.Add(e.Sale.TotalAmount)
		k.TotalProfit = k.TotalProfit.Add(e.Profit)
	}
	return k
}

// StockOnHand suma el stock de TODO el catálogo, sin aplicar el filtro de
// nombre: es un indicador del inventario, no de las ventas filtradas.
func StockOnHand(products []*entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.Stock
	}
	return total
}
