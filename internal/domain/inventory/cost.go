// Package inventory servicios de dominio para el stock.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost recalcula el costo de compra de un producto al ingresar
// unidades de un lote.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(currentStock int, currentCost decimal.Decimal, inQty int, inCost decimal.Decimal) decimal.Decimal {
	stock := decimal.NewFromInt(int64(currentStock))
	qty := decimal.NewFromInt(int64(inQty))
	sum := stock.Add(qty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(currentCost).Add(qty.Mul(inCost))
	return num.Div(sum)
}
