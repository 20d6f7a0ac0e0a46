package dto

import "github.com/shopspring/decimal"

// SalesReportRequest parámetros para GET /api/reports/sales.
// El rango de fechas se aplica al leer las ventas; el filtro por nombre de
// producto se aplica sobre el resumen de cada venta.
type SalesReportRequest struct {
	FromDate    string `query:"from_date"`    // YYYY-MM-DD; vacío = sin límite
	ToDate      string `query:"to_date"`      // YYYY-MM-DD; vacío = sin límite
	ProductName string `query:"product_name"` // substring, case-insensitive
}

// SaleReportRow venta enriquecida para el reporte.
type SaleReportRow struct {
	ID       int64           `json:"id"`
	SaleDate string          `json:"fecha_venta"`
	Products string          `json:"productos"` // "Sauvage x3, Invictus x1"
	Units    int             `json:"unidades"`
	Total    decimal.Decimal `json:"total_bob"`
	Profit   decimal.Decimal `json:"ganancia_bob"`
}

// SalesReportKPIs indicadores agregados del filtro actual.
// StockOnHand se calcula sobre todo el catálogo, sin filtro.
type SalesReportKPIs struct {
	StockOnHand int             `json:"productos_en_stock"`
	UnitsSold   int             `json:"productos_vendidos"`
	TotalSales  decimal.Decimal `json:"total_ventas_bob"`
	TotalProfit decimal.Decimal `json:"ganancia_bob"`
}

// SalesReportResponse respuesta completa del reporte de ventas.
type SalesReportResponse struct {
	KPIs  SalesReportKPIs `json:"kpis"`
	Sales []SaleReportRow `json:"sales"`
}
