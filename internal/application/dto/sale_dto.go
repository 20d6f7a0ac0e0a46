package dto

import "github.com/shopspring/decimal"

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario_bob"`
}

// SaleResponse venta persistida con su total autoritativo.
type SaleResponse struct {
	ID          int64              `json:"id"`
	SaleDate    string             `json:"fecha_venta"`
	TotalAmount decimal.Decimal    `json:"total_bob"`
	Items       []SaleItemResponse `json:"items"`
}

// ListSalesRequest filtros de listado de ventas.
type ListSalesRequest struct {
	FromDate string `query:"from_date"` // YYYY-MM-DD
	ToDate   string `query:"to_date"`   // YYYY-MM-DD
}
