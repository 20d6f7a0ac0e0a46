package dto

import "github.com/shopspring/decimal"

// CreateLotRequest alta de lote; Items puede venir vacío (lote vacío).
type CreateLotRequest struct {
	Name        string           `json:"nombre"`
	Date        string           `json:"fecha"` // YYYY-MM-DD
	Description string           `json:"descripcion"`
	Items       []LotItemRequest `json:"items"`
}

// LotItemRequest ingreso de un producto al lote.
type LotItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"cantidad"`
	UnitCost  decimal.Decimal `json:"costo_unitario_bob"`
}

// ListLotsRequest filtros de listado.
type ListLotsRequest struct {
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
}

// LotItemResponse línea de lote persistida.
type LotItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"cantidad"`
	UnitCost  decimal.Decimal `json:"costo_unitario_bob"`
	Subtotal  decimal.Decimal `json:"subtotal_bob"`
}

// LotResponse representación de salida de un lote.
type LotResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"nombre"`
	Date        string            `json:"fecha"`
	Description string            `json:"descripcion,omitempty"`
	Items       []LotItemResponse `json:"items"`
}

// LotReportRow fila del reporte de lotes: un item con nombres resueltos.
type LotReportRow struct {
	LotID       int64           `json:"lot_id"`
	LotName     string          `json:"lot_name"`
	Date        string          `json:"fecha"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	BrandName   string          `json:"brand_name"`
	Quantity    int             `json:"cantidad"`
	UnitCost    decimal.Decimal `json:"costo_unitario_bob"`
	Subtotal    decimal.Decimal `json:"subtotal_bob"`
}

// LotReportResponse filas + KPIs de inversión en lotes.
type LotReportResponse struct {
	Rows     []LotReportRow  `json:"rows"`
	LotCount int             `json:"lot_count"`
	Units    int             `json:"units"`
	Invested decimal.Decimal `json:"invested_bob"`
}
