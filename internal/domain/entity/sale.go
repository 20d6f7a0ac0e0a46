package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta registrada. TotalAmount es el total autoritativo calculado por
// el servidor al crearla; los reportes lo leen tal cual, sin recomputarlo.
type Sale struct {
	ID          int64
	SaleDate    string // YYYY-MM-DD
	TotalAmount decimal.Decimal
	Items       []SaleItem
	CreatedAt   time.Time
}

// SaleItem línea de una venta. El precio unitario es el pactado al vender,
// no el precio de lista vigente del producto.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal // precio unitario en BOB
}
