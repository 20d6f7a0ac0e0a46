package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot lote de compra. Puede crearse vacío y recibir items después.
type Lot struct {
	ID          int64
	Name        string
	Date        string // YYYY-MM-DD
	Description string
	Items       []LotItem
	CreatedAt   time.Time
}

// LotItem ingreso de un producto dentro de un lote.
// Subtotal = Quantity * UnitCost, calculado al persistir.
type LotItem struct {
	ID        int64
	LotID     int64
	ProductID int64
	Quantity  int
	UnitCost  decimal.Decimal // costo unitario en BOB
	Subtotal  decimal.Decimal
}
