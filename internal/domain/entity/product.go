package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un perfume del catálogo.
// PurchaseCost es el costo de compra vigente (se recalcula como promedio
// ponderado al ingresar lotes); Stock nunca es negativo.
type Product struct {
	ID           int64
	Name         string
	BrandID      *int64 // opcional
	PurchaseCost decimal.Decimal
	SalePrice    decimal.Decimal
	Stock        int
	Active       bool
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
