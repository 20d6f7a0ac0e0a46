package repository

import (
	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Search     string // substring sobre el nombre, case-insensitive
	OnlyActive bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCost actualiza solo el costo de compra (lo usa el ingreso de lotes).
	UpdateCost(productID int64, cost decimal.Decimal) error
	// AddStock incrementa el stock en qty (qty > 0, ingreso de lote).
	AddStock(productID int64, qty int) error
	// DeductStock descuenta qty unidades; devuelve domain.ErrInsufficientStock
	// si el stock disponible es menor que qty.
	DeductStock(productID int64, qty int) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id int64) error
}
