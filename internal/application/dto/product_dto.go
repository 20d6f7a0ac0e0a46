package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Los montos llegan como string decimal
// (2 decimales en el cliente) o como número; decimal.Decimal acepta ambos.
type CreateProductRequest struct {
	Name         string          `json:"nombre"`
	BrandID      *int64          `json:"brand_id"`
	PurchaseCost decimal.Decimal `json:"precio_compra"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	Stock        int             `json:"cantidad"`
	Active       *bool           `json:"activo"`
	ImageURL     string          `json:"image_url"`
	// LotID opcional: asocia el stock inicial a un lote de compra existente.
	LotID *int64 `json:"lot_id"`
}

// UpdateProductRequest actualización parcial (PATCH).
type UpdateProductRequest struct {
	Name         *string          `json:"nombre"`
	BrandID      *int64           `json:"brand_id"`
	PurchaseCost *decimal.Decimal `json:"precio_compra"`
	SalePrice    *decimal.Decimal `json:"precio_venta"`
	Stock        *int             `json:"cantidad"`
	Active       *bool            `json:"activo"`
	ImageURL     *string          `json:"image_url"`
}

// ListProductsRequest filtros de listado.
type ListProductsRequest struct {
	Search     string `query:"search"`
	OnlyActive bool   `query:"only_active"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	BrandID      *int64          `json:"brand_id"`
	PurchaseCost decimal.Decimal `json:"precio_compra"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	Stock        int             `json:"cantidad"`
	Active       bool            `json:"activo"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
