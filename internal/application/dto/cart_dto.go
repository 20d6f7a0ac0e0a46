package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest añade un producto al carrito de la sesión.
// Cantidad y precio son opcionales; el precio viene como texto para admitir
// "." o "," como separador decimal.
type AddCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"cantidad"`
	Price     string `json:"precio"`
}

// UpdateCartItemRequest edita cantidad y/o precio de una línea. Los valores
// llegan como el texto crudo del input; el motor del carrito los parsea y
// aplica sus reglas de clamp.
type UpdateCartItemRequest struct {
	Quantity *string `json:"cantidad"`
	Price    *string `json:"precio"`
}

// CheckoutRequest finaliza la venta del carrito.
type CheckoutRequest struct {
	SaleDate string `json:"fecha_venta"` // YYYY-MM-DD
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"nombre"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  int             `json:"cantidad"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// CartResponse estado del carrito de la sesión.
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Count     int                `json:"count"`
	CanSubmit bool               `json:"can_submit"`
}
