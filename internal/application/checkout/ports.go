package checkout

import (
	"context"

	"github.com/perfumanager/pos-api/internal/domain/cart"
	"github.com/perfumanager/pos-api/internal/domain/entity"
)

// ProductReader snapshot del catálogo para sembrar líneas del carrito.
type ProductReader interface {
	GetByID(id int64) (*entity.Product, error)
}

// SaleCreator colaborador de creación de venta. Lo implementa
// usecase.SaleUseCase; en tests, un fake.
type SaleCreator interface {
	Create(ctx context.Context, payload cart.Payload) (*entity.Sale, error)
}
