package repository

import (
	"context"

	"github.com/perfumanager/pos-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	// Create persiste la cabecera y asigna el ID del servidor.
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// List devuelve las ventas del rango con sus items cargados,
	// fecha descendente.
	List(ctx context.Context, dateRange DateRange) ([]*entity.Sale, error)
}
