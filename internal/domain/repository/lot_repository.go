package repository

import "github.com/perfumanager/pos-api/internal/domain/entity"

// DateRange rango opcional de fechas YYYY-MM-DD; cadena vacía = sin límite.
type DateRange struct {
	From string
	To   string
}

// LotRepository puerto de persistencia para lotes de compra.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id int64) (*entity.Lot, error)
	AddItem(item *entity.LotItem) error
	// List devuelve los lotes del rango con sus items cargados.
	List(dateRange DateRange) ([]*entity.Lot, error)
}
