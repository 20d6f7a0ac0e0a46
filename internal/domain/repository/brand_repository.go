package repository

import "github.com/perfumanager/pos-api/internal/domain/entity"

// BrandRepository puerto de persistencia para marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id int64) (*entity.Brand, error)
	GetByName(name string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
}
