package usecase

import (
	"strings"
	"time"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

// BrandUseCase casos de uso para marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca; nombre duplicado devuelve ErrDuplicate.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	brand := &entity.Brand{Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}

// List lista todas las marcas.
func (uc *BrandUseCase) List() ([]dto.BrandResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return items, nil
}
