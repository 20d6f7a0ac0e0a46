package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto. Si viene LotID y stock inicial, el ingreso queda
// registrado como item del lote (misma transacción: producto + item de lote).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.PurchaseCost.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product := &entity.Product{
		Name:         in.Name,
		BrandID:      in.BrandID,
		PurchaseCost: in.PurchaseCost,
		SalePrice:    in.SalePrice,
		Stock:        in.Stock,
		Active:       active,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.LotID == nil || in.Stock == 0 {
		if err := uc.repo.Create(product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, lots repository.LotRepository, _ repository.SaleRepository) error {
		lot, err := lots.GetByID(*in.LotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if err := products.Create(product); err != nil {
			return err
		}
		qty := decimal.NewFromInt(int64(in.Stock))
		return lots.AddItem(&entity.LotItem{
			LotID:     lot.ID,
			ProductID: product.ID,
			Quantity:  in.Stock,
			UnitCost:  in.PurchaseCost,
			Subtotal:  in.PurchaseCost.Mul(qty),
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualización parcial del producto. Stock puede corregirse a mano
// (ajustes de inventario); nunca queda negativo.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.BrandID != nil {
		product.BrandID = in.BrandID
	}
	if in.PurchaseCost != nil {
		if in.PurchaseCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchaseCost = *in.PurchaseCost
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros de nombre y activo.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(repository.ProductFilter{
		Search:     in.Search,
		OnlyActive: in.OnlyActive,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		BrandID:      p.BrandID,
		PurchaseCost: p.PurchaseCost,
		SalePrice:    p.SalePrice,
		Stock:        p.Stock,
		Active:       p.Active,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
