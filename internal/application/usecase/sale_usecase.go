package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/cart"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
	"github.com/perfumanager/pos-api/pkg/numeric"
)

// SaleUseCase crea y lista ventas. La creación descuenta stock, persiste la
// venta con sus líneas y calcula el total autoritativo, todo en una
// transacción: si algún producto no tiene stock suficiente no se registra nada.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
	tx       TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, tx TxRunner) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, tx: tx}
}

// Create registra la venta a partir del payload del carrito.
// Los precios unitarios llegan formateados con 2 decimales; se parsean
// defensivamente y un valor inválido o negativo invalida la petición.
func (uc *SaleUseCase) Create(ctx context.Context, payload cart.Payload) (*entity.Sale, error) {
	if len(payload.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if _, err := time.Parse("2006-01-02", payload.SaleDate); err != nil {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.SaleItem, 0, len(payload.Items))
	total := decimal.Zero
	for _, it := range payload.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		price, ok := numeric.ParseDecimal(it.UnitPrice)
		if !ok || price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	sale := &entity.Sale{
		SaleDate:    payload.SaleDate,
		TotalAmount: total.Round(2),
		Items:       items,
		CreatedAt:   time.Now(),
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.LotRepository, sales repository.SaleRepository) error {
		for _, it := range sale.Items {
			if err := products.DeductStock(it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		if err := sales.Create(sale); err != nil {
			return err
		}
		for i := range sale.Items {
			sale.Items[i].SaleID = sale.ID
			if err := sales.CreateItem(&sale.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetByID obtiene una venta con sus items.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// List lista ventas por rango de fechas, más reciente primero.
func (uc *SaleUseCase) List(ctx context.Context, in dto.ListSalesRequest) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(ctx, repository.DateRange{From: in.FromDate, To: in.ToDate})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *ToSaleResponse(s))
	}
	return items, nil
}

// ToSaleResponse mapea la entidad a su DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		Items:       items,
	}
}
