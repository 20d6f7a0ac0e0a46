package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/inventory"
	"github.com/perfumanager/pos-api/internal/domain/repository"
	"github.com/perfumanager/pos-api/pkg/textutil"
)

// LotUseCase casos de uso para lotes de compra. Ingresar items a un lote
// incrementa el stock del producto y recalcula su costo de compra como
// promedio ponderado, todo en una transacción.
type LotUseCase struct {
	lotRepo     repository.LotRepository
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	tx          TxRunner
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(lotRepo repository.LotRepository, productRepo repository.ProductRepository, brandRepo repository.BrandRepository, tx TxRunner) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo, productRepo: productRepo, brandRepo: brandRepo, tx: tx}
}

// Create crea un lote; admite items vacíos (el lote se llena después).
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.ErrInvalidInput
	}

	lot := &entity.Lot{
		Name:        in.Name,
		Date:        date,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, lots repository.LotRepository, _ repository.SaleRepository) error {
		if err := lots.Create(lot); err != nil {
			return err
		}
		return ingestItems(lot, in.Items, products, lots)
	})
	if err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// AddItems ingresa items a un lote existente. Devuelve el lote actualizado.
func (uc *LotUseCase) AddItems(ctx context.Context, lotID int64, items []dto.LotItemRequest) (*dto.LotResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var lot *entity.Lot
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, lots repository.LotRepository, _ repository.SaleRepository) error {
		var err error
		lot, err = lots.GetByID(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		return ingestItems(lot, items, products, lots)
	})
	if err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// ingestItems valida, persiste y aplica cada ingreso: item de lote, stock del
// producto y costo promedio ponderado.
func ingestItems(lot *entity.Lot, items []dto.LotItemRequest, products repository.ProductRepository, lots repository.LotRepository) error {
	for _, in := range items {
		if in.Quantity <= 0 || in.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		item := &entity.LotItem{
			LotID:     lot.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitCost:  in.UnitCost,
			Subtotal:  in.UnitCost.Mul(decimal.NewFromInt(int64(in.Quantity))),
		}
		if err := lots.AddItem(item); err != nil {
			return err
		}

		newCost := inventory.WeightedAverageCost(product.Stock, product.PurchaseCost, in.Quantity, in.UnitCost)
		if err := products.AddStock(in.ProductID, in.Quantity); err != nil {
			return err
		}
		if err := products.UpdateCost(in.ProductID, newCost); err != nil {
			return err
		}
		lot.Items = append(lot.Items, *item)
	}
	return nil
}

// GetByID obtiene un lote con sus items.
func (uc *LotUseCase) GetByID(id int64) (*dto.LotResponse, error) {
	lot, err := uc.lotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, nil
	}
	return toLotResponse(lot), nil
}

// List lista lotes por rango de fechas.
func (uc *LotUseCase) List(in dto.ListLotsRequest) ([]dto.LotResponse, error) {
	lots, err := uc.lotRepo.List(repository.DateRange{From: in.FromDate, To: in.ToDate})
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return items, nil
}

// Report normaliza los lotes a filas por item con nombres resueltos y calcula
// los KPIs de inversión. El filtro de texto ignora mayúsculas y acentos y
// matchea contra el nombre del producto o del lote.
func (uc *LotUseCase) Report(in dto.ListLotsRequest, nameFilter string) (*dto.LotReportResponse, error) {
	lots, err := uc.lotRepo.List(repository.DateRange{From: in.FromDate, To: in.ToDate})
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}

	productByID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	brandByID := make(map[int64]string, len(brands))
	for _, b := range brands {
		brandByID[b.ID] = b.Name
	}

	out := &dto.LotReportResponse{Rows: []dto.LotReportRow{}, Invested: decimal.Zero}
	seenLots := make(map[int64]struct{})
	for _, l := range lots {
		for _, it := range l.Items {
			productName := ""
			brandName := "-"
			if p, ok := productByID[it.ProductID]; ok {
				productName = p.Name
				if p.BrandID != nil {
					if name, ok := brandByID[*p.BrandID]; ok {
						brandName = name
					}
				}
			}
			if nameFilter != "" &&
				!textutil.ContainsFold(productName, nameFilter) &&
				!textutil.ContainsFold(l.Name, nameFilter) {
				continue
			}
			out.Rows = append(out.Rows, dto.LotReportRow{
				LotID:       l.ID,
				LotName:     l.Name,
				Date:        l.Date,
				ProductID:   it.ProductID,
				ProductName: productName,
				BrandName:   brandName,
				Quantity:    it.Quantity,
				UnitCost:    it.UnitCost,
				Subtotal:    it.Subtotal,
			})
			seenLots[l.ID] = struct{}{}
			out.Units += it.Quantity
			out.Invested = out.Invested.Add(it.Subtotal)
		}
	}
	out.LotCount = len(seenLots)
	return out, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	items := make([]dto.LotItemResponse, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, dto.LotItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.LotResponse{
		ID:          l.ID,
		Name:        l.Name,
		Date:        l.Date,
		Description: l.Description,
		Items:       items,
	}
}
