// Package analytics contiene los casos de uso del reporte de ventas:
// KPIs y ventas enriquecidas, con exportación a PDF.
package analytics

import (
	"context"
	"fmt"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/reporting"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

// ReportUseCase arma el reporte de ventas: cruza las ventas del rango con el
// catálogo completo y delega las métricas en el agregador puro de dominio.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// GetSalesReport construye el reporte para los filtros dados.
//
// Dos lecturas en paralelo:
//  1. ventas del rango de fechas (el rango se aplica en la consulta)
//  2. catálogo completo (resuelve costos y alimenta el KPI de stock)
//
// El filtro por nombre de producto se aplica después, sobre el resumen de
// cada venta; un fallo en cualquiera de las lecturas aborta el reporte.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, in dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}

	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		sales, err := uc.saleRepo.List(ctx, repository.DateRange{From: in.FromDate, To: in.ToDate})
		salesCh <- salesResult{sales, err}
	}()
	go func() {
		products, err := uc.productRepo.List(repository.ProductFilter{})
		productsCh <- productsResult{products, err}
	}()

	s := <-salesCh
	p := <-productsCh

	if s.err != nil {
		return nil, fmt.Errorf("reporte: leer ventas: %w", s.err)
	}
	if p.err != nil {
		return nil, fmt.Errorf("reporte: leer catálogo: %w", p.err)
	}

	enriched := reporting.Enrich(s.sales, reporting.ProductIndex(p.products), in.ProductName)
	kpis := reporting.ComputeKPIs(enriched)

	rows := make([]dto.SaleReportRow, 0, len(enriched))
	for _, e := range enriched {
		rows = append(rows, dto.SaleReportRow{
			ID:       e.Sale.ID,
			SaleDate: e.Sale.SaleDate,
			Products: e.Names,
			Units:    e.Units,
			Total:    e.Revenue.Round(2),
			Profit:   e.Profit.Round(2),
		})
	}

	return &dto.SalesReportResponse{
		KPIs: dto.SalesReportKPIs{
			StockOnHand: reporting.StockOnHand(p.products),
			UnitsSold:   kpis.UnitsSold,
			TotalSales:  kpis.TotalSales.Round(2),
			TotalProfit: kpis.TotalProfit.Round(2),
		},
		Sales: rows,
	}, nil
}
