package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfumanager/pos-api/internal/application/analytics"
	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	sales     []*entity.Sale
	lastRange repository.DateRange
	err       error
}

func (f *fakeSaleRepo) Create(*entity.Sale) error                { return nil }
func (f *fakeSaleRepo) CreateItem(*entity.SaleItem) error        { return nil }
func (f *fakeSaleRepo) GetByID(context.Context, int64) (*entity.Sale, error) {
	return nil, nil
}
func (f *fakeSaleRepo) List(_ context.Context, r repository.DateRange) ([]*entity.Sale, error) {
	f.lastRange = r
	return f.sales, f.err
}

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (f *fakeProductRepo) Create(*entity.Product) error                   { return nil }
func (f *fakeProductRepo) GetByID(int64) (*entity.Product, error)         { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                   { return nil }
func (f *fakeProductRepo) UpdateCost(int64, decimal.Decimal) error        { return nil }
func (f *fakeProductRepo) AddStock(int64, int) error                      { return nil }
func (f *fakeProductRepo) DeductStock(int64, int) error                   { return nil }
func (f *fakeProductRepo) Delete(int64) error                             { return nil }
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return f.products, f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() (*analytics.ReportUseCase, *fakeSaleRepo, *fakeProductRepo) {
	sales := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: 1, SaleDate: "2024-03-01", TotalAmount: dec("600"),
			Items: []entity.SaleItem{{ProductID: 1, Quantity: 3, UnitPrice: dec("200")}}},
		{ID: 2, SaleDate: "2024-03-02", TotalAmount: dec("150"),
			Items: []entity.SaleItem{{ProductID: 2, Quantity: 1, UnitPrice: dec("150")}}},
	}}
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, Name: "Sauvage", PurchaseCost: dec("120"), Stock: 10},
		{ID: 2, Name: "Invictus", PurchaseCost: dec("90"), Stock: 4},
	}}
	return analytics.NewReportUseCase(sales, products), sales, products
}

func TestGetSalesReport_KPIsYFilas(t *testing.T) {
	uc, saleRepo, _ := fixture()

	out, err := uc.GetSalesReport(context.Background(), dto.SalesReportRequest{
		FromDate: "2024-03-01", ToDate: "2024-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", saleRepo.lastRange.From, "el rango de fechas baja a la consulta")
	assert.Equal(t, 14, out.KPIs.StockOnHand)
	assert.Equal(t, 4, out.KPIs.UnitsSold)
	assert.Equal(t, "750.00", out.KPIs.TotalSales.StringFixed(2))
	assert.Equal(t, "300.00", out.KPIs.TotalProfit.StringFixed(2))

	require.Len(t, out.Sales, 2)
	assert.Equal(t, int64(2), out.Sales[0].ID, "más reciente primero")
	assert.Equal(t, "Sauvage x3", out.Sales[1].Products)
}

func TestGetSalesReport_FiltroPorNombre(t *testing.T) {
	uc, _, _ := fixture()

	out, err := uc.GetSalesReport(context.Background(), dto.SalesReportRequest{ProductName: "invictus"})
	require.NoError(t, err)
	require.Len(t, out.Sales, 1)
	assert.Equal(t, int64(2), out.Sales[0].ID)
	// el stock en mano no depende del filtro
	assert.Equal(t, 14, out.KPIs.StockOnHand)
}

func TestGetSalesReport_ErroresSePropagan(t *testing.T) {
	uc, saleRepo, productRepo := fixture()

	saleRepo.err = errors.New("db caída")
	_, err := uc.GetSalesReport(context.Background(), dto.SalesReportRequest{})
	assert.ErrorContains(t, err, "leer ventas")

	saleRepo.err = nil
	productRepo.err = errors.New("db caída")
	_, err = uc.GetSalesReport(context.Background(), dto.SalesReportRequest{})
	assert.ErrorContains(t, err, "leer catálogo")
}
