package analytics

import (
	"context"
	"fmt"

	"github.com/perfumanager/pos-api/internal/application/dto"
)

// ReportPDFGenerator puerto de renderizado del reporte a PDF.
// Lo implementa infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *dto.SalesReportResponse, period dto.SalesReportRequest) ([]byte, error)
}

// PDFUseCase exporta el reporte de ventas como PDF.
type PDFUseCase struct {
	reports   *ReportUseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(reports *ReportUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// Export arma el reporte con los mismos filtros del endpoint JSON y lo
// renderiza a PDF.
func (uc *PDFUseCase) Export(ctx context.Context, in dto.SalesReportRequest) ([]byte, error) {
	report, err := uc.reports.GetSalesReport(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.generator.GenerateSalesReportPDF(ctx, report, in)
	if err != nil {
		return nil, fmt.Errorf("reporte: exportar PDF: %w", err)
	}
	return out, nil
}
