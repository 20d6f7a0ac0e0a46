package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/perfumanager/pos-api/internal/application/analytics"
	"github.com/perfumanager/pos-api/internal/application/dto"
)

// ReportHandler reporte de ventas en JSON y PDF (protegido).
type ReportHandler struct {
	reports *analytics.ReportUseCase
	pdf     *analytics.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *analytics.ReportUseCase, pdf *analytics.PDFUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf}
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  Ventas enriquecidas (unidades, ganancia, productos) más KPIs
// @Description  del filtro. El KPI de stock se calcula sobre todo el catálogo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from_date     query  string  false  "YYYY-MM-DD"
// @Param        to_date       query  string  false  "YYYY-MM-DD"
// @Param        product_name  query  string  false  "Substring, case-insensitive"
// @Success      200  {object}  dto.SalesReportResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var in dto.SalesReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.reports.GetSalesReport(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from_date     query  string  false  "YYYY-MM-DD"
// @Param        to_date       query  string  false  "YYYY-MM-DD"
// @Param        product_name  query  string  false  "Substring, case-insensitive"
// @Success      200  {file}  binary
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	var in dto.SalesReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.pdf.Export(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte-ventas-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
