package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/application/usecase"
	"github.com/perfumanager/pos-api/internal/domain"
)

// LotHandler maneja las peticiones HTTP para lotes de compra (protegido).
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Lote con items opcionales"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return lotError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddItems godoc
// @Summary      Ingresar items a un lote
// @Description  Cada item suma stock al producto y recalcula su costo promedio.
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del lote"
// @Param        body  body  []dto.LotItemRequest  true  "Items a ingresar"
// @Success      200   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/items [post]
func (h *LotHandler) AddItems(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var items []dto.LotItemRequest
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItems(c.Context(), int64(id), items)
	if err != nil {
		return lotError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        from_date  query  string  false  "YYYY-MM-DD"
// @Param        to_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.LotResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	var in dto.ListLotsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte de lotes
// @Description  Filas por item con nombres resueltos y KPIs de inversión. El
// @Description  filtro de texto ignora mayúsculas y acentos.
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        from_date     query  string  false  "YYYY-MM-DD"
// @Param        to_date       query  string  false  "YYYY-MM-DD"
// @Param        product_name  query  string  false  "Substring del producto o lote"
// @Success      200  {object}  dto.LotReportResponse
// @Router       /api/reports/lots [get]
func (h *LotHandler) Report(c *fiber.Ctx) error {
	var in dto.ListLotsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.Report(in, c.Query("product_name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// lotError mapea los errores de dominio de lotes a HTTP.
func lotError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido; fecha YYYY-MM-DD; items con cantidad > 0 y costo no negativo"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote o producto inexistente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
