package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/perfumanager/pos-api/internal/application/checkout"
	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/application/usecase"
	"github.com/perfumanager/pos-api/internal/domain"
)

// CartHandler carrito por sesión de usuario (protegido). La sesión es el
// user_id del token: cada usuario ve y edita solo su carrito.
type CartHandler struct {
	uc *checkout.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *checkout.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(GetUserID(c)))
}

// AddItem godoc
// @Summary      Añadir producto al carrito
// @Description  La cantidad pedida se recorta al stock disponible sin error.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto, cantidad y precio opcional"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id requerido"})
	}
	out, err := h.uc.AddItem(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Editar línea del carrito
// @Description  Cantidad y precio llegan como texto crudo; valores inválidos
// @Description  caen a los defaults del carrito en vez de fallar.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Cantidad y/o precio"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId numérico requerido"})
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.UpdateItem(GetUserID(c), int64(productID), in))
}

// RemoveItem godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId numérico requerido"})
	}
	return c.JSON(h.uc.RemoveItem(GetUserID(c), int64(productID)))
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.uc.Clear(GetUserID(c)))
}

// Checkout godoc
// @Summary      Finalizar venta
// @Description  Registra la venta del carrito. Si falla, el carrito queda
// @Description  intacto y no hay reintento automático.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  false  "Fecha de venta opcional"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	sale, err := h.uc.Checkout(c.Context(), GetUserID(c), in.SaleDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		case errors.Is(err, domain.ErrCartInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CART_INVALID", Message: "el carrito tiene líneas inválidas"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_venta debe ser YYYY-MM-DD"})
		case errors.Is(err, domain.ErrSaleInFlight):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SALE_IN_FLIGHT", Message: "ya hay un envío en curso para esta sesión"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para uno de los productos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto inexistente en el carrito"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToSaleResponse(sale))
}
