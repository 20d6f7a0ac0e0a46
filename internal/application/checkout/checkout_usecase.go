// Package checkout mantiene un carrito por sesión de usuario y orquesta el
// envío de la venta: valida con el propio carrito, llama al colaborador de
// creación y solo limpia el carrito si la venta quedó registrada. Nunca
// reintenta por su cuenta: un fallo deja el carrito intacto para que el
// usuario decida.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/perfumanager/pos-api/internal/application/dto"
	"github.com/perfumanager/pos-api/internal/domain"
	"github.com/perfumanager/pos-api/internal/domain/cart"
	"github.com/perfumanager/pos-api/internal/domain/entity"
	"github.com/perfumanager/pos-api/pkg/numeric"
)

// session carrito de una sesión más su flag de envío en curso.
type session struct {
	cart     *cart.Cart
	inFlight bool
}

// UseCase carritos por sesión (clave: userID del token). Los carritos viven
// en memoria y mueren con el proceso; no se persisten.
type UseCase struct {
	products ProductReader
	sales    SaleCreator

	mu       sync.Mutex
	sessions map[string]*session
}

// NewUseCase construye el caso de uso.
func NewUseCase(products ProductReader, sales SaleCreator) *UseCase {
	return &UseCase{
		products: products,
		sales:    sales,
		sessions: make(map[string]*session),
	}
}

// AddItem añade el producto al carrito de la sesión. La cantidad pedida se
// recorta al stock; el precio opcional llega como texto ("180,50" vale).
func (uc *UseCase) AddItem(sessionID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	opts := cart.AddOptions{Quantity: in.Quantity}
	if in.Price != "" {
		price := numeric.MoneyOrZero(in.Price)
		opts.Price = &price
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.session(sessionID)
	s.cart.Add(snapshot(product), opts)
	return view(s.cart), nil
}

// UpdateItem aplica cantidad y/o precio crudos a la línea; las reglas de
// parseo y clamp son del motor del carrito. Línea inexistente: no-op.
func (uc *UseCase) UpdateItem(sessionID string, productID int64, in dto.UpdateCartItemRequest) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.session(sessionID)
	if in.Quantity != nil {
		s.cart.SetQuantity(productID, *in.Quantity, 0)
	}
	if in.Price != nil {
		s.cart.SetPrice(productID, *in.Price)
	}
	return view(s.cart)
}

// RemoveItem quita la línea; idempotente.
func (uc *UseCase) RemoveItem(sessionID string, productID int64) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.session(sessionID)
	s.cart.Remove(productID)
	return view(s.cart)
}

// Clear vacía el carrito de la sesión.
func (uc *UseCase) Clear(sessionID string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := uc.session(sessionID)
	s.cart.Clear()
	return view(s.cart)
}

// Get devuelve el estado actual del carrito.
func (uc *UseCase) Get(sessionID string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return view(uc.session(sessionID).cart)
}

// Checkout envía la venta. Garantías:
//   - no llama al colaborador si el carrito no puede enviarse;
//   - a lo sumo un envío en curso por sesión (doble click no duplica ventas);
//   - éxito limpia el carrito, fallo lo deja byte a byte como estaba.
func (uc *UseCase) Checkout(ctx context.Context, sessionID, saleDate string) (*entity.Sale, error) {
	if saleDate == "" {
		saleDate = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", saleDate); err != nil {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	s := uc.session(sessionID)
	if s.inFlight {
		uc.mu.Unlock()
		return nil, domain.ErrSaleInFlight
	}
	if s.cart.Len() == 0 {
		uc.mu.Unlock()
		return nil, domain.ErrEmptyCart
	}
	if !s.cart.CanSubmit() {
		uc.mu.Unlock()
		return nil, domain.ErrCartInvalid
	}
	payload := s.cart.BuildPayload(saleDate)
	s.inFlight = true
	uc.mu.Unlock()

	sale, err := uc.sales.Create(ctx, payload)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	s.inFlight = false
	if err != nil {
		return nil, err
	}
	s.cart.Clear()
	return sale, nil
}

// session devuelve (o crea) el carrito de la sesión. Llamar con mu tomado.
func (uc *UseCase) session(id string) *session {
	s, ok := uc.sessions[id]
	if !ok {
		s = &session{cart: cart.New()}
		uc.sessions[id] = s
	}
	return s
}

func snapshot(p *entity.Product) cart.ProductSnapshot {
	return cart.ProductSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
	}
}

func view(c *cart.Cart) *dto.CartResponse {
	lines := c.Lines()
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Stock:     l.Stock,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
			ImageURL:  l.ImageURL,
		})
	}
	return &dto.CartResponse{
		Items:     items,
		Total:     c.Total(),
		Count:     c.Count(),
		CanSubmit: c.CanSubmit(),
	}
}
