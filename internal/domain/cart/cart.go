// Package cart implementa el carrito de venta: un borrador en memoria que
// acumula líneas desde el catálogo bajo la restricción de stock y produce el
// payload de creación de venta. Toda mutación es síncrona y local; los
// derivados (total, count, canSubmit) se recalculan en cada lectura.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/perfumanager/pos-api/pkg/numeric"
)

// ProductSnapshot es la foto del producto en el momento de añadirlo:
// el stock visto aquí actúa como techo de cantidad para la línea.
type ProductSnapshot struct {
	ID        int64
	Name      string
	SalePrice decimal.Decimal
	Stock     int
	ImageURL  string
}

// Line una línea del carrito. Invariante: 1 <= Quantity <= Stock y Price >= 0.
type Line struct {
	ProductID int64
	Name      string
	Stock     int // techo de cantidad (snapshot al añadir)
	Price     decimal.Decimal
	Quantity  int
	ImageURL  string
}

// Subtotal devuelve Price * Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AddOptions overrides opcionales al añadir un producto.
type AddOptions struct {
	Price    *decimal.Decimal // nil -> precio de venta del producto
	Quantity int              // <= 0 -> 1
}

// PayloadItem línea del payload de creación de venta.
// El precio va formateado con exactamente 2 decimales.
type PayloadItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"cantidad"`
	UnitPrice string `json:"precio_unitario_bob"`
}

// Payload cuerpo normalizado para crear la venta.
type Payload struct {
	SaleDate string        `json:"fecha_venta"`
	Items    []PayloadItem `json:"items"`
}

// Cart borrador de venta: líneas en orden de inserción, una por producto.
// No es seguro para uso concurrente; cada sesión de venta posee el suyo.
type Cart struct {
	lines []Line
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// Add añade el producto al carrito o, si ya existe la línea, suma cantidades.
// La cantidad resultante se recorta en silencio al stock del producto: pedir
// más de lo disponible nunca es error, simplemente queda en el techo.
// En el merge manda el stock del snapshot actual, no el guardado: la línea
// adopta el techo más fresco (un reabastecimiento lo sube, una merma lo baja).
func (c *Cart) Add(p ProductSnapshot, opts AddOptions) {
	qty := opts.Quantity
	if qty <= 0 {
		qty = 1
	}
	stock := p.Stock
	if stock < 0 {
		stock = 0
	}

	if i := c.indexOf(p.ID); i >= 0 {
		c.lines[i].Stock = stock
		c.lines[i].Quantity = numeric.Clamp(c.lines[i].Quantity+qty, 1, maxInt(stock, 1))
		return
	}

	price := p.SalePrice
	if opts.Price != nil {
		price = *opts.Price
	}
	if price.IsNegative() {
		price = decimal.Zero
	}

	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Stock:     stock,
		Price:     price,
		Quantity:  numeric.Clamp(qty, 1, maxInt(stock, 1)),
		ImageURL:  p.ImageURL,
	})
}

// Remove quita la línea del producto. No hace nada si no existe.
func (c *Cart) Remove(productID int64) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity fija la cantidad de la línea parseando el texto del input.
// Texto no numérico colapsa a 1; el valor queda en [1, ceiling]. Si ceiling
// es <= 0 se usa el techo guardado en la línea. Producto ausente: no-op.
func (c *Cart) SetQuantity(productID int64, raw string, ceiling int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if ceiling <= 0 {
		ceiling = c.lines[i].Stock
	}
	qty := numeric.IntOr(raw, 1)
	c.lines[i].Quantity = numeric.Clamp(qty, 1, maxInt(ceiling, 1))
}

// SetPrice fija el precio unitario parseando el texto del input.
// Acepta "." o "," como separador decimal; inválido o negativo colapsa a 0.
func (c *Cart) SetPrice(productID int64, raw string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.lines[i].Price = numeric.MoneyOrZero(raw)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len cantidad de líneas.
func (c *Cart) Len() int { return len(c.lines) }

// Total suma de subtotales (precio * cantidad).
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count suma de cantidades.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// CanSubmit indica si la venta puede enviarse: carrito no vacío y cada línea
// con cantidad en (0, stock] y precio >= 0. Se evalúa en cada llamada, nunca
// se cachea.
func (c *Cart) CanSubmit() bool {
	if len(c.lines) == 0 {
		return false
	}
	for _, l := range c.lines {
		if l.Quantity <= 0 || l.Quantity > l.Stock || l.Price.IsNegative() {
			return false
		}
	}
	return true
}

// BuildPayload construye el cuerpo de creación de venta. Función pura: no
// modifica el carrito.
func (c *Cart) BuildPayload(saleDate string) Payload {
	items := make([]PayloadItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, PayloadItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price.StringFixed(2),
		})
	}
	return Payload{SaleDate: saleDate, Items: items}
}

func (c *Cart) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
