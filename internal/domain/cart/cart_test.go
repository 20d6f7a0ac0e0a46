package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfumanager/pos-api/internal/domain/cart"
)

func sauvage() cart.ProductSnapshot {
	return cart.ProductSnapshot{
		ID:        1,
		Name:      "Sauvage",
		SalePrice: decimal.NewFromInt(200),
		Stock:     10,
	}
}

func TestAdd_LineaNueva(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 10, lines[0].Stock)
	assert.Equal(t, "200.00", lines[0].Price.StringFixed(2))
}

func TestAdd_MismoProductoSumaCantidades(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{Quantity: 3})
	c.Add(sauvage(), cart.AddOptions{Quantity: 4})

	lines := c.Lines()
	require.Len(t, lines, 1, "una línea por producto")
	assert.Equal(t, 7, lines[0].Quantity)
}

// Sumar por encima del stock recorta al techo en silencio, no da error:
// a=6, b=7 con stock 10 debe quedar en 10, nunca en 13.
func TestAdd_MergeRecortaAlStock(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{Quantity: 6})
	c.Add(sauvage(), cart.AddOptions{Quantity: 7})

	assert.Equal(t, 10, c.Lines()[0].Quantity)
}

// El techo del merge es el stock del snapshot actual, no el guardado al
// añadir: tras un reabastecimiento (10 -> 20) sumar 5 a una línea de 10 debe
// dar min(15, 20) = 15.
func TestAdd_MergeUsaStockDelSnapshotActual(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{Quantity: 10})
	require.Equal(t, 10, c.Lines()[0].Quantity)

	restocked := sauvage()
	restocked.Stock = 20
	c.Add(restocked, cart.AddOptions{Quantity: 5})

	lines := c.Lines()
	assert.Equal(t, 15, lines[0].Quantity)
	assert.Equal(t, 20, lines[0].Stock, "la línea adopta el techo fresco")
}

// Y al revés: si el stock bajó desde que se añadió la línea, el merge
// recorta al techo nuevo.
func TestAdd_MergeConStockMermado(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{Quantity: 8})

	depleted := sauvage()
	depleted.Stock = 3
	c.Add(depleted, cart.AddOptions{Quantity: 1})

	lines := c.Lines()
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, lines[0].Stock)
}

func TestAdd_PrecioOverride(t *testing.T) {
	c := cart.New()
	precio := decimal.RequireFromString("150.50")
	c.Add(sauvage(), cart.AddOptions{Price: &precio})

	assert.Equal(t, "150.50", c.Lines()[0].Price.StringFixed(2))
}

func TestAdd_SinPrecioDeVentaUsaCero(t *testing.T) {
	c := cart.New()
	c.Add(cart.ProductSnapshot{ID: 2, Name: "Genérico", Stock: 5}, cart.AddOptions{})

	assert.True(t, c.Lines()[0].Price.IsZero())
}

func TestRemove_Idempotente(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})
	c.Remove(1)
	c.Remove(1) // segunda vez no hace nada
	c.Remove(99)

	assert.Equal(t, 0, c.Len())
}

func TestSetQuantity_ClampYFallback(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})

	c.SetQuantity(1, "15", 10)
	assert.Equal(t, 10, c.Lines()[0].Quantity, "por encima del stock recorta al techo")

	c.SetQuantity(1, "0", 10)
	assert.Equal(t, 1, c.Lines()[0].Quantity, "mínimo 1")

	c.SetQuantity(1, "abc", 10)
	assert.Equal(t, 1, c.Lines()[0].Quantity, "texto no numérico colapsa a 1")

	c.SetQuantity(1, "-3", 10)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.SetQuantity(1, "7", 0) // ceiling <= 0 usa el stock de la línea
	assert.Equal(t, 7, c.Lines()[0].Quantity)

	c.SetQuantity(99, "5", 10) // producto ausente: no-op
	assert.Equal(t, 1, c.Len())
}

func TestSetPrice_ComaYPiso(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})

	c.SetPrice(1, "180,50")
	assert.Equal(t, "180.50", c.Lines()[0].Price.StringFixed(2))

	c.SetPrice(1, "-20")
	assert.True(t, c.Lines()[0].Price.IsZero(), "negativo colapsa a 0")

	c.SetPrice(1, "garbage")
	assert.True(t, c.Lines()[0].Price.IsZero())
}

// Propiedad: cualquier secuencia de Add/SetQuantity deja la cantidad en [1, stock].
func TestInvariante_NuncaSobrevende(t *testing.T) {
	c := cart.New()
	p := sauvage()

	ops := []func(){
		func() { c.Add(p, cart.AddOptions{Quantity: 4}) },
		func() { c.SetQuantity(1, "999", p.Stock) },
		func() { c.Add(p, cart.AddOptions{Quantity: 9}) },
		func() { c.SetQuantity(1, "-1", p.Stock) },
		func() { c.Add(p, cart.AddOptions{}) },
	}
	for _, op := range ops {
		op()
		q := c.Lines()[0].Quantity
		assert.GreaterOrEqual(t, q, 1)
		assert.LessOrEqual(t, q, p.Stock)
	}
}

func TestTotalYCount(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{Quantity: 2}) // 2 x 200
	c.Add(cart.ProductSnapshot{
		ID: 2, Name: "Invictus", SalePrice: decimal.RequireFromString("150.50"), Stock: 5,
	}, cart.AddOptions{Quantity: 3}) // 3 x 150.50

	assert.Equal(t, "851.50", c.Total().StringFixed(2))
	assert.Equal(t, 5, c.Count())
}

func TestCanSubmit(t *testing.T) {
	c := cart.New()
	assert.False(t, c.CanSubmit(), "carrito vacío no se envía")

	c.Add(sauvage(), cart.AddOptions{Quantity: 2})
	assert.True(t, c.CanSubmit())

	// stock 0: la línea existe pero bloquea el envío
	c.Add(cart.ProductSnapshot{ID: 3, Name: "Agotado", Stock: 0}, cart.AddOptions{})
	assert.False(t, c.CanSubmit())

	c.Remove(3)
	assert.True(t, c.CanSubmit())
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
}

// Escenario completo: añadir, clamp por stock, precio con coma, payload final.
func TestBuildPayload_Escenario(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})
	c.SetQuantity(1, "15", 10)
	c.SetPrice(1, "180,50")

	p := c.BuildPayload("2024-03-01")
	require.Len(t, p.Items, 1)
	assert.Equal(t, "2024-03-01", p.SaleDate)
	assert.Equal(t, int64(1), p.Items[0].ProductID)
	assert.Equal(t, 10, p.Items[0].Quantity)
	assert.Equal(t, "180.50", p.Items[0].UnitPrice)

	// BuildPayload es puro: el carrito queda igual
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 10, c.Lines()[0].Quantity)
}

func TestLines_DevuelveCopia(t *testing.T) {
	c := cart.New()
	c.Add(sauvage(), cart.AddOptions{})

	lines := c.Lines()
	lines[0].Quantity = 999

	assert.Equal(t, 1, c.Lines()[0].Quantity, "mutar la copia no afecta al carrito")
}
