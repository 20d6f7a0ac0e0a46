package numeric_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/perfumanager/pos-api/pkg/numeric"
)

func TestParseDecimal_SeparadorComaYPunto(t *testing.T) {
	d, ok := numeric.ParseDecimal("180,50")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("180.50")))

	d, ok = numeric.ParseDecimal("180.50")
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("180.5")))
}

func TestParseDecimal_Invalido(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "12,3,4", "1.2.3"} {
		_, ok := numeric.ParseDecimal(raw)
		assert.False(t, ok, "raw=%q debe ser inválido", raw)
	}
}

func TestMoneyOrZero_NegativoColapsaACero(t *testing.T) {
	assert.True(t, numeric.MoneyOrZero("-5").IsZero())
	assert.True(t, numeric.MoneyOrZero("no-numérico").IsZero())
	assert.True(t, numeric.MoneyOrZero("0").IsZero())
	assert.Equal(t, "99.99", numeric.MoneyOrZero("99,99").StringFixed(2))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 15, numeric.IntOr("15", 1))
	assert.Equal(t, 3, numeric.IntOr("3.0", 1))
	assert.Equal(t, 1, numeric.IntOr("", 1))
	assert.Equal(t, 1, numeric.IntOr("x", 1))
	assert.Equal(t, 1, numeric.IntOr("2.5", 1)) // no entero -> default
	assert.Equal(t, -4, numeric.IntOr("-4", 1)) // el clamp es responsabilidad del llamador
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, numeric.Clamp(0, 1, 10))
	assert.Equal(t, 10, numeric.Clamp(15, 1, 10))
	assert.Equal(t, 5, numeric.Clamp(5, 1, 10))
}
