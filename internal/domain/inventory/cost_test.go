package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/perfumanager/pos-api/internal/domain/inventory"
)

func TestWeightedAverageCost(t *testing.T) {
	// 10 unidades a 100 + 10 unidades a 120 => costo 110
	got := inventory.WeightedAverageCost(10, decimal.NewFromInt(100), 10, decimal.NewFromInt(120))
	assert.Equal(t, "110.00", got.StringFixed(2))
}

func TestWeightedAverageCost_SinStockPrevio(t *testing.T) {
	got := inventory.WeightedAverageCost(0, decimal.Zero, 5, decimal.NewFromInt(80))
	assert.Equal(t, "80.00", got.StringFixed(2))
}

func TestWeightedAverageCost_EntradaCero(t *testing.T) {
	assert.True(t, inventory.WeightedAverageCost(0, decimal.Zero, 0, decimal.Zero).IsZero())
}
