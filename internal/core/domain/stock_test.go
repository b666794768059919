package domain_test

import (
	"testing"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestStockDay_Recompute(t *testing.T) {
	stock := domain.NewStockDay("2025-01-15")
	stock.StockIn["Mas"] = 10
	stock.StockDead["Mas"] = 2

	// Three customers with Mas quantities 2, 3 and 0.
	txns := []domain.DailyTransaction{
		{CustomerID: 7, Items: map[string]int64{"Mas": 2}},
		{CustomerID: 8, Items: map[string]int64{"Mas": 3}},
		{CustomerID: 9, Items: map[string]int64{}},
	}

	stock.Recompute(txns)

	assert.Equal(t, int64(5), stock.StockOut["Mas"])
	assert.Equal(t, int64(3), stock.StockRemaining["Mas"], "remaining = 10 − 5 − 2")
}

func TestStockDay_Recompute_ClampsRemainingAtZero(t *testing.T) {
	stock := domain.NewStockDay("2025-01-15")
	stock.StockIn["Mas"] = 2

	stock.Recompute([]domain.DailyTransaction{
		{CustomerID: 7, Items: map[string]int64{"Mas": 3}},
	})

	_, exists := stock.StockRemaining["Mas"]
	assert.False(t, exists, "clamped remaining must be absent, not a stored zero")
}

func TestStockDay_Recompute_CoversProductsWithoutStockIn(t *testing.T) {
	// A product only ever sold, never stocked in: out is tracked and
	// remaining clamps to absence.
	stock := domain.NewStockDay("2025-01-15")

	stock.Recompute([]domain.DailyTransaction{
		{CustomerID: 7, Items: map[string]int64{"Nila": 4}},
	})

	assert.Equal(t, int64(4), stock.StockOut["Nila"])
	assert.Empty(t, stock.StockRemaining)
}

func TestStockDay_Recompute_ReplacesStaleDerivedState(t *testing.T) {
	stock := domain.NewStockDay("2025-01-15")
	stock.StockIn["Mas"] = 10
	stock.Recompute([]domain.DailyTransaction{
		{CustomerID: 7, Items: map[string]int64{"Mas": 6}},
	})
	assert.Equal(t, int64(6), stock.StockOut["Mas"])

	// Transactions shrink; derived values must follow, not accumulate.
	stock.Recompute([]domain.DailyTransaction{
		{CustomerID: 7, Items: map[string]int64{"Mas": 1}},
	})
	assert.Equal(t, int64(1), stock.StockOut["Mas"])
	assert.Equal(t, int64(9), stock.StockRemaining["Mas"])
}
