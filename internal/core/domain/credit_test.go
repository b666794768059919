package domain_test

import (
	"testing"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcileCredit(t *testing.T) {
	tests := []struct {
		name      string
		existing  int64
		shortfall int64
		want      int64
	}{
		{name: "underpayment adds debt", existing: 10000, shortfall: 20000, want: 30000},
		{name: "overpayment reduces debt", existing: 30000, shortfall: -10000, want: 20000},
		{name: "excess beyond debt discarded", existing: 5000, shortfall: -20000, want: 0},
		{name: "zero shortfall leaves balance", existing: 7000, shortfall: 0, want: 7000},
		{name: "from zero", existing: 0, shortfall: 12000, want: 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ReconcileCredit(decimal.NewFromInt(tt.existing), decimal.NewFromInt(tt.shortfall))
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "want %d, got %s", tt.want, got)
		})
	}
}
