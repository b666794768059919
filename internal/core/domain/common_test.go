package domain_test

import (
	"testing"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2025-01-15", want: "2025-01-15"},
		{name: "rejects wrong layout", input: "15-01-2025", wantErr: true},
		{name: "rejects impossible date", input: "2025-02-30", wantErr: true},
		{name: "rejects empty", input: "", wantErr: true},
		{name: "rejects datetime", input: "2025-01-15T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseDateKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name  string
		input decimal.Decimal
		want  decimal.Decimal
	}{
		{name: "whole amount unchanged", input: decimal.NewFromInt(32000), want: decimal.NewFromInt(32000)},
		{name: "fraction truncated", input: decimal.NewFromFloat(32000.75), want: decimal.NewFromInt(32000)},
		{name: "negative clamped to zero", input: decimal.NewFromInt(-500), want: decimal.Zero},
		{name: "zero stays zero", input: decimal.Zero, want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(domain.CoerceAmount(tt.input)))
		})
	}
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, int64(5), domain.CoerceQuantity(5))
	assert.Equal(t, int64(0), domain.CoerceQuantity(0))
	assert.Equal(t, int64(0), domain.CoerceQuantity(-3))
}

func TestSetOrRemove(t *testing.T) {
	m := map[string]int64{"Mas": 2}

	domain.SetOrRemove(m, "Nila", 3)
	assert.Equal(t, map[string]int64{"Mas": 2, "Nila": 3}, m)

	domain.SetOrRemove(m, "Mas", 0)
	_, exists := m["Mas"]
	assert.False(t, exists, "zero quantity must remove the key, not store a zero")

	domain.SetOrRemove(m, "Nila", -1)
	_, exists = m["Nila"]
	assert.False(t, exists, "negative quantity must remove the key")

	domain.SetOrRemove(m, "Absent", 0)
	assert.Empty(t, m)
}

func TestCopyQuantities(t *testing.T) {
	orig := map[string]int64{"Mas": 2}
	copied := domain.CopyQuantities(orig)
	copied["Mas"] = 9

	assert.Equal(t, int64(2), orig["Mas"])

	fromNil := domain.CopyQuantities(nil)
	assert.NotNil(t, fromNil)
	assert.Empty(t, fromNil)
}
