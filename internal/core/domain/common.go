package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateKeyLayout is the calendar-date form used as the join key between
// transactions and stock records.
const DateKeyLayout = "2006-01-02"

// ParseDateKey validates a YYYY-MM-DD date key and returns it normalized.
func ParseDateKey(s string) (string, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return t.Format(DateKeyLayout), nil
}

// CoerceAmount normalizes a currency amount to a whole, non-negative value.
// Fractional input is truncated, negative input becomes zero.
func CoerceAmount(d decimal.Decimal) decimal.Decimal {
	d = d.Truncate(0)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoerceQuantity normalizes a quantity to a non-negative integer.
func CoerceQuantity(q int64) int64 {
	if q < 0 {
		return 0
	}
	return q
}

// SetOrRemove is the single mutation primitive for sparse quantity maps:
// an absent key means zero, so a zero quantity removes the key instead of
// storing an explicit zero.
func SetOrRemove(m map[string]int64, key string, quantity int64) {
	if quantity <= 0 {
		delete(m, key)
		return
	}
	m[key] = quantity
}

// CopyQuantities returns a shallow copy of a sparse quantity map.
// A nil input yields an empty, usable map.
func CopyQuantities(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
