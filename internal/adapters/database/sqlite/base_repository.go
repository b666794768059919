package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity maps and currency amounts are stored as TEXT: maps as compact
// JSON objects, amounts as decimal strings. SQLite has no native decimal
// type and the amounts are whole Rupiah, so text round-trips exactly.

func marshalQuantities(m map[string]int64) (string, error) {
	if m == nil {
		m = map[string]int64{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal quantity map: %w", err)
	}
	return string(raw), nil
}

func unmarshalQuantities(raw string) (map[string]int64, error) {
	m := map[string]int64{}
	if raw == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quantity map: %w", err)
	}
	// Defensive defaulting on read: drop explicit zeros so absence stays
	// the canonical encoding for zero.
	for k, v := range m {
		if v <= 0 {
			delete(m, k)
		}
	}
	return m, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse stored amount %q: %w", raw, err)
	}
	return d, nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure. modernc.org/sqlite does not export a typed sentinel for this,
// so the extended result message is matched.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
