package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTransaction is the itemized record for one customer on one date.
// At most one record exists per (customer, date) pair; saves are upserts
// on that pair, never duplicate inserts.
//
// Items is sparse: a product absent from the map was not sold. Total is
// derived from Items against the price book current at computation time.
// Paid is nil until a payment has been entered; consumers treat nil as
// "implicitly full payment" for display purposes.
//
// ReconciledShortfall records the shortfall last folded into the customer's
// kas bon for this transaction, so that re-entering the same payment does
// not double-apply it.
type DailyTransaction struct {
	TransactionID       int64            `json:"transactionID"`
	CustomerID          int64            `json:"customerID"`
	Date                string           `json:"date"`
	Items               map[string]int64 `json:"items"`
	Total               decimal.Decimal  `json:"total"`
	Paid                *decimal.Decimal `json:"paid"`
	ReconciledShortfall decimal.Decimal  `json:"reconciledShortfall"`
	CreatedAt           time.Time        `json:"createdAt"`
}

// CalculateTotal sums quantity × unit price over a sparse item map.
// Products missing from the price book contribute nothing.
func CalculateTotal(items map[string]int64, prices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for name, qty := range items {
		if qty <= 0 {
			continue
		}
		price, ok := prices[name]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(qty)))
	}
	return total
}
