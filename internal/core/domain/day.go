package domain

import "github.com/shopspring/decimal"

// LedgerDay is the assembled per-date view the presentation layer re-reads
// after each edit: the day's transactions keyed by customer, the stock
// record, and every outstanding kas bon (kas bon is cross-day state, so the
// map is not limited to customers who traded today).
type LedgerDay struct {
	Date         string                     `json:"date"`
	Transactions map[int64]DailyTransaction `json:"transactions"`
	Stock        StockDay                   `json:"stock"`
	Credits      map[int64]decimal.Decimal  `json:"credits"`
}
