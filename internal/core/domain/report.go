package domain

import "github.com/shopspring/decimal"

// DailyReport is the immutable snapshot handed to the report exporter.
// It is assembled read-only: the recomputed kas bon figures are for display
// and never written back to the store.
type DailyReport struct {
	Date      string                     `json:"date"`
	Customers []ReportCustomer           `json:"customers"`
	Summary   ReportSummary              `json:"summary"`
	Stock     StockDay                   `json:"stock"`
	Prices    map[string]decimal.Decimal `json:"prices"`
}

// ReportCustomer is one row of the daily report. Only customers with a
// non-empty itemized transaction appear.
type ReportCustomer struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Items    map[string]int64 `json:"items"`
	Total    decimal.Decimal  `json:"total"`
	// Paid is the effective amount: the recorded payment, or the full
	// total when no payment was entered (cash assumed).
	Paid decimal.Decimal `json:"paid"`
	// KasBon is the balance the customer carries after today's
	// reconciliation.
	KasBon decimal.Decimal `json:"kasBon"`
}

// ReportSummary aggregates the day.
type ReportSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalKasBon    decimal.Decimal `json:"totalKasBon"`
	TotalCustomers int             `json:"totalCustomers"`
}
