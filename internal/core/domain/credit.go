package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditBalance is a customer's running kas bon. It is not date-scoped: the
// balance carries across days and survives a day closeout. A balance of
// exactly zero is represented as absence in the store, never as a stored
// zero row.
type CreditBalance struct {
	CustomerID int64           `json:"customerID"`
	Amount     decimal.Decimal `json:"amount"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ReconcileCredit applies today's shortfall to an existing kas bon and
// returns the new balance. Underpayment adds to the debt; overpayment pays
// it down but never below zero — excess beyond the debt is discarded, not
// banked as credit-in-favor.
func ReconcileCredit(existing, shortfall decimal.Decimal) decimal.Decimal {
	next := existing.Add(shortfall)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
