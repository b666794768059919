package services

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRecomputerSvc is the narrow slice of the ledger service other
// services need: re-deriving a date's stock after transactions change
// underneath it.
type StockRecomputerSvc interface {
	RecomputeStock(ctx context.Context, date string) (*domain.StockDay, error)
}

// LedgerSvcFacade is the reconciliation engine. Every operation takes the
// date explicitly; there is no ambient "current day" state. Mutating
// operations run to completion one at a time.
type LedgerSvcFacade interface {
	StockRecomputerSvc

	// GetDay assembles the per-date view: transactions, stock, kas bon.
	GetDay(ctx context.Context, date string) (*domain.LedgerDay, error)

	// SetItemQuantity records a quantity edit. Zero removes the product
	// from the customer's items; the total is recomputed from the current
	// price book; the recorded payment is preserved; stock is re-derived
	// and persisted.
	SetItemQuantity(ctx context.Context, date string, customerID int64, product string, quantity int64) (*domain.DailyTransaction, error)

	// RecordPayment reconciles a payment against the customer's kas bon.
	// A nil paid amount, or a day with no sale, leaves the balance alone.
	// Re-entering an identical payment is a no-op on the balance.
	RecordPayment(ctx context.Context, date string, customerID int64, paid *decimal.Decimal) (*domain.CreditBalance, error)

	// SetCreditOverride bypasses reconciliation and sets the kas bon
	// directly to max(0, amount), for manual corrections.
	SetCreditOverride(ctx context.Context, customerID int64, amount decimal.Decimal) (*domain.CreditBalance, error)

	// SetStockIn records a manual stock-in quantity and re-derives the day.
	SetStockIn(ctx context.Context, date string, product string, quantity int64) (*domain.StockDay, error)

	// SetStockDead records a manual dead-stock quantity and re-derives the day.
	SetStockDead(ctx context.Context, date string, product string, quantity int64) (*domain.StockDay, error)

	// CloseoutDay clears the date's transactions and resets its stock to
	// zero. Kas bon balances are cross-day state and are left untouched.
	CloseoutDay(ctx context.Context, date string) error
}
