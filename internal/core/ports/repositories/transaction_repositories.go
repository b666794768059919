package repositories

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for daily transactions.
type TransactionReader interface {
	// FindTransactionsByDate returns every transaction for a date.
	FindTransactionsByDate(ctx context.Context, date string) ([]domain.DailyTransaction, error)

	// FindTransactionByCustomerAndDate returns the single record for the
	// (customer, date) pair, or apperrors.ErrNotFound.
	FindTransactionByCustomerAndDate(ctx context.Context, customerID int64, date string) (*domain.DailyTransaction, error)
}

// TransactionWriter defines write operations for daily transactions.
type TransactionWriter interface {
	// SaveTransaction upserts on the (customer, date) pair: at most one
	// record may ever exist for the pair.
	SaveTransaction(ctx context.Context, txn domain.DailyTransaction) error

	// DeleteTransactionsByDate bulk-clears a date (day closeout).
	DeleteTransactionsByDate(ctx context.Context, date string) error

	// DeleteTransactionsByCustomer removes every transaction for a customer
	// across all dates and returns the distinct dates that were touched, so
	// the caller can recompute stock for each.
	DeleteTransactionsByCustomer(ctx context.Context, customerID int64) ([]string, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
