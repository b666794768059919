package services

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// CustomerSvcFacade manages the customer directory.
type CustomerSvcFacade interface {
	// ListCustomers returns the canonical ordering: case-insensitive
	// alphabetical by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomers returns the full directory reordered for a search
	// term: case-insensitive substring matches first, relative order
	// preserved within each partition. An empty term yields the canonical
	// ordering exactly.
	SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error)

	// AddCustomer validates the trimmed name is non-empty, applies the
	// default category when unset, and returns the stored customer.
	AddCustomer(ctx context.Context, name, category string) (*domain.Customer, error)

	// UpdateCustomer edits name and category in place.
	UpdateCustomer(ctx context.Context, customerID int64, name, category string) (*domain.Customer, error)

	// RemoveCustomer deletes the customer and cascades: its transactions
	// across all dates and its kas bon record are removed, then stock is
	// recomputed for every date that lost a transaction.
	RemoveCustomer(ctx context.Context, customerID int64) error
}
