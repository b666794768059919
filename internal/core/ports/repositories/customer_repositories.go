package repositories

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// CustomerReader defines read operations for the customer directory.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer, or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers returns every customer in canonical order:
	// case-insensitive alphabetical by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for the customer directory.
type CustomerWriter interface {
	// AddCustomer inserts a customer and returns the store-assigned ID.
	AddCustomer(ctx context.Context, customer domain.Customer) (int64, error)

	// UpdateCustomer updates name and category in place;
	// apperrors.ErrNotFound when the ID is absent.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes the customer record only; related records are
	// the caller's responsibility.
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
