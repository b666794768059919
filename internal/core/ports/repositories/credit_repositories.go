package repositories

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// CreditRepositoryFacade defines persistence for kas bon balances.
//
// A zero balance must never be stored: the ledger service deletes the
// record instead, so a lookup miss is the canonical zero.
type CreditRepositoryFacade interface {
	// FindCreditByCustomer returns the balance, or apperrors.ErrNotFound
	// when the customer has no outstanding kas bon.
	FindCreditByCustomer(ctx context.Context, customerID int64) (*domain.CreditBalance, error)

	// ListCredits returns every non-zero balance.
	ListCredits(ctx context.Context) ([]domain.CreditBalance, error)

	// SaveCredit upserts a non-zero balance.
	SaveCredit(ctx context.Context, credit domain.CreditBalance) error

	// DeleteCredit removes a balance record. Deleting an absent record is
	// not an error.
	DeleteCredit(ctx context.Context, customerID int64) error
}
