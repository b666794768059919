package services

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceBookSvcFacade manages the product price list.
type PriceBookSvcFacade interface {
	// ListPrices returns the full price book, seeding the default catalog
	// first when the store is empty.
	ListPrices(ctx context.Context) ([]domain.Product, error)

	// SetPrice coerces the price to a whole non-negative amount and upserts.
	SetPrice(ctx context.Context, name string, price decimal.Decimal) error

	// SetPrices applies a bulk price edit (the price modal saves every row).
	SetPrices(ctx context.Context, prices map[string]decimal.Decimal) error

	// AddProduct creates a new entry; apperrors.ErrDuplicate if the name exists.
	AddProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error)
}
