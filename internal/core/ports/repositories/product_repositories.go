package repositories

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for the price book.
type ProductReader interface {
	// ListProducts returns every price-book entry.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for the price book.
type ProductWriter interface {
	// SaveProduct upserts a price-book entry: create if absent, else overwrite.
	SaveProduct(ctx context.Context, product domain.Product) error

	// AddProduct inserts a new entry and returns apperrors.ErrDuplicate
	// when the name is already present.
	AddProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all price-book repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
