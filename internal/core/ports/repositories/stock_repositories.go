package repositories

import (
	"context"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
)

// StockRepositoryFacade defines persistence for per-date stock records.
type StockRepositoryFacade interface {
	// FindStockDay returns the record for a date, or apperrors.ErrNotFound
	// when none exists yet; callers create the all-zero record lazily.
	FindStockDay(ctx context.Context, date string) (*domain.StockDay, error)

	// SaveStockDay upserts the full four-mapping record as one unit.
	SaveStockDay(ctx context.Context, stock domain.StockDay) error
}
