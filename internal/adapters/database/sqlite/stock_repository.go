package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
)

type stockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new repository for per-date stock records.
func NewStockRepository(db *sql.DB) portsrepo.StockRepositoryFacade {
	return &stockRepository{db: db}
}

func (r *stockRepository) FindStockDay(ctx context.Context, date string) (*domain.StockDay, error) {
	query := `
		SELECT stock_date, stock_in, stock_out, stock_dead, stock_remaining
		FROM stock_days
		WHERE stock_date = ?;
	`
	var stock domain.StockDay
	var rawIn, rawOut, rawDead, rawRemaining string
	err := r.db.QueryRowContext(ctx, query, date).Scan(&stock.Date, &rawIn, &rawOut, &rawDead, &rawRemaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stock for %s: %w", date, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find stock for %s: %w", date, err)
	}

	if stock.StockIn, err = unmarshalQuantities(rawIn); err != nil {
		return nil, err
	}
	if stock.StockOut, err = unmarshalQuantities(rawOut); err != nil {
		return nil, err
	}
	if stock.StockDead, err = unmarshalQuantities(rawDead); err != nil {
		return nil, err
	}
	if stock.StockRemaining, err = unmarshalQuantities(rawRemaining); err != nil {
		return nil, err
	}
	return &stock, nil
}

// SaveStockDay writes all four mappings as one row so stockOut and
// stockRemaining are never visible out of step.
func (r *stockRepository) SaveStockDay(ctx context.Context, stock domain.StockDay) error {
	rawIn, err := marshalQuantities(stock.StockIn)
	if err != nil {
		return err
	}
	rawOut, err := marshalQuantities(stock.StockOut)
	if err != nil {
		return err
	}
	rawDead, err := marshalQuantities(stock.StockDead)
	if err != nil {
		return err
	}
	rawRemaining, err := marshalQuantities(stock.StockRemaining)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO stock_days (stock_date, stock_in, stock_out, stock_dead, stock_remaining)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (stock_date) DO UPDATE SET
			stock_in = excluded.stock_in,
			stock_out = excluded.stock_out,
			stock_dead = excluded.stock_dead,
			stock_remaining = excluded.stock_remaining;
	`
	if _, err := r.db.ExecContext(ctx, query, stock.Date, rawIn, rawOut, rawDead, rawRemaining); err != nil {
		return fmt.Errorf("failed to save stock for %s: %w", stock.Date, err)
	}
	return nil
}
