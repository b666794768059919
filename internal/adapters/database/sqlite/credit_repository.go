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

type creditRepository struct {
	db *sql.DB
}

// NewCreditRepository creates a new repository for kas bon balances.
func NewCreditRepository(db *sql.DB) portsrepo.CreditRepositoryFacade {
	return &creditRepository{db: db}
}

func (r *creditRepository) FindCreditByCustomer(ctx context.Context, customerID int64) (*domain.CreditBalance, error) {
	query := `
		SELECT customer_id, amount, updated_at
		FROM credit_balances
		WHERE customer_id = ?;
	`
	var credit domain.CreditBalance
	var rawAmount string
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&credit.CustomerID, &rawAmount, &credit.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("kas bon for customer %d: %w", customerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find kas bon for customer %d: %w", customerID, err)
	}
	if credit.Amount, err = parseAmount(rawAmount); err != nil {
		return nil, err
	}
	return &credit, nil
}

func (r *creditRepository) ListCredits(ctx context.Context) ([]domain.CreditBalance, error) {
	query := `
		SELECT customer_id, amount, updated_at
		FROM credit_balances
		ORDER BY customer_id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kas bon balances: %w", err)
	}
	defer rows.Close()

	var credits []domain.CreditBalance
	for rows.Next() {
		var credit domain.CreditBalance
		var rawAmount string
		if err := rows.Scan(&credit.CustomerID, &rawAmount, &credit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan kas bon row: %w", err)
		}
		if credit.Amount, err = parseAmount(rawAmount); err != nil {
			return nil, err
		}
		credits = append(credits, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kas bon rows: %w", err)
	}
	return credits, nil
}

func (r *creditRepository) SaveCredit(ctx context.Context, credit domain.CreditBalance) error {
	query := `
		INSERT INTO credit_balances (customer_id, amount, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (customer_id) DO UPDATE SET
			amount = excluded.amount,
			updated_at = excluded.updated_at;
	`
	if _, err := r.db.ExecContext(ctx, query, credit.CustomerID, credit.Amount.String(), credit.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save kas bon for customer %d: %w", credit.CustomerID, err)
	}
	return nil
}

func (r *creditRepository) DeleteCredit(ctx context.Context, customerID int64) error {
	query := `
		DELETE FROM credit_balances
		WHERE customer_id = ?;
	`
	if _, err := r.db.ExecContext(ctx, query, customerID); err != nil {
		return fmt.Errorf("failed to delete kas bon for customer %d: %w", customerID, err)
	}
	return nil
}
