package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new repository for daily transactions.
func NewTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{db: db}
}

func scanTransaction(scan func(dest ...any) error) (*domain.DailyTransaction, error) {
	var txn domain.DailyTransaction
	var rawItems, rawTotal, rawShortfall string
	var rawPaid sql.NullString
	if err := scan(&txn.TransactionID, &txn.CustomerID, &txn.Date, &rawItems, &rawTotal, &rawPaid, &rawShortfall, &txn.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if txn.Items, err = unmarshalQuantities(rawItems); err != nil {
		return nil, err
	}
	if txn.Total, err = parseAmount(rawTotal); err != nil {
		return nil, err
	}
	if txn.ReconciledShortfall, err = parseAmount(rawShortfall); err != nil {
		return nil, err
	}
	if rawPaid.Valid {
		var paid decimal.Decimal
		if paid, err = parseAmount(rawPaid.String); err != nil {
			return nil, err
		}
		txn.Paid = &paid
	}
	return &txn, nil
}

const transactionColumns = `transaction_id, customer_id, txn_date, items, total, paid, reconciled_shortfall, created_at`

func (r *transactionRepository) FindTransactionsByDate(ctx context.Context, date string) ([]domain.DailyTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM daily_transactions
		WHERE txn_date = ?
		ORDER BY transaction_id;
	`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions for %s: %w", date, err)
	}
	defer rows.Close()

	var txns []domain.DailyTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

func (r *transactionRepository) FindTransactionByCustomerAndDate(ctx context.Context, customerID int64, date string) (*domain.DailyTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM daily_transactions
		WHERE customer_id = ? AND txn_date = ?;
	`
	row := r.db.QueryRowContext(ctx, query, customerID, date)
	txn, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction for customer %d on %s: %w", customerID, date, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction for customer %d on %s: %w", customerID, date, err)
	}
	return txn, nil
}

// SaveTransaction upserts on (customer_id, txn_date); the UNIQUE pair in
// the schema guarantees at most one record per customer per day.
func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.DailyTransaction) error {
	rawItems, err := marshalQuantities(txn.Items)
	if err != nil {
		return err
	}
	var paid sql.NullString
	if txn.Paid != nil {
		paid = sql.NullString{String: txn.Paid.String(), Valid: true}
	}

	query := `
		INSERT INTO daily_transactions (customer_id, txn_date, items, total, paid, reconciled_shortfall, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (customer_id, txn_date) DO UPDATE SET
			items = excluded.items,
			total = excluded.total,
			paid = excluded.paid,
			reconciled_shortfall = excluded.reconciled_shortfall;
	`
	_, err = r.db.ExecContext(ctx, query,
		txn.CustomerID,
		txn.Date,
		rawItems,
		txn.Total.String(),
		paid,
		txn.ReconciledShortfall.String(),
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction for customer %d on %s: %w", txn.CustomerID, txn.Date, err)
	}
	return nil
}

func (r *transactionRepository) DeleteTransactionsByDate(ctx context.Context, date string) error {
	query := `
		DELETE FROM daily_transactions
		WHERE txn_date = ?;
	`
	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("failed to clear transactions for %s: %w", date, err)
	}
	return nil
}

func (r *transactionRepository) DeleteTransactionsByCustomer(ctx context.Context, customerID int64) ([]string, error) {
	datesQuery := `
		SELECT DISTINCT txn_date
		FROM daily_transactions
		WHERE customer_id = ?;
	`
	rows, err := r.db.QueryContext(ctx, datesQuery, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction dates for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction dates: %w", err)
	}

	deleteQuery := `
		DELETE FROM daily_transactions
		WHERE customer_id = ?;
	`
	if _, err := r.db.ExecContext(ctx, deleteQuery, customerID); err != nil {
		return nil, fmt.Errorf("failed to delete transactions for customer %d: %w", customerID, err)
	}
	return dates, nil
}
