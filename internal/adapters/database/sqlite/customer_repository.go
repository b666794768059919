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

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new repository for customer data.
func NewCustomerRepository(db *sql.DB) portsrepo.CustomerRepositoryFacade {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, category, created_at
		FROM customers
		WHERE customer_id = ?;
	`
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&c.CustomerID, &c.Name, &c.Category, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", customerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return &c, nil
}

// ListCustomers returns the canonical ordering: case-insensitive
// alphabetical by name, ties broken by ID so the sequence is stable.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, category, created_at
		FROM customers
		ORDER BY name COLLATE NOCASE, customer_id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Category, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) AddCustomer(ctx context.Context, customer domain.Customer) (int64, error) {
	query := `
		INSERT INTO customers (name, category, created_at)
		VALUES (?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query, customer.Name, customer.Category, customer.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to add customer %s: %w", customer.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new customer id: %w", err)
	}
	return id, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = ?, category = ?
		WHERE customer_id = ?;
	`
	res, err := r.db.ExecContext(ctx, query, customer.Name, customer.Category, customer.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", customer.CustomerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for customer %d: %w", customer.CustomerID, err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", customer.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	query := `
		DELETE FROM customers
		WHERE customer_id = ?;
	`
	if _, err := r.db.ExecContext(ctx, query, customerID); err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	return nil
}
