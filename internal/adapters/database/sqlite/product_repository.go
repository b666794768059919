package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new repository for price-book data.
func NewProductRepository(db *sql.DB) portsrepo.ProductRepositoryFacade {
	return &productRepository{db: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT name, price
		FROM products
		ORDER BY name COLLATE NOCASE;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var rawPrice string
		if err := rows.Scan(&p.Name, &rawPrice); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		if p.Price, err = parseAmount(rawPrice); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return products, nil
}

func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET price = excluded.price;
	`
	if _, err := r.db.ExecContext(ctx, query, product.Name, product.Price.String()); err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.Name, err)
	}
	return nil
}

func (r *productRepository) AddProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES (?, ?);
	`
	if _, err := r.db.ExecContext(ctx, query, product.Name, product.Price.String()); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %s: %w", product.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to add product %s: %w", product.Name, err)
	}
	return nil
}
