package sqlite

import (
	"database/sql"

	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite-backed repository over one
// shared connection pool.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:     NewProductRepository(db),
		CustomerRepo:    NewCustomerRepository(db),
		TransactionRepo: NewTransactionRepository(db),
		StockRepo:       NewStockRepository(db),
		CreditRepo:      NewCreditRepository(db),
	}
}
