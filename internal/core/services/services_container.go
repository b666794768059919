package services

import (
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires the application services over the repository
// provider. The ledger is built first so the customer service can reuse it
// for stock recomputation after cascade deletes.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	priceBook := NewPriceBookService(repos.ProductRepo)
	ledger := NewLedgerService(priceBook, repos.CustomerRepo, repos.TransactionRepo, repos.StockRepo, repos.CreditRepo)
	customer := NewCustomerService(
		repos.CustomerRepo,
		repos.TransactionRepo,
		repos.CreditRepo,
		WithStockRecomputer(ledger),
	)
	reporting := NewReportingService(priceBook, customer, ledger)

	return &portssvc.ServiceContainer{
		PriceBook: priceBook,
		Customer:  customer,
		Ledger:    ledger,
		Reporting: reporting,
	}
}
