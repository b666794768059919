package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
)

// customerService implements the CustomerSvcFacade interface.
type customerService struct {
	BaseService
	customerRepo    portsrepo.CustomerRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	creditRepo      portsrepo.CreditRepositoryFacade
	stockRecomputer portssvc.StockRecomputerSvc
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithStockRecomputer adds the ledger dependency used to re-derive stock
// after a cascade delete removes a customer's transactions.
func WithStockRecomputer(svc portssvc.StockRecomputerSvc) CustomerServiceOption {
	return func(s *customerService) {
		s.stockRecomputer = svc
	}
}

// NewCustomerService creates the customer directory service.
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	creditRepo portsrepo.CreditRepositoryFacade,
	options ...CustomerServiceOption,
) portssvc.CustomerSvcFacade {
	svc := &customerService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		creditRepo:      creditRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure customerService implements the CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// SearchCustomers reorders the canonical list for a term: case-insensitive
// substring matches first, then the rest, relative order preserved within
// each partition. The canonical list itself is never mutated, so clearing
// the term restores it exactly.
func (s *customerService) SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return customers, nil
	}

	matched := make([]domain.Customer, 0, len(customers))
	rest := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	return append(matched, rest...), nil
}

func (s *customerService) AddCustomer(ctx context.Context, name, category string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		category = domain.DefaultCustomerCategory
	}

	customer := domain.Customer{
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.customerRepo.AddCustomer(ctx, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to add customer", slog.String("name", name))
		return nil, err
	}
	customer.CustomerID = id

	s.LogInfo(ctx, "Customer added", slog.Int64("customer_id", id), slog.String("name", name))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, name, category string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = name
	if strings.TrimSpace(category) != "" {
		customer.Category = category
	}
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.Int64("customer_id", customerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated", slog.Int64("customer_id", customerID))
	return customer, nil
}

// RemoveCustomer deletes a customer and cascades: every transaction the
// customer ever had and the kas bon record go with them, then stock is
// re-derived for each date that lost a transaction.
func (s *customerService) RemoveCustomer(ctx context.Context, customerID int64) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}

	dates, err := s.transactionRepo.DeleteTransactionsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete customer transactions", slog.Int64("customer_id", customerID))
		return err
	}
	if err := s.creditRepo.DeleteCredit(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer kas bon", slog.Int64("customer_id", customerID))
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.Int64("customer_id", customerID))
		return err
	}

	if s.stockRecomputer != nil {
		for _, date := range dates {
			if _, err := s.stockRecomputer.RecomputeStock(ctx, date); err != nil {
				s.LogError(ctx, err, "Failed to recompute stock after customer removal",
					slog.Int64("customer_id", customerID),
					slog.String("date", date))
				return err
			}
		}
	}

	s.LogInfo(ctx, "Customer removed", slog.Int64("customer_id", customerID), slog.Int("dates_recomputed", len(dates)))
	return nil
}
