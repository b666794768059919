package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portsrepo "github.com/lautanbiru/fish_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ledgerService is the reconciliation engine: it owns every mutation of
// transactions, stock and kas bon. A single mutex serializes mutating
// operations so each edit runs to completion before the next, matching the
// one-actor model the ledger assumes. There is no cross-entity transaction:
// a crash between the kas bon write and the transaction write in
// RecordPayment can leave the two inconsistent, and that is the accepted
// consistency boundary of the system.
type ledgerService struct {
	BaseService
	mu sync.Mutex

	priceBook       portssvc.PriceBookSvcFacade
	customerRepo    portsrepo.CustomerReader
	transactionRepo portsrepo.TransactionRepositoryFacade
	stockRepo       portsrepo.StockRepositoryFacade
	creditRepo      portsrepo.CreditRepositoryFacade
}

// NewLedgerService creates the reconciliation engine.
func NewLedgerService(
	priceBook portssvc.PriceBookSvcFacade,
	customerRepo portsrepo.CustomerReader,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	stockRepo portsrepo.StockRepositoryFacade,
	creditRepo portsrepo.CreditRepositoryFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		priceBook:       priceBook,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		stockRepo:       stockRepo,
		creditRepo:      creditRepo,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// storeFailed tags a persistence error so handlers can report the generic
// "save failed" condition. The in-memory mutation has already happened;
// nothing is retried or rolled back.
func storeFailed(err error) error {
	return fmt.Errorf("%s: %w", err.Error(), apperrors.ErrStoreUnavailable)
}

func normalizeDate(date string) (string, error) {
	normalized, err := domain.ParseDateKey(date)
	if err != nil {
		return "", fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	return normalized, nil
}

func (s *ledgerService) GetDay(ctx context.Context, date string) (*domain.LedgerDay, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.FindTransactionsByDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("date", date))
		return nil, err
	}
	stock, err := s.loadStockDay(ctx, date)
	if err != nil {
		return nil, err
	}
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load kas bon balances")
		return nil, err
	}

	day := &domain.LedgerDay{
		Date:         date,
		Transactions: make(map[int64]domain.DailyTransaction, len(txns)),
		Stock:        *stock,
		Credits:      make(map[int64]decimal.Decimal, len(credits)),
	}
	for _, txn := range txns {
		day.Transactions[txn.CustomerID] = txn
	}
	for _, credit := range credits {
		day.Credits[credit.CustomerID] = credit.Amount
	}
	return day, nil
}

func (s *ledgerService) SetItemQuantity(ctx context.Context, date string, customerID int64, product string, quantity int64) (*domain.DailyTransaction, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(product) == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.loadOrCreateTransaction(ctx, customerID, date)
	if err != nil {
		return nil, err
	}

	domain.SetOrRemove(txn.Items, product, domain.CoerceQuantity(quantity))

	prices, err := s.priceBook.ListPrices(ctx)
	if err != nil {
		return nil, err
	}
	txn.Total = domain.CalculateTotal(txn.Items, domain.PriceMap(prices))

	if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction",
			slog.Int64("customer_id", customerID),
			slog.String("date", date))
		return nil, storeFailed(err)
	}

	if _, err := s.recomputeStockLocked(ctx, date); err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Item quantity updated",
		slog.Int64("customer_id", customerID),
		slog.String("date", date),
		slog.String("product", product),
		slog.Int64("quantity", quantity),
		slog.String("total", txn.Total.String()))
	return txn, nil
}

// RecordPayment reconciles a payment against the customer's running kas bon.
//
// The shortfall applied to the balance is keyed off the transaction's
// previously-reconciled shortfall, not the balance alone, so re-entering
// the same amount is a no-op instead of double-counting the debt.
func (s *ledgerService) RecordPayment(ctx context.Context, date string, customerID int64, paid *decimal.Decimal) (*domain.CreditBalance, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	if paid != nil {
		coerced := domain.CoerceAmount(*paid)
		paid = &coerced
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.transactionRepo.FindTransactionByCustomerAndDate(ctx, customerID, date)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		txn = nil
	}

	existing, err := s.currentCredit(ctx, customerID)
	if err != nil {
		return nil, err
	}

	newAmount := existing
	if txn != nil && txn.Total.IsPositive() && paid != nil {
		shortfall := txn.Total.Sub(*paid)
		newAmount = domain.ReconcileCredit(existing, shortfall.Sub(txn.ReconciledShortfall))
		txn.ReconciledShortfall = shortfall
	}

	credit, err := s.persistCredit(ctx, customerID, newAmount)
	if err != nil {
		return nil, err
	}

	// The payment itself is recorded even when it did not move the kas bon
	// (no sale today, or payment cleared). A payment with no transaction
	// yet creates an empty itemized record to hang the amount on.
	if txn == nil && paid != nil {
		txn = &domain.DailyTransaction{
			CustomerID: customerID,
			Date:       date,
			Items:      map[string]int64{},
			Total:      decimal.Zero,
			CreatedAt:  time.Now().UTC(),
		}
	}
	if txn != nil {
		txn.Paid = paid
		if err := s.transactionRepo.SaveTransaction(ctx, *txn); err != nil {
			s.LogError(ctx, err, "Failed to persist payment",
				slog.Int64("customer_id", customerID),
				slog.String("date", date))
			return nil, storeFailed(err)
		}
	}

	s.LogInfo(ctx, "Payment reconciled",
		slog.Int64("customer_id", customerID),
		slog.String("date", date),
		slog.String("kas_bon", newAmount.String()))
	return credit, nil
}

// SetCreditOverride bypasses reconciliation entirely: the kas bon is set
// directly to max(0, amount). Used for manual corrections.
func (s *ledgerService) SetCreditOverride(ctx context.Context, customerID int64, amount decimal.Decimal) (*domain.CreditBalance, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	credit, err := s.persistCredit(ctx, customerID, domain.CoerceAmount(amount))
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Kas bon overridden",
		slog.Int64("customer_id", customerID),
		slog.String("kas_bon", credit.Amount.String()))
	return credit, nil
}

func (s *ledgerService) SetStockIn(ctx context.Context, date string, product string, quantity int64) (*domain.StockDay, error) {
	return s.setManualStock(ctx, date, product, quantity, func(stock *domain.StockDay, qty int64) {
		domain.SetOrRemove(stock.StockIn, product, qty)
	})
}

func (s *ledgerService) SetStockDead(ctx context.Context, date string, product string, quantity int64) (*domain.StockDay, error) {
	return s.setManualStock(ctx, date, product, quantity, func(stock *domain.StockDay, qty int64) {
		domain.SetOrRemove(stock.StockDead, product, qty)
	})
}

func (s *ledgerService) setManualStock(ctx context.Context, date, product string, quantity int64, apply func(*domain.StockDay, int64)) (*domain.StockDay, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(product) == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stock, err := s.loadStockDay(ctx, date)
	if err != nil {
		return nil, err
	}
	apply(stock, domain.CoerceQuantity(quantity))

	return s.recomputeAndSave(ctx, stock)
}

// RecomputeStock re-derives stockOut and stockRemaining for a date from
// the committed transactions and persists the full record.
func (s *ledgerService) RecomputeStock(ctx context.Context, date string) (*domain.StockDay, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputeStockLocked(ctx, date)
}

// recomputeStockLocked assumes s.mu is held.
func (s *ledgerService) recomputeStockLocked(ctx context.Context, date string) (*domain.StockDay, error) {
	stock, err := s.loadStockDay(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.recomputeAndSave(ctx, stock)
}

func (s *ledgerService) recomputeAndSave(ctx context.Context, stock *domain.StockDay) (*domain.StockDay, error) {
	txns, err := s.transactionRepo.FindTransactionsByDate(ctx, stock.Date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for stock recompute", slog.String("date", stock.Date))
		return nil, err
	}
	stock.Recompute(txns)

	if err := s.stockRepo.SaveStockDay(ctx, *stock); err != nil {
		s.LogError(ctx, err, "Failed to persist stock", slog.String("date", stock.Date))
		return nil, storeFailed(err)
	}
	return stock, nil
}

// CloseoutDay clears the date's transactions and zeroes its stock record.
// Kas bon balances are cross-day state and survive the reset.
func (s *ledgerService) CloseoutDay(ctx context.Context, date string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.transactionRepo.DeleteTransactionsByDate(ctx, date); err != nil {
		s.LogError(ctx, err, "Failed to clear transactions on closeout", slog.String("date", date))
		return storeFailed(err)
	}
	if err := s.stockRepo.SaveStockDay(ctx, *domain.NewStockDay(date)); err != nil {
		s.LogError(ctx, err, "Failed to reset stock on closeout", slog.String("date", date))
		return storeFailed(err)
	}

	s.LogInfo(ctx, "Day closed out", slog.String("date", date))
	return nil
}

func (s *ledgerService) loadOrCreateTransaction(ctx context.Context, customerID int64, date string) (*domain.DailyTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByCustomerAndDate(ctx, customerID, date)
	if err == nil {
		if txn.Items == nil {
			txn.Items = map[string]int64{}
		}
		return txn, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return &domain.DailyTransaction{
		CustomerID: customerID,
		Date:       date,
		Items:      map[string]int64{},
		Total:      decimal.Zero,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *ledgerService) loadStockDay(ctx context.Context, date string) (*domain.StockDay, error) {
	stock, err := s.stockRepo.FindStockDay(ctx, date)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load stock", slog.String("date", date))
		return nil, err
	}
	// Created lazily with all-zero mappings on first read.
	return domain.NewStockDay(date), nil
}

func (s *ledgerService) currentCredit(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	credit, err := s.creditRepo.FindCreditByCustomer(ctx, customerID)
	if err == nil {
		return credit.Amount, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load kas bon", slog.Int64("customer_id", customerID))
		return decimal.Zero, err
	}
	// Absence is the canonical zero.
	return decimal.Zero, nil
}

// persistCredit is the zero-as-absence boundary: a zero balance deletes
// the stored record, anything else upserts it.
func (s *ledgerService) persistCredit(ctx context.Context, customerID int64, amount decimal.Decimal) (*domain.CreditBalance, error) {
	credit := &domain.CreditBalance{
		CustomerID: customerID,
		Amount:     amount,
		UpdatedAt:  time.Now().UTC(),
	}
	if amount.IsZero() {
		if err := s.creditRepo.DeleteCredit(ctx, customerID); err != nil {
			s.LogError(ctx, err, "Failed to delete kas bon", slog.Int64("customer_id", customerID))
			return nil, storeFailed(err)
		}
		return credit, nil
	}
	if err := s.creditRepo.SaveCredit(ctx, *credit); err != nil {
		s.LogError(ctx, err, "Failed to save kas bon", slog.Int64("customer_id", customerID))
		return nil, storeFailed(err)
	}
	return credit, nil
}
