package services_test

import (
	"context"
	"sort"
	"testing"

	"github.com/lautanbiru/fish_ledger_app/internal/apperrors"
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	portssvc "github.com/lautanbiru/fish_ledger_app/internal/core/ports/services"
	"github.com/lautanbiru/fish_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- In-memory fakes ---
//
// Payment reconciliation depends on previously committed state (the running
// kas bon and each transaction's reconciled shortfall), so these tests use
// stateful fakes rather than expectation mocks: each operation must observe
// the writes of the one before it.

type fakeProductRepo struct {
	products map[string]decimal.Decimal
	order    []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]decimal.Decimal{}}
}

func (r *fakeProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, domain.Product{Name: name, Price: r.products[name]})
	}
	return out, nil
}

func (r *fakeProductRepo) SaveProduct(ctx context.Context, product domain.Product) error {
	if _, ok := r.products[product.Name]; !ok {
		r.order = append(r.order, product.Name)
	}
	r.products[product.Name] = product.Price
	return nil
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, product domain.Product) error {
	if _, ok := r.products[product.Name]; ok {
		return apperrors.ErrDuplicate
	}
	return r.SaveProduct(ctx, product)
}

type fakeCustomerRepo struct {
	customers map[int64]domain.Customer
}

func (r *fakeCustomerRepo) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	c, ok := r.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

type fakeTransactionRepo struct {
	// date → customerID → record; mirrors the unique (customer, date) pair.
	byDate map[string]map[int64]domain.DailyTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byDate: map[string]map[int64]domain.DailyTransaction{}}
}

func (r *fakeTransactionRepo) FindTransactionsByDate(ctx context.Context, date string) ([]domain.DailyTransaction, error) {
	out := make([]domain.DailyTransaction, 0, len(r.byDate[date]))
	for _, txn := range r.byDate[date] {
		out = append(out, txn)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindTransactionByCustomerAndDate(ctx context.Context, customerID int64, date string) (*domain.DailyTransaction, error) {
	txn, ok := r.byDate[date][customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	txn.Items = domain.CopyQuantities(txn.Items)
	return &txn, nil
}

func (r *fakeTransactionRepo) SaveTransaction(ctx context.Context, txn domain.DailyTransaction) error {
	if r.byDate[txn.Date] == nil {
		r.byDate[txn.Date] = map[int64]domain.DailyTransaction{}
	}
	txn.Items = domain.CopyQuantities(txn.Items)
	r.byDate[txn.Date][txn.CustomerID] = txn
	return nil
}

func (r *fakeTransactionRepo) DeleteTransactionsByDate(ctx context.Context, date string) error {
	delete(r.byDate, date)
	return nil
}

func (r *fakeTransactionRepo) DeleteTransactionsByCustomer(ctx context.Context, customerID int64) ([]string, error) {
	var dates []string
	for date, txns := range r.byDate {
		if _, ok := txns[customerID]; ok {
			delete(txns, customerID)
			dates = append(dates, date)
		}
	}
	return dates, nil
}

type fakeStockRepo struct {
	byDate map[string]domain.StockDay
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{byDate: map[string]domain.StockDay{}}
}

func (r *fakeStockRepo) FindStockDay(ctx context.Context, date string) (*domain.StockDay, error) {
	stock, ok := r.byDate[date]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &stock, nil
}

func (r *fakeStockRepo) SaveStockDay(ctx context.Context, stock domain.StockDay) error {
	r.byDate[stock.Date] = stock
	return nil
}

type fakeCreditRepo struct {
	byCustomer map[int64]domain.CreditBalance
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{byCustomer: map[int64]domain.CreditBalance{}}
}

func (r *fakeCreditRepo) FindCreditByCustomer(ctx context.Context, customerID int64) (*domain.CreditBalance, error) {
	credit, ok := r.byCustomer[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &credit, nil
}

func (r *fakeCreditRepo) ListCredits(ctx context.Context) ([]domain.CreditBalance, error) {
	out := make([]domain.CreditBalance, 0, len(r.byCustomer))
	for _, c := range r.byCustomer {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCreditRepo) SaveCredit(ctx context.Context, credit domain.CreditBalance) error {
	r.byCustomer[credit.CustomerID] = credit
	return nil
}

func (r *fakeCreditRepo) DeleteCredit(ctx context.Context, customerID int64) error {
	delete(r.byCustomer, customerID)
	return nil
}

// --- Test Suite ---

const testDate = "2025-01-15"

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	productRepo *fakeProductRepo
	txnRepo     *fakeTransactionRepo
	stockRepo   *fakeStockRepo
	creditRepo  *fakeCreditRepo
	service     portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.productRepo = newFakeProductRepo()
	suite.txnRepo = newFakeTransactionRepo()
	suite.stockRepo = newFakeStockRepo()
	suite.creditRepo = newFakeCreditRepo()

	customerRepo := &fakeCustomerRepo{customers: map[int64]domain.Customer{
		7: {CustomerID: 7, Name: "Budi", Category: "market"},
		8: {CustomerID: 8, Name: "Siti", Category: "market"},
		9: {CustomerID: 9, Name: "Andi", Category: "restaurant"},
	}}

	priceBook := services.NewPriceBookService(suite.productRepo)
	suite.service = services.NewLedgerService(priceBook, customerRepo, suite.txnRepo, suite.stockRepo, suite.creditRepo)
}

func (suite *LedgerServiceTestSuite) amount(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func (suite *LedgerServiceTestSuite) seedTransaction(customerID int64, total int64) {
	err := suite.txnRepo.SaveTransaction(suite.ctx, domain.DailyTransaction{
		CustomerID: customerID,
		Date:       testDate,
		Items:      map[string]int64{"Mas": 1},
		Total:      suite.amount(total),
	})
	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) seedCredit(customerID int64, amount int64) {
	err := suite.creditRepo.SaveCredit(suite.ctx, domain.CreditBalance{
		CustomerID: customerID,
		Amount:     suite.amount(amount),
	})
	suite.Require().NoError(err)
}

// --- SetItemQuantity ---

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_ComputesTotalFromPriceBook() {
	// Default catalog seeds on first use: Mas 32000, Nila 35000.
	txn, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	suite.True(suite.amount(64000).Equal(txn.Total), "total = 2 × 32000, got %s", txn.Total)

	txn, err = suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Nila", 1)
	suite.Require().NoError(err)
	suite.True(suite.amount(99000).Equal(txn.Total))
	suite.Equal(map[string]int64{"Mas": 2, "Nila": 1}, txn.Items)
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_ZeroRemovesKey() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Nila", 1)
	suite.Require().NoError(err)

	txn, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 0)
	suite.Require().NoError(err)
	_, exists := txn.Items["Mas"]
	suite.False(exists, "zero quantity must remove the key, not store a zero")
	suite.True(suite.amount(35000).Equal(txn.Total))

	// Setting zero again yields the same mapping.
	again, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 0)
	suite.Require().NoError(err)
	suite.Equal(txn.Items, again.Items)
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_NegativeClampedToRemoval() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)

	txn, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", -5)
	suite.Require().NoError(err)
	suite.Empty(txn.Items)
	suite.True(txn.Total.IsZero())
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_UpsertsOnCustomerAndDate() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 4)
	suite.Require().NoError(err)

	txns, err := suite.txnRepo.FindTransactionsByDate(suite.ctx, testDate)
	suite.Require().NoError(err)
	suite.Len(txns, 1, "two saves for one (customer, date) pair must leave one record")
	suite.Equal(int64(4), txns[0].Items["Mas"])
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_PreservesRecordedPayment() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	paid := suite.amount(50000)
	_, err = suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)

	txn, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Nila", 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(txn.Paid)
	suite.True(paid.Equal(*txn.Paid))
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_UnknownCustomer() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 999, "Mas", 2)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestSetItemQuantity_InvalidDate() {
	_, err := suite.service.SetItemQuantity(suite.ctx, "15-01-2025", 7, "Mas", 2)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- RecordPayment ---

func (suite *LedgerServiceTestSuite) TestRecordPayment_ShortfallRule() {
	tests := []struct {
		name           string
		existingCredit int64
		total          int64
		paid           int64
		wantCredit     int64
	}{
		{name: "underpayment adds to kas bon", existingCredit: 10000, total: 50000, paid: 30000, wantCredit: 30000},
		{name: "overpayment pays kas bon down", existingCredit: 30000, total: 50000, paid: 60000, wantCredit: 20000},
		{name: "excess beyond debt is discarded", existingCredit: 5000, total: 50000, paid: 70000, wantCredit: 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			if tt.existingCredit > 0 {
				suite.seedCredit(7, tt.existingCredit)
			}
			suite.seedTransaction(7, tt.total)

			paid := suite.amount(tt.paid)
			credit, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
			suite.Require().NoError(err)
			suite.True(suite.amount(tt.wantCredit).Equal(credit.Amount),
				"want kas bon %d, got %s", tt.wantCredit, credit.Amount)
		})
	}
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_RepeatEntryIsIdempotent() {
	suite.seedCredit(7, 10000)
	suite.seedTransaction(7, 50000)

	paid := suite.amount(30000)
	first, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)
	suite.True(suite.amount(30000).Equal(first.Amount))

	// Entering the same amount again must not double-count the shortfall.
	second, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)
	suite.True(suite.amount(30000).Equal(second.Amount))
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_RevisionAppliesOnlyTheDelta() {
	suite.seedTransaction(7, 50000)

	paid := suite.amount(30000)
	_, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)

	// Revising the payment upward shrinks the kas bon by the difference.
	revised := suite.amount(40000)
	credit, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &revised)
	suite.Require().NoError(err)
	suite.True(suite.amount(10000).Equal(credit.Amount))
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_ZeroBalanceIsAbsent() {
	suite.seedCredit(7, 5000)
	suite.seedTransaction(7, 50000)

	paid := suite.amount(70000)
	credit, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)
	suite.True(credit.Amount.IsZero())

	_, err = suite.creditRepo.FindCreditByCustomer(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrNotFound, "a zero balance must be stored as absence")
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_NoSaleLeavesKasBonAlone() {
	suite.seedCredit(7, 10000)

	paid := suite.amount(5000)
	credit, err := suite.service.RecordPayment(suite.ctx, testDate, 7, &paid)
	suite.Require().NoError(err)
	suite.True(suite.amount(10000).Equal(credit.Amount))

	// The payment is still recorded on an empty itemized record.
	txn, err := suite.txnRepo.FindTransactionByCustomerAndDate(suite.ctx, 7, testDate)
	suite.Require().NoError(err)
	suite.Empty(txn.Items)
	suite.Require().NotNil(txn.Paid)
	suite.True(paid.Equal(*txn.Paid))
}

func (suite *LedgerServiceTestSuite) TestRecordPayment_NilClearsRecordedPayment() {
	suite.seedCredit(7, 10000)
	suite.seedTransaction(7, 50000)

	credit, err := suite.service.RecordPayment(suite.ctx, testDate, 7, nil)
	suite.Require().NoError(err)
	suite.True(suite.amount(10000).Equal(credit.Amount))

	txn, err := suite.txnRepo.FindTransactionByCustomerAndDate(suite.ctx, 7, testDate)
	suite.Require().NoError(err)
	suite.Nil(txn.Paid)
}

// --- SetCreditOverride ---

func (suite *LedgerServiceTestSuite) TestSetCreditOverride_SetsBalanceDirectly() {
	credit, err := suite.service.SetCreditOverride(suite.ctx, 7, suite.amount(25000))
	suite.Require().NoError(err)
	suite.True(suite.amount(25000).Equal(credit.Amount))

	stored, err := suite.creditRepo.FindCreditByCustomer(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.True(suite.amount(25000).Equal(stored.Amount))
}

func (suite *LedgerServiceTestSuite) TestSetCreditOverride_NegativeClampsToAbsentZero() {
	suite.seedCredit(7, 25000)

	credit, err := suite.service.SetCreditOverride(suite.ctx, 7, suite.amount(-100))
	suite.Require().NoError(err)
	suite.True(credit.Amount.IsZero())

	_, err = suite.creditRepo.FindCreditByCustomer(suite.ctx, 7)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Stock ---

func (suite *LedgerServiceTestSuite) TestStock_OutDerivedFromTransactions() {
	// Three customers with Mas quantities 2, 3, 0.
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 8, "Mas", 3)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 9, "Mas", 0)
	suite.Require().NoError(err)

	stock, err := suite.service.RecomputeStock(suite.ctx, testDate)
	suite.Require().NoError(err)
	suite.Equal(int64(5), stock.StockOut["Mas"])
}

func (suite *LedgerServiceTestSuite) TestStock_RemainingInvariant() {
	_, err := suite.service.SetStockIn(suite.ctx, testDate, "Mas", 10)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 8, "Mas", 3)
	suite.Require().NoError(err)

	stock, err := suite.service.SetStockDead(suite.ctx, testDate, "Mas", 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), stock.StockRemaining["Mas"], "remaining = 10 − 5 − 2")
}

func (suite *LedgerServiceTestSuite) TestStock_RemainingClampedAtZero() {
	_, err := suite.service.SetStockIn(suite.ctx, testDate, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 3)
	suite.Require().NoError(err)

	stock, err := suite.service.RecomputeStock(suite.ctx, testDate)
	suite.Require().NoError(err)
	_, exists := stock.StockRemaining["Mas"]
	suite.False(exists, "clamped-to-zero remaining must be absent, not a stored zero")
}

func (suite *LedgerServiceTestSuite) TestStock_PersistedAsOneRecord() {
	_, err := suite.service.SetStockIn(suite.ctx, testDate, "Mas", 10)
	suite.Require().NoError(err)

	stored, err := suite.stockRepo.FindStockDay(suite.ctx, testDate)
	suite.Require().NoError(err)
	suite.Equal(int64(10), stored.StockIn["Mas"])
	suite.NotNil(stored.StockOut)
	suite.NotNil(stored.StockRemaining)
}

// --- CloseoutDay ---

func (suite *LedgerServiceTestSuite) TestCloseoutDay_ClearsTransactionsAndStockButNotKasBon() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	_, err = suite.service.SetItemQuantity(suite.ctx, testDate, 8, "Nila", 1)
	suite.Require().NoError(err)
	_, err = suite.service.SetStockIn(suite.ctx, testDate, "Mas", 10)
	suite.Require().NoError(err)
	suite.seedCredit(7, 15000)

	err = suite.service.CloseoutDay(suite.ctx, testDate)
	suite.Require().NoError(err)

	day, err := suite.service.GetDay(suite.ctx, testDate)
	suite.Require().NoError(err)
	suite.Empty(day.Transactions)
	suite.Empty(day.Stock.StockIn)
	suite.Empty(day.Stock.StockOut)
	suite.Empty(day.Stock.StockRemaining)

	credit, err := suite.creditRepo.FindCreditByCustomer(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.True(suite.amount(15000).Equal(credit.Amount), "kas bon must survive closeout")
}

// --- GetDay ---

func (suite *LedgerServiceTestSuite) TestGetDay_AssemblesTransactionsStockAndCredits() {
	_, err := suite.service.SetItemQuantity(suite.ctx, testDate, 7, "Mas", 2)
	suite.Require().NoError(err)
	suite.seedCredit(8, 12000)

	day, err := suite.service.GetDay(suite.ctx, testDate)
	suite.Require().NoError(err)
	suite.Equal(testDate, day.Date)
	suite.Len(day.Transactions, 1)
	suite.Equal(int64(2), day.Transactions[7].Items["Mas"])
	suite.Equal(int64(2), day.Stock.StockOut["Mas"])
	suite.True(suite.amount(12000).Equal(day.Credits[8]))
}

func (suite *LedgerServiceTestSuite) TestGetDay_EmptyDateYieldsZeroRecords() {
	day, err := suite.service.GetDay(suite.ctx, "2025-06-01")
	suite.Require().NoError(err)
	suite.Empty(day.Transactions)
	suite.Empty(day.Stock.StockIn)
	suite.Empty(day.Credits)
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
