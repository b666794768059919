package dto

import (
	"sort"
	"time"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetItemQuantityRequest defines a quantity edit. Negative values are
// clamped to zero by the engine rather than rejected.
type SetItemQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// RecordPaymentRequest defines a payment entry. A null paid amount clears
// the recorded payment without touching the kas bon.
type RecordPaymentRequest struct {
	Paid *decimal.Decimal `json:"paid"`
}

// SetStockQuantityRequest defines a manual stock quantity edit.
type SetStockQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// TransactionResponse defines the data returned for one daily transaction.
type TransactionResponse struct {
	CustomerID int64            `json:"customerID"`
	Date       string           `json:"date"`
	Items      map[string]int64 `json:"items"`
	Total      decimal.Decimal  `json:"total"`
	Paid       *decimal.Decimal `json:"paid"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// StockDayResponse defines the data returned for a day's stock record.
type StockDayResponse struct {
	Date           string           `json:"date"`
	StockIn        map[string]int64 `json:"stockIn"`
	StockOut       map[string]int64 `json:"stockOut"`
	StockDead      map[string]int64 `json:"stockDead"`
	StockRemaining map[string]int64 `json:"stockRemaining"`
}

// DayResponse defines the assembled per-date view.
type DayResponse struct {
	Date         string                    `json:"date"`
	Transactions []TransactionResponse     `json:"transactions"`
	Stock        StockDayResponse          `json:"stock"`
	Credits      map[int64]decimal.Decimal `json:"credits"`
}

// ToTransactionResponse converts a domain.DailyTransaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.DailyTransaction) TransactionResponse {
	return TransactionResponse{
		CustomerID: txn.CustomerID,
		Date:       txn.Date,
		Items:      txn.Items,
		Total:      txn.Total,
		Paid:       txn.Paid,
		CreatedAt:  txn.CreatedAt,
	}
}

// ToStockDayResponse converts a domain.StockDay to StockDayResponse DTO
func ToStockDayResponse(stock *domain.StockDay) StockDayResponse {
	return StockDayResponse{
		Date:           stock.Date,
		StockIn:        stock.StockIn,
		StockOut:       stock.StockOut,
		StockDead:      stock.StockDead,
		StockRemaining: stock.StockRemaining,
	}
}

// ToDayResponse converts a domain.LedgerDay to DayResponse DTO.
// Transactions are ordered by customer ID for a stable payload.
func ToDayResponse(day *domain.LedgerDay) DayResponse {
	txns := make([]TransactionResponse, 0, len(day.Transactions))
	for _, txn := range day.Transactions {
		txns = append(txns, ToTransactionResponse(&txn))
	}
	sort.Slice(txns, func(i, j int) bool { return txns[i].CustomerID < txns[j].CustomerID })

	return DayResponse{
		Date:         day.Date,
		Transactions: txns,
		Stock:        ToStockDayResponse(&day.Stock),
		Credits:      day.Credits,
	}
}
