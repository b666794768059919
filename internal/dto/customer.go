package dto

import (
	"time"

	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to register a customer.
// Category falls back to the default when omitted.
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// UpdateCustomerRequest defines the data for editing a customer.
type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// SetCreditRequest defines a manual kas bon override.
type SetCreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID int64     `json:"customerID"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreditResponse defines the data returned for a kas bon balance.
type CreditResponse struct {
	CustomerID int64           `json:"customerID"`
	Amount     decimal.Decimal `json:"amount"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Category:   c.Category,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// ToCreditResponse converts a domain.CreditBalance to CreditResponse DTO
func ToCreditResponse(cb *domain.CreditBalance) CreditResponse {
	return CreditResponse{
		CustomerID: cb.CustomerID,
		Amount:     cb.Amount,
		UpdatedAt:  cb.UpdatedAt,
	}
}
