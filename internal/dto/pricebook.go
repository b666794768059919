package dto

import (
	"github.com/lautanbiru/fish_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddProductRequest defines the data needed to add a product to the price book.
type AddProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// SetPriceRequest defines a single-product price edit.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// SetPricesRequest defines a bulk price edit as a name to price map.
type SetPricesRequest struct {
	Prices map[string]decimal.Decimal `json:"prices" binding:"required"`
}

// PriceResponse defines the data returned for one price book entry.
type PriceResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ToPriceResponse converts a domain.Product to PriceResponse DTO
func ToPriceResponse(p *domain.Product) PriceResponse {
	return PriceResponse{
		Name:  p.Name,
		Price: p.Price,
	}
}

// ToListPriceResponse converts a slice of domain.Product to a slice of PriceResponse DTOs
func ToListPriceResponse(products []domain.Product) []PriceResponse {
	res := make([]PriceResponse, len(products))
	for i, p := range products {
		res[i] = ToPriceResponse(&p)
	}
	return res
}
