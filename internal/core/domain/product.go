package domain

import "github.com/shopspring/decimal"

// Product is a price-book entry. The name is the primary key; there is no
// numeric ID and no delete operation — a product removed from the catalog
// simply stops appearing in new entry forms.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// DefaultCatalog returns the fixed seed catalog used when the price book is
// empty on first read. Prices are whole Rupiah per kilogram.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "Mas", Price: decimal.NewFromInt(32000)},
		{Name: "Mujair", Price: decimal.NewFromInt(34000)},
		{Name: "Lele BS", Price: decimal.NewFromInt(19000)},
		{Name: "Bawal", Price: decimal.NewFromInt(28000)},
		{Name: "Nila", Price: decimal.NewFromInt(35000)},
		{Name: "Lele Daging", Price: decimal.NewFromInt(25000)},
		{Name: "Ikan Mati", Price: decimal.NewFromInt(15000)},
	}
}

// PriceMap flattens a product list into a name → price lookup.
func PriceMap(products []Product) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		m[p.Name] = p.Price
	}
	return m
}
