package domain

import "time"

// DefaultCustomerCategory is the sales channel assigned when none is given.
const DefaultCustomerCategory = "market"

// Customer is a buyer known to the directory. The ID is opaque and assigned
// by the store on insert.
type Customer struct {
	CustomerID int64     `json:"customerID"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}
