package model

import "time"

// Product describes a catalog entry.
// Quantity is nullable on purpose: nil means stock was never configured
// for the product, which is distinct from a quantity of zero.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Quantity    *int64
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
