package model

import "time"

// CartItem is a single position in a user's cart.
// A cart is the ordered set of the user's cart items; it is created
// lazily with the first item and emptied (not deleted) on checkout.
type CartItem struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int64
	AddedAt   time.Time
}
