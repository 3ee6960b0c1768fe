package dto

import "time"

// CartItemRequest describes payload for putting a product into the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CartItemResponse describes a single cart position.
type CartItemResponse struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
