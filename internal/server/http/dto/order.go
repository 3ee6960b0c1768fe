package dto

import "time"

// CreateOrderRequest describes checkout payload.
type CreateOrderRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// OrderItemResponse describes a single order position.
type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderResponse describes a committed order.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Status    string              `json:"status"`
	Address   string              `json:"address"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}
