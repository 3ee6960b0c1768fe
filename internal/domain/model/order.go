package model

import "time"

// OrderStatus describes order lifecycle.
type OrderStatus string

// OrderStatusPreparing is the status every order is created with.
// Later transitions happen outside of this service.
const OrderStatusPreparing OrderStatus = "PREPARING"

// Order describes a purchase committed from a user's cart.
type Order struct {
	ID        int64
	UserID    int64
	Address   string
	Phone     string
	Status    OrderStatus
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem is a single order position. Price is the product price
// captured at checkout time; later catalog changes do not affect it.
type OrderItem struct {
	ID        int64
	ProductID int64
	Name      string
	Quantity  int64
	Price     float64
}

// Total returns the order cost summed over its items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
