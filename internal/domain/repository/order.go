package repository

import (
	"context"

	"github.com/mkuznecov/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// CreateFromCart commits the order, its items, the stock decrement for
	// every item and the wipe of the user's cart as a single transaction.
	// Nothing is persisted when any of those steps fails.
	CreateFromCart(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}
