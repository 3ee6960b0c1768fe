package repository

import (
	"context"

	"github.com/mkuznecov/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for user carts.
// Items returns positions in the order they were added.
type CartRepository interface {
	SetItem(ctx context.Context, userID, productID, quantity int64) error
	Items(ctx context.Context, userID int64) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
	// Clear empties the cart. Clearing an already empty cart is a no-op.
	Clear(ctx context.Context, userID int64) error
}
