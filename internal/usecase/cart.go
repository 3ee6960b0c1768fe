package usecase

import (
	"context"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
	"github.com/mkuznecov/storefront/internal/domain/repository"
)

// CartUseCase manages the contents of user carts.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// SetItem puts a product into the user's cart with the given quantity,
// replacing the quantity when the product is already there.
func (u *CartUseCase) SetItem(ctx context.Context, userID, productID, quantity int64) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return u.carts.SetItem(ctx, userID, productID, quantity)
}

// Items returns cart positions in the order they were added.
func (u *CartUseCase) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.Items(ctx, userID)
}

// RemoveItem drops a product from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID int64) error {
	return u.carts.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
