package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
	"github.com/mkuznecov/storefront/internal/domain/repository"
)

// Notifier delivers order confirmations. Failures are tolerated by the
// checkout flow: an order stays committed even when its confirmation
// cannot be sent.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
}

// CheckoutUseCase converts a user's cart into a persisted order.
type CheckoutUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	orders   repository.OrderRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	notifier Notifier,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		users:    users,
		products: products,
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateOrder validates the user's cart and commits it as an order.
//
// All validation happens before the commit; the order, its items, the
// stock decrements and the cart wipe are persisted as one transaction
// by OrderRepository.CreateFromCart, so a failure at any point leaves
// no partial state behind. The confirmation notification runs after
// the commit and never affects the result.
func (u *CheckoutUseCase) CreateOrder(ctx context.Context, userID int64, address, phone string) (*model.Order, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cartItems, err := u.carts.Items(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	orderItems, err := u.assembleItems(ctx, cartItems)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:    user.ID,
		Address:   address,
		Phone:     phone,
		Status:    model.OrderStatusPreparing,
		CreatedAt: time.Now(),
		Items:     orderItems,
	}

	committed, err := u.orders.CreateFromCart(ctx, order)
	if err != nil {
		// The user was resolved above, so a not-found during commit means
		// a product vanished between validation and the transaction.
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidProduct
		}
		return nil, err
	}

	if err := u.notifier.SendOrderConfirmation(ctx, committed); err != nil {
		u.logger.Error("order confirmation not sent",
			slog.Int64("order_id", committed.ID),
			slog.String("error", err.Error()),
		)
	}

	return committed, nil
}

// Orders returns the user's order history, newest first.
func (u *CheckoutUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// assembleItems builds order items from cart positions in their stored
// order, snapshotting the current product price. It stops at the first
// invalid position and returns no partial result.
func (u *CheckoutUseCase) assembleItems(ctx context.Context, cartItems []model.CartItem) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		product, err := u.products.GetByID(ctx, ci.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, domainErrors.ErrInvalidProduct
			}
			return nil, err
		}

		if err := CheckStock(product.Quantity, ci.Quantity); err != nil {
			return nil, err
		}

		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  ci.Quantity,
			Price:     product.Price,
		})
	}
	return items, nil
}
