package test

import (
	"context"
	"sync"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
)

// CatalogFacadeStub simulates catalog facade interactions for handler tests.
type CatalogFacadeStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn func(context.Context, int64) error
	GetFn    func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context) ([]model.Product, error)

	Items []model.Product
}

// CreateProduct echoes the product back assigning a fixed identifier.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

// UpdateProduct echoes the product back unchanged.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	updated := *product
	return &updated, nil
}

// DeleteProduct delegates to override or succeeds silently.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Product returns a configured item or not found.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, p := range s.Items {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Products returns the configured catalog slice.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Items, nil
}

// CartFacadeStub simulates cart facade interactions and records mutations.
type CartFacadeStub struct {
	SetItemFn    func(context.Context, int64, int64, int64) error
	ItemsFn      func(context.Context, int64) ([]model.CartItem, error)
	RemoveItemFn func(context.Context, int64, int64) error
	ClearFn      func(context.Context, int64) error

	mu      sync.Mutex
	Set     []CartSetCall
	Removed []int64
	Cleared []int64
	Items   []model.CartItem
}

// CartSetCall captures arguments of a recorded SetCartItem invocation.
type CartSetCall struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// SetCartItem records the upsert request.
func (s *CartFacadeStub) SetCartItem(ctx context.Context, userID, productID, quantity int64) error {
	if s.SetItemFn != nil {
		return s.SetItemFn(ctx, userID, productID, quantity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Set = append(s.Set, CartSetCall{UserID: userID, ProductID: productID, Quantity: quantity})
	return nil
}

// CartItems returns the configured cart contents.
func (s *CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return s.Items, nil
}

// RemoveCartItem records the removal request.
func (s *CartFacadeStub) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, userID, productID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Removed = append(s.Removed, productID)
	return nil
}

// ClearCart records the wipe request.
func (s *CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cleared = append(s.Cleared, userID)
	return nil
}

// OrderFacadeStub simulates checkout facade interactions.
type OrderFacadeStub struct {
	CreateFn func(context.Context, int64, string, string) (*model.Order, error)
	ListFn   func(context.Context, int64) ([]model.Order, error)

	Order   *model.Order
	History []model.Order
}

// CreateOrder returns the configured order or a minimal committed one.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64, address, phone string) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, address, phone)
	}
	if s.Order != nil {
		return s.Order, nil
	}
	return &model.Order{ID: 1, UserID: userID, Address: address, Phone: phone, Status: model.OrderStatusPreparing}, nil
}

// Orders returns the configured history slice.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.History, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	*CartFacadeStub
	OrderFacadeStub
}

// NewStorefrontFacadeStub constructs an aggregate stub with an initialized cart part.
func NewStorefrontFacadeStub() *StorefrontFacadeStub {
	return &StorefrontFacadeStub{CartFacadeStub: &CartFacadeStub{}}
}
