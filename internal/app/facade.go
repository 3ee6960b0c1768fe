package app

import (
	"context"

	"github.com/mkuznecov/storefront/internal/domain/model"
	"github.com/mkuznecov/storefront/internal/usecase"
)

// StorefrontFacade aggregates business use cases behind one application surface.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, cart *usecase.CartUseCase, checkout *usecase.CheckoutUseCase) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, cart: cart, checkout: checkout}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) SetCartItem(ctx context.Context, userID, productID, quantity int64) error {
	return f.cart.SetItem(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.cart.Items(ctx, userID)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, productID int64) error {
	return f.cart.RemoveItem(ctx, userID, productID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, userID int64, address, phone string) (*model.Order, error) {
	return f.checkout.CreateOrder(ctx, userID, address, phone)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.Orders(ctx, userID)
}
