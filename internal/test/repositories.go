package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps catalog products in-memory for tests.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn  func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn  func(context.Context, int64) error
	GetByIDFn func(context.Context, int64) (*model.Product, error)
	ListFn    func(context.Context) ([]model.Product, error)

	Products map[int64]*model.Product
	Next     int64
}

// NewProductRepositoryStub constructs stub repository with initialized storage.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
	for _, p := range products {
		s.Products[p.ID] = p
		if p.ID >= s.Next {
			s.Next = p.ID + 1
		}
	}
	return s
}

// Create stores a copy of the product assigning the next identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// Update replaces stored product or reports not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// Delete removes stored product or reports not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if p, ok := s.Products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	items := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		items = append(items, *p)
	}
	return items, nil
}

// CartRepositoryStub keeps cart positions in-memory preserving insertion order.
type CartRepositoryStub struct {
	SetItemFn    func(context.Context, int64, int64, int64) error
	ItemsFn      func(context.Context, int64) ([]model.CartItem, error)
	RemoveItemFn func(context.Context, int64, int64) error
	ClearFn      func(context.Context, int64) error

	Carts      map[int64][]model.CartItem
	ClearCalls []int64
}

// NewCartRepositoryStub constructs stub repository with initialized storage.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64][]model.CartItem)}
}

// SetItem upserts a cart position keeping the original insertion order.
func (s *CartRepositoryStub) SetItem(ctx context.Context, userID, productID, quantity int64) error {
	if s.SetItemFn != nil {
		return s.SetItemFn(ctx, userID, productID, quantity)
	}
	if s.Carts == nil {
		s.Carts = make(map[int64][]model.CartItem)
	}
	items := s.Carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return nil
		}
	}
	s.Carts[userID] = append(items, model.CartItem{ProductID: productID, Quantity: quantity, AddedAt: time.Now()})
	return nil
}

// Items returns cart positions in insertion order.
func (s *CartRepositoryStub) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return s.Carts[userID], nil
}

// RemoveItem drops a single position when it is present.
func (s *CartRepositoryStub) RemoveItem(ctx context.Context, userID, productID int64) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, userID, productID)
	}
	items := s.Carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.Carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties the cart and records the invocation.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.ClearCalls = append(s.ClearCalls, userID)
	delete(s.Carts, userID)
	return nil
}

// OrderRepositoryStub allows tests to customize checkout persistence behaviour.
type OrderRepositoryStub struct {
	CreateFromCartFn func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	ListByUserFn     func(context.Context, int64) ([]model.Order, error)

	Committed []*model.Order
	Orders    []model.Order
	Next      int64
}

// CreateFromCart records the committed order and assigns identifiers.
func (s *OrderRepositoryStub) CreateFromCart(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFromCartFn != nil {
		return s.CreateFromCartFn(ctx, order)
	}
	if len(order.Items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	if s.Next == 0 {
		s.Next = 1
	}
	committed := *order
	committed.ID = s.Next
	s.Next++
	committed.CreatedAt = time.Now()
	committed.Items = append([]model.OrderItem(nil), order.Items...)
	for i := range committed.Items {
		committed.Items[i].ID = int64(i + 1)
	}
	s.Committed = append(s.Committed, &committed)
	return &committed, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// NotifierStub records confirmation requests for checkout tests.
type NotifierStub struct {
	SendFn func(context.Context, *model.Order) error
	Err    error

	mu   sync.Mutex
	Sent []*model.Order
}

// SendOrderConfirmation records the order and returns the configured error.
func (s *NotifierStub) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, order)
	}
	s.mu.Lock()
	s.Sent = append(s.Sent, order)
	s.mu.Unlock()
	return s.Err
}

// SentCount reports how many confirmations were recorded.
func (s *NotifierStub) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}
