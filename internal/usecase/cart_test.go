package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
	testhelpers "github.com/mkuznecov/storefront/internal/test"
)

func TestCartSetItem(t *testing.T) {
	carts := testhelpers.NewCartRepositoryStub()
	products := testhelpers.NewProductRepositoryStub(&model.Product{ID: 1, Name: "mug", Price: 10.00})
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.SetItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("set item returned error: %v", err)
	}
	if err := uc.SetItem(ctx, 1, 1, 5); err != nil {
		t.Fatalf("set item returned error: %v", err)
	}

	items, err := uc.Items(ctx, 1)
	if err != nil {
		t.Fatalf("items returned error: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected single position with replaced quantity, got %+v", items)
	}
}

func TestCartSetItemValidation(t *testing.T) {
	carts := testhelpers.NewCartRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.SetItem(ctx, 1, 1, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.SetItem(ctx, 1, 1, -3); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := uc.SetItem(ctx, 1, 99, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}
	if len(carts.Carts[1]) != 0 {
		t.Fatalf("rejected items must not reach the cart: %+v", carts.Carts[1])
	}
}

func TestCartRemoveItem(t *testing.T) {
	carts := testhelpers.NewCartRepositoryStub()
	products := testhelpers.NewProductRepositoryStub(&model.Product{ID: 1, Name: "mug", Price: 10.00})
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.SetItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("set item returned error: %v", err)
	}
	if err := uc.RemoveItem(ctx, 1, 1); err != nil {
		t.Fatalf("remove item returned error: %v", err)
	}
	if err := uc.RemoveItem(ctx, 1, 1); err != nil {
		t.Fatalf("removing an absent item must be a no-op: %v", err)
	}

	items, err := uc.Items(ctx, 1)
	if err != nil {
		t.Fatalf("items returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestCartClearIdempotent(t *testing.T) {
	carts := testhelpers.NewCartRepositoryStub()
	products := testhelpers.NewProductRepositoryStub(&model.Product{ID: 1, Name: "mug", Price: 10.00})
	uc := NewCartUseCase(carts, products)

	ctx := context.Background()
	if err := uc.SetItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("set item returned error: %v", err)
	}
	if err := uc.Clear(ctx, 1); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if err := uc.Clear(ctx, 1); err != nil {
		t.Fatalf("clearing an empty cart must succeed: %v", err)
	}
	if len(carts.ClearCalls) != 2 {
		t.Fatalf("expected both clear calls to reach the repository, got %d", len(carts.ClearCalls))
	}
}
