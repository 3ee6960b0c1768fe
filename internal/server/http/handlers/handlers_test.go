package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkuznecov/storefront/internal/domain/errors"
	"github.com/mkuznecov/storefront/internal/domain/model"
	"github.com/mkuznecov/storefront/internal/server/http/dto"
	"github.com/mkuznecov/storefront/internal/server/http/middleware"
	testhelpers "github.com/mkuznecov/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterSetsCookie(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotPassword string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if authHeader := resp.Header().Get("Authorization"); authHeader != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", authHeader)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "storefront_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named storefront_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("nope"), status: http.StatusBadRequest},
		{name: "wrong password", body: body, facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: body, facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerCreate(t *testing.T) {
	quantity := int64(5)
	body, _ := json.Marshal(dto.ProductRequest{Name: "mug", Description: "ceramic", Price: 10.0, Quantity: &quantity})
	resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(testhelpers.CatalogFacadeStub{}).Create, nil, body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.ID != 1 || created.Name != "mug" || created.Quantity == nil || *created.Quantity != 5 {
		t.Fatalf("unexpected response: %+v", created)
	}

	tests := []struct {
		name   string
		facade testhelpers.CatalogFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("nope"), status: http.StatusBadRequest},
		{name: "invalid product", body: body, facade: testhelpers.CatalogFacadeStub{CreateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, domainErrors.ErrInvalidProduct
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", body: body, facade: testhelpers.CatalogFacadeStub{CreateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/products", NewProductHandler(tt.facade).Create, nil, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerUpdate(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Name: "mug", Price: 12.0})
	resp := performRequest(t, http.MethodPut, "/products/:id", NewProductHandler(testhelpers.CatalogFacadeStub{}).Update, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: "1"}}
	}, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	tests := []struct {
		name   string
		path   string
		facade testhelpers.CatalogFacadeStub
		body   []byte
		status int
	}{
		{name: "bad id", path: "/products/abc", body: body, status: http.StatusBadRequest},
		{name: "bad json", path: "/products/1", body: []byte("nope"), status: http.StatusBadRequest},
		{name: "missing", path: "/products/1", body: body, facade: testhelpers.CatalogFacadeStub{UpdateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "invalid product", path: "/products/1", body: body, facade: testhelpers.CatalogFacadeStub{UpdateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, domainErrors.ErrInvalidProduct
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", path: "/products/1", body: body, facade: testhelpers.CatalogFacadeStub{UpdateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPut, "/products/:id", NewProductHandler(tt.facade).Update, func(c *gin.Context) {
				c.Params = gin.Params{{Key: "id", Value: tt.path[len("/products/"):]}}
			}, tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerDelete(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		facade testhelpers.CatalogFacadeStub
		status int
	}{
		{name: "ok", id: "1", status: http.StatusNoContent},
		{name: "bad id", id: "abc", status: http.StatusBadRequest},
		{name: "missing", id: "9", facade: testhelpers.CatalogFacadeStub{DeleteFn: func(context.Context, int64) error {
			return domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", id: "1", facade: testhelpers.CatalogFacadeStub{DeleteFn: func(context.Context, int64) error {
			return errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodDelete, "/products/:id", NewProductHandler(tt.facade).Delete, func(c *gin.Context) {
				c.Params = gin.Params{{Key: "id", Value: tt.id}}
			}, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestProductHandlerGet(t *testing.T) {
	quantity := int64(3)
	facade := testhelpers.CatalogFacadeStub{Items: []model.Product{{ID: 1, Name: "mug", Price: 10.0, Quantity: &quantity}}}

	resp := performRequest(t, http.MethodGet, "/products/:id", NewProductHandler(facade).Get, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: "1"}}
	}, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var product dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &product); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if product.ID != 1 || product.Name != "mug" {
		t.Fatalf("unexpected product: %+v", product)
	}

	resp = performRequest(t, http.MethodGet, "/products/:id", NewProductHandler(facade).Get, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: "7"}}
	}, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/products/:id", NewProductHandler(facade).Get, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
	}, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestProductHandlerList(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{Items: []model.Product{
		{ID: 1, Name: "mug", Price: 10.0},
		{ID: 2, Name: "poster", Price: 5.0},
	}}
	resp := performRequest(t, http.MethodGet, "/products", NewProductHandler(facade).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var products []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	failing := testhelpers.CatalogFacadeStub{ListFn: func(context.Context) ([]model.Product, error) {
		return nil, errors.New("boom")
	}}
	resp = performRequest(t, http.MethodGet, "/products", NewProductHandler(failing).List, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestCartHandlerSetItem(t *testing.T) {
	body, _ := json.Marshal(dto.CartItemRequest{ProductID: 2, Quantity: 3})
	facade := &testhelpers.CartFacadeStub{}
	resp := performRequest(t, http.MethodPost, "/cart/items", NewCartHandler(facade).SetItem, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if len(facade.Set) != 1 || facade.Set[0].UserID != 1 || facade.Set[0].ProductID != 2 || facade.Set[0].Quantity != 3 {
		t.Fatalf("unexpected recorded call: %+v", facade.Set)
	}

	tests := []struct {
		name   string
		facade *testhelpers.CartFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", facade: &testhelpers.CartFacadeStub{}, body: []byte("nope"), status: http.StatusBadRequest},
		{name: "invalid quantity", facade: &testhelpers.CartFacadeStub{SetItemFn: func(context.Context, int64, int64, int64) error {
			return domainErrors.ErrInvalidQuantity
		}}, body: body, status: http.StatusUnprocessableEntity},
		{name: "unknown product", facade: &testhelpers.CartFacadeStub{SetItemFn: func(context.Context, int64, int64, int64) error {
			return domainErrors.ErrNotFound
		}}, body: body, status: http.StatusNotFound},
		{name: "internal", facade: &testhelpers.CartFacadeStub{SetItemFn: func(context.Context, int64, int64, int64) error {
			return errors.New("boom")
		}}, body: body, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/cart/items", NewCartHandler(tt.facade).SetItem, asUser(1), tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCartHandlerList(t *testing.T) {
	addedAt := time.Now()
	facade := &testhelpers.CartFacadeStub{Items: []model.CartItem{
		{ProductID: 1, Name: "mug", Price: 10.0, Quantity: 2, AddedAt: addedAt},
	}}
	resp := performRequest(t, http.MethodGet, "/cart", NewCartHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var items []dto.CartItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}

	empty := &testhelpers.CartFacadeStub{}
	resp = performRequest(t, http.MethodGet, "/cart", NewCartHandler(empty).List, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for empty cart, got %d", resp.Code)
	}

	failing := &testhelpers.CartFacadeStub{ItemsFn: func(context.Context, int64) ([]model.CartItem, error) {
		return nil, errors.New("boom")
	}}
	resp = performRequest(t, http.MethodGet, "/cart", NewCartHandler(failing).List, asUser(1), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestCartHandlerRemoveItem(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		facade *testhelpers.CartFacadeStub
		status int
	}{
		{name: "ok", id: "2", facade: &testhelpers.CartFacadeStub{}, status: http.StatusNoContent},
		{name: "bad id", id: "abc", facade: &testhelpers.CartFacadeStub{}, status: http.StatusBadRequest},
		{name: "missing", id: "2", facade: &testhelpers.CartFacadeStub{RemoveItemFn: func(context.Context, int64, int64) error {
			return domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", id: "2", facade: &testhelpers.CartFacadeStub{RemoveItemFn: func(context.Context, int64, int64) error {
			return errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodDelete, "/cart/items/:productID", NewCartHandler(tt.facade).RemoveItem, func(c *gin.Context) {
				asUser(1)(c)
				c.Params = gin.Params{{Key: "productID", Value: tt.id}}
			}, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestCartHandlerClear(t *testing.T) {
	facade := &testhelpers.CartFacadeStub{}
	resp := performRequest(t, http.MethodDelete, "/cart", NewCartHandler(facade).Clear, asUser(5), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if len(facade.Cleared) != 1 || facade.Cleared[0] != 5 {
		t.Fatalf("unexpected recorded call: %+v", facade.Cleared)
	}

	failing := &testhelpers.CartFacadeStub{ClearFn: func(context.Context, int64) error {
		return errors.New("boom")
	}}
	resp = performRequest(t, http.MethodDelete, "/cart", NewCartHandler(failing).Clear, asUser(5), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{Address: "221B Baker St", Phone: "+15550100"})
	committed := &model.Order{
		ID:        7,
		UserID:    1,
		Address:   "221B Baker St",
		Phone:     "+15550100",
		Status:    model.OrderStatusPreparing,
		CreatedAt: time.Now(),
		Items: []model.OrderItem{
			{ID: 100, ProductID: 10, Name: "mug", Quantity: 2, Price: 10.0},
			{ID: 101, ProductID: 11, Name: "poster", Quantity: 1, Price: 5.0},
		},
	}
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{Order: committed}).Create, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if order.ID != 7 || order.Status != "PREPARING" || len(order.Items) != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Total != 25.0 {
		t.Fatalf("expected total 25.00, got %.2f", order.Total)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{Address: "addr", Phone: "phone"})
	failWith := func(err error) testhelpers.OrderFacadeStub {
		return testhelpers.OrderFacadeStub{CreateFn: func(context.Context, int64, string, string) (*model.Order, error) {
			return nil, err
		}}
	}

	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("nope"), status: http.StatusBadRequest},
		{name: "missing address", body: []byte(`{"phone":"+15550100"}`), status: http.StatusBadRequest},
		{name: "empty cart", body: body, facade: failWith(domainErrors.ErrEmptyCart), status: http.StatusUnprocessableEntity},
		{name: "invalid quantity", body: body, facade: failWith(domainErrors.ErrInvalidQuantity), status: http.StatusUnprocessableEntity},
		{name: "user not found", body: body, facade: failWith(domainErrors.ErrNotFound), status: http.StatusNotFound},
		{name: "product vanished", body: body, facade: failWith(domainErrors.ErrInvalidProduct), status: http.StatusConflict},
		{name: "out of stock", body: body, facade: failWith(domainErrors.ErrOutOfStock), status: http.StatusConflict},
		{name: "stock not set", body: body, facade: failWith(domainErrors.ErrStockNotSet), status: http.StatusInternalServerError},
		{name: "internal", body: body, facade: failWith(errors.New("boom")), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Create, asUser(1), tt.body, jsonHeaders())
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	now := time.Now()
	facade := testhelpers.OrderFacadeStub{History: []model.Order{
		{ID: 2, UserID: 1, Status: model.OrderStatusPreparing, CreatedAt: now, Items: []model.OrderItem{{ProductID: 10, Name: "mug", Quantity: 1, Price: 10.0}}},
		{ID: 1, UserID: 1, Status: model.OrderStatusPreparing, CreatedAt: now.Add(-time.Hour)},
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != 2 || orders[0].Total != 10.0 {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	empty := testhelpers.OrderFacadeStub{History: []model.Order{}}
	resp = performRequest(t, http.MethodGet, "/orders", NewOrderHandler(empty).List, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for empty history, got %d", resp.Code)
	}

	failing := testhelpers.OrderFacadeStub{ListFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, errors.New("boom")
	}}
	resp = performRequest(t, http.MethodGet, "/orders", NewOrderHandler(failing).List, asUser(1), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
}
