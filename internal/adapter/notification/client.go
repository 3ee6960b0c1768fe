package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/mkuznecov/storefront/internal/domain/model"
)

// Client exposes delivery of order confirmations.
type Client interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
}

// HTTPClient implements Client via the notification service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// confirmation mirrors the JSON payload the notification service accepts.
type confirmation struct {
	OrderID   int64              `json:"order_id"`
	UserID    int64              `json:"user_id"`
	Address   string             `json:"address"`
	Status    string             `json:"status"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []confirmationItem `json:"items"`
}

type confirmationItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewHTTPClient creates HTTP notification client with the given per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notification url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notification url must be absolute")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendOrderConfirmation posts the confirmation payload for a committed order.
func (c *HTTPClient) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications/order-confirmation")

	payload := confirmation{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Address:   order.Address,
		Status:    string(order.Status),
		Total:     order.Total(),
		CreatedAt: order.CreatedAt,
		Items:     make([]confirmationItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, confirmationItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed",
			slog.Int64("order_id", order.ID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return fmt.Errorf("notification error: %s", resp.Status)
	}
}
