package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	order "github.com/matex-shoes/storefront/internal/order/domain"
)

// API is what the session needs from the order intake service.
type API interface {
	ListShoes(ctx context.Context) ([]catalog.Shoe, error)
	PlaceOrder(ctx context.Context, details order.Details, soldIDs []int64) (PlaceOrderResult, error)
}

type PlaceOrderResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
	Error   string `json:"error,omitempty"`
}

// Client talks to the storefront server over HTTP.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) ListShoes(ctx context.Context) ([]catalog.Shoe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/shoes", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch shoes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch shoes: unexpected status %d", resp.StatusCode)
	}
	var shoes []catalog.Shoe
	if err := json.NewDecoder(resp.Body).Decode(&shoes); err != nil {
		return nil, fmt.Errorf("fetch shoes: %w", err)
	}
	return shoes, nil
}

func (c *Client) PlaceOrder(ctx context.Context, details order.Details, soldIDs []int64) (PlaceOrderResult, error) {
	body, err := json.Marshal(map[string]any{
		"orderDetails": details,
		"soldProducts": soldIDs,
	})
	if err != nil {
		return PlaceOrderResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/place-order", bytes.NewReader(body))
	if err != nil {
		return PlaceOrderResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("place order: %w", err)
	}
	defer resp.Body.Close()

	var result PlaceOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return PlaceOrderResult{}, fmt.Errorf("place order: %w", err)
	}
	if !result.Success && result.Message == "" {
		result.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return result, nil
}
