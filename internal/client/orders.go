package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/models"
)

type checkoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Checkout turns the current cart into an order and empties the cart.
func (c *Client) Checkout(ctx context.Context, paymentMethod string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, checkoutRequest{PaymentMethod: paymentMethod}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders fetches one page of the session's order history, newest first.
// The decoder tolerates both the enveloped {items: [...]} shape and a
// bare array, which older deployments returned.
func (c *Client) Orders(ctx context.Context, page, limit int) ([]models.Order, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeOrderList(raw)
}

// Order fetches a single order owned by the session.
func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func decodeOrderList(raw json.RawMessage) ([]models.Order, error) {
	var wrapped struct {
		Items []models.Order `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
