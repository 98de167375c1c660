package client

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

// Cart fetches the session's cart. First access returns an empty cart.
func (c *Client) Cart(ctx context.Context) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Size      int    `json:"size"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem adds quantity units of a product in the given size. Adding
// a (product, size) pair already in the cart accumulates onto that line.
func (c *Client) AddCartItem(ctx context.Context, productID string, size, quantity int) (*models.CartView, error) {
	body := addCartItemRequest{ProductID: productID, Size: size, Quantity: quantity}
	var view models.CartView
	if err := c.do(ctx, http.MethodPost, "/cart/items", nil, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity to an absolute value.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodPatch, "/cart/items/"+itemID, nil, updateCartItemRequest{Quantity: quantity}, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveCartItem deletes a line. Unknown ids succeed without effect.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodDelete, "/cart/items/"+itemID, nil, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ClearCart removes every line from the cart.
func (c *Client) ClearCart(ctx context.Context) (*models.CartView, error) {
	var view models.CartView
	if err := c.do(ctx, http.MethodDelete, "/cart", nil, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}
