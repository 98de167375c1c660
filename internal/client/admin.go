package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/models"
)

// Validation failures caught before a request leaves the client.
var (
	ErrDiscountRateOutOfRange = errors.New("discount rate must be in [0, 1]")
	ErrSaleWindowInverted     = errors.New("sale end must not be before sale start")
	ErrNoSizes                = errors.New("at least one size is required")
)

// AdminProducts fetches the full unfiltered catalog.
func (c *Client) AdminProducts(ctx context.Context) ([]models.Product, error) {
	var payload struct {
		Items []models.Product `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/products", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// CreateProduct registers a new product. The server derives the current
// price from the original price and discount rate.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	if product.DiscountRate < 0 || product.DiscountRate > 1 {
		return nil, ErrDiscountRateOutOfRange
	}
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/admin/products", nil, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type updateSizesRequest struct {
	Sizes []int `json:"sizes"`
}

// UpdateProductSizes replaces a product's size run.
func (c *Client) UpdateProductSizes(ctx context.Context, productID string, sizes []int) (*models.Product, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	var product models.Product
	if err := c.do(ctx, http.MethodPatch, "/admin/products/"+productID+"/sizes", nil, updateSizesRequest{Sizes: sizes}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

type updateDiscountRequest struct {
	DiscountRate float64    `json:"discountRate"`
	SaleStart    *time.Time `json:"saleStart"`
	SaleEnd      *time.Time `json:"saleEnd"`
}

// UpdateProductDiscount sets a product's discount rate and sale window.
// Obvious mistakes are rejected locally before the request is sent.
func (c *Client) UpdateProductDiscount(ctx context.Context, productID string, rate float64, saleStart, saleEnd *time.Time) (*models.Product, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrDiscountRateOutOfRange
	}
	if saleStart != nil && saleEnd != nil && saleEnd.Before(*saleStart) {
		return nil, ErrSaleWindowInverted
	}

	body := updateDiscountRequest{DiscountRate: rate, SaleStart: saleStart, SaleEnd: saleEnd}
	var product models.Product
	if err := c.do(ctx, http.MethodPatch, "/admin/products/"+productID+"/discount", nil, body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SalesReport fetches the units and revenue per product over [from, to].
// Zero times leave the server's default range in place.
type SalesReport struct {
	From  time.Time             `json:"from"`
	To    time.Time             `json:"to"`
	Items []models.ProductSales `json:"items"`
}

// AdminSalesReport fetches the aggregated sales report.
func (c *Client) AdminSalesReport(ctx context.Context, from, to time.Time) (*SalesReport, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.Format(time.RFC3339))
	}

	var report SalesReport
	if err := c.do(ctx, http.MethodGet, "/admin/sales", query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// AdminProductSales fetches one product's sales row.
func (c *Client) AdminProductSales(ctx context.Context, productID string, from, to time.Time) (*models.ProductSales, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.Format(time.RFC3339))
	}

	var row models.ProductSales
	if err := c.do(ctx, http.MethodGet, "/admin/sales/"+productID, query, nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
