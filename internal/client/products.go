package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// ProductList is one page of catalog results.
type ProductList struct {
	Items      []models.Product `json:"items"`
	TotalCount int              `json:"totalCount"`
}

// ListProducts fetches one catalog page. The filter's gender and single
// selections are pushed down as query parameters; multi-value selections
// are comma-joined so richer combinations still narrow the result. The
// returned products are re-enriched locally so isNew, isOnSale, and
// discountPercentage reflect the caller's clock even when responses were
// cached upstream.
func (c *Client) ListProducts(ctx context.Context, f catalog.FilterState, page, limit int) (*ProductList, error) {
	query := url.Values{}
	if f.Gender != "" {
		query.Set("gender", f.Gender)
	}
	setJoined(query, "category", f.Categories)
	setJoined(query, "size", f.Sizes)
	setJoined(query, "material", f.Materials)
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var list ProductList
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &list); err != nil {
		return nil, err
	}
	catalog.EnrichAll(list.Items, time.Now())
	return &list, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &product); err != nil {
		return nil, err
	}
	catalog.Enrich(&product, time.Now())
	return &product, nil
}

// PopularProducts fetches the best sellers window.
func (c *Client) PopularProducts(ctx context.Context, offset, limit int) ([]models.Product, error) {
	query := url.Values{}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var payload struct {
		Items []models.Product `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/popular", query, nil, &payload); err != nil {
		return nil, err
	}
	catalog.EnrichAll(payload.Items, time.Now())
	return payload.Items, nil
}

func setJoined(query url.Values, key string, values []string) {
	if len(values) > 0 {
		query.Set(key, strings.Join(values, ","))
	}
}
