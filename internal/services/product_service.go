package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Validation failures surfaced to handlers as 400s.
var (
	ErrInvalidDiscountRate = errors.New("discount rate must be between 0 and 1")
	ErrInvalidSaleWindow   = errors.New("sale end must not be before sale start")
)

// ListQuery carries the catalog listing parameters as they arrive on the
// wire. Size stays a string until the catalog package coerces it.
type ListQuery struct {
	Gender   string
	Category string
	Size     string
	Material string
	Page     int
	Limit    int
}

const defaultPageSize = 20

// ProductService handles catalog business logic: listing with filters,
// classification enrichment, and the admin-side mutations.
type ProductService struct {
	repo repositories.ProductRepository
	now  func() time.Time
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
		now:  time.Now,
	}
}

// ListProducts returns one page of enriched products matching the query,
// plus the total match count before paging. Filtering runs through the
// catalog rules so category=sale always reflects the live sale window.
func (s *ProductService) ListProducts(q ListQuery) ([]models.Product, int, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, 0, err
	}

	f := catalog.FilterState{
		Gender:     q.Gender,
		Categories: splitList(q.Category),
		Sizes:      splitList(q.Size),
		Materials:  splitList(q.Material),
	}

	now := s.now()
	matched := catalog.Filter(products, f, now)
	matched = catalog.Sort(matched, catalog.SortNewest)
	catalog.EnrichAll(matched, now)

	total := len(matched)
	return pageSlice(matched, q.Page, q.Limit), total, nil
}

// PopularProducts returns the best sellers window.
func (s *ProductService) PopularProducts(offset, limit int) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	sorted := catalog.Sort(products, catalog.SortSales)
	if offset >= len(sorted) {
		return []models.Product{}, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	catalog.EnrichAll(sorted, s.now())
	return sorted, nil
}

// GetProduct retrieves and enriches a single product.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	catalog.Enrich(product, s.now())
	return product, nil
}

// CreateProduct registers a new product. The submitted price is treated as
// the original price; the current price is derived from the discount rate.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.DiscountRate < 0 || product.DiscountRate > 1 {
		return ErrInvalidDiscountRate
	}
	if err := validateSaleWindow(product.SaleStart, product.SaleEnd); err != nil {
		return err
	}

	if product.OriginalPrice == 0 {
		product.OriginalPrice = product.Price
	}
	product.Price = catalog.DiscountedPrice(product.OriginalPrice, product.DiscountRate)
	product.InStock = product.StockQuantity > 0

	return s.repo.Create(product)
}

// UpdateSizes replaces a product's available size run.
func (s *ProductService) UpdateSizes(id string, sizes []int) (*models.Product, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("at least one size is required")
	}
	if err := s.repo.UpdateSizes(id, sizes); err != nil {
		return nil, err
	}
	return s.GetProduct(id)
}

// UpdateDiscount sets a product's discount policy. The current price is
// rederived from the original price so a single rate governs both.
func (s *ProductService) UpdateDiscount(id string, rate float64, saleStart, saleEnd *time.Time) (*models.Product, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrInvalidDiscountRate
	}
	if err := validateSaleWindow(saleStart, saleEnd); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	price := catalog.DiscountedPrice(product.OriginalPrice, rate)
	if err := s.repo.UpdateDiscount(id, rate, price, saleStart, saleEnd); err != nil {
		return nil, err
	}
	return s.GetProduct(id)
}

// splitList turns a comma-joined query value into its parts, dropping
// empty segments.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func validateSaleWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidSaleWindow
	}
	return nil
}

// pageSlice windows the product list. A zero limit falls back to
// defaultPageSize; a negative limit disables paging.
func pageSlice(products []models.Product, page, limit int) []models.Product {
	if limit < 0 {
		return products
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
