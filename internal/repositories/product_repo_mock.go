package repositories

import (
	"fmt"
	"sync"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns the full catalog.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// UpdateSizes replaces the available size run.
func (r *MockProductRepository) UpdateSizes(id string, sizes []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	product.Sizes = sizes
	r.products[id] = product
	return nil
}

// UpdateDiscount sets the discount policy and the derived current price.
func (r *MockProductRepository) UpdateDiscount(id string, rate float64, price float64, saleStart, saleEnd *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	product.DiscountRate = rate
	product.Price = price
	product.SaleStart = saleStart
	product.SaleEnd = saleEnd
	r.products[id] = product
	return nil
}

// RecordSale bumps the sales counter and draws down stock.
func (r *MockProductRepository) RecordSale(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	product.SalesCount += quantity
	product.StockQuantity -= quantity
	if product.StockQuantity <= 0 {
		product.StockQuantity = 0
		product.InStock = false
	}
	r.products[id] = product
	return nil
}
