package repositories

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves the full catalog.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, generating an ID when absent.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateSizes replaces the available size run of a product. The row is
// saved through the model so the JSON serializer runs on the slice column.
func (r *GORMProductRepository) UpdateSizes(id string, sizes []int) error {
	product, err := r.GetByID(id)
	if err != nil {
		return err
	}

	product.Sizes = sizes
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update sizes for product %s: %w", id, err)
	}
	return nil
}

// UpdateDiscount sets the discount rate, the sale window and the current
// price derived from them.
func (r *GORMProductRepository) UpdateDiscount(id string, rate float64, price float64, saleStart, saleEnd *time.Time) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"discount_rate": rate,
		"price":         price,
		"sale_start":    saleStart,
		"sale_end":      saleEnd,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update discount for product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecordSale bumps the sales counter and draws down stock after a checkout.
func (r *GORMProductRepository) RecordSale(id string, quantity int) error {
	product, err := r.GetByID(id)
	if err != nil {
		return err
	}

	product.SalesCount += quantity
	product.StockQuantity -= quantity
	if product.StockQuantity <= 0 {
		product.StockQuantity = 0
		product.InStock = false
	}
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to record sale for product %s: %w", id, err)
	}
	return nil
}
