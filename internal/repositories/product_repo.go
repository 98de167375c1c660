package repositories

import (
	"time"

	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error

	// UpdateSizes replaces the available size run.
	UpdateSizes(id string, sizes []int) error
	// UpdateDiscount sets the discount policy and the resulting current price.
	UpdateDiscount(id string, rate float64, price float64, saleStart, saleEnd *time.Time) error
	// RecordSale adds quantity to the sales counter and draws down stock.
	RecordSale(id string, quantity int) error
}
