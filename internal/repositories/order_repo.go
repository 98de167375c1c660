package repositories

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access. Orders are
// write-once; only the status column is ever updated.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string, offset, limit int) ([]models.Order, error)
	GetAllBetween(from, to time.Time) ([]models.Order, error)
	UpdateStatus(id, status string) error
}

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts an order snapshot with its lines.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID loads an order with its lines.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// GetByUserID lists a user's orders newest first. A limit of 0 means all.
func (r *GORMOrderRepository) GetByUserID(userID string, offset, limit int) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetAllBetween lists every order placed inside [from, to].
func (r *GORMOrderRepository) GetAllBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders between %s and %s: %w", from, to, err)
	}
	return orders, nil
}

// UpdateStatus moves an order through the status machine.
func (r *GORMOrderRepository) UpdateStatus(id, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return nil
}
