package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartRepository defines the interface for cart data access. Line upsert
// semantics live in the service layer; the repository only stores lines.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	AddItem(item *models.CartItem) error
	GetItem(itemID string) (*models.CartItem, error)
	UpdateItemQuantity(itemID string, quantity int) error
	RemoveItem(itemID string) error
	Clear(cartID string) error
}

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUserID loads a user's cart with its lines.
func (r *GORMCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Create inserts an empty cart for a user.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// AddItem inserts a new cart line.
func (r *GORMCartRepository) AddItem(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// GetItem loads one cart line by its ID.
func (r *GORMCartRepository) GetItem(itemID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// UpdateItemQuantity sets the absolute quantity of a line.
func (r *GORMCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// RemoveItem deletes a line. Deleting an unknown line is reported via
// ErrNotFound; the service decides whether that is an error.
func (r *GORMCartRepository) RemoveItem(itemID string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// Clear removes every line of a cart.
func (r *GORMCartRepository) Clear(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
