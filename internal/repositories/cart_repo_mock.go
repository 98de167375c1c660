package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]*models.Cart // keyed by user ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

// GetByUserID returns a copy of the user's cart.
func (r *MockCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

// Create stores an empty cart for a user.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	stored := *cart
	r.carts[cart.UserID] = &stored
	return nil
}

// AddItem appends a line to its cart.
func (r *MockCartRepository) AddItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	for _, cart := range r.carts {
		if cart.ID == item.CartID {
			cart.Items = append(cart.Items, *item)
			return nil
		}
	}
	return fmt.Errorf("cart %s: %w", item.CartID, ErrNotFound)
}

// GetItem finds one line across all carts.
func (r *MockCartRepository) GetItem(itemID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cart := range r.carts {
		for _, item := range cart.Items {
			if item.ID == itemID {
				copied := item
				return &copied, nil
			}
		}
	}
	return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
}

// UpdateItemQuantity sets the absolute quantity of a line.
func (r *MockCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
}

// RemoveItem deletes a line.
func (r *MockCartRepository) RemoveItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
}

// Clear removes every line of a cart.
func (r *MockCartRepository) Clear(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.Items = nil
			return nil
		}
	}
	return nil
}
