package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	// ErrInvalidQuantity rejects non-positive quantities before any write.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrSizeUnavailable rejects sizes the product is not offered in.
	ErrSizeUnavailable = errors.New("size not available for this product")
)

// CartService owns cart line semantics: upsert on add, absolute quantity on
// update, and idempotent removal. Every mutation returns the freshly re-read
// cart so callers always render server truth.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem adds quantity of (productID, size) to the cart. An existing line
// for the same product and size accumulates; otherwise a new line is created
// with the unit price frozen at the product's current price.
func (s *CartService) AddItem(userID, productID string, size, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.HasSize(size) {
		return nil, fmt.Errorf("product %s size %d: %w", productID, size, ErrSizeUnavailable)
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID && cart.Items[i].Size == size {
			existing = &cart.Items[i]
			break
		}
	}

	if existing != nil {
		if err := s.cartRepo.UpdateItemQuantity(existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	} else {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		item := &models.CartItem{
			CartID:       cart.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: image,
			Size:         size,
			Price:        product.Price,
			Quantity:     quantity,
		}
		if err := s.cartRepo.AddItem(item); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUserID(userID)
}

// UpdateItem sets the absolute quantity of a line owned by the user.
func (s *CartService) UpdateItem(userID, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if !cartOwnsItem(cart, itemID) {
		return nil, fmt.Errorf("cart item %s: %w", itemID, repositories.ErrNotFound)
	}

	if err := s.cartRepo.UpdateItemQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// RemoveItem deletes a line. Removing an id that is not in the cart is a
// successful no-op.
func (s *CartService) RemoveItem(userID, itemID string) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	if cartOwnsItem(cart, itemID) {
		if err := s.cartRepo.RemoveItem(itemID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}
	return s.cartRepo.GetByUserID(userID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID string) error {
	cart, err := s.GetCart(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}

func cartOwnsItem(cart *models.Cart, itemID string) bool {
	for _, item := range cart.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
