package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	// ErrInvalidRating rejects ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrNotPurchased rejects reviews not backed by one of the caller's own
	// order lines for the reviewed product.
	ErrNotPurchased = errors.New("review requires a purchase of this product")
	// ErrNotReviewAuthor rejects edits by anyone but the original author.
	ErrNotReviewAuthor = errors.New("only the author can edit a review")
)

// ReviewService ties review creation to real purchases.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	orders     *OrderService
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, orders *OrderService) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		orders:     orders,
	}
}

// CreateReview creates a review after verifying the order item belongs to the
// user and references the reviewed product.
func (s *ReviewService) CreateReview(user *models.User, productID, orderItemID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	item, err := s.orders.FindOrderItem(user.ID, orderItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotPurchased
		}
		return nil, err
	}
	if item.ProductID != productID {
		return nil, ErrNotPurchased
	}

	review := &models.Review{
		ProductID:   productID,
		OrderItemID: orderItemID,
		UserID:      user.ID,
		UserName:    user.Name,
		Rating:      rating,
		Comment:     comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListByProduct returns a product's reviews.
func (s *ReviewService) ListByProduct(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProductID(productID)
}

// UpdateReview edits rating and comment of the caller's own review.
func (s *ReviewService) UpdateReview(userID, reviewID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotReviewAuthor
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}
