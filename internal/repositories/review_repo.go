package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetByProductID(productID string) ([]models.Review, error)
	Update(review *models.Review) error
}

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a review, generating an ID when absent.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID loads one review.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review %s: %w", id, err)
	}
	return &review, nil
}

// GetByProductID lists a product's reviews newest first.
func (r *GORMReviewRepository) GetByProductID(productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews for product %s: %w", productID, err)
	}
	return reviews, nil
}

// Update saves all fields of an existing review.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Save(review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s: %w", review.ID, ErrNotFound)
	}
	return nil
}
