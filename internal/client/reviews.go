package client

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

// Reviews fetches the reviews of a product.
func (c *Client) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	var payload struct {
		Items []models.Review `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+productID+"/reviews", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

type createReviewRequest struct {
	OrderItemID string `json:"orderItemId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// CreateReview posts a review for a purchased product. orderItemID must
// reference one of the caller's order lines for that product.
func (c *Client) CreateReview(ctx context.Context, productID, orderItemID string, rating int, comment string) (*models.Review, error) {
	body := createReviewRequest{OrderItemID: orderItemID, Rating: rating, Comment: comment}
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/products/"+productID+"/reviews", nil, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

type updateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReview edits the caller's own review.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPatch, "/reviews/"+reviewID, nil, updateReviewRequest{Rating: rating, Comment: comment}, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
