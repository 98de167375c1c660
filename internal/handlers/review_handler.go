package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles product review endpoints.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the read-only review routes.
func (h *ReviewHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products/:id/reviews", h.HandleList)
}

// RegisterSessionRoutes registers the review routes that require a session.
func (h *ReviewHandler) RegisterSessionRoutes(router fiber.Router) {
	router.Post("/products/:id/reviews", h.HandleCreate)
	router.Patch("/reviews/:id", h.HandleUpdate)
}

// HandleList serves GET /products/:id/reviews.
func (h *ReviewHandler) HandleList(c *fiber.Ctx) error {
	productID := c.Params("id")
	reviews, err := h.service.ListByProduct(productID)
	if err != nil {
		log.Printf("error listing reviews for product %s: %v", productID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve reviews")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"items": reviews})
}

// CreateReviewRequest is the body of POST /products/:id/reviews.
type CreateReviewRequest struct {
	OrderItemID string `json:"orderItemId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// HandleCreate serves POST /products/:id/reviews. The order item must belong
// to the caller and reference the reviewed product.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	productID := c.Params("id")

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.service.CreateReview(user, productID, req.OrderItemID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotPurchased):
			return respondError(c, fiber.StatusForbidden, "review requires a purchase of this product")
		}
		log.Printf("error creating review for product %s: %v", productID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not create review")
	}
	return respondData(c, fiber.StatusCreated, review)
}

// UpdateReviewRequest is the body of PATCH /reviews/:id.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// HandleUpdate serves PATCH /reviews/:id for the review's author.
func (h *ReviewHandler) HandleUpdate(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	reviewID := c.Params("id")

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	review, err := h.service.UpdateReview(user.ID, reviewID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotReviewAuthor):
			return respondError(c, fiber.StatusForbidden, "only the author can edit a review")
		case errors.Is(err, repositories.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "review not found")
		}
		log.Printf("error updating review %s: %v", reviewID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not update review")
	}
	return respondData(c, fiber.StatusOK, review)
}
