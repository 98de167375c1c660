package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles the session-owned cart endpoints.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes. The router must already enforce
// an authenticated session.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGet)
	cart.Post("/items", h.HandleAddItem)
	cart.Patch("/items/:id", h.HandleUpdateItem)
	cart.Delete("/items/:id", h.HandleRemoveItem)
	cart.Delete("/", h.HandleClear)
}

func cartPayload(cart *models.Cart) fiber.Map {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return fiber.Map{
		"items":      items,
		"totalPrice": cart.TotalPrice(),
	}
}

// HandleGet serves GET /cart, creating an empty cart on first access.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	cart, err := h.service.GetCart(user.ID)
	if err != nil {
		log.Printf("error getting cart for user %s: %v", user.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve cart")
	}
	return respondData(c, fiber.StatusOK, cartPayload(cart))
}

// AddItemRequest is the body of POST /cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Size      int    `json:"size"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem serves POST /cart/items with upsert semantics per
// (productId, size).
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.service.AddItem(user.ID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity), errors.Is(err, services.ErrSizeUnavailable):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("error adding cart item for user %s: %v", user.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not add item to cart")
	}
	return respondData(c, fiber.StatusCreated, cartPayload(cart))
}

// UpdateItemRequest is the body of PATCH /cart/items/:id. Quantity is
// absolute, not a delta.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateItem serves PATCH /cart/items/:id.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	itemID := c.Params("id")

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	cart, err := h.service.UpdateItem(user.ID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "cart item not found")
		}
		log.Printf("error updating cart item %s: %v", itemID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not update cart item")
	}
	return respondData(c, fiber.StatusOK, cartPayload(cart))
}

// HandleRemoveItem serves DELETE /cart/items/:id. Removing an unknown id is
// a successful no-op.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	itemID := c.Params("id")

	cart, err := h.service.RemoveItem(user.ID, itemID)
	if err != nil {
		log.Printf("error removing cart item %s: %v", itemID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not remove cart item")
	}
	return respondData(c, fiber.StatusOK, cartPayload(cart))
}

// HandleClear serves DELETE /cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	if err := h.service.Clear(user.ID); err != nil {
		log.Printf("error clearing cart for user %s: %v", user.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not clear cart")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"items":      []models.CartItem{},
		"totalPrice": 0,
	})
}
