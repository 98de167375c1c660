package handlers

import (
	"errors"
	"log"

	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and order history endpoints.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes. The router must already enforce
// an authenticated session.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Post("/", h.HandleCheckout)
	orders.Get("/", h.HandleList)
	orders.Get("/:id", h.HandleGet)
}

// CheckoutRequest is the body of POST /orders.
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// HandleCheckout serves POST /orders: it snapshots the cart into an order
// and empties the cart.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.service.Checkout(user.ID, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return respondError(c, fiber.StatusBadRequest, "cart is empty")
		}
		log.Printf("error during checkout for user %s: %v", user.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not create order")
	}
	return respondData(c, fiber.StatusCreated, order)
}

// HandleList serves GET /orders with page/limit paging.
func (h *OrderHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	orders, err := h.service.ListOrders(user.ID, page, limit)
	if err != nil {
		log.Printf("error listing orders for user %s: %v", user.ID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve orders")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"items": orders})
}

// HandleGet serves GET /orders/:id for the order's owner only.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	orderID := c.Params("id")

	order, err := h.service.GetOrder(user.ID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "order not found")
		}
		log.Printf("error getting order %s: %v", orderID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve order")
	}
	return respondData(c, fiber.StatusOK, order)
}
