package handlers

import (
	"errors"
	"log"

	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles the public catalog endpoints.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/popular", h.HandlePopular)
	products.Get("/:id", h.HandleGet)
}

// HandleList serves GET /products with the supported query filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	query := services.ListQuery{
		Gender:   c.Query("gender"),
		Category: c.Query("category"),
		Size:     c.Query("size"),
		Material: c.Query("material"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 0),
	}

	items, total, err := h.service.ListProducts(query)
	if err != nil {
		log.Printf("error listing products: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve products")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"items":      items,
		"totalCount": total,
	})
}

// HandlePopular serves GET /products/popular.
func (h *ProductHandler) HandlePopular(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 5)

	items, err := h.service.PopularProducts(offset, limit)
	if err != nil {
		log.Printf("error listing popular products: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve popular products")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"items": items})
}

// HandleGet serves GET /products/:id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProduct(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("error getting product %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve product")
	}
	return respondData(c, fiber.StatusOK, product)
}
