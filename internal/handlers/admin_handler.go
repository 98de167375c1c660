package handlers

import (
	"errors"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the catalog management and sales report endpoints.
type AdminHandler struct {
	products *services.ProductService
	orders   *services.OrderService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(products *services.ProductService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{
		products: products,
		orders:   orders,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes. The router is expected to
// already enforce an admin session.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Patch("/products/:id/sizes", h.HandleUpdateSizes)
	router.Patch("/products/:id/discount", h.HandleUpdateDiscount)
	router.Get("/sales", h.HandleSalesReport)
	router.Get("/sales/:productId", h.HandleProductSales)
}

// HandleListProducts serves GET /admin/products without filtering so the
// full catalog is visible regardless of stock or gender.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	products, total, err := h.products.ListProducts(services.ListQuery{Limit: -1})
	if err != nil {
		log.Printf("error listing products for admin: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "could not retrieve products")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"items":      products,
		"totalCount": total,
	})
}

// CreateProductRequest is the body of POST /admin/products.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	OriginalPrice float64  `json:"originalPrice" validate:"required,gt=0"`
	DiscountRate  float64  `json:"discountRate" validate:"gte=0,lte=1"`
	Images        []string `json:"images"`
	Colors        []string `json:"colors"`
	Sizes         []int    `json:"sizes"`
	Categories    []string `json:"categories"`
	Material      string   `json:"material"`
	Functions     []string `json:"functions"`
	Model         string   `json:"model"`
	Gender        string   `json:"gender" validate:"required,oneof=men women unisex"`
	StockQuantity int      `json:"stockQuantity" validate:"gte=0"`
}

// HandleCreateProduct serves POST /admin/products.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		fields := make(fiber.Map)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"errors":  fields,
		})
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		DiscountRate:  req.DiscountRate,
		Images:        req.Images,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Categories:    req.Categories,
		Material:      req.Material,
		Functions:     req.Functions,
		Model:         req.Model,
		Gender:        req.Gender,
		StockQuantity: req.StockQuantity,
	}
	if err := h.products.CreateProduct(product); err != nil {
		log.Printf("error creating product: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "could not create product")
	}
	return respondData(c, fiber.StatusCreated, product)
}

// UpdateSizesRequest is the body of PATCH /admin/products/:id/sizes.
type UpdateSizesRequest struct {
	Sizes []int `json:"sizes" validate:"required,min=1,dive,gt=0"`
}

// HandleUpdateSizes serves PATCH /admin/products/:id/sizes.
func (h *AdminHandler) HandleUpdateSizes(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req UpdateSizesRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "sizes must be a non-empty list of positive integers")
	}

	product, err := h.products.UpdateSizes(productID, req.Sizes)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("error updating sizes for product %s: %v", productID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not update sizes")
	}
	return respondData(c, fiber.StatusOK, product)
}

// UpdateDiscountRequest is the body of PATCH /admin/products/:id/discount.
// SaleStart and SaleEnd are optional; omitting either clears the sale window.
type UpdateDiscountRequest struct {
	DiscountRate float64    `json:"discountRate" validate:"gte=0,lte=1"`
	SaleStart    *time.Time `json:"saleStart"`
	SaleEnd      *time.Time `json:"saleEnd"`
}

// HandleUpdateDiscount serves PATCH /admin/products/:id/discount.
func (h *AdminHandler) HandleUpdateDiscount(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req UpdateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "discountRate must be between 0 and 1")
	}

	product, err := h.products.UpdateDiscount(productID, req.DiscountRate, req.SaleStart, req.SaleEnd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDiscountRate), errors.Is(err, services.ErrInvalidSaleWindow):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("error updating discount for product %s: %v", productID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not update discount")
	}
	return respondData(c, fiber.StatusOK, product)
}

// HandleSalesReport serves GET /admin/sales?from=RFC3339&to=RFC3339.
// The range defaults to the last 30 days.
func (h *AdminHandler) HandleSalesReport(c *fiber.Ctx) error {
	from, to, err := salesRange(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.orders.SalesReport(from, to)
	if err != nil {
		log.Printf("error building sales report: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "could not build sales report")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"from":  from,
		"to":    to,
		"items": report,
	})
}

// HandleProductSales serves GET /admin/sales/:productId.
func (h *AdminHandler) HandleProductSales(c *fiber.Ctx) error {
	productID := c.Params("productId")

	from, to, err := salesRange(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := h.orders.ProductSalesReport(productID, from, to)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("error building sales report for product %s: %v", productID, err)
		return respondError(c, fiber.StatusInternalServerError, "could not build sales report")
	}
	return respondData(c, fiber.StatusOK, row)
}

func salesRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be an RFC3339 timestamp")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be an RFC3339 timestamp")
		}
		to = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not be before from")
	}
	return from, to, nil
}
