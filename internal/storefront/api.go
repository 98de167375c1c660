package storefront

import (
	"context"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/client"
	"storefront/internal/models"
)

// The storefront managers talk to the backend through these interfaces.
// *client.Client satisfies all of them over HTTP; *Offline satisfies them
// in-process against a local demo backend.

// ProductAPI is the catalog surface.
type ProductAPI interface {
	ListProducts(ctx context.Context, f catalog.FilterState, page, limit int) (*client.ProductList, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	PopularProducts(ctx context.Context, offset, limit int) ([]models.Product, error)
}

// CartAPI is the session cart surface. Every mutation returns the fresh
// cart snapshot so callers never have to model partial updates.
type CartAPI interface {
	Cart(ctx context.Context) (*models.CartView, error)
	AddCartItem(ctx context.Context, productID string, size, quantity int) (*models.CartView, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartView, error)
	RemoveCartItem(ctx context.Context, itemID string) (*models.CartView, error)
	ClearCart(ctx context.Context) (*models.CartView, error)
}

// OrderAPI is the checkout and history surface.
type OrderAPI interface {
	Checkout(ctx context.Context, paymentMethod string) (*models.Order, error)
	Orders(ctx context.Context, page, limit int) ([]models.Order, error)
	Order(ctx context.Context, id string) (*models.Order, error)
}

// AuthAPI is the session surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
}

// ReviewAPI is the product review surface.
type ReviewAPI interface {
	Reviews(ctx context.Context, productID string) ([]models.Review, error)
	CreateReview(ctx context.Context, productID, orderItemID string, rating int, comment string) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID string, rating int, comment string) (*models.Review, error)
}

// AdminAPI is the catalog management surface.
type AdminAPI interface {
	AdminProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	UpdateProductSizes(ctx context.Context, productID string, sizes []int) (*models.Product, error)
	UpdateProductDiscount(ctx context.Context, productID string, rate float64, saleStart, saleEnd *time.Time) (*models.Product, error)
	AdminSalesReport(ctx context.Context, from, to time.Time) (*client.SalesReport, error)
	AdminProductSales(ctx context.Context, productID string, from, to time.Time) (*models.ProductSales, error)
}

// API bundles every surface the storefront uses.
type API interface {
	ProductAPI
	CartAPI
	OrderAPI
	AuthAPI
	ReviewAPI
	AdminAPI
}
