package storefront

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/client"
	"storefront/internal/models"
	"storefront/internal/services"
)

// Offline serves the full storefront API against local services instead
// of a remote backend. It exists for demos and development without a
// server: every interface the managers use is answered in-process, with
// the same semantics as the HTTP API. The switch to offline mode is an
// explicit configuration choice, never a silent fallback on error.
type Offline struct {
	products *services.ProductService
	carts    *services.CartService
	orders   *services.OrderService
	reviews  *services.ReviewService
	auth     *services.AuthService

	mu   sync.Mutex
	user *models.User
}

// NewOffline creates an Offline API over the given service graph.
func NewOffline(products *services.ProductService, carts *services.CartService, orders *services.OrderService, reviews *services.ReviewService, auth *services.AuthService) *Offline {
	return &Offline{
		products: products,
		carts:    carts,
		orders:   orders,
		reviews:  reviews,
		auth:     auth,
	}
}

var _ API = (*Offline)(nil)
var _ UserCarrier = (*Offline)(nil)

// Cookies implements CookieCarrier; offline sessions have no cookies.
func (o *Offline) Cookies() []*http.Cookie { return nil }

// SetCookies implements CookieCarrier as a no-op.
func (o *Offline) SetCookies([]*http.Cookie) {}

// SetUser implements UserCarrier: a session restored from disk hands the
// saved user back so authenticated calls work across runs against a
// file-backed database.
func (o *Offline) SetUser(user *models.User) {
	o.mu.Lock()
	o.user = user
	o.mu.Unlock()
}

func (o *Offline) currentUser() (*models.User, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.user == nil {
		return nil, client.ErrSessionExpired
	}
	return o.user, nil
}

// ListProducts mirrors GET /products.
func (o *Offline) ListProducts(_ context.Context, f catalog.FilterState, page, limit int) (*client.ProductList, error) {
	items, total, err := o.products.ListProducts(services.ListQuery{
		Gender:   f.Gender,
		Category: strings.Join(f.Categories, ","),
		Size:     strings.Join(f.Sizes, ","),
		Material: strings.Join(f.Materials, ","),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return &client.ProductList{Items: items, TotalCount: total}, nil
}

// GetProduct mirrors GET /products/:id.
func (o *Offline) GetProduct(_ context.Context, id string) (*models.Product, error) {
	return o.products.GetProduct(id)
}

// PopularProducts mirrors GET /products/popular.
func (o *Offline) PopularProducts(_ context.Context, offset, limit int) ([]models.Product, error) {
	return o.products.PopularProducts(offset, limit)
}

func cartView(cart *models.Cart) *models.CartView {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return &models.CartView{Items: items, Total: cart.TotalPrice()}
}

// Cart mirrors GET /cart.
func (o *Offline) Cart(_ context.Context) (*models.CartView, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	cart, err := o.carts.GetCart(user.ID)
	if err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

// AddCartItem mirrors POST /cart/items.
func (o *Offline) AddCartItem(_ context.Context, productID string, size, quantity int) (*models.CartView, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	cart, err := o.carts.AddItem(user.ID, productID, size, quantity)
	if err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

// UpdateCartItem mirrors PATCH /cart/items/:id.
func (o *Offline) UpdateCartItem(_ context.Context, itemID string, quantity int) (*models.CartView, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	cart, err := o.carts.UpdateItem(user.ID, itemID, quantity)
	if err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

// RemoveCartItem mirrors DELETE /cart/items/:id.
func (o *Offline) RemoveCartItem(_ context.Context, itemID string) (*models.CartView, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	cart, err := o.carts.RemoveItem(user.ID, itemID)
	if err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

// ClearCart mirrors DELETE /cart.
func (o *Offline) ClearCart(_ context.Context) (*models.CartView, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	if err := o.carts.Clear(user.ID); err != nil {
		return nil, err
	}
	return &models.CartView{Items: []models.CartItem{}}, nil
}

// Checkout mirrors POST /orders.
func (o *Offline) Checkout(_ context.Context, paymentMethod string) (*models.Order, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	return o.orders.Checkout(user.ID, paymentMethod)
}

// Orders mirrors GET /orders.
func (o *Offline) Orders(_ context.Context, page, limit int) ([]models.Order, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	return o.orders.ListOrders(user.ID, page, limit)
}

// Order mirrors GET /orders/:id.
func (o *Offline) Order(_ context.Context, id string) (*models.Order, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	return o.orders.GetOrder(user.ID, id)
}

// Login mirrors POST /auth/login. The session token is discarded; the
// signed-in user is tracked in memory instead.
func (o *Offline) Login(_ context.Context, email, password string) (*models.User, error) {
	user, _, err := o.auth.Login(email, password)
	if err != nil {
		return nil, err
	}
	o.mu.Lock()
	o.user = user
	o.mu.Unlock()
	return user, nil
}

// Logout mirrors POST /auth/logout.
func (o *Offline) Logout(_ context.Context) error {
	o.mu.Lock()
	o.user = nil
	o.mu.Unlock()
	return nil
}

// Me mirrors GET /auth/me.
func (o *Offline) Me(_ context.Context) (*models.User, error) {
	return o.currentUser()
}

// Reviews mirrors GET /products/:id/reviews.
func (o *Offline) Reviews(_ context.Context, productID string) ([]models.Review, error) {
	return o.reviews.ListByProduct(productID)
}

// CreateReview mirrors POST /products/:id/reviews.
func (o *Offline) CreateReview(_ context.Context, productID, orderItemID string, rating int, comment string) (*models.Review, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	return o.reviews.CreateReview(user, productID, orderItemID, rating, comment)
}

// UpdateReview mirrors PATCH /reviews/:id.
func (o *Offline) UpdateReview(_ context.Context, reviewID string, rating int, comment string) (*models.Review, error) {
	user, err := o.currentUser()
	if err != nil {
		return nil, err
	}
	return o.reviews.UpdateReview(user.ID, reviewID, rating, comment)
}

func (o *Offline) requireAdmin() error {
	user, err := o.currentUser()
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return &client.APIError{Status: http.StatusForbidden, Message: "admin access required"}
	}
	return nil
}

// AdminProducts mirrors GET /admin/products.
func (o *Offline) AdminProducts(_ context.Context) ([]models.Product, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	items, _, err := o.products.ListProducts(services.ListQuery{Limit: -1})
	return items, err
}

// CreateProduct mirrors POST /admin/products.
func (o *Offline) CreateProduct(_ context.Context, product models.Product) (*models.Product, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	if err := o.products.CreateProduct(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProductSizes mirrors PATCH /admin/products/:id/sizes.
func (o *Offline) UpdateProductSizes(_ context.Context, productID string, sizes []int) (*models.Product, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	return o.products.UpdateSizes(productID, sizes)
}

// UpdateProductDiscount mirrors PATCH /admin/products/:id/discount.
func (o *Offline) UpdateProductDiscount(_ context.Context, productID string, rate float64, saleStart, saleEnd *time.Time) (*models.Product, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	return o.products.UpdateDiscount(productID, rate, saleStart, saleEnd)
}

// AdminSalesReport mirrors GET /admin/sales.
func (o *Offline) AdminSalesReport(_ context.Context, from, to time.Time) (*client.SalesReport, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	items, err := o.orders.SalesReport(from, to)
	if err != nil {
		return nil, err
	}
	return &client.SalesReport{From: from, To: to, Items: items}, nil
}

// AdminProductSales mirrors GET /admin/sales/:productId.
func (o *Offline) AdminProductSales(_ context.Context, productID string, from, to time.Time) (*models.ProductSales, error) {
	if err := o.requireAdmin(); err != nil {
		return nil, err
	}
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	return o.orders.ProductSalesReport(productID, from, to)
}
