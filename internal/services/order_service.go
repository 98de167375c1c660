package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/events"
)

// ErrEmptyCart rejects checkout of an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// DefaultPaymentMethod is assumed when the checkout request names none.
const DefaultPaymentMethod = "CARD"

// OrderService handles checkout and order history. Checkout snapshots the
// cart into an immutable order, records the sales, empties the cart, and
// publishes an event when a broker is configured.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	publisher   *events.Publisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, publisher *events.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Checkout turns the user's cart into an order.
func (s *OrderService) Checkout(userID, paymentMethod string) (*models.Order, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductImage: line.ProductImage,
			Size:         line.Size,
			Price:        line.Price,
			Quantity:     line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}

	order := &models.Order{
		UserID:        userID,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, line := range cart.Items {
		if err := s.productRepo.RecordSale(line.ProductID, line.Quantity); err != nil {
			log.Printf("warning: failed to record sale for product %s: %v", line.ProductID, err)
		}
	}

	if err := s.cartRepo.Clear(cart.ID); err != nil {
		log.Printf("warning: failed to clear cart %s after checkout: %v", cart.ID, err)
	}

	if s.publisher != nil {
		event := events.OrderCreated{
			OrderID:   order.ID,
			UserID:    order.UserID,
			Total:     order.TotalAmount,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListOrders returns one page of the user's order history, newest first.
func (s *OrderService) ListOrders(userID string, page, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	return s.orderRepo.GetByUserID(userID, (page-1)*limit, limit)
}

// GetOrder loads one order, hiding other users' orders behind not-found.
func (s *OrderService) GetOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}
	return order, nil
}

// UpdateStatus moves an order through the backend-owned status machine.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		return fmt.Errorf("invalid order status: %s", status)
	}
	return s.orderRepo.UpdateStatus(orderID, status)
}

// SalesReport aggregates units and revenue per product over [from, to].
func (s *OrderService) SalesReport(from, to time.Time) ([]models.ProductSales, error) {
	orders, err := s.orderRepo.GetAllBetween(from, to)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*models.ProductSales)
	for _, order := range orders {
		for _, item := range order.Items {
			row, ok := byProduct[item.ProductID]
			if !ok {
				row = &models.ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				byProduct[item.ProductID] = row
			}
			row.Units += item.Quantity
			row.Revenue += item.Price * float64(item.Quantity)
		}
	}

	report := make([]models.ProductSales, 0, len(byProduct))
	for _, row := range byProduct {
		report = append(report, *row)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Revenue > report[j].Revenue
	})
	return report, nil
}

// ProductSalesReport is SalesReport narrowed to one product.
func (s *OrderService) ProductSalesReport(productID string, from, to time.Time) (*models.ProductSales, error) {
	report, err := s.SalesReport(from, to)
	if err != nil {
		return nil, err
	}
	for _, row := range report {
		if row.ProductID == productID {
			return &row, nil
		}
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return &models.ProductSales{ProductID: product.ID, ProductName: product.Name}, nil
}

// FindOrderItem locates one of the user's own order lines, for review
// eligibility checks.
func (s *OrderService) FindOrderItem(userID, orderItemID string) (*models.OrderItem, error) {
	orders, err := s.orderRepo.GetByUserID(userID, 0, 0)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		for _, item := range order.Items {
			if item.ID == orderItemID {
				found := item
				return &found, nil
			}
		}
	}
	return nil, fmt.Errorf("order item %s: %w", orderItemID, repositories.ErrNotFound)
}
