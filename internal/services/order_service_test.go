package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string, offset, limit int) ([]models.Order, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllBetween(from, to time.Time) ([]models.Order, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(orderID, status string) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func newCheckoutFixture(t *testing.T) (*services.OrderService, *MockOrderRepository, *services.CartService, *repositories.MockProductRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()
	orderRepo := new(MockOrderRepository)

	product := &models.Product{
		ID:            "prod-1",
		Name:          "Runner Classic",
		Price:         98,
		Sizes:         []int{260, 270, 280},
		StockQuantity: 10,
		InStock:       true,
	}
	assert.NoError(t, productRepo.Create(product))

	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, nil)
	return orderService, orderRepo, cartService, productRepo
}

func TestOrderService_CheckoutSnapshotsCartAndClearsIt(t *testing.T) {
	orderService, orderRepo, cartService, productRepo := newCheckoutFixture(t)

	_, err := cartService.AddItem("user-1", "prod-1", 270, 2)
	assert.NoError(t, err)
	_, err = cartService.AddItem("user-1", "prod-1", 280, 1)
	assert.NoError(t, err)

	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := orderService.Checkout("user-1", "")
	assert.NoError(t, err)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 294.0, order.TotalAmount)
	assert.Equal(t, services.DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	orderRepo.AssertExpectations(t)

	// The cart is emptied by a successful checkout.
	cart, err := cartService.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Sales and stock reflect the three units sold.
	product, err := productRepo.GetByID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, product.SalesCount)
	assert.Equal(t, 7, product.StockQuantity)
}

func TestOrderService_CheckoutRejectsEmptyCart(t *testing.T) {
	orderService, _, cartService, _ := newCheckoutFixture(t)

	// Never-accessed cart.
	_, err := orderService.Checkout("user-1", "CARD")
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	// Existing but empty cart.
	_, err = cartService.GetCart("user-2")
	assert.NoError(t, err)
	_, err = orderService.Checkout("user-2", "CARD")
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestOrderService_GetOrderHidesOtherUsersOrders(t *testing.T) {
	orderService, orderRepo, _, _ := newCheckoutFixture(t)

	order := &models.Order{ID: "order-1", UserID: "user-1", TotalAmount: 98}
	orderRepo.On("GetByID", "order-1").Return(order, nil).Twice()

	got, err := orderService.GetOrder("user-1", "order-1")
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = orderService.GetOrder("user-2", "order-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatusValidatesStatus(t *testing.T) {
	orderService, orderRepo, _, _ := newCheckoutFixture(t)

	orderRepo.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()
	assert.NoError(t, orderService.UpdateStatus("order-1", models.OrderStatusShipped))

	err := orderService.UpdateStatus("order-1", "teleported")
	assert.Error(t, err)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_SalesReportAggregatesByProduct(t *testing.T) {
	orderService, orderRepo, _, _ := newCheckoutFixture(t)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ID: "order-1", Items: []models.OrderItem{
			{ProductID: "prod-1", ProductName: "Runner Classic", Price: 98, Quantity: 2},
			{ProductID: "prod-2", ProductName: "Dasher Tempo", Price: 108, Quantity: 1},
		}},
		{ID: "order-2", Items: []models.OrderItem{
			{ProductID: "prod-1", ProductName: "Runner Classic", Price: 98, Quantity: 1},
		}},
	}
	orderRepo.On("GetAllBetween", from, to).Return(orders, nil).Once()

	report, err := orderService.SalesReport(from, to)
	assert.NoError(t, err)
	assert.Len(t, report, 2)

	// Ordered by revenue, highest first.
	assert.Equal(t, "prod-1", report[0].ProductID)
	assert.Equal(t, 3, report[0].Units)
	assert.Equal(t, 294.0, report[0].Revenue)
	assert.Equal(t, "prod-2", report[1].ProductID)
	assert.Equal(t, 1, report[1].Units)
	assert.Equal(t, 108.0, report[1].Revenue)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_FindOrderItem(t *testing.T) {
	orderService, orderRepo, _, _ := newCheckoutFixture(t)

	orders := []models.Order{
		{ID: "order-1", UserID: "user-1", Items: []models.OrderItem{
			{ID: "item-1", ProductID: "prod-1", ProductName: "Runner Classic"},
		}},
	}
	orderRepo.On("GetByUserID", "user-1", 0, 0).Return(orders, nil).Twice()

	item, err := orderService.FindOrderItem("user-1", "item-1")
	assert.NoError(t, err)
	assert.Equal(t, "prod-1", item.ProductID)

	_, err = orderService.FindOrderItem("user-1", "item-2")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	orderRepo.AssertExpectations(t)
}
