package services_test

import (
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	cartRepo := repositories.NewMockCartRepository()

	product := &models.Product{
		ID:     "prod-1",
		Name:   "Runner Classic",
		Price:  98,
		Sizes:  []int{260, 270, 280},
		Images: []string{"/images/runner-1.jpg"},
	}
	assert.NoError(t, productRepo.Create(product))

	return services.NewCartService(cartRepo, productRepo), productRepo
}

func TestCartService_GetCartCreatesEmptyOnFirstAccess(t *testing.T) {
	service, _ := newCartFixture(t)

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartService_AddItemAccumulatesSameProductAndSize(t *testing.T) {
	service, _ := newCartFixture(t)

	cart, err := service.AddItem("user-1", "prod-1", 270, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = service.AddItem("user-1", "prod-1", 270, 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// A different size gets its own line.
	cart, err = service.AddItem("user-1", "prod-1", 280, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.TotalQuantity())
}

func TestCartService_AddItemFreezesPriceAtAddTime(t *testing.T) {
	service, productRepo := newCartFixture(t)

	cart, err := service.AddItem("user-1", "prod-1", 270, 1)
	assert.NoError(t, err)
	assert.Equal(t, 98.0, cart.Items[0].Price)

	// Lowering the product price must not touch the existing line.
	product, err := productRepo.GetByID("prod-1")
	assert.NoError(t, err)
	product.Price = 49
	assert.NoError(t, productRepo.Update(product))

	cart, err = service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 98.0, cart.Items[0].Price)

	// A second add accumulates the quantity on the frozen-price line.
	cart, err = service.AddItem("user-1", "prod-1", 270, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 98.0, cart.Items[0].Price)
	assert.Equal(t, 196.0, cart.TotalPrice())
}

func TestCartService_AddItemRejectsUnavailableSize(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.AddItem("user-1", "prod-1", 310, 1)
	assert.ErrorIs(t, err, services.ErrSizeUnavailable)

	_, err = service.AddItem("user-1", "prod-1", 270, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)
}

func TestCartService_UpdateItemSetsAbsoluteQuantity(t *testing.T) {
	service, _ := newCartFixture(t)

	cart, err := service.AddItem("user-1", "prod-1", 270, 5)
	assert.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = service.UpdateItem("user-1", itemID, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	_, err = service.UpdateItem("user-1", itemID, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = service.UpdateItem("user-1", "no-such-item", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_UpdateItemChecksOwnership(t *testing.T) {
	service, _ := newCartFixture(t)

	cart, err := service.AddItem("user-1", "prod-1", 270, 1)
	assert.NoError(t, err)
	itemID := cart.Items[0].ID

	// Another user cannot touch the line even with a valid item id.
	_, err = service.UpdateItem("user-2", itemID, 3)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_RemoveUnknownItemIsNoOp(t *testing.T) {
	service, _ := newCartFixture(t)

	cart, err := service.AddItem("user-1", "prod-1", 270, 1)
	assert.NoError(t, err)

	cart, err = service.RemoveItem("user-1", "no-such-item")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	cart, err = service.RemoveItem("user-1", cart.Items[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_Clear(t *testing.T) {
	service, _ := newCartFixture(t)

	_, err := service.AddItem("user-1", "prod-1", 270, 2)
	assert.NoError(t, err)
	_, err = service.AddItem("user-1", "prod-1", 280, 1)
	assert.NoError(t, err)

	assert.NoError(t, service.Clear("user-1"))

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
}
