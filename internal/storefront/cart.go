package storefront

import (
	"context"
	"log"
	"sync"

	"storefront/internal/models"
)

// CartManager keeps a local cart snapshot in sync with the backend. Every
// mutation refetches the authoritative cart from the response rather than
// patching the snapshot locally, so the view can never drift from the
// server after concurrent edits in another session.
type CartManager struct {
	api CartAPI

	mu   sync.Mutex
	view models.CartView

	// onOpen fires after a successful add so a UI can pop the cart
	// drawer. Optional.
	onOpen func()
}

// NewCartManager creates a CartManager over the given cart API.
func NewCartManager(api CartAPI) *CartManager {
	return &CartManager{api: api}
}

// OnOpen registers the open-drawer hook fired after a successful add.
func (m *CartManager) OnOpen(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOpen = fn
}

// View returns the current cart snapshot.
func (m *CartManager) View() models.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// ItemCount returns the badge count of the current snapshot.
func (m *CartManager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view.ItemCount()
}

// Refresh replaces the snapshot with the backend's current cart.
func (m *CartManager) Refresh(ctx context.Context) error {
	view, err := m.api.Cart(ctx)
	if err != nil {
		return err
	}
	m.setView(view)
	return nil
}

// AddItem adds quantity units of a product size to the cart. Quantities
// below one are clamped to one. The same (product, size) pair accumulates
// onto its existing line.
func (m *CartManager) AddItem(ctx context.Context, productID string, size, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	view, err := m.api.AddCartItem(ctx, productID, size, quantity)
	if err != nil {
		return err
	}
	m.setView(view)

	m.mu.Lock()
	open := m.onOpen
	m.mu.Unlock()
	if open != nil {
		open()
	}
	return nil
}

// UpdateItem sets a line's quantity to an absolute value. Quantities below
// one are ignored without a request; use RemoveItem to drop a line.
func (m *CartManager) UpdateItem(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	view, err := m.api.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	m.setView(view)
	return nil
}

// RemoveItem drops a line. Unknown ids succeed without effect.
func (m *CartManager) RemoveItem(ctx context.Context, itemID string) error {
	view, err := m.api.RemoveCartItem(ctx, itemID)
	if err != nil {
		return err
	}
	m.setView(view)
	return nil
}

// Clear empties the cart. A backend failure is logged and the local
// snapshot is cleared anyway, so the storefront never shows stale lines
// after the user asked for an empty cart.
func (m *CartManager) Clear(ctx context.Context) error {
	view, err := m.api.ClearCart(ctx)
	if err != nil {
		log.Printf("error clearing cart remotely, clearing local view: %v", err)
		m.setView(&models.CartView{Items: []models.CartItem{}})
		return nil
	}
	m.setView(view)
	return nil
}

func (m *CartManager) setView(view *models.CartView) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if view.Items == nil {
		view.Items = []models.CartItem{}
	}
	m.view = *view
}
