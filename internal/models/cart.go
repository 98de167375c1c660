package models

import "time"

// CartItem is a single cart line. Price is the unit price frozen at the
// moment the item was added; later discount changes do not touch it.
type CartItem struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID       string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID    string  `json:"productId" gorm:"type:varchar(36)" validate:"required"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Size         int     `json:"size" validate:"required"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity" validate:"required,gte=1"`
}

// Cart is owned by exactly one user session. It is created empty on first
// access and cleared on successful checkout.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"userId" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TotalPrice sums unit price times quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalQuantity sums the quantities of all lines.
func (c *Cart) TotalQuantity() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// CartView is the client-side snapshot of the cart as reported by the API.
// Total is whatever the backend computed; it is never recomputed locally.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"totalPrice"`
}

// ItemCount sums the quantities across lines for display badges.
func (v CartView) ItemCount() int {
	var count int
	for _, item := range v.Items {
		count += item.Quantity
	}
	return count
}
