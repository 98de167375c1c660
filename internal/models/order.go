package models

import "time"

// Order statuses. Only the backend moves an order between them.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem captures a product line as it was at checkout time, decoupled
// from any later product changes.
type OrderItem struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID      string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID    string  `json:"productId" gorm:"type:varchar(36)"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Size         int     `json:"size"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// Order is an immutable snapshot of a cart at checkout time. Nothing but the
// status ever changes after creation.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string      `json:"userId" gorm:"index;type:varchar(36)"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// ProductSales is one row of the admin sales report.
type ProductSales struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Units       int     `json:"units"`
	Revenue     float64 `json:"revenue"`
}
