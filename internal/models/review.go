package models

import "time"

// Review ties a rating to a real purchase through OrderItemID. Uniqueness per
// purchase is not enforced; a buyer may review the same item more than once.
type Review struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   string    `json:"productId" gorm:"index;type:varchar(36)" validate:"required"`
	OrderItemID string    `json:"orderItemId" gorm:"type:varchar(36)" validate:"required"`
	UserID      string    `json:"userId" gorm:"type:varchar(36)"`
	UserName    string    `json:"userName"`
	Rating      int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment     string    `json:"comment" validate:"omitempty,max=1000"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
