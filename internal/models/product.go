package models

import "time"

// Gender values accepted by the catalog.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is the canonical product schema. Sizes are numeric shoe sizes;
// filter values arriving as strings from the UI are coerced once at the
// catalog boundary, not at call sites.
type Product struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Description   string     `json:"description" validate:"omitempty,max=500"`
	Price         float64    `json:"price" validate:"required,gt=0"`
	OriginalPrice float64    `json:"originalPrice" validate:"omitempty,gte=0"`
	DiscountRate  float64    `json:"discountRate" validate:"gte=0,lte=1"`
	Images        []string   `json:"images" gorm:"serializer:json"`
	Colors        []string   `json:"colors" gorm:"serializer:json"`
	Sizes         []int      `json:"sizes" gorm:"serializer:json"`
	Categories    []string   `json:"categories" gorm:"serializer:json"`
	Material      string     `json:"material"`
	Functions     []string   `json:"functions" gorm:"serializer:json"`
	Model         string     `json:"model"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=men women unisex"`
	InStock       bool       `json:"inStock"`
	StockQuantity int        `json:"stockQuantity" validate:"gte=0"`
	SalesCount    int        `json:"salesCount"`
	AverageRating float64    `json:"averageRating"`
	SaleStart     *time.Time `json:"saleStart"`
	SaleEnd       *time.Time `json:"saleEnd"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	// Derived at read time by the catalog package; never persisted.
	IsNew              bool `json:"isNew" gorm:"-"`
	IsOnSale           bool `json:"isOnSale" gorm:"-"`
	DiscountPercentage int  `json:"discountPercentage" gorm:"-"`
}

// HasSize reports whether the product is offered in the given numeric size.
func (p *Product) HasSize(size int) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
