// Package catalog holds the storefront's product classification, filtering
// and sorting rules. Everything here is a pure function of its inputs; the
// current time is always passed in explicitly.
package catalog

import (
	"math"
	"time"

	"storefront/internal/models"
)

// IsNew reports whether a product created at createdAt still counts as a new
// arrival at now. The window is one calendar month, boundary inclusive.
func IsNew(createdAt, now time.Time) bool {
	return !createdAt.Before(now.AddDate(0, -1, 0))
}

// IsOnSale reports whether now falls inside the inclusive [start, end] sale
// window. Products without a complete window are never on sale.
func IsOnSale(start, end *time.Time, now time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	return !now.Before(*start) && !now.After(*end)
}

// DiscountPercentage returns the rounded percent saved between the original
// and current price. A zero original price yields 0 rather than dividing.
func DiscountPercentage(original, current float64) int {
	if original == 0 {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}

// DiscountedPrice derives the current selling price from the original price
// and a discount rate in [0, 1], rounded to a whole currency unit.
func DiscountedPrice(original, rate float64) float64 {
	return math.Round(original * (1 - rate))
}

// Enrich fills in a product's derived classification fields. Call it once at
// the API boundary so downstream code never recomputes them ad hoc.
func Enrich(p *models.Product, now time.Time) {
	p.IsNew = IsNew(p.CreatedAt, now)
	p.IsOnSale = IsOnSale(p.SaleStart, p.SaleEnd, now)
	if p.OriginalPrice > 0 && p.Price > 0 {
		p.DiscountPercentage = DiscountPercentage(p.OriginalPrice, p.Price)
	}
}

// EnrichAll enriches every product in place.
func EnrichAll(products []models.Product, now time.Time) {
	for i := range products {
		Enrich(&products[i], now)
	}
}
