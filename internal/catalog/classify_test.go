package catalog_test

import (
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

var baseNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestIsNew(t *testing.T) {
	assert.True(t, catalog.IsNew(baseNow.AddDate(0, 0, -29), baseNow), "29 days old is still new")

	// The threshold is a calendar month back, not a fixed day count. April
	// has 30 days, so from May 15 anything 31 days old has aged out.
	mayNow := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
	assert.False(t, catalog.IsNew(mayNow.AddDate(0, 0, -31), mayNow), "31 days old is no longer new")

	// From June 15 the threshold lands on May 15, 31 days back, and the
	// boundary itself still counts as new.
	assert.True(t, catalog.IsNew(baseNow.AddDate(0, 0, -31), baseNow))

	// Exactly one calendar month is inclusive.
	assert.True(t, catalog.IsNew(baseNow.AddDate(0, -1, 0), baseNow))
	assert.False(t, catalog.IsNew(baseNow.AddDate(0, -1, 0).Add(-time.Second), baseNow))
}

func TestIsOnSale(t *testing.T) {
	start := timePtr(baseNow.AddDate(0, 0, -5))
	end := timePtr(baseNow.AddDate(0, 0, 5))

	assert.True(t, catalog.IsOnSale(start, end, baseNow))

	// Both boundaries are inclusive.
	assert.True(t, catalog.IsOnSale(timePtr(baseNow), end, baseNow))
	assert.True(t, catalog.IsOnSale(start, timePtr(baseNow), baseNow))

	// A missing bound means no sale, ever.
	assert.False(t, catalog.IsOnSale(nil, end, baseNow))
	assert.False(t, catalog.IsOnSale(start, nil, baseNow))
	assert.False(t, catalog.IsOnSale(nil, nil, baseNow))

	// Past and future windows.
	assert.False(t, catalog.IsOnSale(timePtr(baseNow.AddDate(0, 0, -10)), timePtr(baseNow.AddDate(0, 0, -1)), baseNow))
	assert.False(t, catalog.IsOnSale(timePtr(baseNow.AddDate(0, 0, 1)), timePtr(baseNow.AddDate(0, 0, 10)), baseNow))
}

func TestDiscountPercentage(t *testing.T) {
	assert.Equal(t, 30, catalog.DiscountPercentage(170000, 119000))
	assert.Equal(t, 50, catalog.DiscountPercentage(200, 100))
	assert.Equal(t, 0, catalog.DiscountPercentage(0, 100), "zero original price must not divide")
	assert.Equal(t, 0, catalog.DiscountPercentage(100, 100))
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, 119000.0, catalog.DiscountedPrice(170000, 0.3))
	assert.Equal(t, 170000.0, catalog.DiscountedPrice(170000, 0))
}

func TestEnrich(t *testing.T) {
	p := models.Product{
		Price:         119000,
		OriginalPrice: 170000,
		CreatedAt:     baseNow.AddDate(0, 0, -10),
		SaleStart:     timePtr(baseNow.AddDate(0, 0, -1)),
		SaleEnd:       timePtr(baseNow.AddDate(0, 0, 30)),
	}

	catalog.Enrich(&p, baseNow)

	assert.True(t, p.IsNew)
	assert.True(t, p.IsOnSale)
	assert.Equal(t, 30, p.DiscountPercentage)

	// Moving the sale window into the past flips the classification on the
	// next enrichment pass without any explicit deactivation.
	p.SaleEnd = timePtr(baseNow.AddDate(0, 0, -1))
	catalog.Enrich(&p, baseNow)
	assert.False(t, p.IsOnSale)
}
