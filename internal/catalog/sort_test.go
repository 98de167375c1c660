package catalog_test

import (
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func sortProducts() []models.Product {
	return []models.Product{
		{ID: "a", Price: 1000, DiscountRate: 0.3, SalesCount: 10, AverageRating: 4.5, CreatedAt: baseNow.AddDate(0, 0, -3)},
		{ID: "b", Price: 2000, DiscountRate: 0, SalesCount: 50, AverageRating: 3.0, CreatedAt: baseNow.AddDate(0, 0, -1)},
		{ID: "c", Price: 1500, SalesCount: 0, AverageRating: 5.0, CreatedAt: baseNow.AddDate(0, 0, -2)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSortPriceUsesRawPriceField(t *testing.T) {
	out := catalog.Sort(sortProducts(), catalog.SortPriceLow)
	assert.Equal(t, []string{"a", "c", "b"}, ids(out))
}

func TestSortPriceHighIsReverseOfLowForUniquePrices(t *testing.T) {
	low := catalog.Sort(sortProducts(), catalog.SortPriceLow)
	high := catalog.Sort(sortProducts(), catalog.SortPriceHigh)

	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestSortNewest(t *testing.T) {
	out := catalog.Sort(sortProducts(), catalog.SortNewest)
	assert.Equal(t, []string{"b", "c", "a"}, ids(out))
}

func TestSortSales(t *testing.T) {
	out := catalog.Sort(sortProducts(), catalog.SortSales)
	assert.Equal(t, []string{"b", "a", "c"}, ids(out))
}

func TestSortRecommended(t *testing.T) {
	// Scores with the default blend: a=7+135=142, b=35+90=125, c=0+150=150.
	out := catalog.Sort(sortProducts(), catalog.SortRecommended)
	assert.Equal(t, []string{"c", "a", "b"}, ids(out))

	// The weights are configuration: ranking purely by sales flips the order.
	out = catalog.SortWeighted(sortProducts(), catalog.SortRecommended, catalog.RecommendedWeights{Sales: 1})
	assert.Equal(t, []string{"b", "a", "c"}, ids(out))
}

func TestSortUnknownOptionIsIdentity(t *testing.T) {
	products := sortProducts()
	out := catalog.Sort(products, catalog.SortOption("surprise_me"))
	assert.Equal(t, products, out)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := sortProducts()
	original := ids(products)

	catalog.Sort(products, catalog.SortPriceHigh)
	assert.Equal(t, original, ids(products))
}
