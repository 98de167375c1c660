package catalog

import (
	"sort"

	"storefront/internal/models"
)

// SortOption names a product list ordering.
type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortSales       SortOption = "sales"
	SortPriceLow    SortOption = "price_low"
	SortPriceHigh   SortOption = "price_high"
	SortNewest      SortOption = "newest"
)

// SortLabels maps options to display labels.
var SortLabels = map[SortOption]string{
	SortRecommended: "Recommended",
	SortSales:       "Best sellers",
	SortPriceLow:    "Price: low to high",
	SortPriceHigh:   "Price: high to low",
	SortNewest:      "Newest",
}

// RecommendedWeights configures the recommended-score blend of sales volume
// and average rating. The defaults reproduce the storefront's historical
// ranking; treat them as tunable configuration, not business law.
type RecommendedWeights struct {
	Sales  float64
	Rating float64
}

// DefaultRecommendedWeights is the blend the storefront has always shipped.
var DefaultRecommendedWeights = RecommendedWeights{Sales: 0.7, Rating: 30}

// Score computes the recommendation score for one product. Missing sales
// counts and ratings contribute zero.
func (w RecommendedWeights) Score(p models.Product) float64 {
	return float64(p.SalesCount)*w.Sales + p.AverageRating*w.Rating
}

// Sort returns a copy of products ordered by option using the default
// recommendation weights. The input slice is never mutated. An unrecognized
// option returns the copy unchanged, not an error. Ties keep input order.
func Sort(products []models.Product, option SortOption) []models.Product {
	return SortWeighted(products, option, DefaultRecommendedWeights)
}

// SortWeighted is Sort with explicit recommendation weights.
func SortWeighted(products []models.Product, option SortOption, weights RecommendedWeights) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch option {
	case SortRecommended:
		sort.SliceStable(sorted, func(i, j int) bool {
			return weights.Score(sorted[i]) > weights.Score(sorted[j])
		})
	case SortSales:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SalesCount > sorted[j].SalesCount
		})
	case SortPriceLow:
		// Ordering uses the current price field as-is, not a rederived
		// discounted figure.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}
	return sorted
}
