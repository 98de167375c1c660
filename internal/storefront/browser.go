package storefront

import (
	"context"
	"sync"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

// fetchLimit caps one backend page. The browser filters and sorts locally
// so toggling a dimension or changing the sort never refetches.
const fetchLimit = 200

// Browser holds the product grid state: the fetched catalog page, the
// active filter, and the sort order. Filtering and sorting run locally
// over the fetched set, mirroring how the grid behaves in the UI.
type Browser struct {
	api ProductAPI
	now func() time.Time

	mu       sync.Mutex
	fetched  []models.Product
	filter   catalog.FilterState
	sortBy   catalog.SortOption
	weights  catalog.RecommendedWeights
}

// NewBrowser creates a Browser with the default filter (men's view) and
// recommended sort.
func NewBrowser(api ProductAPI) *Browser {
	return &Browser{
		api:     api,
		now:     time.Now,
		filter:  catalog.NewFilterState(),
		sortBy:  catalog.SortRecommended,
		weights: catalog.DefaultRecommendedWeights,
	}
}

// Fetch loads the catalog for the current gender. Only the gender is
// pushed to the backend; the remaining dimensions narrow locally.
func (b *Browser) Fetch(ctx context.Context) error {
	b.mu.Lock()
	gender := b.filter.Gender
	b.mu.Unlock()

	list, err := b.api.ListProducts(ctx, catalog.FilterState{Gender: gender}, 1, fetchLimit)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.fetched = list.Items
	b.mu.Unlock()
	return nil
}

// Products returns the fetched set narrowed by the active filter and
// ordered by the active sort.
func (b *Browser) Products() []models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()

	matched := catalog.Filter(b.fetched, b.filter, b.now())
	return catalog.SortWeighted(matched, b.sortBy, b.weights)
}

// Filter returns a copy of the active filter state.
func (b *Browser) Filter() catalog.FilterState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// SetGender switches the gender view. The caller should Fetch afterwards
// since gender is the one dimension resolved by the backend.
func (b *Browser) SetGender(gender string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Gender = gender
}

// Toggle flips one filter value on or off. Unknown dimensions are ignored.
func (b *Browser) Toggle(dimension, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Toggle(dimension, value)
}

// ClearFilters resets every dimension except the gender view.
func (b *Browser) ClearFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Clear()
}

// ActiveFilterCount returns the number of selected values across
// dimensions, for the filter badge.
func (b *Browser) ActiveFilterCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter.ActiveCount()
}

// SortBy sets the active sort order. Unknown options leave the listing
// in fetch order.
func (b *Browser) SortBy(option catalog.SortOption) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sortBy = option
}
