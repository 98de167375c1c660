package storefront_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/client"
	"storefront/internal/models"
	"storefront/internal/storefront"

	"github.com/stretchr/testify/assert"
)

// fakeProductAPI serves a fixed catalog and records the filters it was
// asked for.
type fakeProductAPI struct {
	items      []models.Product
	lastFilter catalog.FilterState
	calls      int
}

func (f *fakeProductAPI) ListProducts(_ context.Context, filter catalog.FilterState, page, limit int) (*client.ProductList, error) {
	f.calls++
	f.lastFilter = filter
	matched := catalog.Filter(f.items, catalog.FilterState{Gender: filter.Gender}, time.Now())
	catalog.EnrichAll(matched, time.Now())
	return &client.ProductList{Items: matched, TotalCount: len(matched)}, nil
}

func (f *fakeProductAPI) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeProductAPI) PopularProducts(_ context.Context, offset, limit int) ([]models.Product, error) {
	return f.items, nil
}

func browserCatalog() []models.Product {
	now := time.Now()
	saleStart := now.AddDate(0, 0, -1)
	saleEnd := now.AddDate(0, 0, 1)
	return []models.Product{
		{ID: "m-1", Name: "Runner Classic", Price: 98, Gender: models.GenderMen, Material: "wool",
			Sizes: []int{270, 280}, SalesCount: 4000, AverageRating: 4.6, CreatedAt: now.AddDate(0, -6, 0)},
		{ID: "m-2", Name: "Dasher Tempo", Price: 108, OriginalPrice: 135, Gender: models.GenderMen,
			Material: "troo", Sizes: []int{280, 290}, SalesCount: 2100, AverageRating: 4.3,
			SaleStart: &saleStart, SaleEnd: &saleEnd, CreatedAt: now.AddDate(0, -3, 0)},
		{ID: "m-3", Name: "Trailer Grip", Price: 148, Gender: models.GenderMen, Material: "troo",
			Sizes: []int{290}, SalesCount: 1300, AverageRating: 4.7, CreatedAt: now.AddDate(0, 0, -5)},
		{ID: "w-1", Name: "Runner Classic W", Price: 98, Gender: models.GenderWomen, Material: "wool",
			Sizes: []int{260, 270}, SalesCount: 3800, AverageRating: 4.5, CreatedAt: now.AddDate(0, -6, 0)},
	}
}

func TestBrowserFetchPushesOnlyGenderDown(t *testing.T) {
	api := &fakeProductAPI{items: browserCatalog()}
	browser := storefront.NewBrowser(api)

	assert.NoError(t, browser.Fetch(context.Background()))
	assert.Equal(t, models.GenderMen, api.lastFilter.Gender)
	assert.Empty(t, api.lastFilter.Sizes)
	assert.Len(t, browser.Products(), 3)
}

func TestBrowserTogglesNarrowLocallyWithoutRefetch(t *testing.T) {
	api := &fakeProductAPI{items: browserCatalog()}
	browser := storefront.NewBrowser(api)
	assert.NoError(t, browser.Fetch(context.Background()))

	browser.Toggle(catalog.DimensionSizes, "280")
	products := browser.Products()
	assert.Len(t, products, 2)
	assert.Equal(t, 1, api.calls)

	// Toggling the same value off restores the full listing.
	browser.Toggle(catalog.DimensionSizes, "280")
	assert.Len(t, browser.Products(), 3)
	assert.Equal(t, 1, api.calls)
}

func TestBrowserSaleCategoryAndSorting(t *testing.T) {
	api := &fakeProductAPI{items: browserCatalog()}
	browser := storefront.NewBrowser(api)
	assert.NoError(t, browser.Fetch(context.Background()))

	browser.Toggle(catalog.DimensionCategories, "sale")
	sale := browser.Products()
	assert.Len(t, sale, 1)
	assert.Equal(t, "m-2", sale[0].ID)

	browser.ClearFilters()
	browser.SortBy(catalog.SortPriceLow)
	products := browser.Products()
	assert.Equal(t, "m-1", products[0].ID)
	assert.Equal(t, "m-3", products[len(products)-1].ID)

	browser.SortBy(catalog.SortPriceHigh)
	products = browser.Products()
	assert.Equal(t, "m-3", products[0].ID)
}

func TestBrowserClearKeepsGender(t *testing.T) {
	api := &fakeProductAPI{items: browserCatalog()}
	browser := storefront.NewBrowser(api)

	browser.SetGender(models.GenderWomen)
	browser.Toggle(catalog.DimensionMaterials, "wool")
	browser.Toggle(catalog.DimensionSizes, "260")
	assert.Equal(t, 2, browser.ActiveFilterCount())

	browser.ClearFilters()
	assert.Equal(t, 0, browser.ActiveFilterCount())
	assert.Equal(t, models.GenderWomen, browser.Filter().Gender)

	assert.NoError(t, browser.Fetch(context.Background()))
	products := browser.Products()
	assert.Len(t, products, 1)
	assert.Equal(t, "w-1", products[0].ID)
}
