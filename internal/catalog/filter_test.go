package catalog_test

import (
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:         "wool-slipon",
			Gender:     models.GenderMen,
			Sizes:      []int{260, 265, 270},
			Material:   "wool",
			Functions:  []string{"casual", "lifestyle", "slipon"},
			Model:      "goorumi",
			Categories: []string{"lifestyle", "slipon"},
			CreatedAt:  baseNow.AddDate(0, 0, -5),
			SaleStart:  timePtr(baseNow.AddDate(0, 0, -10)),
			SaleEnd:    timePtr(baseNow.AddDate(0, 0, 10)),
		},
		{
			ID:         "troo-runner",
			Gender:     models.GenderMen,
			Sizes:      []int{280, 290, 300},
			Material:   "troo",
			Functions:  []string{"running", "athleisure"},
			Model:      "runner",
			Categories: []string{"lifestyle"},
			CreatedAt:  baseNow.AddDate(0, -3, 0),
		},
		{
			ID:         "women-dasher",
			Gender:     models.GenderWomen,
			Sizes:      []int{230, 240},
			Material:   "wool",
			Functions:  []string{"walking"},
			Model:      "dasher",
			Categories: nil,
			CreatedAt:  baseNow.AddDate(0, 0, -2),
		},
	}
}

func TestFilterEmptyStateIsIdentity(t *testing.T) {
	products := sampleProducts()
	out := catalog.Filter(products, catalog.FilterState{}, baseNow)
	assert.Equal(t, products, out)
}

func TestFilterIsIdempotent(t *testing.T) {
	products := sampleProducts()
	f := catalog.FilterState{Gender: models.GenderMen, Materials: []string{"wool"}}

	once := catalog.Filter(products, f, baseNow)
	twice := catalog.Filter(once, f, baseNow)
	assert.Equal(t, once, twice)
}

func TestFilterGenderIsSingleValueEquality(t *testing.T) {
	out := catalog.Filter(sampleProducts(), catalog.FilterState{Gender: models.GenderWomen}, baseNow)
	assert.Len(t, out, 1)
	assert.Equal(t, "women-dasher", out[0].ID)
}

func TestFilterAndAcrossDimensionsOrWithin(t *testing.T) {
	// OR within: either material matches everything here.
	f := catalog.FilterState{Materials: []string{"wool", "troo"}}
	assert.Len(t, catalog.Filter(sampleProducts(), f, baseNow), 3)

	// AND across: wool AND runner model matches nothing.
	f = catalog.FilterState{Materials: []string{"wool"}, Models: []string{"runner"}}
	assert.Empty(t, catalog.Filter(sampleProducts(), f, baseNow))

	// Functions are OR'd against the product's own list.
	f = catalog.FilterState{Functions: []string{"running", "walking"}}
	out := catalog.Filter(sampleProducts(), f, baseNow)
	assert.Len(t, out, 2)
}

func TestFilterSizeCoercion(t *testing.T) {
	products := sampleProducts()

	out := catalog.Filter(products, catalog.FilterState{Sizes: []string{"265"}}, baseNow)
	assert.Len(t, out, 1)
	assert.Equal(t, "wool-slipon", out[0].ID)

	// Unparsable size values match nothing instead of erroring.
	out = catalog.Filter(products, catalog.FilterState{Sizes: []string{"not-a-size"}}, baseNow)
	assert.Empty(t, out)

	// One bad value among good ones does not poison the rest.
	out = catalog.Filter(products, catalog.FilterState{Sizes: []string{"??", "290"}}, baseNow)
	assert.Len(t, out, 1)
	assert.Equal(t, "troo-runner", out[0].ID)
}

func TestFilterCategoryRoutesThroughClassification(t *testing.T) {
	products := sampleProducts()

	out := catalog.Filter(products, catalog.FilterState{Categories: []string{catalog.CategoryNew}}, baseNow)
	assert.Len(t, out, 2, "recently created products classify as new")

	out = catalog.Filter(products, catalog.FilterState{Categories: []string{catalog.CategorySale}}, baseNow)
	assert.Len(t, out, 1)
	assert.Equal(t, "wool-slipon", out[0].ID)

	// Ending the sale excludes the product immediately, with no stored flag
	// to deactivate.
	products[0].SaleEnd = timePtr(baseNow.AddDate(0, 0, -1))
	out = catalog.Filter(products, catalog.FilterState{Categories: []string{catalog.CategorySale}}, baseNow)
	assert.Empty(t, out)

	// Literal tags still match by membership.
	out = catalog.Filter(products, catalog.FilterState{Categories: []string{"slipon"}}, baseNow)
	assert.Len(t, out, 1)
	assert.Equal(t, "wool-slipon", out[0].ID)
}

func TestFilterStateToggleAndClear(t *testing.T) {
	f := catalog.NewFilterState()
	assert.Equal(t, models.GenderMen, f.Gender)
	assert.Zero(t, f.ActiveCount())

	f.Toggle(catalog.DimensionSizes, "270")
	f.Toggle(catalog.DimensionMaterials, "wool")
	f.Toggle(catalog.DimensionCategories, catalog.CategorySale)
	assert.Equal(t, 3, f.ActiveCount())

	// Toggling an existing value removes it.
	f.Toggle(catalog.DimensionSizes, "270")
	assert.Equal(t, 2, f.ActiveCount())
	assert.Empty(t, f.Sizes)

	// Unknown dimensions are ignored.
	f.Toggle("colorways", "red")
	assert.Equal(t, 2, f.ActiveCount())

	f.Clear()
	assert.Zero(t, f.ActiveCount())
	assert.Equal(t, models.GenderMen, f.Gender, "clear preserves gender")
}
