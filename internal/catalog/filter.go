package catalog

import (
	"strconv"
	"strings"
	"time"

	"storefront/internal/models"
)

// Category values resolved by classification instead of stored membership.
const (
	CategoryNew  = "new"
	CategorySale = "sale"
)

// Filter dimension names accepted by Toggle.
const (
	DimensionSizes      = "sizes"
	DimensionMaterials  = "materials"
	DimensionFunctions  = "functions"
	DimensionModels     = "models"
	DimensionCategories = "categories"
)

// FilterState mirrors the storefront's filter panel: one single-valued gender
// dimension plus multi-valued dimensions. A product must satisfy every
// non-empty dimension, and at least one value within each.
type FilterState struct {
	Gender     string
	Sizes      []string
	Materials  []string
	Functions  []string
	Models     []string
	Categories []string
}

// NewFilterState returns the panel's defaults: men's catalog, nothing else.
func NewFilterState() FilterState {
	return FilterState{Gender: models.GenderMen}
}

// Toggle adds the value to the named dimension if absent, removes it if
// present. Unknown dimension names are ignored.
func (f *FilterState) Toggle(dimension, value string) {
	target := f.dimension(dimension)
	if target == nil {
		return
	}
	*target = toggleValue(*target, value)
}

// Clear empties every multi-valued dimension but keeps the gender.
func (f *FilterState) Clear() {
	f.Sizes = nil
	f.Materials = nil
	f.Functions = nil
	f.Models = nil
	f.Categories = nil
}

// ActiveCount counts selected values across all dimensions except gender.
func (f FilterState) ActiveCount() int {
	return len(f.Sizes) + len(f.Materials) + len(f.Functions) + len(f.Models) + len(f.Categories)
}

// Empty reports whether no dimension constrains the catalog, gender included.
func (f FilterState) Empty() bool {
	return f.Gender == "" && f.ActiveCount() == 0
}

func (f *FilterState) dimension(name string) *[]string {
	switch name {
	case DimensionSizes:
		return &f.Sizes
	case DimensionMaterials:
		return &f.Materials
	case DimensionFunctions:
		return &f.Functions
	case DimensionModels:
		return &f.Models
	case DimensionCategories:
		return &f.Categories
	}
	return nil
}

func toggleValue(values []string, value string) []string {
	for i, v := range values {
		if v == value {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

// Matches decides inclusion of a product under the filter state: AND across
// non-empty dimensions, OR within a dimension. An empty dimension imposes no
// constraint.
func Matches(p models.Product, f FilterState, now time.Time) bool {
	if f.Gender != "" && p.Gender != f.Gender {
		return false
	}
	if len(f.Sizes) > 0 && !matchesSize(p, f.Sizes) {
		return false
	}
	if len(f.Materials) > 0 && !containsValue(f.Materials, p.Material) {
		return false
	}
	if len(f.Functions) > 0 && !intersects(p.Functions, f.Functions) {
		return false
	}
	if len(f.Models) > 0 && !containsValue(f.Models, p.Model) {
		return false
	}
	if len(f.Categories) > 0 && !matchesCategory(p, f.Categories, now) {
		return false
	}
	return true
}

// Filter returns the products matching f, preserving input order.
func Filter(products []models.Product, f FilterState, now time.Time) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f, now) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchesSize coerces the UI's string sizes to the numeric representation
// once. Values that do not parse match nothing; a sizing mismatch excludes
// the product rather than erroring.
func matchesSize(p models.Product, wanted []string) bool {
	for _, w := range wanted {
		size, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			continue
		}
		if p.HasSize(size) {
			return true
		}
	}
	return false
}

// matchesCategory routes "new" and "sale" through the classification rules,
// never through a stored flag; anything else is literal tag membership.
func matchesCategory(p models.Product, categories []string, now time.Time) bool {
	for _, category := range categories {
		switch category {
		case CategoryNew:
			if IsNew(p.CreatedAt, now) {
				return true
			}
		case CategorySale:
			if IsOnSale(p.SaleStart, p.SaleEnd, now) {
				return true
			}
		default:
			if containsValue(p.Categories, category) {
				return true
			}
		}
	}
	return false
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(have, wanted []string) bool {
	for _, w := range wanted {
		if containsValue(have, w) {
			return true
		}
	}
	return false
}
