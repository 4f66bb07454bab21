// internal/domain/catalog/filter.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortFeatured     SortKey = "featured" // preserve input order
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortDiscountDesc SortKey = "discount-desc"
	SortRatingDesc   SortKey = "rating-desc"
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortNewest       SortKey = "newest" // creation time, most recent first
)

// PriceRange bounds product prices in minor units, inclusive on both ends.
// A bound of zero or less means unbounded on that side.
type PriceRange struct {
	Min Cents `json:"min"`
	Max Cents `json:"max"`
}

// Criteria is the set of user-selected constraints applied to the catalog.
// The zero value matches everything: an empty string, empty set or zero range
// ignores that predicate. Criteria are ephemeral UI state and never persisted.
type Criteria struct {
	SearchQuery    string
	PriceRange     PriceRange
	Categories     []string
	Brands         []string
	DiscountedOnly bool
	SortKey        SortKey
}

// Apply runs the filter/sort pipeline: predicates are ANDed, then the result
// is ordered by the sort key. Pure function over its inputs; the input slice
// is never modified and same inputs always produce the same ordered output.
func Apply(products []Product, criteria Criteria) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, criteria) {
			result = append(result, p)
		}
	}
	sortProducts(result, criteria.SortKey)
	return result
}

func matches(p Product, c Criteria) bool {
	if q := strings.TrimSpace(c.SearchQuery); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	if c.PriceRange.Min > 0 && p.Price < c.PriceRange.Min {
		return false
	}
	if c.PriceRange.Max > 0 && p.Price > c.PriceRange.Max {
		return false
	}

	if len(c.Categories) > 0 && !containsString(c.Categories, p.CategoryID) {
		return false
	}
	if len(c.Brands) > 0 && !containsString(c.Brands, p.BrandID) {
		return false
	}

	if c.DiscountedOnly && p.Discount <= 0 {
		return false
	}

	return true
}

// sortProducts orders in place. Every branch uses a stable sort so products
// with equal keys keep their relative input order.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortDiscountDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Discount > products[j].Discount
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNameAsc:
		collator := newTitleCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Title, products[j].Title) < 0
		})
	case SortNameDesc:
		collator := newTitleCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Title, products[j].Title) > 0
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default:
		// SortFeatured and unknown keys keep the input order.
	}
}

// newTitleCollator builds a locale-aware comparator for product titles.
// Collators carry internal buffers, so each sort gets its own.
func newTitleCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// CountByCategory tallies products per category id for the filter sidebar
func CountByCategory(products []Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		if p.CategoryID != "" {
			counts[p.CategoryID]++
		}
	}
	return counts
}

// PriceBounds returns the lowest and highest price in the list, for seeding
// the price-range slider. Both zero when the list is empty.
func PriceBounds(products []Product) (min, max Cents) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// Paginate slices one page out of the list. Pages are 1-based; out-of-range
// pages yield an empty slice rather than an error.
func Paginate(products []Product, page, perPage int) []Product {
	if page < 1 || perPage < 1 {
		return []Product{}
	}
	start := (page - 1) * perPage
	if start >= len(products) {
		return []Product{}
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
