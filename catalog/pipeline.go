package catalog

import (
	"sort"
	"strings"

	"github.com/Lounge-Area/fivemshop/models"
)

// Sort keys accepted by Resolve. Anything else falls back to SortName.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// ResolveOptions parameterizes the in-memory filter/sort pipeline.
// Zero values mean "no filter" / default sort.
type ResolveOptions struct {
	CategoryID    string
	SubcategoryID string
	SearchTerm    string
	SortKey       string
}

// Resolve applies the storefront filter/sort pipeline over products.
// Stages run in a fixed order: category equality, subcategory equality,
// case-folded substring search over name/description/tags, then a
// stable sort by the requested key. The input slice is never mutated;
// identical inputs produce identical outputs.
func Resolve(products []models.Product, opts ResolveOptions) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	search := strings.ToLower(opts.SearchTerm)

	for _, p := range products {
		if opts.CategoryID != "" && p.CategoryID != opts.CategoryID {
			continue
		}
		if opts.SubcategoryID != "" && (p.SubcategoryID == nil || *p.SubcategoryID != opts.SubcategoryID) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch opts.SortKey {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	}

	return filtered
}

func matchesSearch(p models.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
