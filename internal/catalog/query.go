package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

type SortOrder string

const (
	SortRating    SortOrder = "rating"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
)

// AllCategories disables the category filter.
const AllCategories = "All"

// Query mirrors the shop page controls: a category tab, a search box over
// name and brand, and a sort selector.
type Query struct {
	Category string
	Search   string
	Sort     SortOrder
}

func (q Query) Validate() error {
	switch q.Sort {
	case "", SortRating, SortPriceLow, SortPriceHigh:
	default:
		return ErrInvalidSort
	}

	if q.Category != "" && q.Category != AllCategories {
		if _, ok := domain.ParseCategory(q.Category); !ok {
			return ErrInvalidCategory
		}
	}
	return nil
}

// Apply filters and sorts products. The sort is stable so equal keys keep
// catalog order.
func (q Query) Apply(products []domain.Product) []domain.Product {
	category, filterCategory := domain.ParseCategory(q.Category)
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filterCategory && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}

	return out
}
