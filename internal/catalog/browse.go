package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortName      SortOrder = "name"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterSale      Filter = "sale"
	FilterHighRated Filter = "high-rated"
)

const highRating = 4.0

// Query describes one listing page. Search takes precedence over Category.
type Query struct {
	Category string
	Search   string
	Sort     SortOrder
	Filter   Filter
}

func (q Query) Validate() error {
	switch q.Sort {
	case "", SortName, SortPriceLow, SortPriceHigh, SortRating:
	default:
		return fmt.Errorf("sort[%s] is not supported", q.Sort)
	}

	switch q.Filter {
	case "", FilterAll, FilterSale, FilterHighRated:
	default:
		return fmt.Errorf("filter[%s] is not supported", q.Filter)
	}

	return nil
}

// Browse selects, sorts and filters products the way the category page does.
func Browse(ctx context.Context, src port.ProductCatalog, q Query) ([]domain.Product, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("q.Validate: %w", err)
	}

	products, err := selectProducts(ctx, src, q)
	if err != nil {
		return nil, fmt.Errorf("selectProducts: %w", err)
	}

	sortProducts(products, q.Sort)

	return slices.DeleteFunc(products, func(p domain.Product) bool {
		return !matchesFilter(p, q.Filter)
	}), nil
}

// FeaturedCount is how many products the home page features.
const FeaturedCount = 8

// Featured returns the first n products of the catalog. A negative n
// counts as zero.
func Featured(ctx context.Context, src port.ProductCatalog, n int) ([]domain.Product, error) {
	products, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("src.List: %w", err)
	}

	n = max(n, 0)
	if n < len(products) {
		products = products[:n]
	}
	return products, nil
}

func selectProducts(ctx context.Context, src port.ProductCatalog, q Query) ([]domain.Product, error) {
	switch {
	case q.Search != "":
		all, err := src.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("src.List: %w", err)
		}

		needle := strings.ToLower(strings.TrimSpace(q.Search))
		return slices.DeleteFunc(all, func(p domain.Product) bool {
			return !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Category), needle)
		}), nil
	case q.Category != "":
		return src.FilterByCategory(ctx, q.Category)
	default:
		return src.List(ctx)
	}
}

func sortProducts(products []domain.Product, order SortOrder) {
	switch order {
	case SortPriceLow:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return a.Price.Amount.Cmp(b.Price.Amount)
		})
	case SortPriceHigh:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return b.Price.Amount.Cmp(a.Price.Amount)
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	default:
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
}

func matchesFilter(p domain.Product, f Filter) bool {
	switch f {
	case FilterSale:
		return p.OnSale()
	case FilterHighRated:
		return p.Rating >= highRating
	default:
		return true
	}
}
