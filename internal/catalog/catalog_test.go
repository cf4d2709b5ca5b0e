package catalog_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		products  []domain.Product
		wantError string
	}{
		{
			name:     "valid products: ok",
			products: []domain.Product{randomProduct(1, "Books"), randomProduct(2, "Toys")},
		},
		{
			name:     "empty catalog: ok",
			products: nil,
		},
		{
			name:      "duplicate id: error",
			products:  []domain.Product{randomProduct(1, "Books"), randomProduct(1, "Toys")},
			wantError: "product id[1] is duplicated",
		},
		{
			name: "zero id: error",
			products: []domain.Product{
				randomProduct(0, "Books"),
			},
			wantError: "p.Validate: product id[0] is not positive",
		},
		{
			name: "empty name: error",
			products: []domain.Product{
				func() domain.Product {
					p := randomProduct(3, "Books")
					p.Name = " "
					return p
				}(),
			},
			wantError: "p.Validate: product[3]: name is empty",
		},
		{
			name: "negative price: error",
			products: []domain.Product{
				func() domain.Product {
					p := randomProduct(4, "Books")
					p.Price.Amount = decimal.NewFromInt(-1)
					return p
				}(),
			},
			wantError: "p.Validate: product[4]: price[-1] is negative",
		},
		{
			name: "original price below price: error",
			products: []domain.Product{
				func() domain.Product {
					p := randomProduct(5, "Books")
					p.Price = domain.NewMoney(100, currency.INR)
					p.OriginalPrice = &domain.Money{Amount: decimal.NewFromInt(50), Currency: currency.INR}
					return p
				}(),
			},
			wantError: "p.Validate: product[5]: original price[50] is below price[100]",
		},
		{
			name: "discount out of range: error",
			products: []domain.Product{
				func() domain.Product {
					p := randomProduct(6, "Books")
					p.Discount = 101
					return p
				}(),
			},
			wantError: "p.Validate: product[6]: discount[101] is out of range",
		},
		{
			name: "rating out of range: error",
			products: []domain.Product{
				func() domain.Product {
					p := randomProduct(7, "Books")
					p.Rating = 5.5
					return p
				}(),
			},
			wantError: "p.Validate: product[7]: rating[5.5] is out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.New(tt.products)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			products, err := c.List(t.Context())
			require.NoError(t, err)
			assert.Len(t, products, len(tt.products))
		})
	}
}

func TestCatalog_FindByID(t *testing.T) {
	p := randomProduct(42, "Electronics")
	c, err := catalog.New([]domain.Product{randomProduct(1, "Books"), p})
	require.NoError(t, err)

	got, ok, err := c.FindByID(t.Context(), 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(p, got, currencyComparer()))

	_, ok, err = c.FindByID(t.Context(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalog_FilterByCategory(t *testing.T) {
	c, err := catalog.New([]domain.Product{
		randomProduct(1, "Home & Kitchen"),
		randomProduct(2, "Books"),
		randomProduct(3, "Home & Kitchen"),
		randomProduct(4, "Electronics"),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		slug    string
		wantIDs []domain.ProductID
	}{
		{name: "slug with ampersand", slug: "home-kitchen", wantIDs: []domain.ProductID{1, 3}},
		{name: "category name", slug: "Home & Kitchen", wantIDs: []domain.ProductID{1, 3}},
		{name: "upper case slug", slug: "BOOKS", wantIDs: []domain.ProductID{2}},
		{name: "unknown category", slug: "garden", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := c.FilterByCategory(t.Context(), tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(products))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Electronics":    "electronics",
		"Home & Kitchen": "home-kitchen",
		"  Sports  ":     "sports",
		"Baby Care Kits": "baby-care-kits",
	}

	for in, want := range tests {
		assert.Equal(t, want, catalog.Slug(in), in)
	}
}

func ids(products []domain.Product) []domain.ProductID {
	var result []domain.ProductID
	for _, p := range products {
		result = append(result, p.ID)
	}
	return result
}

func randomProduct(id domain.ProductID, category string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        gofakeit.ProductName(),
		Image:       gofakeit.URL(),
		Category:    category,
		Description: gofakeit.ProductDescription(),
		Price:       domain.Money{Amount: decimal.NewFromInt(int64(gofakeit.IntRange(1, 10_000))), Currency: currency.INR},
		Rating:      float64(gofakeit.IntRange(0, 50)) / 10,
		Reviews:     gofakeit.IntRange(0, 5000),
	}
}

func currencyComparer() cmp.Option {
	return cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
}
