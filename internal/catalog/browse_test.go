package catalog_test

import (
	"testing"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	tests := []struct {
		name      string
		query     catalog.Query
		wantIDs   []domain.ProductID
		wantError string
	}{
		{
			name:    "category sorted by name: ok",
			query:   catalog.Query{Category: "books"},
			wantIDs: []domain.ProductID{8, 7},
		},
		{
			name:    "category sorted by price low: ok",
			query:   catalog.Query{Category: "electronics", Sort: catalog.SortPriceLow},
			wantIDs: []domain.ProductID{1, 2},
		},
		{
			name:    "category sorted by price high: ok",
			query:   catalog.Query{Category: "home-kitchen", Sort: catalog.SortPriceHigh},
			wantIDs: []domain.ProductID{5, 6},
		},
		{
			name:    "category sorted by rating: ok",
			query:   catalog.Query{Category: "books", Sort: catalog.SortRating},
			wantIDs: []domain.ProductID{7, 8},
		},
		{
			name:    "sale filter: ok",
			query:   catalog.Query{Category: "home-kitchen", Filter: catalog.FilterSale},
			wantIDs: []domain.ProductID{5},
		},
		{
			name:    "high rated filter: ok",
			query:   catalog.Query{Category: "books", Filter: catalog.FilterHighRated},
			wantIDs: []domain.ProductID{7},
		},
		{
			name:    "search by name: ok",
			query:   catalog.Query{Search: "MUG"},
			wantIDs: []domain.ProductID{6},
		},
		{
			name:    "search by category: ok",
			query:   catalog.Query{Search: "books", Sort: catalog.SortRating},
			wantIDs: []domain.ProductID{7, 8},
		},
		{
			name:    "search wins over category: ok",
			query:   catalog.Query{Category: "toys", Search: "yoga"},
			wantIDs: []domain.ProductID{9},
		},
		{
			name:    "unknown category: empty",
			query:   catalog.Query{Category: "garden"},
			wantIDs: nil,
		},
		{
			name:      "unknown sort: error",
			query:     catalog.Query{Sort: "popularity"},
			wantError: "q.Validate: sort[popularity] is not supported",
		},
		{
			name:      "unknown filter: error",
			query:     catalog.Query{Filter: "new"},
			wantError: "q.Validate: filter[new] is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := catalog.Browse(t.Context(), c, tt.query)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(products))
		})
	}
}

func TestBrowse_allProductsSortedByName(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	products, err := catalog.Browse(t.Context(), c, catalog.Query{})
	require.NoError(t, err)
	require.Len(t, products, 16)

	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Name[0]|0x20, products[i].Name[0]|0x20)
	}
}

func TestFeatured(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	products, err := catalog.Featured(t.Context(), c, 8)
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductID{1, 2, 3, 4, 5, 6, 7, 8}, ids(products))

	products, err = catalog.Featured(t.Context(), c, 100)
	require.NoError(t, err)
	assert.Len(t, products, 16)

	products, err = catalog.Featured(t.Context(), c, 0)
	require.NoError(t, err)
	assert.Empty(t, products)

	products, err = catalog.Featured(t.Context(), c, -1)
	require.NoError(t, err)
	assert.Empty(t, products)
}
