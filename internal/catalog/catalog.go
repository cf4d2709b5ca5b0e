package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
)

type memoryCatalog struct {
	products []domain.Product
	byID     map[domain.ProductID]int
}

// New builds a read-only catalog. Every product is validated and ids must
// be unique.
func New(products []domain.Product) (port.ProductCatalog, error) {
	c := &memoryCatalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[domain.ProductID]int, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("p.Validate: %w", err)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("product id[%d] is duplicated", p.ID)
		}

		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

func (c *memoryCatalog) FindByID(_ context.Context, id domain.ProductID) (domain.Product, bool, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false, nil
	}
	return c.products[i], true, nil
}

func (c *memoryCatalog) FilterByCategory(_ context.Context, slug string) ([]domain.Product, error) {
	want := Slug(slug)

	var result []domain.Product
	for _, p := range c.products {
		if Slug(p.Category) == want {
			result = append(result, p)
		}
	}
	return result, nil
}

func (c *memoryCatalog) List(_ context.Context) ([]domain.Product, error) {
	return slices.Clone(c.products), nil
}
