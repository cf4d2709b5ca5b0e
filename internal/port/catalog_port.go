package port

import (
	"context"

	"github.com/nikolayk812/tipkart/internal/domain"
)

type ProductCatalog interface {
	FindByID(ctx context.Context, id domain.ProductID) (domain.Product, bool, error)
	FilterByCategory(ctx context.Context, slug string) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
