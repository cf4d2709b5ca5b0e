package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/db"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(conn *sql.DB) port.ProductCatalog {
	return &catalogRepository{
		q: db.New(conn),
	}
}

func (r *catalogRepository) FindByID(ctx context.Context, id domain.ProductID) (domain.Product, bool, error) {
	row, err := r.q.GetProduct(ctx, int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, true, nil
}

func (r *catalogRepository) FilterByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is empty")
	}

	rows, err := r.q.ListProductsByCategory(ctx, catalog.Slug(slug))
	if err != nil {
		return nil, fmt.Errorf("q.ListProductsByCategory: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

// SeedCatalog validates products and upserts all of them in one transaction.
func SeedCatalog(ctx context.Context, conn *sql.DB, products []domain.Product) (int, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("p.Validate: %w", err)
		}
	}

	return withTx(ctx, conn, db.New(conn), func(q *db.Queries) (int, error) {
		for _, p := range products {
			if err := q.UpsertProduct(ctx, mapDomainToUpsertParams(p)); err != nil {
				return 0, fmt.Errorf("q.UpsertProduct[%d]: %w", p.ID, err)
			}
		}
		return len(products), nil
	})
}

func mapDomainToUpsertParams(p domain.Product) db.UpsertProductParams {
	params := db.UpsertProductParams{
		ID:            int64(p.ID),
		Name:          p.Name,
		Category:      p.Category,
		CategorySlug:  catalog.Slug(p.Category),
		PriceAmount:   p.Price.Amount.String(),
		PriceCurrency: p.Price.Currency.String(),
		Discount:      int64(p.Discount),
		Rating:        p.Rating,
		Reviews:       int64(p.Reviews),
		Image:         p.Image,
		Description:   p.Description,
	}

	if p.OriginalPrice != nil {
		params.OriginalPriceAmount = sql.NullString{String: p.OriginalPrice.Amount.String(), Valid: true}
	}

	return params
}

func mapProductRowToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	price, err := decimal.NewFromString(row.PriceAmount)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", row.PriceAmount, err)
	}

	product := domain.Product{
		ID:          domain.ProductID(row.ID),
		Name:        row.Name,
		Image:       row.Image,
		Category:    row.Category,
		Description: row.Description,
		Price:       domain.Money{Amount: price, Currency: parsedCurrency},
		Discount:    int(row.Discount),
		Rating:      row.Rating,
		Reviews:     int(row.Reviews),
	}

	if row.OriginalPriceAmount.Valid {
		original, err := decimal.NewFromString(row.OriginalPriceAmount.String)
		if err != nil {
			return domain.Product{}, fmt.Errorf("original price[%s] is not valid: %w", row.OriginalPriceAmount.String, err)
		}
		product.OriginalPrice = &domain.Money{Amount: original, Currency: parsedCurrency}
	}

	return product, nil
}

func mapProductRowsToDomain(rows []db.Product) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
