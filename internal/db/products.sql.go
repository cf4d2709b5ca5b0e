// Queries mirror internal/db/queries/products.sql; keep the two in step.

package db

import (
	"context"
	"database/sql"
)

const getProduct = `-- name: GetProduct :one
SELECT id, name, category, category_slug, price_amount, price_currency, original_price_amount,
       discount, rating, reviews, image, description
FROM products
WHERE id = ?
`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Category,
		&i.CategorySlug,
		&i.PriceAmount,
		&i.PriceCurrency,
		&i.OriginalPriceAmount,
		&i.Discount,
		&i.Rating,
		&i.Reviews,
		&i.Image,
		&i.Description,
	)
	return i, err
}

const listProducts = `-- name: ListProducts :many
SELECT id, name, category, category_slug, price_amount, price_currency, original_price_amount,
       discount, rating, reviews, image, description
FROM products
ORDER BY id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Category,
			&i.CategorySlug,
			&i.PriceAmount,
			&i.PriceCurrency,
			&i.OriginalPriceAmount,
			&i.Discount,
			&i.Rating,
			&i.Reviews,
			&i.Image,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listProductsByCategory = `-- name: ListProductsByCategory :many
SELECT id, name, category, category_slug, price_amount, price_currency, original_price_amount,
       discount, rating, reviews, image, description
FROM products
WHERE category_slug = ?
ORDER BY id
`

func (q *Queries) ListProductsByCategory(ctx context.Context, categorySlug string) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProductsByCategory, categorySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Category,
			&i.CategorySlug,
			&i.PriceAmount,
			&i.PriceCurrency,
			&i.OriginalPriceAmount,
			&i.Discount,
			&i.Rating,
			&i.Reviews,
			&i.Image,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertProduct = `-- name: UpsertProduct :exec
INSERT INTO products (id, name, category, category_slug, price_amount, price_currency, original_price_amount,
                      discount, rating, reviews, image, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET name                  = excluded.name,
                               category              = excluded.category,
                               category_slug         = excluded.category_slug,
                               price_amount          = excluded.price_amount,
                               price_currency        = excluded.price_currency,
                               original_price_amount = excluded.original_price_amount,
                               discount              = excluded.discount,
                               rating                = excluded.rating,
                               reviews               = excluded.reviews,
                               image                 = excluded.image,
                               description           = excluded.description
`

type UpsertProductParams struct {
	ID                  int64
	Name                string
	Category            string
	CategorySlug        string
	PriceAmount         string
	PriceCurrency       string
	OriginalPriceAmount sql.NullString
	Discount            int64
	Rating              float64
	Reviews             int64
	Image               string
	Description         string
}

func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) error {
	_, err := q.db.ExecContext(ctx, upsertProduct,
		arg.ID,
		arg.Name,
		arg.Category,
		arg.CategorySlug,
		arg.PriceAmount,
		arg.PriceCurrency,
		arg.OriginalPriceAmount,
		arg.Discount,
		arg.Rating,
		arg.Reviews,
		arg.Image,
		arg.Description,
	)
	return err
}
