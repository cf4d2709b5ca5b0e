package db

import (
	"database/sql"
)

type Product struct {
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
