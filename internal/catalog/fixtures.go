package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProducts []byte

type catalogFile struct {
	Currency string          `yaml:"currency"`
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	ID            int64   `yaml:"id"`
	Name          string  `yaml:"name"`
	Category      string  `yaml:"category"`
	Price         string  `yaml:"price"`
	OriginalPrice string  `yaml:"original_price"`
	Discount      int     `yaml:"discount"`
	Rating        float64 `yaml:"rating"`
	Reviews       int     `yaml:"reviews"`
	Image         string  `yaml:"image"`
	Description   string  `yaml:"description"`
}

// Default returns the catalog built from the embedded mock products.
func Default() (port.ProductCatalog, error) {
	products, err := DefaultProducts()
	if err != nil {
		return nil, fmt.Errorf("DefaultProducts: %w", err)
	}

	return New(products)
}

func DefaultProducts() ([]domain.Product, error) {
	return LoadYAML(bytes.NewReader(defaultProducts))
}

// LoadYAML decodes a catalog file. Records are mapped but not validated;
// validation happens when the catalog is built or seeded.
func LoadYAML(r io.Reader) ([]domain.Product, error) {
	var file catalogFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("dec.Decode: %w", err)
	}

	unit, err := currency.ParseISO(file.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", file.Currency, err)
	}

	products := make([]domain.Product, 0, len(file.Products))
	for _, record := range file.Products {
		p, err := mapRecordToDomain(record, unit)
		if err != nil {
			return nil, fmt.Errorf("mapRecordToDomain: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func mapRecordToDomain(record productRecord, unit currency.Unit) (domain.Product, error) {
	price, err := decimal.NewFromString(record.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%d]: price[%s] is not valid: %w", record.ID, record.Price, err)
	}

	p := domain.Product{
		ID:          domain.ProductID(record.ID),
		Name:        record.Name,
		Image:       record.Image,
		Category:    record.Category,
		Description: record.Description,
		Price:       domain.Money{Amount: price, Currency: unit},
		Discount:    record.Discount,
		Rating:      record.Rating,
		Reviews:     record.Reviews,
	}

	if record.OriginalPrice != "" {
		original, err := decimal.NewFromString(record.OriginalPrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("product[%d]: original price[%s] is not valid: %w",
				record.ID, record.OriginalPrice, err)
		}
		p.OriginalPrice = &domain.Money{Amount: original, Currency: unit}
	}

	return p, nil
}
