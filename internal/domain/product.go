package domain

import (
	"fmt"
	"strings"
)

type ProductID int64

type Product struct {
	ID            ProductID
	Name          string
	Image         string
	Category      string
	Description   string
	Price         Money
	OriginalPrice *Money
	Discount      int
	Rating        float64
	Reviews       int
}

const maxRating = 5.0

func (p Product) OnSale() bool {
	return p.Discount > 0
}

// Savings is the difference to the original price, zero when there is none.
func (p Product) Savings() Money {
	if p.OriginalPrice == nil {
		return ZeroMoney(p.Price.Currency)
	}
	return Money{Amount: p.OriginalPrice.Amount.Sub(p.Price.Amount), Currency: p.Price.Currency}
}

// Validate checks the fields a cart line and the catalog pages rely on.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id[%d] is not positive", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product[%d]: name is empty", p.ID)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("product[%d]: category is empty", p.ID)
	}
	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("product[%d]: price[%s] is negative", p.ID, p.Price.Amount)
	}
	if p.OriginalPrice != nil {
		if p.OriginalPrice.Currency != p.Price.Currency {
			return fmt.Errorf("product[%d]: original price currency[%s] differs from price currency[%s]",
				p.ID, p.OriginalPrice.Currency, p.Price.Currency)
		}
		if p.OriginalPrice.Amount.LessThan(p.Price.Amount) {
			return fmt.Errorf("product[%d]: original price[%s] is below price[%s]",
				p.ID, p.OriginalPrice.Amount, p.Price.Amount)
		}
	}
	if p.Discount < 0 || p.Discount > 100 {
		return fmt.Errorf("product[%d]: discount[%d] is out of range", p.ID, p.Discount)
	}
	if p.Rating < 0 || p.Rating > maxRating {
		return fmt.Errorf("product[%d]: rating[%g] is out of range", p.ID, p.Rating)
	}
	if p.Reviews < 0 {
		return fmt.Errorf("product[%d]: reviews[%d] is negative", p.ID, p.Reviews)
	}

	return nil
}
