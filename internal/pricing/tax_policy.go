package pricing

import (
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"github.com/shopspring/decimal"
)

var DefaultTaxRate = decimal.RequireFromString("0.18")

// TaxPolicy adds a flat tax rate and a fixed shipping fee to a subtotal.
// Tax is rounded half away from zero to Places decimal places.
type TaxPolicy struct {
	Rate     decimal.Decimal
	Shipping decimal.Decimal
	Places   int32
}

func NewTaxPolicy(rate decimal.Decimal) port.PricingPolicy {
	return TaxPolicy{Rate: rate}
}

func Default() port.PricingPolicy {
	return NewTaxPolicy(DefaultTaxRate)
}

func (p TaxPolicy) Summarize(subtotal domain.Money) domain.PriceSummary {
	tax := domain.Money{Amount: subtotal.Amount.Mul(p.Rate), Currency: subtotal.Currency}.Round(p.Places)
	shipping := domain.Money{Amount: p.Shipping, Currency: subtotal.Currency}

	return domain.PriceSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    domain.Money{Amount: subtotal.Amount.Add(tax.Amount).Add(shipping.Amount), Currency: subtotal.Currency},
	}
}
