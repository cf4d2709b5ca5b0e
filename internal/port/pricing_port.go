package port

import "github.com/nikolayk812/tipkart/internal/domain"

type PricingPolicy interface {
	Summarize(subtotal domain.Money) domain.PriceSummary
}
