package port

import "github.com/nikolayk812/tipkart/internal/domain"

// Cart is the part of the cart store the checkout flow depends on.
type Cart interface {
	Snapshot() domain.Cart
	Clear()
}
