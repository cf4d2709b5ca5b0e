package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/tipkart/internal/cart"
	"github.com/nikolayk812/tipkart/internal/checkout"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"github.com/nikolayk812/tipkart/internal/session"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

var ErrProductNotFound = errors.New("product not found")

// Session is one shopper's visit: a cart, a placeholder identity and at
// most one checkout in progress. Create it with NewSession and release it
// with Close.
type Session struct {
	Cart     *cart.Store
	Identity *session.Holder

	catalog  port.ProductCatalog
	pricing  port.PricingPolicy
	checkout *checkout.Flow
	logger   *zap.Logger
}

func NewSession(catalog port.ProductCatalog, pricing port.PricingPolicy, unit currency.Unit, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		Cart:     cart.New(cart.WithCurrency(unit), cart.WithLogger(logger.Named("cart"))),
		Identity: session.NewHolder(logger.Named("session")),
		catalog:  catalog,
		pricing:  pricing,
		logger:   logger,
	}
}

// AddToCart looks the product up in the catalog and adds a snapshot of it.
func (s *Session) AddToCart(ctx context.Context, id domain.ProductID, quantity int) error {
	product, found, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.FindByID: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: id[%d]", ErrProductNotFound, id)
	}
	if product.Price.Currency != s.Cart.Currency() {
		return fmt.Errorf("%w: product[%d] is priced in %s, cart is in %s",
			domain.ErrCurrencyMismatch, id, product.Price.Currency, s.Cart.Currency())
	}

	s.Cart.AddItem(product, quantity)
	return nil
}

// Checkout returns the checkout in progress, starting a new one when there
// is none or the previous order was placed.
func (s *Session) Checkout() *checkout.Flow {
	if s.checkout == nil || s.checkout.Step() == checkout.StepPlaced {
		s.checkout = checkout.New(s.Cart, s.pricing, checkout.WithLogger(s.logger.Named("checkout")))
	}
	return s.checkout
}

// Summary prices the current cart.
func (s *Session) Summary() domain.PriceSummary {
	return s.pricing.Summarize(s.Cart.TotalPrice())
}

func (s *Session) Close() {
	s.Cart.Close()
	s.Identity.Logout()
	s.checkout = nil
}
