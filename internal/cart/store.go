package cart

import (
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/tipkart/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Store holds the line items of one shopping session.
//
// Every operation runs under a single mutex, so concurrent callers observe
// the same serialized order a UI event loop would produce. Line items are
// unique by product id and always have a quantity of at least one.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartItem
	closed bool

	currency currency.Unit
	now      func() time.Time
	logger   *zap.Logger
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCurrency sets the currency of totals reported for an empty cart.
func WithCurrency(unit currency.Unit) Option {
	return func(s *Store) {
		s.currency = unit
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		currency: currency.INR,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem merges quantity into the line for product, creating the line from
// a snapshot of product when none exists. A quantity below one counts as one.
// Products priced in another currency than the store's are not added.
func (s *Store) AddItem(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ignoreClosed("AddItem") {
		return
	}

	if product.Price.Currency != s.currency {
		s.logger.Warn("product currency differs from cart currency, item ignored",
			zap.Int64("product_id", int64(product.ID)),
			zap.String("product_currency", product.Price.Currency.String()),
			zap.String("cart_currency", s.currency.String()))
		return
	}

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity += quantity
		s.logger.Debug("cart item incremented",
			zap.Int64("product_id", int64(product.ID)),
			zap.Int("quantity", s.items[i].Quantity))
		return
	}

	s.items = append(s.items, domain.NewCartItem(product, quantity, s.now()))
	s.logger.Debug("cart item added",
		zap.Int64("product_id", int64(product.ID)),
		zap.Int("quantity", quantity))
}

func (s *Store) RemoveItem(id domain.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ignoreClosed("RemoveItem") {
		return
	}

	s.remove(id)
}

// UpdateQuantity sets the quantity of an existing line. Zero or below
// removes the line. Unknown ids are ignored.
func (s *Store) UpdateQuantity(id domain.ProductID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ignoreClosed("UpdateQuantity") {
		return
	}

	if quantity <= 0 {
		s.remove(id)
		return
	}

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items[i].Quantity = quantity
	s.logger.Debug("cart item quantity set",
		zap.Int64("product_id", int64(id)),
		zap.Int("quantity", quantity))
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.logger.Debug("cart cleared")
}

// TotalPrice is recomputed from the current lines on every call.
func (s *Store) TotalPrice() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalPrice()
}

func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalItemCount()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store) Item(id domain.ProductID) (domain.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.CartItem{}, false
	}
	return s.items[i], true
}

// Snapshot reads lines and both totals under one lock acquisition.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Cart{
		Items:      slices.Clone(s.items),
		TotalItems: s.totalItemCount(),
		TotalPrice: s.totalPrice(),
	}
}

func (s *Store) Currency() currency.Unit {
	return s.currency
}

// Close disposes the store. Later mutations are dropped.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.closed = true
}

func (s *Store) totalPrice() domain.Money {
	total := domain.ZeroMoney(s.currency)
	for _, item := range s.items {
		sum, err := total.Add(item.LineTotal())
		if err != nil {
			s.logger.Error("total.Add", zap.Int64("product_id", int64(item.ProductID)), zap.Error(err))
			continue
		}
		total = sum
	}
	return total
}

func (s *Store) totalItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) indexOf(id domain.ProductID) int {
	return slices.IndexFunc(s.items, func(item domain.CartItem) bool {
		return item.ProductID == id
	})
}

func (s *Store) remove(id domain.ProductID) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.logger.Debug("cart item removed", zap.Int64("product_id", int64(id)))
}

func (s *Store) ignoreClosed(op string) bool {
	if !s.closed {
		return false
	}
	s.logger.Warn("cart store is closed, mutation ignored", zap.String("op", op))
	return true
}
