package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/port"
	"go.uber.org/zap"
)

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepPlaced
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "Shipping Address"
	case StepPayment:
		return "Payment Method"
	case StepReview:
		return "Review Order"
	case StepPlaced:
		return "Order Placed"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

const estimatedDelivery = "3-5 business days"

// Review is what the shopper confirms before placing the order.
type Review struct {
	Items    []domain.CartItem
	Summary  domain.PriceSummary
	Shipping domain.ShippingInfo
	Payment  domain.PaymentInfo
}

// Flow walks one shopper through shipping, payment and review. It is not
// safe for concurrent use; the cart it wraps is.
type Flow struct {
	cart    port.Cart
	pricing port.PricingPolicy

	step     Step
	shipping domain.ShippingInfo
	payment  domain.PaymentInfo
	order    *domain.Order

	now         func() time.Time
	orderNumber func() string
	logger      *zap.Logger
}

type Option func(*Flow)

func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) {
		f.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.now = now
	}
}

func WithOrderNumbers(next func() string) Option {
	return func(f *Flow) {
		f.orderNumber = next
	}
}

func New(cart port.Cart, pricing port.PricingPolicy, opts ...Option) *Flow {
	f := &Flow{
		cart:        cart,
		pricing:     pricing,
		step:        StepShipping,
		now:         time.Now,
		orderNumber: NewOrderNumber,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) SubmitShipping(info domain.ShippingInfo) error {
	if err := f.expect(StepShipping); err != nil {
		return err
	}
	if err := ValidateShipping(info); err != nil {
		return fmt.Errorf("ValidateShipping: %w", err)
	}

	f.shipping = info
	f.step = StepPayment
	return nil
}

func (f *Flow) SubmitPayment(info domain.PaymentInfo) error {
	if err := f.expect(StepPayment); err != nil {
		return err
	}
	if err := ValidatePayment(info); err != nil {
		return fmt.Errorf("ValidatePayment: %w", err)
	}

	f.payment = info
	f.step = StepReview
	return nil
}

// Review prices the live cart. It can be called at any step before the
// order is placed; afterwards it describes the placed order.
func (f *Flow) Review() Review {
	if f.order != nil {
		return Review{
			Items:    f.order.Items,
			Summary:  f.order.Summary,
			Shipping: f.order.Shipping,
			Payment:  f.order.Payment,
		}
	}

	snapshot := f.cart.Snapshot()
	return Review{
		Items:    snapshot.Items,
		Summary:  f.pricing.Summarize(snapshot.TotalPrice),
		Shipping: f.shipping,
		Payment:  f.payment,
	}
}

// PlaceOrder snapshots the cart and its price summary into an order, then
// clears the cart. Nothing is charged or stored.
func (f *Flow) PlaceOrder(placedBy *domain.Identity) (domain.Order, error) {
	if err := f.expect(StepReview); err != nil {
		return domain.Order{}, err
	}

	snapshot := f.cart.Snapshot()
	if snapshot.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		ID:                uuid.New(),
		Number:            f.orderNumber(),
		Items:             snapshot.Items,
		Shipping:          f.shipping,
		Payment:           f.payment,
		Summary:           f.pricing.Summarize(snapshot.TotalPrice),
		PlacedBy:          placedBy,
		PlacedAt:          f.now(),
		EstimatedDelivery: estimatedDelivery,
	}

	f.cart.Clear()
	f.order = &order
	f.step = StepPlaced

	f.logger.Info("order placed",
		zap.String("number", order.Number),
		zap.Int("items", snapshot.TotalItems),
		zap.String("total", order.Summary.Total.Amount.String()))

	return order, nil
}

func (f *Flow) Order() (domain.Order, bool) {
	if f.order == nil {
		return domain.Order{}, false
	}
	return *f.order, true
}

func (f *Flow) expect(step Step) error {
	if f.step != step {
		return fmt.Errorf("%w: at %q, want %q", ErrWrongStep, f.step, step)
	}
	return nil
}
