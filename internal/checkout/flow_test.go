package checkout_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/tipkart/internal/cart"
	"github.com/nikolayk812/tipkart/internal/checkout"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestFlow_PlaceOrder(t *testing.T) {
	placedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	store := cart.New()
	store.AddItem(product(1, 200), 3)
	store.AddItem(product(2, 50), 2)

	flow := checkout.New(store, pricing.Default(),
		checkout.WithClock(func() time.Time { return placedAt }),
		checkout.WithOrderNumbers(func() string { return "TIPTEST00001" }),
	)
	assert.Equal(t, checkout.StepShipping, flow.Step())

	shipping := randomShipping()
	require.NoError(t, flow.SubmitShipping(shipping))
	assert.Equal(t, checkout.StepPayment, flow.Step())

	require.NoError(t, flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentUPI}))
	assert.Equal(t, checkout.StepReview, flow.Step())

	review := flow.Review()
	require.Len(t, review.Items, 2)
	assert.Equal(t, "700", review.Summary.Subtotal.Amount.String())
	assert.Equal(t, "126", review.Summary.Tax.Amount.String())
	assert.Equal(t, "826", review.Summary.Total.Amount.String())

	identity := &domain.Identity{Name: gofakeit.Name(), Email: gofakeit.Email(), SessionID: uuid.New()}
	order, err := flow.PlaceOrder(identity)
	require.NoError(t, err)

	assert.Equal(t, checkout.StepPlaced, flow.Step())
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, "TIPTEST00001", order.Number)
	assert.Equal(t, shipping, order.Shipping)
	assert.Equal(t, domain.PaymentUPI, order.Payment.Method)
	assert.Equal(t, identity, order.PlacedBy)
	assert.Equal(t, placedAt, order.PlacedAt)
	assert.Equal(t, "3-5 business days", order.EstimatedDelivery)
	assert.Len(t, order.Items, 2)

	// the summary survives clearing the cart
	assert.Equal(t, "826", order.Summary.Total.Amount.String())
	assert.Empty(t, store.Items())
	assert.Equal(t, "826", flow.Review().Summary.Total.Amount.String())

	got, ok := flow.Order()
	require.True(t, ok)
	assert.Equal(t, order.Number, got.Number)

	_, err = flow.PlaceOrder(identity)
	require.ErrorIs(t, err, checkout.ErrWrongStep)
}

func TestFlow_PlaceOrder_emptyCart(t *testing.T) {
	flow := checkout.New(cart.New(), pricing.Default())

	require.NoError(t, flow.SubmitShipping(randomShipping()))
	require.NoError(t, flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentCOD}))

	_, err := flow.PlaceOrder(nil)
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, checkout.StepReview, flow.Step())

	_, ok := flow.Order()
	assert.False(t, ok)
}

func TestFlow_wrongStep(t *testing.T) {
	store := cart.New()
	store.AddItem(product(1, 100), 1)
	flow := checkout.New(store, pricing.Default())

	err := flow.SubmitPayment(domain.PaymentInfo{Method: domain.PaymentCOD})
	require.ErrorIs(t, err, checkout.ErrWrongStep)
	assert.EqualError(t, err, `checkout is not at this step: at "Shipping Address", want "Payment Method"`)

	_, err = flow.PlaceOrder(nil)
	require.ErrorIs(t, err, checkout.ErrWrongStep)

	require.NoError(t, flow.SubmitShipping(randomShipping()))
	err = flow.SubmitShipping(randomShipping())
	require.ErrorIs(t, err, checkout.ErrWrongStep)

	assert.Len(t, store.Items(), 1)
}

func TestFlow_SubmitShipping_invalid(t *testing.T) {
	flow := checkout.New(cart.New(), pricing.Default())

	info := randomShipping()
	info.City = ""
	info.Phone = " "

	err := flow.SubmitShipping(info)
	require.EqualError(t, err, "ValidateShipping: city is empty\nphone is empty")
	assert.Equal(t, checkout.StepShipping, flow.Step())
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name      string
		info      domain.PaymentInfo
		wantError string
	}{
		{
			name: "card with details: ok",
			info: domain.PaymentInfo{
				Method:     domain.PaymentCard,
				CardNumber: gofakeit.CreditCardNumber(nil),
				ExpiryDate: gofakeit.CreditCardExp(),
				CVV:        gofakeit.CreditCardCvv(),
				NameOnCard: gofakeit.Name(),
			},
		},
		{
			name: "card without details: error",
			info: domain.PaymentInfo{Method: domain.PaymentCard, NameOnCard: gofakeit.Name()},
			wantError: "cardNumber is empty\n" +
				"expiryDate is empty\n" +
				"cvv is empty",
		},
		{
			name: "upi: ok",
			info: domain.PaymentInfo{Method: domain.PaymentUPI},
		},
		{
			name: "cash on delivery: ok",
			info: domain.PaymentInfo{Method: domain.PaymentCOD},
		},
		{
			name:      "unknown method: error",
			info:      domain.PaymentInfo{Method: "crypto"},
			wantError: "payment method[crypto] is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkout.ValidatePayment(tt.info)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewOrderNumber(t *testing.T) {
	format := regexp.MustCompile(`^TIP[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for range 1000 {
		number := checkout.NewOrderNumber()
		require.Regexp(t, format, number)
		seen[number] = true
	}
	assert.Greater(t, len(seen), 990)
}

func product(id domain.ProductID, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     gofakeit.ProductName(),
		Image:    gofakeit.URL(),
		Category: gofakeit.ProductCategory(),
		Price:    domain.NewMoney(price, currency.INR),
	}
}

func randomShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FullName: gofakeit.Name(),
		Address:  gofakeit.Street(),
		City:     gofakeit.City(),
		State:    gofakeit.State(),
		Pincode:  gofakeit.Zip(),
		Phone:    gofakeit.Phone(),
	}
}
