package storefront

import (
	"context"
	"fmt"
	"io"

	"github.com/nikolayk812/tipkart/internal/domain"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of shopper actions.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Login    *LoginAction    `yaml:"login,omitempty"`
	Logout   *struct{}       `yaml:"logout,omitempty"`
	Add      *ItemAction     `yaml:"add,omitempty"`
	Update   *ItemAction     `yaml:"update,omitempty"`
	Remove   *ItemAction     `yaml:"remove,omitempty"`
	Clear    *struct{}       `yaml:"clear,omitempty"`
	Shipping *ShippingAction `yaml:"shipping,omitempty"`
	Payment  *PaymentAction  `yaml:"payment,omitempty"`
	Place    *struct{}       `yaml:"place,omitempty"`
}

type LoginAction struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type ItemAction struct {
	Product  int64 `yaml:"product"`
	Quantity int   `yaml:"quantity"`
}

type ShippingAction struct {
	FullName string `yaml:"full_name"`
	Address  string `yaml:"address"`
	City     string `yaml:"city"`
	State    string `yaml:"state"`
	Pincode  string `yaml:"pincode"`
	Phone    string `yaml:"phone"`
}

type PaymentAction struct {
	Method     string `yaml:"method"`
	CardNumber string `yaml:"card_number"`
	ExpiryDate string `yaml:"expiry_date"`
	CVV        string `yaml:"cvv"`
	NameOnCard string `yaml:"name_on_card"`
}

// StepResult is reported after every replayed step.
type StepResult struct {
	Index  int
	Action string
	Cart   domain.Cart
	Order  *domain.Order
}

func LoadScript(r io.Reader) (Script, error) {
	var script Script

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		return Script{}, fmt.Errorf("dec.Decode: %w", err)
	}

	for i, step := range script.Steps {
		if n := step.actionCount(); n != 1 {
			return Script{}, fmt.Errorf("step[%d] has %d actions, want 1", i, n)
		}
	}

	return script, nil
}

// Replay runs the script against the session, stopping at the first failing
// step. report may be nil.
func Replay(ctx context.Context, s *Session, script Script, report func(StepResult)) error {
	for i, step := range script.Steps {
		result, err := s.apply(ctx, step)
		if err != nil {
			return fmt.Errorf("step[%d] %s: %w", i, step.action(), err)
		}

		result.Index = i
		result.Action = step.action()
		result.Cart = s.Cart.Snapshot()
		if report != nil {
			report(result)
		}
	}

	return nil
}

func (s *Session) apply(ctx context.Context, step Step) (StepResult, error) {
	var result StepResult

	switch {
	case step.Login != nil:
		if _, err := s.Identity.Login(domain.Identity{Name: step.Login.Name, Email: step.Login.Email}); err != nil {
			return result, fmt.Errorf("Identity.Login: %w", err)
		}
	case step.Logout != nil:
		s.Identity.Logout()
	case step.Add != nil:
		if err := s.AddToCart(ctx, domain.ProductID(step.Add.Product), step.Add.Quantity); err != nil {
			return result, fmt.Errorf("AddToCart: %w", err)
		}
	case step.Update != nil:
		s.Cart.UpdateQuantity(domain.ProductID(step.Update.Product), step.Update.Quantity)
	case step.Remove != nil:
		s.Cart.RemoveItem(domain.ProductID(step.Remove.Product))
	case step.Clear != nil:
		s.Cart.Clear()
	case step.Shipping != nil:
		if err := s.Checkout().SubmitShipping(mapShippingToDomain(*step.Shipping)); err != nil {
			return result, fmt.Errorf("SubmitShipping: %w", err)
		}
	case step.Payment != nil:
		if err := s.Checkout().SubmitPayment(mapPaymentToDomain(*step.Payment)); err != nil {
			return result, fmt.Errorf("SubmitPayment: %w", err)
		}
	case step.Place != nil:
		var placedBy *domain.Identity
		if identity, ok := s.Identity.Current(); ok {
			placedBy = &identity
		}

		order, err := s.Checkout().PlaceOrder(placedBy)
		if err != nil {
			return result, fmt.Errorf("PlaceOrder: %w", err)
		}
		result.Order = &order
	}

	return result, nil
}

func (st Step) action() string {
	switch {
	case st.Login != nil:
		return "login"
	case st.Logout != nil:
		return "logout"
	case st.Add != nil:
		return "add"
	case st.Update != nil:
		return "update"
	case st.Remove != nil:
		return "remove"
	case st.Clear != nil:
		return "clear"
	case st.Shipping != nil:
		return "shipping"
	case st.Payment != nil:
		return "payment"
	case st.Place != nil:
		return "place"
	default:
		return "none"
	}
}

func (st Step) actionCount() int {
	var n int
	for _, set := range []bool{
		st.Login != nil, st.Logout != nil, st.Add != nil, st.Update != nil, st.Remove != nil,
		st.Clear != nil, st.Shipping != nil, st.Payment != nil, st.Place != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func mapShippingToDomain(a ShippingAction) domain.ShippingInfo {
	return domain.ShippingInfo{
		FullName: a.FullName,
		Address:  a.Address,
		City:     a.City,
		State:    a.State,
		Pincode:  a.Pincode,
		Phone:    a.Phone,
	}
}

func mapPaymentToDomain(a PaymentAction) domain.PaymentInfo {
	return domain.PaymentInfo{
		Method:     domain.PaymentMethod(a.Method),
		CardNumber: a.CardNumber,
		ExpiryDate: a.ExpiryDate,
		CVV:        a.CVV,
		NameOnCard: a.NameOnCard,
	}
}
