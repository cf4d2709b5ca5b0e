package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikolayk812/tipkart/internal/domain"
)

func ValidateShipping(info domain.ShippingInfo) error {
	return errors.Join(
		required("fullName", info.FullName),
		required("address", info.Address),
		required("city", info.City),
		required("state", info.State),
		required("pincode", info.Pincode),
		required("phone", info.Phone),
	)
}

// ValidatePayment accepts card, upi and cod. Card details are only
// required for card payments.
func ValidatePayment(info domain.PaymentInfo) error {
	switch info.Method {
	case domain.PaymentCard:
		return errors.Join(
			required("cardNumber", info.CardNumber),
			required("expiryDate", info.ExpiryDate),
			required("cvv", info.CVV),
			required("nameOnCard", info.NameOnCard),
		)
	case domain.PaymentUPI, domain.PaymentCOD:
		return nil
	default:
		return fmt.Errorf("payment method[%s] is not supported", info.Method)
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is empty", field)
	}
	return nil
}
