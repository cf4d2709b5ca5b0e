package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

type ShippingInfo struct {
	FullName string
	Address  string
	City     string
	State    string
	Pincode  string
	Phone    string
}

type PaymentInfo struct {
	Method     PaymentMethod
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

type PriceSummary struct {
	Subtotal Money
	Tax      Money
	Shipping Money
	Total    Money
}

type Order struct {
	ID       uuid.UUID
	Number   string
	Items    []CartItem
	Shipping ShippingInfo
	Payment  PaymentInfo
	Summary  PriceSummary
	PlacedBy *Identity

	PlacedAt          time.Time
	EstimatedDelivery string
}
