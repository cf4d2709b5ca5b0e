package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

func NewMoney(amount int64, unit currency.Unit) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: unit}
}

// Mul multiplies the amount by an integer quantity, keeping the currency.
func (m Money) Mul(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.Currency}
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Round(places int32) Money {
	return Money{Amount: m.Amount.Round(places), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.String()
}
