package domain_test

import (
	"testing"

	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoney_Add(t *testing.T) {
	tests := []struct {
		name      string
		a         domain.Money
		b         domain.Money
		want      string
		wantError string
	}{
		{
			name: "same currency",
			a:    domain.Money{Amount: decimal.RequireFromString("19.99"), Currency: currency.INR},
			b:    domain.Money{Amount: decimal.RequireFromString("0.01"), Currency: currency.INR},
			want: "INR 20",
		},
		{
			name: "zero plus amount",
			a:    domain.ZeroMoney(currency.USD),
			b:    domain.NewMoney(30, currency.USD),
			want: "USD 30",
		},
		{
			name:      "mixed currencies",
			a:         domain.ZeroMoney(currency.USD),
			b:         domain.NewMoney(2999, currency.INR),
			wantError: "currency mismatch: USD and INR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				require.ErrorIs(t, err, domain.ErrCurrencyMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoney_Mul(t *testing.T) {
	m := domain.Money{Amount: decimal.RequireFromString("19.99"), Currency: currency.INR}

	got := m.Mul(3)
	assert.True(t, got.Equal(domain.Money{Amount: decimal.RequireFromString("59.97"), Currency: currency.INR}))
}
