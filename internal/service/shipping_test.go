package service_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/service"
)

func money(t *testing.T, amount string) domain.Money {
	t.Helper()

	dec, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	return domain.NewMoney(dec, currency.USD)
}

func newProduct(t *testing.T, price string, quantity int) *domain.Product {
	t.Helper()

	p, err := domain.NewProduct(gofakeit.ProductName(), money(t, price), quantity)
	require.NoError(t, err)
	return p
}

func newShippable(t *testing.T, name, price string, quantity int, weight string) *domain.Product {
	t.Helper()

	p, err := domain.NewShippableProduct(name, money(t, price), quantity,
		decimal.RequireFromString(weight))
	require.NoError(t, err)
	return p
}

func newExpirableShippable(t *testing.T, name, price string, quantity int, expiresAt time.Time, weight string) *domain.Product {
	t.Helper()

	p, err := domain.NewExpirableShippableProduct(name, money(t, price), quantity, expiresAt,
		decimal.RequireFromString(weight))
	require.NoError(t, err)
	return p
}

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.CartItem
		want  string
	}{
		{
			name:  "no shippable items: zero fee",
			items: nil,
			want:  "0",
		},
		{
			name: "single line: base fee plus rate times weight",
			items: []domain.CartItem{
				{Product: newShippable(t, "Cheese", "100", 10, "0.2"), Quantity: 2},
			},
			// 5 + 10 * 0.4
			want: "9",
		},
		{
			name: "multiple lines sum their weights",
			items: []domain.CartItem{
				{Product: newShippable(t, "Cheese", "100", 10, "0.2"), Quantity: 2},
				{Product: newShippable(t, "TV", "500", 5, "15"), Quantity: 1},
				{Product: newShippable(t, "Biscuits", "150", 8, "0.7"), Quantity: 1},
			},
			// 5 + 10 * (0.4 + 15 + 0.7)
			want: "166",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := service.ShippingFee(currency.USD, tt.items)
			require.NoError(t, err)

			assert.True(t, fee.Amount.Equal(decimal.RequireFromString(tt.want)),
				"fee %s, want %s", fee, tt.want)
			assert.Equal(t, currency.USD.String(), fee.Currency.String())
		})
	}
}

func TestShippingFeeNonShippableLine(t *testing.T) {
	items := []domain.CartItem{
		{Product: newProduct(t, "25", 20), Quantity: 1},
	}

	_, err := service.ShippingFee(currency.USD, items)
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestTotalWeight(t *testing.T) {
	items := []domain.CartItem{
		{Product: newShippable(t, "Cheese", "100", 10, "0.2"), Quantity: 2},
		{Product: newShippable(t, "Biscuits", "150", 8, "0.7"), Quantity: 1},
	}

	weight, err := service.TotalWeight(items)
	require.NoError(t, err)
	assert.True(t, weight.Equal(decimal.RequireFromString("1.1")), "weight %s", weight)
}
