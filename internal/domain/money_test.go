package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

func TestMoneyAdd(t *testing.T) {
	sum, err := money("100").Add(money("25.50"))
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("125.5")))

	_, err = money("100").Add(domain.NewMoney(decimal.New(1, 0), currency.EUR))
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMoneyMul(t *testing.T) {
	assert.True(t, money("25.50").MulInt(3).Amount.Equal(decimal.RequireFromString("76.5")))

	byWeight := money("10").MulDecimal(decimal.RequireFromString("0.4"))
	assert.True(t, byWeight.Amount.Equal(decimal.RequireFromString("4")))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "USD 100.00", money("100").String())
	assert.Equal(t, "USD 25.50", money("25.5").String())
}
