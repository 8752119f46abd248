package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

var (
	baseShippingFee   = decimal.RequireFromString("5")
	shippingRatePerKg = decimal.RequireFromString("10")
)

// ShippingFee quotes the fee for a set of shippable lines: zero for an empty
// set, otherwise base fee plus the per-kilogram rate over the total weight.
// Pure, callable independently of checkout.
func ShippingFee(unit currency.Unit, items []domain.CartItem) (domain.Money, error) {
	if len(items) == 0 {
		return domain.ZeroMoney(unit), nil
	}

	weight, err := TotalWeight(items)
	if err != nil {
		return domain.Money{}, fmt.Errorf("TotalWeight: %w", err)
	}

	fee := baseShippingFee.Add(weight.Mul(shippingRatePerKg))
	return domain.NewMoney(fee, unit), nil
}

// TotalWeight sums unit weight times quantity over the lines, in kilograms.
// Every line must carry a shippable product.
func TotalWeight(items []domain.CartItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: cart line without product", domain.ErrInvariantViolation)
		}

		weight, err := item.Product.Weight()
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("product %q: %w", item.Product.Name(), err)
		}

		sum = sum.Add(weight.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum, nil
}
