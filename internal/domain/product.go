package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item for sale. Expiry and shippability are orthogonal
// capabilities fixed at construction time, quantity is the only field
// mutated afterwards.
type Product struct {
	name     string
	price    Money
	quantity int

	expiresAt time.Time // zero when the product never expires
	expires   bool

	weight    decimal.Decimal // kilograms, positive when shippable
	shippable bool
}

// NewProduct creates a product that neither expires nor requires shipping.
func NewProduct(name string, price Money, quantity int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is empty", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: product price is negative: %s", ErrInvalidArgument, price)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: product quantity is negative: %d", ErrInvalidArgument, quantity)
	}

	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
	}, nil
}

// NewExpirableProduct creates a product carrying an expiration date.
func NewExpirableProduct(name string, price Money, quantity int, expiresAt time.Time) (*Product, error) {
	p, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}

	if expiresAt.IsZero() {
		return nil, fmt.Errorf("%w: expiration date is not set", ErrInvalidArgument)
	}

	p.expiresAt = expiresAt.UTC()
	p.expires = true
	return p, nil
}

// NewShippableProduct creates a product with a weight, in kilograms.
func NewShippableProduct(name string, price Money, quantity int, weight decimal.Decimal) (*Product, error) {
	p, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}

	if !weight.IsPositive() {
		return nil, fmt.Errorf("%w: weight must be positive: %s", ErrInvalidArgument, weight)
	}

	p.weight = weight
	p.shippable = true
	return p, nil
}

// NewExpirableShippableProduct creates a product that both expires and requires
// shipping, e.g. perishable shipped goods.
func NewExpirableShippableProduct(name string, price Money, quantity int, expiresAt time.Time, weight decimal.Decimal) (*Product, error) {
	p, err := NewExpirableProduct(name, price, quantity, expiresAt)
	if err != nil {
		return nil, err
	}

	if !weight.IsPositive() {
		return nil, fmt.Errorf("%w: weight must be positive: %s", ErrInvalidArgument, weight)
	}

	p.weight = weight
	p.shippable = true
	return p, nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() Money {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

// ExpiresAt reports the expiration date, false when the product never expires.
func (p *Product) ExpiresAt() (time.Time, bool) {
	return p.expiresAt, p.expires
}

func (p *Product) Expires() bool {
	return p.expires
}

func (p *Product) RequiresShipping() bool {
	return p.shippable
}

// Weight reports the unit weight in kilograms. Asking a non-shippable
// product for its weight is a caller bug.
func (p *Product) Weight() (decimal.Decimal, error) {
	if !p.shippable {
		return decimal.Decimal{}, fmt.Errorf("%w: product %q is not shippable", ErrInvariantViolation, p.name)
	}
	return p.weight, nil
}

// ExpiredAt reports whether the calendar date of now is strictly after the
// expiration date. Products without an expiration date never expire.
func (p *Product) ExpiredAt(now time.Time) bool {
	if !p.expires {
		return false
	}

	day := func(t time.Time) time.Time {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return day(now).After(day(p.expiresAt))
}

func (p *Product) Expired() bool {
	return p.ExpiredAt(time.Now())
}

// AvailableAt reports whether the requested quantity can be sold at now:
// enough stock and not expired.
func (p *Product) AvailableAt(requested int, now time.Time) bool {
	return p.quantity >= requested && !p.ExpiredAt(now)
}

func (p *Product) Available(requested int) bool {
	return p.AvailableAt(requested, time.Now())
}

// ReduceQuantity decrements stock after a sale. Selling more than is on hand
// indicates a caller bug: checkout validates stock before committing.
func (p *Product) ReduceQuantity(sold int) error {
	if sold <= 0 {
		return fmt.Errorf("%w: sold quantity must be positive: %d", ErrInvariantViolation, sold)
	}
	if sold > p.quantity {
		return fmt.Errorf("%w: cannot sell %d of %q, only %d in stock",
			ErrInvariantViolation, sold, p.name, p.quantity)
	}

	p.quantity -= sold
	return nil
}

func (p *Product) String() string {
	s := fmt.Sprintf("%s - %s (qty: %d)", p.name, p.price, p.quantity)
	if p.shippable {
		s += fmt.Sprintf(", %skg", p.weight)
	}
	if p.expires {
		s += fmt.Sprintf(", expires %s", p.expiresAt.Format(time.DateOnly))
	}
	return s
}
