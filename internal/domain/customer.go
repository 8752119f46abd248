package domain

import (
	"fmt"
	"strings"
)

// Customer holds a name and a spendable balance.
type Customer struct {
	name    string
	balance Money
}

func NewCustomer(name string, balance Money) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is empty", ErrInvalidArgument)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: customer balance is negative: %s", ErrInvalidArgument, balance)
	}

	return &Customer{name: name, balance: balance}, nil
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Balance() Money {
	return c.balance
}

// DeductBalance withdraws the amount from the balance.
func (c *Customer) DeductBalance(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: deducted amount is negative: %s", ErrInvalidArgument, amount)
	}
	if !amount.SameCurrency(c.balance) {
		return fmt.Errorf("%w: currency mismatch %s vs %s",
			ErrInvalidArgument, amount.Currency, c.balance.Currency)
	}
	if c.balance.LessThan(amount) {
		return fmt.Errorf("%w: required %s, available %s",
			ErrInsufficientBalance, amount, c.balance)
	}

	c.balance = Money{Amount: c.balance.Amount.Sub(amount.Amount), Currency: c.balance.Currency}
	return nil
}

// AddBalance deposits the amount onto the balance.
func (c *Customer) AddBalance(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: added amount is negative: %s", ErrInvalidArgument, amount)
	}
	if !amount.SameCurrency(c.balance) {
		return fmt.Errorf("%w: currency mismatch %s vs %s",
			ErrInvalidArgument, amount.Currency, c.balance.Currency)
	}

	c.balance = Money{Amount: c.balance.Amount.Add(amount.Amount), Currency: c.balance.Currency}
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (balance: %s)", c.name, c.balance)
}
