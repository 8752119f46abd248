package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// CartItem is one cart line: a product and the quantity to purchase.
type CartItem struct {
	Product  *Product
	Quantity int
}

func (i CartItem) LineTotal() Money {
	return i.Product.Price().MulInt(int64(i.Quantity))
}

// Cart accumulates purchase intent as an ordered list of lines.
// Insertion order is preserved for receipt display.
type Cart struct {
	currency currency.Unit
	items    []CartItem
}

func NewCart(unit currency.Unit) *Cart {
	return &Cart{currency: unit}
}

// Add puts a product into the cart, merging quantities when the product is
// already present. The merged total is re-validated against availability, so
// two partial adds can never together exceed stock.
func (c *Cart) Add(p *Product, quantity int) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive: %d", ErrInvalidArgument, quantity)
	}
	if p.Price().Currency.String() != c.currency.String() {
		return fmt.Errorf("%w: product %q is priced in %s, cart is in %s",
			ErrInvalidArgument, p.Name(), p.Price().Currency, c.currency)
	}

	requested := quantity
	idx := c.indexOf(p.Name())
	if idx >= 0 {
		requested += c.items[idx].Quantity
	}

	if !p.Available(requested) {
		if p.Expired() {
			return fmt.Errorf("cannot add %q: %w", p.Name(), ErrExpiredProduct)
		}
		return fmt.Errorf("%w: %q available %d, requested %d",
			ErrOutOfStock, p.Name(), p.Quantity(), requested)
	}

	if idx >= 0 {
		c.items[idx].Quantity = requested
		return nil
	}

	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
	return nil
}

// Remove drops the line for the product, no-op when absent.
func (c *Cart) Remove(p *Product) {
	if p == nil {
		return
	}

	idx := c.indexOf(p.Name())
	if idx < 0 {
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

// Items returns a snapshot of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Subtotal sums price times quantity over all lines.
func (c *Cart) Subtotal() Money {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal().Amount)
	}
	return Money{Amount: sum, Currency: c.currency}
}

// ShippableItems returns the lines whose product requires shipping,
// preserving cart order.
func (c *Cart) ShippableItems() []CartItem {
	var items []CartItem
	for _, item := range c.items {
		if item.Product.RequiresShipping() {
			items = append(items, item)
		}
	}
	return items
}

func (c *Cart) indexOf(name string) int {
	for i, item := range c.items {
		if item.Product.Name() == name {
			return i
		}
	}
	return -1
}
