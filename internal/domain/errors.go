package domain

import "errors"

var (
	// ErrInvalidArgument indicates malformed input to a constructor or cart mutation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfStock indicates the requested quantity exceeds the current product stock.
	ErrOutOfStock = errors.New("out of stock")

	// ErrExpiredProduct indicates the product's expiration date has passed.
	ErrExpiredProduct = errors.New("product expired")

	// ErrEmptyCart indicates a checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientBalance indicates the customer balance cannot cover subtotal plus shipping.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvariantViolation indicates internal misuse, a caller bug rather than a business failure.
	ErrInvariantViolation = errors.New("invariant violation")
)
