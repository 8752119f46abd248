package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptLine is one purchased cart line as it appears on the receipt.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	LineTotal   Money
}

// Receipt is the outcome of a successful checkout, consumed by the
// receipt presenter.
type Receipt struct {
	ID               uuid.UUID
	CustomerName     string
	Lines            []ReceiptLine
	Subtotal         Money
	ShippingFee      Money
	Total            Money
	RemainingBalance Money
	CreatedAt        time.Time
}

// ShipmentLine is one shippable cart line with its total weight in kilograms.
type ShipmentLine struct {
	ProductName string
	Quantity    int
	Weight      decimal.Decimal
}

// Shipment summarises the shippable lines of one checkout, consumed by the
// shipment notifier.
type Shipment struct {
	ID          uuid.UUID
	Lines       []ShipmentLine
	TotalWeight decimal.Decimal
	CreatedAt   time.Time
}
