package console_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/domain"
)

func TestShipmentPrinter(t *testing.T) {
	shipment := domain.Shipment{
		ID: uuid.New(),
		Lines: []domain.ShipmentLine{
			{ProductName: "Cheese", Quantity: 2, Weight: decimal.RequireFromString("0.4")},
			{ProductName: "TV", Quantity: 1, Weight: decimal.RequireFromString("15")},
		},
		TotalWeight: decimal.RequireFromString("15.4"),
	}

	want := "** Shipment notice **\n" +
		"2x Cheese 400g\n" +
		"1x TV 15000g\n" +
		"Total package weight 15.4kg\n"

	var buf bytes.Buffer
	printer, err := console.NewShipmentPrinter(&buf)
	require.NoError(t, err)

	require.NoError(t, printer.NotifyShipment(t.Context(), shipment))
	assert.Equal(t, want, buf.String())
}

func TestShipmentPrinterNoLines(t *testing.T) {
	var buf bytes.Buffer
	printer, err := console.NewShipmentPrinter(&buf)
	require.NoError(t, err)

	require.NoError(t, printer.NotifyShipment(t.Context(), domain.Shipment{ID: uuid.New()}))
	assert.Empty(t, buf.String())
}
