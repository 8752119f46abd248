package console

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

var gramsPerKg = decimal.NewFromInt(1000)

type shipmentPrinter struct {
	w io.Writer
}

func NewShipmentPrinter(w io.Writer) (port.ShipmentNotifier, error) {
	if w == nil {
		return nil, fmt.Errorf("writer is nil")
	}

	return &shipmentPrinter{w: w}, nil
}

// NotifyShipment writes the shipment notice: line weights in grams, the
// package total in kilograms.
func (sp *shipmentPrinter) NotifyShipment(_ context.Context, shipment domain.Shipment) error {
	if len(shipment.Lines) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(sp.w, "** Shipment notice **"); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	for _, line := range shipment.Lines {
		fmt.Fprintf(sp.w, "%dx %s %sg\n",
			line.Quantity, line.ProductName, line.Weight.Mul(gramsPerKg).Round(0))
	}

	fmt.Fprintf(sp.w, "Total package weight %skg\n", shipment.TotalWeight.StringFixed(1))
	return nil
}
