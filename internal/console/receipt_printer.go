// Package console renders checkout results for a terminal, implementing the
// presenter and notifier ports.
package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

type receiptPrinter struct {
	w io.Writer
	p *message.Printer
}

func NewReceiptPrinter(w io.Writer) (port.ReceiptPresenter, error) {
	if w == nil {
		return nil, fmt.Errorf("writer is nil")
	}

	return &receiptPrinter{
		w: w,
		p: message.NewPrinter(language.English),
	}, nil
}

// PresentReceipt writes the checkout summary. Line totals and the amounts are
// shown as whole currency units, the remaining balance with cents; the
// shipping line is omitted when the fee is zero.
func (rp *receiptPrinter) PresentReceipt(_ context.Context, receipt domain.Receipt) error {
	if _, err := fmt.Fprintln(rp.w, "** Checkout receipt **"); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	for _, line := range receipt.Lines {
		rp.p.Fprintf(rp.w, "%dx %s %.0f\n",
			line.Quantity, line.ProductName, line.LineTotal.Amount.InexactFloat64())
	}

	fmt.Fprintln(rp.w, "----------------------")
	rp.p.Fprintf(rp.w, "Subtotal %.0f\n", receipt.Subtotal.Amount.InexactFloat64())

	if receipt.ShippingFee.Amount.IsPositive() {
		rp.p.Fprintf(rp.w, "Shipping %.0f\n", receipt.ShippingFee.Amount.InexactFloat64())
	}

	rp.p.Fprintf(rp.w, "Amount %.0f\n", receipt.Total.Amount.InexactFloat64())
	rp.p.Fprintf(rp.w, "Customer balance after payment: $%.2f\n",
		receipt.RemainingBalance.Amount.InexactFloat64())

	return nil
}
