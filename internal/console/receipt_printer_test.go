package console_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/domain"
)

func money(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.USD)
}

func TestReceiptPrinter(t *testing.T) {
	tests := []struct {
		name    string
		receipt domain.Receipt
		want    string
	}{
		{
			name: "mixed cart with shipping",
			receipt: domain.Receipt{
				ID:           uuid.New(),
				CustomerName: "John Doe",
				Lines: []domain.ReceiptLine{
					{ProductName: "Cheese", Quantity: 2, LineTotal: money("200")},
					{ProductName: "Biscuits", Quantity: 1, LineTotal: money("150")},
				},
				Subtotal:         money("350"),
				ShippingFee:      money("16"),
				Total:            money("366"),
				RemainingBalance: money("634"),
			},
			want: "** Checkout receipt **\n" +
				"2x Cheese 200\n" +
				"1x Biscuits 150\n" +
				"----------------------\n" +
				"Subtotal 350\n" +
				"Shipping 16\n" +
				"Amount 366\n" +
				"Customer balance after payment: $634.00\n",
		},
		{
			name: "zero fee omits the shipping line",
			receipt: domain.Receipt{
				ID:           uuid.New(),
				CustomerName: "John Doe",
				Lines: []domain.ReceiptLine{
					{ProductName: "Mobile Scratch Card", Quantity: 2, LineTotal: money("50")},
				},
				Subtotal:         money("50"),
				ShippingFee:      money("0"),
				Total:            money("50"),
				RemainingBalance: money("950.50"),
			},
			want: "** Checkout receipt **\n" +
				"2x Mobile Scratch Card 50\n" +
				"----------------------\n" +
				"Subtotal 50\n" +
				"Amount 50\n" +
				"Customer balance after payment: $950.50\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer, err := console.NewReceiptPrinter(&buf)
			require.NoError(t, err)

			require.NoError(t, printer.PresentReceipt(t.Context(), tt.receipt))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewReceiptPrinterNilWriter(t *testing.T) {
	_, err := console.NewReceiptPrinter(nil)
	require.EqualError(t, err, "writer is nil")
}
