package port

import (
	"context"

	"github.com/nikolayk812/checkout-demo/internal/domain"
)

// CheckoutService validates a cart against customer and product state and,
// on success, settles it as one logical transaction.
type CheckoutService interface {
	Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error)
}

// ReceiptPresenter renders the checkout summary for the customer.
type ReceiptPresenter interface {
	PresentReceipt(ctx context.Context, receipt domain.Receipt) error
}

// ShipmentNotifier announces the shippable lines of a settled checkout.
type ShipmentNotifier interface {
	NotifyShipment(ctx context.Context, shipment domain.Shipment) error
}

// ProductCatalog stores the products available for sale.
type ProductCatalog interface {
	AddProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, name string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
