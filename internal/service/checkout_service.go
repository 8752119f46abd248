package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

// CheckoutServiceDeps wires the collaborators consumed by checkout.
type CheckoutServiceDeps struct {
	Receipts  port.ReceiptPresenter
	Shipments port.ShipmentNotifier
	Clock     func() time.Time
	Logger    *zap.Logger
}

type checkoutService struct {
	receipts  port.ReceiptPresenter
	shipments port.ShipmentNotifier
	now       func() time.Time
	logger    *zap.Logger
}

func NewCheckoutService(deps CheckoutServiceDeps) (port.CheckoutService, error) {
	if deps.Receipts == nil {
		return nil, errors.New("checkout service: receipt presenter is required")
	}
	if deps.Shipments == nil {
		return nil, errors.New("checkout service: shipment notifier is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &checkoutService{
		receipts:  deps.Receipts,
		shipments: deps.Shipments,
		now:       func() time.Time { return clock().UTC() },
		logger:    logger,
	}, nil
}

// Checkout settles the cart against the customer in two phases: a read-only
// validation of every line and the balance, then a commit that deducts the
// balance, reduces stock, notifies shipping, presents the receipt and clears
// the cart. A validation failure leaves customer, products and cart untouched.
func (s *checkoutService) Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error) {
	if customer == nil {
		return domain.Receipt{}, fmt.Errorf("%w: customer is nil", domain.ErrInvalidArgument)
	}
	if cart == nil {
		return domain.Receipt{}, fmt.Errorf("%w: cart is nil", domain.ErrInvalidArgument)
	}

	now := s.now()

	items, subtotal, fee, total, err := s.validate(customer, cart, now)
	if err != nil {
		s.logger.Info("checkout rejected",
			zap.String("customer", customer.Name()),
			zap.Error(err))
		return domain.Receipt{}, err
	}

	receipt, err := s.commit(ctx, customer, cart, items, subtotal, fee, total, now)
	if err != nil {
		return domain.Receipt{}, err
	}

	s.logger.Info("checkout completed",
		zap.String("customer", customer.Name()),
		zap.String("receiptID", receipt.ID.String()),
		zap.Int("lines", len(receipt.Lines)),
		zap.String("total", total.String()))

	return receipt, nil
}

// validate is read-only. Expiry outranks stock in the reported reason, and
// both are checked per line in cart order before any amount is compared.
func (s *checkoutService) validate(customer *domain.Customer, cart *domain.Cart, now time.Time) ([]domain.CartItem, domain.Money, domain.Money, domain.Money, error) {
	var zero domain.Money

	if cart.IsEmpty() {
		return nil, zero, zero, zero, fmt.Errorf("checkout: %w", domain.ErrEmptyCart)
	}

	items := cart.Items()
	for _, item := range items {
		p := item.Product
		if p.ExpiredAt(now) {
			return nil, zero, zero, zero, fmt.Errorf("product %q: %w", p.Name(), domain.ErrExpiredProduct)
		}
		if item.Quantity > p.Quantity() {
			return nil, zero, zero, zero, fmt.Errorf("%w: %q available %d, required %d",
				domain.ErrOutOfStock, p.Name(), p.Quantity(), item.Quantity)
		}
	}

	subtotal := cart.Subtotal()
	fee, err := ShippingFee(cart.Currency(), cart.ShippableItems())
	if err != nil {
		return nil, zero, zero, zero, fmt.Errorf("ShippingFee: %w", err)
	}

	total, err := subtotal.Add(fee)
	if err != nil {
		return nil, zero, zero, zero, fmt.Errorf("subtotal.Add: %w", err)
	}

	balance := customer.Balance()
	if !balance.SameCurrency(total) {
		return nil, zero, zero, zero, fmt.Errorf("%w: cart is in %s, balance is in %s",
			domain.ErrInvalidArgument, total.Currency, balance.Currency)
	}
	if balance.LessThan(total) {
		return nil, zero, zero, zero, fmt.Errorf("%w: required %s, available %s",
			domain.ErrInsufficientBalance, total, balance)
	}

	return items, subtotal, fee, total, nil
}

// commit is infallible by construction: validate already checked every
// precondition the mutations rely on. The mutating helpers still guard and
// would surface an invariant violation on internal misuse.
func (s *checkoutService) commit(ctx context.Context, customer *domain.Customer, cart *domain.Cart,
	items []domain.CartItem, subtotal, fee, total domain.Money, now time.Time) (domain.Receipt, error) {

	if err := customer.DeductBalance(total); err != nil {
		return domain.Receipt{}, fmt.Errorf("customer.DeductBalance: %w", err)
	}

	for _, item := range items {
		if err := item.Product.ReduceQuantity(item.Quantity); err != nil {
			return domain.Receipt{}, fmt.Errorf("product.ReduceQuantity: %w", err)
		}
	}

	if shippable := filterShippable(items); len(shippable) > 0 {
		shipment, err := buildShipment(shippable, now)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("buildShipment: %w", err)
		}

		if err := s.shipments.NotifyShipment(ctx, shipment); err != nil {
			// Balance and stock are already settled, presentation sits
			// outside the transaction boundary.
			s.logger.Warn("shipment notification failed",
				zap.String("shipmentID", shipment.ID.String()),
				zap.Error(err))
		}
	}

	receipt := buildReceipt(customer, items, subtotal, fee, total, now)
	if err := s.receipts.PresentReceipt(ctx, receipt); err != nil {
		s.logger.Warn("receipt presentation failed",
			zap.String("receiptID", receipt.ID.String()),
			zap.Error(err))
	}

	cart.Clear()
	return receipt, nil
}

func filterShippable(items []domain.CartItem) []domain.CartItem {
	var shippable []domain.CartItem
	for _, item := range items {
		if item.Product.RequiresShipping() {
			shippable = append(shippable, item)
		}
	}
	return shippable
}

func buildShipment(shippable []domain.CartItem, now time.Time) (domain.Shipment, error) {
	lines := make([]domain.ShipmentLine, 0, len(shippable))
	for _, item := range shippable {
		weight, err := item.Product.Weight()
		if err != nil {
			return domain.Shipment{}, fmt.Errorf("product %q: %w", item.Product.Name(), err)
		}

		lines = append(lines, domain.ShipmentLine{
			ProductName: item.Product.Name(),
			Quantity:    item.Quantity,
			Weight:      weight.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	total, err := TotalWeight(shippable)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("TotalWeight: %w", err)
	}

	return domain.Shipment{
		ID:          uuid.New(),
		Lines:       lines,
		TotalWeight: total,
		CreatedAt:   now,
	}, nil
}

func buildReceipt(customer *domain.Customer, items []domain.CartItem,
	subtotal, fee, total domain.Money, now time.Time) domain.Receipt {

	lines := make([]domain.ReceiptLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.ReceiptLine{
			ProductName: item.Product.Name(),
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal(),
		})
	}

	return domain.Receipt{
		ID:               uuid.New(),
		CustomerName:     customer.Name(),
		Lines:            lines,
		Subtotal:         subtotal,
		ShippingFee:      fee,
		Total:            total,
		RemainingBalance: customer.Balance(),
		CreatedAt:        now,
	}
}
