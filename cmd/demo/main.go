// Command demo walks through the checkout scenarios on a small seeded
// catalog: a successful mixed purchase, then every rejection class, then a
// purchase with no shippable lines.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/checkout-demo/internal/console"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/nikolayk812/checkout-demo/internal/service"
)

var storeCurrency = currency.USD

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zap.NewDevelopment: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), logger); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	receipts, err := console.NewReceiptPrinter(os.Stdout)
	if err != nil {
		return fmt.Errorf("console.NewReceiptPrinter: %w", err)
	}

	shipments, err := console.NewShipmentPrinter(os.Stdout)
	if err != nil {
		return fmt.Errorf("console.NewShipmentPrinter: %w", err)
	}

	checkout, err := service.NewCheckoutService(service.CheckoutServiceDeps{
		Receipts:  receipts,
		Shipments: shipments,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("service.NewCheckoutService: %w", err)
	}

	catalog, err := seedCatalog(ctx)
	if err != nil {
		return fmt.Errorf("seedCatalog: %w", err)
	}

	customer, err := domain.NewCustomer("John Doe", money("2000"))
	if err != nil {
		return fmt.Errorf("domain.NewCustomer: %w", err)
	}

	fmt.Printf("Initial customer: %s\n\n", customer)

	scenarios := []struct {
		name string
		run  func() error
	}{
		{"successful checkout", func() error { return successfulCheckout(ctx, checkout, catalog, customer) }},
		{"empty cart", func() error {
			_, err := checkout.Checkout(ctx, customer, domain.NewCart(storeCurrency))
			return err
		}},
		{"insufficient balance", func() error { return singleProductCheckout(ctx, checkout, catalog, customer, "Mobile Phone", 3) }},
		{"out of stock", func() error { return singleProductCheckout(ctx, checkout, catalog, customer, "TV", 10) }},
		{"expired product", func() error { return expiredProductCheckout(ctx, checkout, customer) }},
		{"non-shippable items only", func() error { return singleProductCheckout(ctx, checkout, catalog, customer, "Mobile Scratch Card", 2) }},
	}

	for _, sc := range scenarios {
		fmt.Printf("=== %s ===\n", sc.name)
		if err := sc.run(); err != nil {
			logger.Warn("scenario rejected", zap.String("scenario", sc.name), zap.Error(err))
		}
		fmt.Println()
	}

	fmt.Printf("Final customer: %s\n", customer)
	return nil
}

func seedCatalog(ctx context.Context) (port.ProductCatalog, error) {
	catalog := repository.NewCatalog()
	now := time.Now()

	cheese, err := domain.NewExpirableShippableProduct("Cheese", money("100"), 10,
		now.AddDate(0, 0, 7), decimal.RequireFromString("0.2"))
	if err != nil {
		return nil, err
	}

	tv, err := domain.NewShippableProduct("TV", money("500"), 5, decimal.RequireFromString("15"))
	if err != nil {
		return nil, err
	}

	scratchCard, err := domain.NewProduct("Mobile Scratch Card", money("25"), 20)
	if err != nil {
		return nil, err
	}

	biscuits, err := domain.NewExpirableShippableProduct("Biscuits", money("150"), 8,
		now.AddDate(0, 0, 14), decimal.RequireFromString("0.7"))
	if err != nil {
		return nil, err
	}

	mobile, err := domain.NewProduct("Mobile Phone", money("800"), 3)
	if err != nil {
		return nil, err
	}

	for _, p := range []*domain.Product{cheese, tv, scratchCard, biscuits, mobile} {
		if err := catalog.AddProduct(ctx, p); err != nil {
			return nil, fmt.Errorf("catalog.AddProduct: %w", err)
		}
	}

	return catalog, nil
}

func successfulCheckout(ctx context.Context, checkout port.CheckoutService, catalog port.ProductCatalog, customer *domain.Customer) error {
	cart := domain.NewCart(storeCurrency)

	for _, line := range []struct {
		name string
		qty  int
	}{
		{"Cheese", 2},
		{"TV", 1},
		{"Mobile Scratch Card", 1},
		{"Biscuits", 1},
	} {
		p, err := catalog.GetProduct(ctx, line.name)
		if err != nil {
			return fmt.Errorf("catalog.GetProduct: %w", err)
		}
		if err := cart.Add(p, line.qty); err != nil {
			return fmt.Errorf("cart.Add: %w", err)
		}
	}

	_, err := checkout.Checkout(ctx, customer, cart)
	return err
}

func singleProductCheckout(ctx context.Context, checkout port.CheckoutService, catalog port.ProductCatalog, customer *domain.Customer, name string, qty int) error {
	p, err := catalog.GetProduct(ctx, name)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}

	cart := domain.NewCart(storeCurrency)
	if err := cart.Add(p, qty); err != nil {
		return fmt.Errorf("cart.Add: %w", err)
	}

	_, err = checkout.Checkout(ctx, customer, cart)
	return err
}

func expiredProductCheckout(ctx context.Context, checkout port.CheckoutService, customer *domain.Customer) error {
	expired, err := domain.NewExpirableShippableProduct("Expired Cheese", money("50"), 5,
		time.Now().AddDate(0, 0, -1), decimal.RequireFromString("0.2"))
	if err != nil {
		return fmt.Errorf("domain.NewExpirableShippableProduct: %w", err)
	}

	cart := domain.NewCart(storeCurrency)
	if err := cart.Add(expired, 1); err != nil {
		// Rejected here, before checkout is ever invoked.
		return fmt.Errorf("cart.Add: %w", err)
	}

	_, err = checkout.Checkout(ctx, customer, cart)
	return err
}

func money(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), storeCurrency)
}
