package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/port"
)

// ErrProductNotFound indicates the catalog holds no product with that name.
var ErrProductNotFound = errors.New("product not found")

// catalogRepository is an in-memory, name-keyed product store.
// Listing preserves insertion order.
type catalogRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

func NewCatalog() port.ProductCatalog {
	return &catalogRepository{
		products: make(map[string]*domain.Product),
	}
}

func (r *catalogRepository) AddProduct(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.Name()]; ok {
		return fmt.Errorf("%w: product %q already in catalog", domain.ErrInvalidArgument, p.Name())
	}

	r.products[p.Name()] = p
	r.order = append(r.order, p.Name())
	return nil
}

func (r *catalogRepository) GetProduct(_ context.Context, name string) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[name]
	if !ok {
		return nil, fmt.Errorf("product %q: %w", name, ErrProductNotFound)
	}
	return p, nil
}

func (r *catalogRepository) ListProducts(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.order))
	for _, name := range r.order {
		products = append(products, r.products[name])
	}
	return products, nil
}
