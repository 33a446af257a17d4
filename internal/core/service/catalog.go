package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/niksmo/shopcart/internal/core/port"
	"github.com/niksmo/shopcart/pkg/validate"
)

var _ port.Catalog = (*CatalogService)(nil)

// CatalogService owns the products that can be bought.
type CatalogService struct {
	products []*domain.Product
}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// AddProduct validates the answers in the order they are asked and
// appends a new product to the catalog.
//
// Ids are the catalog size plus one, products are never removed.
func (s *CatalogService) AddProduct(
	ctx context.Context, title, description, price string,
) (domain.Product, error) {
	const op = "CatalogService.AddProduct"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyTitle)
	}

	if strings.TrimSpace(description) == "" {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyDescription)
	}

	p, ok := validate.ParseInteger(price)
	if !ok || !validate.IsIntegerInRange(float64(p), 1, validate.Unbounded) {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidPrice)
	}

	product := &domain.Product{
		ID:          len(s.products) + 1,
		Title:       title,
		Description: description,
		Price:       p,
	}
	s.products = append(s.products, product)

	log.Info("product added", "id", product.ID, "price", product.Price)
	return *product, nil
}

func (s *CatalogService) FindByID(id int) (*domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ListAll returns the products in the order they were added.
func (s *CatalogService) ListAll() []domain.Product {
	ps := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		ps[i] = *p
	}
	return ps
}

func (s *CatalogService) Len() int {
	return len(s.products)
}
