package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/niksmo/shopcart/internal/core/format"
	"github.com/niksmo/shopcart/internal/core/port"
	"github.com/niksmo/shopcart/pkg/validate"
)

var _ port.Cart = (*CartService)(nil)
var _ port.CartCheckout = (*CartService)(nil)

// CartService owns the buyer's cart. Products are looked up in the
// catalog it was created with.
type CartService struct {
	products port.ProductFinder
	cart     domain.Cart
}

func NewCartService(products port.ProductFinder) *CartService {
	return &CartService{products: products}
}

// AddToCart adds quantity of the product to the cart. A product already
// in the cart gets its quantity increased instead of a new line.
//
// The merged quantity is not checked against the line maximum.
func (s *CartService) AddToCart(
	ctx context.Context, productID, quantity string,
) error {
	const op = "CartService.AddToCart"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	product, err := s.Product(productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	q, ok := validate.ParseInteger(quantity)
	if !ok || !validate.IsIntegerInRange(
		float64(q), domain.MinLineQuantity, domain.MaxLineQuantity,
	) {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidQuantity)
	}

	if line := s.cart.Line(product.ID); line != nil {
		line.Quantity += q
		log.Info("cart line merged", "productID", product.ID, "quantity", line.Quantity)
		return nil
	}

	s.cart.Lines = append(s.cart.Lines, domain.CartLine{
		Product: product, Quantity: q,
	})
	log.Info("cart line added", "productID", product.ID, "quantity", q)
	return nil
}

// Product resolves a product id as typed by the user.
func (s *CartService) Product(productID string) (*domain.Product, error) {
	id, ok := validate.ParseInteger(productID)
	if !ok || !validate.IsIntegerInRange(float64(id), 1, validate.Unbounded) {
		return nil, domain.ErrInvalidIdentifier
	}

	product, ok := s.products.FindByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (s *CartService) Total() int {
	return s.cart.Total()
}

func (s *CartService) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *CartService) Lines() []domain.CartLine {
	return slices.Clone(s.cart.Lines)
}

func (s *CartService) Summary() string {
	return format.CartSummary(s.cart)
}

// Cart returns a snapshot of the cart. Lines still point at the
// catalog's products.
func (s *CartService) Cart() domain.Cart {
	c := s.cart
	c.Lines = s.Lines()
	return c
}

func (s *CartService) SetBuyer(name, address string) {
	s.cart.Name = name
	s.cart.Address = address
}
