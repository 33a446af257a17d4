package port

import (
	"context"

	"github.com/niksmo/shopcart/internal/core/domain"
)

type ProductFinder interface {
	FindByID(id int) (*domain.Product, bool)
}

type Catalog interface {
	ProductFinder
	AddProduct(ctx context.Context, title, description, price string) (domain.Product, error)
	ListAll() []domain.Product
}

type Cart interface {
	Product(productID string) (*domain.Product, error)
	AddToCart(ctx context.Context, productID, quantity string) error
	Total() int
	IsEmpty() bool
	Summary() string
}

type CartCheckout interface {
	Cart() domain.Cart
	IsEmpty() bool
	SetBuyer(name, address string)
}

type Checkouter interface {
	Checkout(ctx context.Context, name, address string) (domain.Receipt, error)
}

type ReceiptSink interface {
	StoreReceipt(context.Context, domain.Receipt) error
}

// A Prompter asks the user for a single answer. ok is false when no
// more input is available.
type Prompter interface {
	Prompt(label string) (answer string, ok bool)
}
