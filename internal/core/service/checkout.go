package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/niksmo/shopcart/internal/core/format"
	"github.com/niksmo/shopcart/internal/core/port"
)

var _ port.Checkouter = (*CheckoutService)(nil)

type CheckoutService struct {
	cart  port.CartCheckout
	sink  port.ReceiptSink
	now   func() time.Time
	newID func() string
}

// NewCheckoutService returns a checkout for cart. sink may be nil, then
// receipts are only returned to the caller.
func NewCheckoutService(
	cart port.CartCheckout, sink port.ReceiptSink,
) *CheckoutService {
	return &CheckoutService{
		cart:  cart,
		sink:  sink,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *CheckoutService) Checkout(
	ctx context.Context, name, address string,
) (domain.Receipt, error) {
	const op = "CheckoutService.Checkout"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.cart.IsEmpty() {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(address) == "" {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, domain.ErrMissingBuyerInfo)
	}

	s.cart.SetBuyer(name, address)
	cart := s.cart.Cart()

	r := domain.Receipt{
		OrderID:  s.newID(),
		Name:     name,
		Address:  address,
		Lines:    cart.Lines,
		Total:    cart.Total(),
		PlacedAt: s.now(),
		Text:     format.Receipt(name, address, format.CartSummary(cart)),
	}

	if s.sink != nil {
		if err := s.sink.StoreReceipt(ctx, r); err != nil {
			log.Error("failed to store receipt", "orderID", r.OrderID, "err", err)
		}
	}

	log.Info("checkout completed", "orderID", r.OrderID, "total", r.Total)
	return r, nil
}
