// Package receiptlog keeps a log of completed checkouts as an Avro
// object container file.
package receiptlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/hamba/avro/v2/ocf"
	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/niksmo/shopcart/internal/core/port"
	"github.com/niksmo/shopcart/pkg/schema"
)

var _ port.ReceiptSink = (*ReceiptLog)(nil)

type ReceiptLog struct {
	mu   sync.Mutex
	file *os.File
	enc  *ocf.Encoder
}

// Open opens the log at path, creating it if needed. Receipts are
// appended to an existing log.
func Open(path string) (*ReceiptLog, error) {
	const op = "receiptlog.Open"

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	enc, err := ocf.NewEncoder(schema.ReceiptSchemaTextV1, f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ReceiptLog{file: f, enc: enc}, nil
}

func (l *ReceiptLog) StoreReceipt(ctx context.Context, r domain.Receipt) error {
	const op = "ReceiptLog.StoreReceipt"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.Encode(toReceiptV1(r)); err != nil {
		return fmt.Errorf("%s: failed to encode: %w", op, err)
	}

	if err := l.enc.Flush(); err != nil {
		return fmt.Errorf("%s: failed to flush: %w", op, err)
	}
	return nil
}

func (l *ReceiptLog) Close() {
	const op = "ReceiptLog.Close"
	log := slog.With("op", op)

	log.Info("closing receipt log...")

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.enc.Close(); err != nil {
		log.Error("failed to close encoder", "err", err)
	}
	if err := l.file.Close(); err != nil {
		log.Error("failed to close file", "err", err)
		return
	}
	log.Info("receipt log is closed")
}

func toReceiptV1(r domain.Receipt) (v schema.ReceiptV1) {
	v.OrderID = r.OrderID
	v.Name = r.Name
	v.Address = r.Address
	v.Total = int64(r.Total)
	v.PlacedAt = r.PlacedAt
	v.Lines = make([]schema.ReceiptLineV1, len(r.Lines))
	for i, l := range r.Lines {
		v.Lines[i].ProductID = int64(l.Product.ID)
		v.Lines[i].Title = l.Product.Title
		v.Lines[i].UnitPrice = int64(l.Product.Price)
		v.Lines[i].Quantity = int64(l.Quantity)
	}
	return
}
