package format

import (
	"testing"

	"github.com/niksmo/shopcart/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

var (
	hat   = &domain.Product{ID: 1, Title: "HTML húfa", Description: "Húfa sem heldur hausnum heitum.", Price: 5000}
	socks = &domain.Product{ID: 2, Title: "CSS sokkar", Description: "Sokkar.", Price: 3000}
)

func TestPrice(t *testing.T) {
	tests := map[int]string{
		0:        "0 kr.",
		7:        "7 kr.",
		999:      "999 kr.",
		5000:     "5.000 kr.",
		20000:    "20.000 kr.",
		123000:   "123.000 kr.",
		1234567:  "1.234.567 kr.",
		10000000: "10.000.000 kr.",
	}

	for amount, want := range tests {
		assert.Equal(t, want, Price(amount), "amount %d", amount)
	}
}

func TestProduct(t *testing.T) {
	assert.Equal(t, "CSS sokkar — 3.000 kr.", Product(*socks))
	assert.Equal(t,
		"CSS sokkar — 3.000 kr. — 2x3.000 kr. samtals 6.000 kr.",
		ProductLine(*socks, 2),
	)
}

func TestCatalogEntry(t *testing.T) {
	assert.Equal(t,
		"#1 HTML húfa — Húfa sem heldur hausnum heitum. — 5.000 kr.",
		CatalogEntry(1, *hat),
	)
}

func TestCartSummary(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "Karfan er tóm.", CartSummary(domain.Cart{}))
	})

	t.Run("Lines", func(t *testing.T) {
		c := domain.Cart{Lines: []domain.CartLine{
			{Product: hat, Quantity: 1},
			{Product: socks, Quantity: 2},
		}}
		want := "HTML húfa — 5.000 kr.\n" +
			"CSS sokkar — 2x3.000 kr. samtals 6.000 kr.\n" +
			"Samtals: 11.000 kr."
		assert.Equal(t, want, CartSummary(c))
	})
}

func TestReceipt(t *testing.T) {
	want := "Pöntun móttekin Jón.\nVörur verða sendar á Laugavegi 1.\n\nKarfan er tóm."
	assert.Equal(t, want, Receipt("Jón", "Laugavegi 1", "Karfan er tóm."))
}
