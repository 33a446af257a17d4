// Package format renders prices, products, carts and receipts as the
// text shown to the buyer.
package format

import (
	"fmt"
	"strings"

	"github.com/niksmo/shopcart/internal/core/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySuffix = " kr."
	emptyCart      = "Karfan er tóm."
	sep            = " — "
)

// Icelandic number pattern groups digits by three with a period.
var pricePrinter = message.NewPrinter(language.Icelandic)

// Price formats amount like 123.000 kr.
func Price(amount int) string {
	return pricePrinter.Sprintf("%d", amount) + currencySuffix
}

// Product formats p as "<title> — <price>".
func Product(p domain.Product) string {
	return p.Title + sep + Price(p.Price)
}

// ProductLine is [Product] followed by the quantity, the unit price and
// the line total.
func ProductLine(p domain.Product, quantity int) string {
	return Product(p) + sep + quantityTotal(p.Price, quantity)
}

func quantityTotal(unitPrice, quantity int) string {
	return fmt.Sprintf(
		"%dx%s samtals %s",
		quantity, Price(unitPrice), Price(unitPrice*quantity),
	)
}

// CatalogEntry formats p as a catalog listing row, index is 1-based.
func CatalogEntry(index int, p domain.Product) string {
	return fmt.Sprintf(
		"#%d %s%s%s%s%s", index, p.Title, sep, p.Description, sep, Price(p.Price),
	)
}

// CartSummary lists one row per cart line followed by the grand total.
func CartSummary(c domain.Cart) string {
	if c.IsEmpty() {
		return emptyCart
	}

	var b strings.Builder
	for _, l := range c.Lines {
		b.WriteString(l.Product.Title)
		b.WriteString(sep)
		if l.Quantity == 1 {
			b.WriteString(Price(l.Product.Price))
		} else {
			b.WriteString(quantityTotal(l.Product.Price, l.Quantity))
		}
		b.WriteByte('\n')
	}
	b.WriteString("Samtals: ")
	b.WriteString(Price(c.Total()))
	return b.String()
}

func Receipt(name, address, summary string) string {
	return fmt.Sprintf(
		"Pöntun móttekin %s.\nVörur verða sendar á %s.\n\n%s",
		name, address, summary,
	)
}
