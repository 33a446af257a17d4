package domain

import "time"

const (
	MinLineQuantity = 1
	MaxLineQuantity = 99
)

type CartLine struct {
	Product  *Product
	Quantity int
}

func (l CartLine) Total() int {
	return l.Product.Price * l.Quantity
}

// A Cart keeps at most one line per product, in the order the products
// were first added.
type Cart struct {
	Lines   []CartLine
	Name    string
	Address string
}

func (c *Cart) Line(productID int) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) Total() (total int) {
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

type Receipt struct {
	OrderID  string
	Name     string
	Address  string
	Lines    []CartLine
	Total    int
	PlacedAt time.Time
	Text     string
}
