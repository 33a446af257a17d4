package domain

// A Product is an item of the catalog.
//
// Products are owned by the catalog and are never changed after they
// are created. Cart lines refer to them by pointer.
type Product struct {
	ID          int
	Title       string
	Description string
	Price       int
}
