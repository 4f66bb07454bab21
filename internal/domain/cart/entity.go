// internal/domain/cart/entity.go
package cart

import "github.com/your-org/petshop-storefront/internal/domain/catalog"

// LineItem represents one row in the cart: a distinct product id and its
// quantity. Name, price and image are snapshots taken at add time; they are
// not re-fetched from the catalog.
type LineItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    catalog.Cents `json:"price"` // unit price, minor units
	Quantity int           `json:"quantity"`
	Image    string        `json:"image"`
	Size     string        `json:"size,omitempty"`
}

// Item is the caller-supplied product snapshot for Add. Quantity is implied:
// a first Add creates the line with quantity 1, repeats increment it.
type Item struct {
	ID    string
	Name  string
	Price catalog.Cents
	Image string
	Size  string
}

// Totals represents derived cart aggregates
type Totals struct {
	Lines    int           `json:"lines"`     // number of distinct line items
	Count    int           `json:"count"`     // sum of all quantities
	Subtotal catalog.Cents `json:"sub_total"` // sum of price * quantity
}
