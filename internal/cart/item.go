package cart

import "github.com/shopspring/decimal"

// ProductSnapshot is the slice of a catalog product the cart keeps. The
// price is captured at add time and never re-read from the catalog, so a
// later catalog price change does not touch items already in a cart.
type ProductSnapshot struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Description string
	GrowsInto   string
	Colors      []string
	Category    string
	InStock     bool
}

// LineItem is one product/quantity pairing within a cart. ProductID is
// unique across the items slice; a quantity of zero is never stored.
type LineItem struct {
	ProductID   int             `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
	GrowsInto   string          `json:"growsInto,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	Category    string          `json:"category,omitempty"`
	InStock     bool            `json:"inStock"`
}

func newLineItem(snap ProductSnapshot, qty int) LineItem {
	return LineItem{
		ProductID:   snap.ID,
		Name:        snap.Name,
		Price:       snap.Price,
		Quantity:    qty,
		Description: snap.Description,
		GrowsInto:   snap.GrowsInto,
		Colors:      snap.Colors,
		Category:    snap.Category,
		InStock:     snap.InStock,
	}
}

// LineTotal returns price * quantity for this item.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
