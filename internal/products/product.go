package products

import "github.com/shopspring/decimal"

// Product is one catalog entry. The catalog is fixed data compiled into
// the binary; there is no inventory backend behind it.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	GrowsInto   string          `json:"growsInto"`
	Colors      []string        `json:"colors"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
}

// Category pairs a category id with its display name and live product count.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Sort orders accepted by List.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)
