package cart

import (
	"github.com/shopspring/decimal"

	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
)

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

// updateQuantityRequest carries no validation: zero and negative values
// are meaningful and remove the line item.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items     []cartstore.LineItem `json:"items"`
	ItemCount int                  `json:"itemCount"`
	Subtotal  decimal.Decimal      `json:"subtotal"`
	Shipping  decimal.Decimal      `json:"shipping"`
	Total     decimal.Decimal      `json:"total"`
}

func newCartResponse(store *cartstore.Store) cartResponse {
	totals := store.Totals()
	return cartResponse{
		Items:     store.Items(),
		ItemCount: totals.ItemCount,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Total:     totals.Total,
	}
}
