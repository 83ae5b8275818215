package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/amborella-organics/storefront-backend/internal/cart"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input is the checkout form. Field-presence rules mirror the storefront
// form; validation happens at the HTTP boundary via the validate tags.
// Payment fields are accepted to simulate the flow and are never stored,
// logged, or charged.
type Input struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	ZipCode        string `json:"zipCode" validate:"required"`
	Phone          string `json:"phone,omitempty"`
	ShippingMethod string `json:"shippingMethod,omitempty"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	ExpiryDate     string `json:"expiryDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
	NameOnCard     string `json:"nameOnCard" validate:"required"`
}

// Confirmation is the synthesized order summary shown after a simulated
// checkout. The reference is a display token, not a real order id.
type Confirmation struct {
	Reference string          `json:"reference"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Items     []cart.LineItem `json:"items"`
}

// Service runs the simulated checkout: snapshot the cart totals, clear the
// cart, hand back a confirmation. No payment gateway, no persistence.
type Service struct {
	logg *logger.Logger
}

func NewService(logg *logger.Logger) *Service {
	return &Service{logg: logg}
}

func (s *Service) Submit(ctx context.Context, store *cart.Store, input Input) (*Confirmation, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable")
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	totals := store.Totals()
	confirmation := &Confirmation{
		Reference: newReference(),
		Email:     input.Email,
		Name:      strings.TrimSpace(input.FirstName + " " + input.LastName),
		ItemCount: totals.ItemCount,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Total:     totals.Total,
		Items:     items,
	}

	store.Clear(ctx)

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"reference":  confirmation.Reference,
			"item_count": confirmation.ItemCount,
			"total":      confirmation.Total,
		})
		s.logg.Info(ctx, "checkout.simulated")
	}
	return confirmation, nil
}

func newReference() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("AMB-%s", token[:8])
}
