package checkout

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/pkg/config"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
)

func testStore(t *testing.T) *cart.Store {
	t.Helper()
	cfg := config.CartConfig{
		FreeShippingItemCount: 48,
		FreeShippingSubtotal:  decimal.NewFromInt(100),
		ReducedRateSubtotal:   decimal.NewFromInt(50),
		ReducedRate:           decimal.RequireFromString("5.99"),
		MidRateSubtotal:       decimal.NewFromInt(25),
		MidRate:               decimal.RequireFromString("7.99"),
		BaseRate:              decimal.RequireFromString("9.99"),
	}
	return cart.NewStore(context.Background(), cart.NewMemoryPersistence(), cfg, nil)
}

func validInput() Input {
	return Input{
		Email:      "grower@example.com",
		FirstName:  "Jamie",
		LastName:   "Reyes",
		Address:    "12 Garden Way",
		City:       "Portland",
		State:      "OR",
		ZipCode:    "97201",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/27",
		CVV:        "123",
		NameOnCard: "Jamie Reyes",
	}
}

func TestSubmitClearsCartAndSnapshotsTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := testStore(t)
	store.AddItem(ctx, cart.ProductSnapshot{ID: 1, Name: "Sage & Marshmallow", Price: decimal.RequireFromString("8.00"), InStock: true}, 3)

	svc := NewService(nil)
	confirmation, err := svc.Submit(ctx, store, validInput())
	require.NoError(t, err)

	assert.Equal(t, 3, confirmation.ItemCount)
	assert.True(t, confirmation.Subtotal.Equal(decimal.RequireFromString("24.00")), "subtotal %s", confirmation.Subtotal)
	assert.True(t, confirmation.Total.Equal(decimal.RequireFromString("33.99")), "total %s", confirmation.Total)
	assert.Equal(t, "Jamie Reyes", confirmation.Name)
	require.Len(t, confirmation.Items, 1)

	assert.Zero(t, store.ItemCount(), "checkout must clear the cart")
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	_, err := svc.Submit(context.Background(), testStore(t), validInput())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSubmitRequiresStore(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	_, err := svc.Submit(context.Background(), nil, validInput())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())
}

func TestReferenceShape(t *testing.T) {
	t.Parallel()

	ref := newReference()
	assert.True(t, strings.HasPrefix(ref, "AMB-"), "reference %q", ref)
	assert.Len(t, ref, 12)
	assert.NotEqual(t, ref, newReference(), "references should not repeat")
}
