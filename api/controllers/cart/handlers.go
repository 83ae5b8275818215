package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amborella-organics/storefront-backend/api/middleware"
	"github.com/amborella-organics/storefront-backend/api/responses"
	"github.com/amborella-organics/storefront-backend/api/validators"
	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/internal/products"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// Fetch returns the session's cart with derived totals.
func Fetch(sessions *cartstore.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, sessions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// AddItem adds a product to the cart, merging quantity when the product
// is already present.
func AddItem(sessions *cartstore.Sessions, catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, sessions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.FindByID(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is out of stock").WithDetails(map[string]any{"productId": product.ID}))
			return
		}

		store.AddItem(r.Context(), snapshotOf(product), payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// UpdateItem sets the quantity of one line item. Zero or negative removes
// the line; an unknown product id leaves the cart unchanged.
func UpdateItem(sessions *cartstore.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, sessions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(r.Context(), productID, payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// RemoveItem deletes one line item. Removing an absent id is a no-op.
func RemoveItem(sessions *cartstore.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, sessions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.RemoveItem(r.Context(), productID)
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

// Clear empties the cart.
func Clear(sessions *cartstore.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := sessionStore(r, sessions)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartResponse(store))
	}
}

func sessionStore(r *http.Request, sessions *cartstore.Sessions) (*cartstore.Store, error) {
	sessionID := middleware.CartSessionFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing")
	}
	return sessions.Get(r.Context(), sessionID), nil
}

func parseProductID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "product id must be numeric")
	}
	return id, nil
}

func snapshotOf(product *products.Product) cartstore.ProductSnapshot {
	return cartstore.ProductSnapshot{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		GrowsInto:   product.GrowsInto,
		Colors:      product.Colors,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}
