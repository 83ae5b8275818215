package controllers

import (
	"net/http"

	"github.com/amborella-organics/storefront-backend/api/middleware"
	"github.com/amborella-organics/storefront-backend/api/responses"
	"github.com/amborella-organics/storefront-backend/api/validators"
	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/internal/checkout"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// Checkout runs the simulated checkout for the caller's cart session and
// returns the confirmation summary.
func Checkout(svc *checkout.Service, sessions *cartstore.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.CartSessionFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var payload checkout.Input
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store := sessions.Get(r.Context(), sessionID)
		confirmation, err := svc.Submit(r.Context(), store, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
