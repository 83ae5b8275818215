package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

const cartSessionCookie = "amb_cart_session"

// CartSession resolves the caller's cart session token, minting one when
// the request carries none. The token travels both as a header (for API
// clients) and a cookie (for the browser storefront); header wins when
// both are present.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(cartSessionHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(cartSessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(cartSessionHeader, sessionID)

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
