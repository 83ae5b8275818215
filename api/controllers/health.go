package controllers

import (
	"context"
	"net/http"

	"github.com/amborella-organics/storefront-backend/api/responses"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// Pinger is the slice of the redis client the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness. It never touches dependencies.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness. A nil pinger means the service runs on
// in-memory persistence and is ready as soon as it is live.
func HealthReady(pinger Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
