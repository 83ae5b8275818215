package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/amborella-organics/storefront-backend/pkg/config"
)

// CORS returns middleware applying the storefront's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Cart-Session", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
