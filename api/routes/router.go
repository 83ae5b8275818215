package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amborella-organics/storefront-backend/api/controllers"
	cartcontrollers "github.com/amborella-organics/storefront-backend/api/controllers/cart"
	"github.com/amborella-organics/storefront-backend/api/middleware"
	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/internal/checkout"
	"github.com/amborella-organics/storefront-backend/internal/content"
	"github.com/amborella-organics/storefront-backend/internal/products"
	"github.com/amborella-organics/storefront-backend/pkg/config"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
	"github.com/amborella-organics/storefront-backend/pkg/metrics"
)

// NewRouter wires the full HTTP surface: health probes, metrics, the
// public catalog and blog, and the session-scoped cart and checkout.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger controllers.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	catalog *products.Catalog,
	blog *content.Blog,
	sessions *cartstore.Sessions,
	checkoutService *checkout.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(redisPinger, logg))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalog, logg))
			r.Get("/featured", controllers.ProductFeatured(catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(catalog, logg))
			r.Get("/{productId}/related", controllers.ProductRelated(catalog, logg))
		})
		r.Get("/categories", controllers.CategoryList(catalog, logg))

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", controllers.BlogList(blog, logg))
			r.Get("/{slug}", controllers.BlogDetail(blog, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(sessions, logg))
				r.Delete("/", cartcontrollers.Clear(sessions, logg))
				r.Post("/items", cartcontrollers.AddItem(sessions, catalog, logg))
				r.Put("/items/{productId}", cartcontrollers.UpdateItem(sessions, logg))
				r.Delete("/items/{productId}", cartcontrollers.RemoveItem(sessions, logg))
			})

			r.Post("/checkout", controllers.Checkout(checkoutService, sessions, logg))
		})
	})

	return r
}
