package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/amborella-organics/storefront-backend/api/responses"
	"github.com/amborella-organics/storefront-backend/api/validators"
	"github.com/amborella-organics/storefront-backend/internal/products"
	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// ProductList returns the catalog, optionally filtered by category,
// search query, and sort order.
func ProductList(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		input := products.ListInput{
			Category: strings.TrimSpace(query.Get("category")),
			Query:    strings.TrimSpace(query.Get("q")),
			Sort:     strings.TrimSpace(query.Get("sort")),
		}

		results := catalog.List(input)
		responses.WriteSuccess(w, productListResponse{
			Products: results,
			Count:    len(results),
		})
	}
}

// ProductFeatured returns the curated set shown on the home page.
func ProductFeatured(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := catalog.Featured()
		responses.WriteSuccess(w, productListResponse{
			Products: results,
			Count:    len(results),
		})
	}
}

// ProductDetail returns one product by id.
func ProductDetail(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.FindByID(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// ProductRelated returns other products in the same category. The limit
// defaults to 3, matching the detail page layout.
func ProductRelated(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 3, 1, 12)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		related, err := catalog.Related(id, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, productListResponse{
			Products: related,
			Count:    len(related),
		})
	}
}

// CategoryList returns category ids with display names and live counts.
func CategoryList(catalog *products.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"categories": catalog.Categories(),
		})
	}
}

type productListResponse struct {
	Products []products.Product `json:"products"`
	Count    int                `json:"count"`
}

func parseProductID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "product id must be numeric")
	}
	return id, nil
}
