package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/amborella-organics/storefront-backend/api/responses"
	"github.com/amborella-organics/storefront-backend/internal/content"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// BlogList returns published posts, optionally filtered by category.
func BlogList(blog *content.Blog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		posts := blog.List(category)
		responses.WriteSuccess(w, map[string]any{
			"posts": posts,
			"count": len(posts),
		})
	}
}

// BlogDetail returns one post by slug.
func BlogDetail(blog *content.Blog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		post, err := blog.BySlug(slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, post)
	}
}
