package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/amborella-organics/storefront-backend/internal/content"
)

func TestBlogList(t *testing.T) {
	handler := BlogList(content.NewBlog(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blog", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data struct {
			Posts []content.Post `json:"posts"`
			Count int            `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count == 0 {
		t.Fatalf("expected posts")
	}
}

func TestBlogDetail(t *testing.T) {
	blog := content.NewBlog()
	posts := blog.List("")
	if len(posts) == 0 {
		t.Fatalf("expected seeded posts")
	}
	handler := BlogDetail(blog, nil)

	t.Run("found", func(t *testing.T) {
		slug := posts[0].Slug
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("slug", slug)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/"+slug, nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data content.Post `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if envelope.Data.Slug != slug {
			t.Fatalf("expected slug %q got %q", slug, envelope.Data.Slug)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("slug", "missing-post")
		req := httptest.NewRequest(http.MethodGet, "/api/v1/blog/missing-post", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
	})
}
