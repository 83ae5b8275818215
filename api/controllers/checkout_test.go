package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/amborella-organics/storefront-backend/api/middleware"
	cartstore "github.com/amborella-organics/storefront-backend/internal/cart"
	"github.com/amborella-organics/storefront-backend/internal/checkout"
	"github.com/amborella-organics/storefront-backend/internal/products"
	"github.com/amborella-organics/storefront-backend/pkg/config"
)

func testCartConfig() config.CartConfig {
	return config.CartConfig{
		FreeShippingItemCount: 48,
		FreeShippingSubtotal:  decimal.RequireFromString("100"),
		ReducedRateSubtotal:   decimal.RequireFromString("50"),
		ReducedRate:           decimal.RequireFromString("5.99"),
		MidRateSubtotal:       decimal.RequireFromString("25"),
		MidRate:               decimal.RequireFromString("7.99"),
		BaseRate:              decimal.RequireFromString("9.99"),
	}
}

func checkoutBody() []byte {
	payload := map[string]string{
		"email":      "grower@example.com",
		"firstName":  "Iris",
		"lastName":   "Bloom",
		"address":    "12 Garden Way",
		"city":       "Petaluma",
		"state":      "CA",
		"zipCode":    "94952",
		"cardNumber": "4242424242424242",
		"expiryDate": "12/28",
		"cvv":        "123",
		"nameOnCard": "Iris Bloom",
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestCheckout(t *testing.T) {
	sessions := cartstore.NewSessions(cartstore.MemoryPersistenceFactory(), testCartConfig(), nil)
	svc := checkout.NewService(nil)
	catalog := products.NewCatalog()
	handler := Checkout(svc, sessions, nil)

	newRequest := func(body []byte) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req.WithContext(middleware.WithCartSession(req.Context(), "session-a"))
	}

	t.Run("empty cart rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(checkoutBody()))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("confirmation clears the cart", func(t *testing.T) {
		req := newRequest(checkoutBody())
		store := sessions.Get(req.Context(), "session-a")
		product, err := catalog.FindByID(1)
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
		store.AddItem(req.Context(), cartstore.ProductSnapshot{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		}, 2)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
		}

		var envelope struct {
			Data checkout.Confirmation `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !strings.HasPrefix(envelope.Data.Reference, "AMB-") {
			t.Fatalf("unexpected reference %q", envelope.Data.Reference)
		}
		if envelope.Data.ItemCount != 2 {
			t.Fatalf("expected item count 2 got %d", envelope.Data.ItemCount)
		}
		if store.ItemCount() != 0 {
			t.Fatalf("expected cart cleared after checkout")
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest([]byte(`{"email":"grower@example.com"}`)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewReader(checkoutBody()))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", rec.Code)
		}
	})
}
