package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveRequestExposedOnHandler(t *testing.T) {
	m := NewHTTPMetrics()
	m.ObserveRequest(http.MethodGet, "/api/v1/cart", http.StatusOK, 25*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "", http.StatusBadRequest, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",route="/api/v1/cart",status="2xx"} 1`) {
		t.Fatalf("expected cart request counter in scrape output:\n%s", body)
	}
	if !strings.Contains(body, `route="unknown"`) {
		t.Fatalf("expected empty route to normalize to unknown:\n%s", body)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest(http.MethodGet, "/x", http.StatusOK, 0)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", w.Code)
	}
}
