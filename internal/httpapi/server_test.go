package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"emotebot/internal/metrics"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	s := New(":0", nil, nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.SetCatalogSize(7)

	s := New(":0", m, nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "emotebot_catalog_emotes 7") {
		t.Errorf("metrics output missing catalog gauge:\n%s", body)
	}
}

func TestMetricsEndpointAbsentWithoutCollector(t *testing.T) {
	t.Parallel()

	s := New(":0", nil, nil)
	rec := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
