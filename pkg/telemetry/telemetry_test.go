package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/aquacatalog/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "test-service",
		ServiceVersion: "test",
		Environment:    "testing",
	}
}

func TestSetup_returnsHandlerAndMetrics(t *testing.T) {
	m, handler := Setup(baseConfig())
	if m == nil {
		t.Fatal("expected non-nil metrics")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler := Setup(baseConfig())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestMiddleware_recordsRoutePattern(t *testing.T) {
	m, handler := Setup(baseConfig())

	r := chi.NewRouter()
	r.Use(m.Middleware())
	r.Get("/api/models/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/models/abc123", http.NoBody))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	body := rr.Body.String()
	if !strings.Contains(body, "http_requests_total") {
		t.Fatal("expected http_requests_total in metrics output")
	}
	if !strings.Contains(body, `route="/api/models/{id}"`) {
		t.Errorf("expected chi route pattern label, got:\n%s", body)
	}
}

func TestMiddleware_capturesStatus(t *testing.T) {
	m, handler := Setup(baseConfig())

	r := chi.NewRouter()
	r.Use(m.Middleware())
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/missing", http.NoBody))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if !strings.Contains(rr.Body.String(), `status="404"`) {
		t.Error("expected status label 404 in metrics output")
	}
}

func TestSetupSentry_emptyDSNIsNoop(t *testing.T) {
	cfg := baseConfig()
	cfg.SentryDSN = ""
	if err := SetupSentry(cfg); err != nil {
		t.Fatalf("expected nil for empty DSN, got %v", err)
	}
}
