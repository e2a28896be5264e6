package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newTestLogger creates a Logger backed by requestIDHandler writing to buf.
func newTestLogger(buf *bytes.Buffer) Logger {
	sl := slog.New(&requestIDHandler{slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})})
	return &slogLogger{Logger: sl}
}

func parseLastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			last = lines[i]
			break
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("failed to parse log line %q: %v", last, err)
	}
	return m
}

// TestInfoContext_NoRequestID verifies no request_id field appears when the
// context carries none.
func TestInfoContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.InfoContext(context.Background(), "plain")

	entry := parseLastLine(t, &buf)
	if _, ok := entry["request_id"]; ok {
		t.Error("request_id should not be present without chi middleware")
	}
}

// TestErrorContext_KeyValuePairs verifies callers simply pass "error", err as
// a regular key-value pair.
func TestErrorContext_KeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.ErrorContext(context.Background(), "something went wrong", "error", errors.New("boom"), "model_id", "123")

	entry := parseLastLine(t, &buf)
	if entry["error"] == nil {
		t.Error("expected error field")
	}
	if entry["model_id"] != "123" {
		t.Errorf("expected model_id=123, got %v", entry["model_id"])
	}
}

// TestWith_bindsAttributes verifies With returns a logger carrying the bound pair.
func TestWith_bindsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf).With("component", "catalog")

	log.Info("hello")

	entry := parseLastLine(t, &buf)
	if entry["component"] != "catalog" {
		t.Errorf("expected component=catalog, got %v", entry["component"])
	}
}

// TestLoggerMiddleware_InjectsRequestID verifies the Logger middleware uses
// InfoContext so the chi request_id appears in request logs.
func TestLoggerMiddleware_InjectsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Get("/test", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entry := parseLastLine(t, &buf)
	if _, ok := entry["request_id"]; !ok {
		t.Error("expected request_id in request log")
	}
	if entry["method"] != "GET" {
		t.Errorf("expected method GET, got %v", entry["method"])
	}
}

// TestRecovery_convertsPanicTo500 verifies the Recovery middleware turns a
// handler panic into a 500 and logs the stack.
func TestRecovery_convertsPanicTo500(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	entry := parseLastLine(t, &buf)
	if entry["msg"] != "panic recovered" {
		t.Errorf("expected panic log entry, got %v", entry["msg"])
	}
}
