package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

func TestJSONRecoverer_WritesEnvelope(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := JSONRecoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/flights", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Message != "internal error" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestJSONRecoverer_AbortHandlerRepanics(t *testing.T) {
	handler := JSONRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if r := recover(); r != http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
			t.Errorf("recovered %v, want ErrAbortHandler", r)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", http.NoBody))
}

func TestWideEvent_LogsSearchFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		domain.SearchUsageFromContext(r.Context()).Record("flight", "filter", 3)
		w.WriteHeader(http.StatusOK)
	})
	handler := chiMiddleware.RequestID(WideEvent(zap.New(core))(inner))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/flights/filter", http.NoBody))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 http_request line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["search_entity"] != "flight" || fields["search_mode"] != "filter" {
		t.Errorf("search fields: %v", fields)
	}
	if fields["search_results"] != int64(3) {
		t.Errorf("search_results: got %v", fields["search_results"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("status: got %v", fields["status"])
	}
}

func TestWideEvent_NoSearchFieldsWhenUnused(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := WideEvent(zap.New(core))(okHandler())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", http.NoBody))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 http_request line, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["search_entity"]; ok {
		t.Error("search_entity should be absent")
	}
}

func TestUserID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", http.NoBody)
	if got := userID(req); got != "anonymous" {
		t.Errorf("no header: got %q", got)
	}
	req.Header.Set(UserIDHeader, "u-42")
	if got := userID(req); got != "u-42" {
		t.Errorf("with header: got %q", got)
	}
}
