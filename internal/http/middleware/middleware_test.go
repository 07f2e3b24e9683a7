package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/requestutil"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
)

func newTestRouter(logger *slog.Logger, rec *metrics.Recorder, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(Logging(logger, rec))
	r.Get("/sessions/{sessionID}/rankings", h)
	return r
}

func TestLoggingSetsRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()

	var seenID string
	handler := newTestRouter(logger, rec, func(w http.ResponseWriter, r *http.Request) {
		seenID = requestutil.RequestID(r)
		logging.FromContext(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/rankings", nil)
	req.Header.Set(requestutil.HeaderRequestID, "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "req-42", seenID)
	assert.Equal(t, "req-42", rr.Header().Get(requestutil.HeaderRequestID))

	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "status_code=418")
}

func TestLoggingReplacesInvalidRequestID(t *testing.T) {
	handler := newTestRouter(nil, nil, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/rankings", nil)
	req.Header.Set(requestutil.HeaderRequestID, "bad id with spaces")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get(requestutil.HeaderRequestID)
	require.NotEmpty(t, got)
	assert.NotEqual(t, "bad id with spaces", got)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutePatternFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, unmatchedRoute, routePattern(req))

	rctx := chi.NewRouteContext()
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	assert.Equal(t, unmatchedRoute, routePattern(req))

	rctx.RoutePatterns = []string{"/teams/{teamID}/strategy"}
	assert.Equal(t, "/teams/{teamID}/strategy", routePattern(req))
}

func BenchmarkLogging(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	handler := newTestRouter(logger, metrics.NewRecorder(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/rankings", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
