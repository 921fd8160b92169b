package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/akinalp/calculator/metrics"
	"github.com/akinalp/calculator/pkg/promparse"
)

func scrape(t *testing.T, reg *metrics.Registry) *promparse.Metrics {
	t.Helper()
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	parsed, err := promparse.Parse(rec.Body.String())
	require.NoError(t, err)
	return parsed
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":8}`))
	})
	mux.HandleFunc("GET /divide", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	mux.HandleFunc("GET /implicit", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func newTestChain(t *testing.T) (http.Handler, *metrics.Registry, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	reg := metrics.New(metrics.Options{})
	mux := newTestMux()
	mw := NewMetricsMiddleware(reg, zap.New(core), MuxRoute(mux))
	return RequestID(mw.Wrap(mux)), reg, logs
}

func TestMetricsMiddleware_CountsByRouteAndStatus(t *testing.T) {
	h, reg, _ := newTestChain(t)

	for _, target := range []string{"/add?num1=5&num2=3", "/add?num1=1&num2=1", "/divide?num1=1&num2=0"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	parsed := scrape(t, reg)
	assert.Equal(t, 2.0, parsed.Value("api_requests_total",
		map[string]string{"method": "GET", "endpoint": "/add", "status": "200"}))
	assert.Equal(t, 1.0, parsed.Value("api_requests_total",
		map[string]string{"method": "GET", "endpoint": "/divide", "status": "400"}))
	assert.Equal(t, 2.0, parsed.Value("http_request_duration_ms_count",
		map[string]string{"method": "GET", "route": "/add", "status_code": "200"}))
	assert.Equal(t, 1.0, parsed.Value("http_request_duration_ms_count",
		map[string]string{"route": "/divide", "status_code": "400"}))
}

func TestMetricsMiddleware_ImplicitOK(t *testing.T) {
	h, reg, _ := newTestChain(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/implicit", nil))

	assert.Equal(t, 1.0, scrape(t, reg).Value("api_requests_total",
		map[string]string{"endpoint": "/implicit", "status": "200"}))
}

func TestMetricsMiddleware_UnmatchedUsesRawPath(t *testing.T) {
	h, reg, _ := newTestChain(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unknown/path", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/add", nil))

	parsed := scrape(t, reg)
	assert.Equal(t, 1.0, parsed.Value("api_requests_total",
		map[string]string{"method": "GET", "endpoint": "/unknown/path", "status": "404"}))
	assert.Equal(t, 1.0, parsed.Value("api_requests_total",
		map[string]string{"method": "POST", "endpoint": "/add", "status": "404"}))
}

func TestMetricsMiddleware_PanicCountedAs500(t *testing.T) {
	h, reg, _ := newTestChain(t)

	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, 1.0, scrape(t, reg).Value("api_requests_total",
		map[string]string{"endpoint": "/panic", "status": "500"}))
}

func TestMetricsMiddleware_AccessLog(t *testing.T) {
	h, _, logs := newTestChain(t)

	req := httptest.NewRequest(http.MethodGet, "/add?num1=5&num2=3", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/add?num1=5&num2=3", fields["url"])
	assert.Equal(t, int64(200), fields["status"])
	assert.Equal(t, "abc-123", fields["request_id"])
	assert.Contains(t, fields, "duration_ms")
}

func TestMuxRoute(t *testing.T) {
	mux := newTestMux()
	route := MuxRoute(mux)

	assert.Equal(t, "/add", route(httptest.NewRequest(http.MethodGet, "/add?num1=1", nil)))
	assert.Equal(t, "/add", route(httptest.NewRequest(http.MethodHead, "/add", nil)))
	assert.Equal(t, "/nope", route(httptest.NewRequest(http.MethodGet, "/nope", nil)))
	assert.Equal(t, "/add", route(httptest.NewRequest(http.MethodDelete, "/add", nil)))
}
