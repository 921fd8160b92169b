package middleware

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/metrics"
)

// RouteResolver, request'in metrik label'ında kullanılacak route template'ini
// döner (ör. "/add"). Eşleşmeyen request'ler için raw path döner.
type RouteResolver func(r *http.Request) string

// MuxRoute, ServeMux'un eşleştirdiği pattern'i method prefix'i olmadan döner.
//
//	"GET /add" → "/add"
//
// Pattern boşsa veya catch-all "/" ise request'in path'i kullanılır.
func MuxRoute(mux *http.ServeMux) RouteResolver {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		if _, path, ok := strings.Cut(pattern, " "); ok {
			pattern = path
		}
		if pattern == "" || pattern == "/" {
			return r.URL.Path
		}
		return pattern
	}
}

// statusRecorder, handler'ın yazdığı status code'u yakalar.
// WriteHeader çağrılmadan Write yapılırsa status 200 kabul edilir.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(status int) {
	if !s.wroteHeader {
		s.status = status
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(http.StatusOK)
	}
	return s.ResponseWriter.Write(b)
}

// Unwrap, http.ResponseController'ın alttaki writer'a ulaşması için.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// MetricsMiddleware, her request'in süresini ve sonucunu Prometheus'a işler
// ve bir access log satırı yazar.
type MetricsMiddleware struct {
	metrics *metrics.Registry
	log     *zap.Logger
	route   RouteResolver
}

// NewMetricsMiddleware, constructor. route nil ise raw path kullanılır.
func NewMetricsMiddleware(reg *metrics.Registry, log *zap.Logger, route RouteResolver) *MetricsMiddleware {
	if route == nil {
		route = func(r *http.Request) string { return r.URL.Path }
	}
	return &MetricsMiddleware{metrics: reg, log: log, route: route}
}

// Wrap, handler'ı metrik ve access log ile sarar.
//
// Ölçüm defer içinde yapılır: handler panic'lese bile request sayılır
// (status 500 olarak).
func (m *MetricsMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		completed := false

		defer func() {
			status := rec.status
			if !completed && !rec.wroteHeader {
				status = http.StatusInternalServerError
			}
			elapsed := time.Since(start)

			m.metrics.ObserveRequest(r.Method, m.route(r), status, elapsed)

			m.log.Info("request",
				zap.String("method", r.Method),
				zap.String("url", r.URL.RequestURI()),
				zap.Int("status", status),
				zap.Float64("duration_ms", float64(elapsed)/float64(time.Millisecond)),
				zap.String("request_id", RequestIDFromContext(r.Context())),
			)
		}()

		next.ServeHTTP(rec, r)
		completed = true
	})
}
