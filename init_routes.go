// Package main — HTTP route registration ve middleware zinciri.
//
// Her operasyon kendi GET route'una bağlanır; route listesi
// services.Operations() sırasından üretilir. Catch-all "/" pattern'i
// bilinmeyen path'leri ve yanlış method'ları JSON 404'e düşürür.
package main

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/akinalp/calculator/config"
	"github.com/akinalp/calculator/handlers"
	"github.com/akinalp/calculator/metrics"
	"github.com/akinalp/calculator/middleware"
	"github.com/akinalp/calculator/pkg/ratelimit"
	"github.com/akinalp/calculator/services"
)

// initRoutes, tüm endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, reg *metrics.Registry) {
	// Calculator — GET /add, /subtract, /multiply, /divide, /power, /sqrt, /mod
	for _, op := range services.Operations() {
		mux.HandleFunc("GET /"+op.Name, h.Calculator.Calc(op.Name))
	}

	// History
	mux.HandleFunc("GET /history", h.History.List)
	mux.HandleFunc("DELETE /history", h.History.Clear)

	// Operasyonel endpoint'ler
	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", reg.Handler())

	mux.HandleFunc("/", handlers.NotFound)
}

// buildHandler, mux'u middleware zinciri ile sarar.
//
// Dıştan içe: CORS → RequestID → Metrics → RateLimit → mux.
// Rate limit'e takılan request'ler de 429 olarak metriklere işlenir.
func buildHandler(
	mux *http.ServeMux,
	reg *metrics.Registry,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
	log *zap.Logger,
) http.Handler {
	metricsMw := middleware.NewMetricsMiddleware(reg, log.Named("http"), middleware.MuxRoute(mux))
	rateLimitMw := middleware.NewRateLimitMiddleware(limiter)

	var handler http.Handler = mux
	handler = rateLimitMw.Wrap(handler)
	handler = metricsMw.Wrap(handler)
	handler = middleware.RequestID(handler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
	})

	return corsHandler.Handler(handler)
}
