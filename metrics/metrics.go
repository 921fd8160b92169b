// Package metrics — HTTP request metriklerinin Prometheus registry'si.
//
// Registry main'de bir kez oluşturulur ve middleware'e inject edilir;
// package-level default registry kullanılmaz. Böylece her test kendi
// izole registry'si ile çalışır.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric isimleri ve label'ları dashboard'larla sözleşmedir, değiştirilmemeli.
const (
	RequestDurationName = "http_request_duration_ms"
	RequestsTotalName   = "api_requests_total"
)

// DurationBuckets, milisaniye cinsinden histogram sınırları.
var DurationBuckets = []float64{0.1, 5, 15, 50, 100, 500}

// Registry, HTTP metriklerini ve bunların expose edildiği registry'yi taşır.
type Registry struct {
	reg *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// Options, registry oluşturma ayarları.
type Options struct {
	// DefaultCollectors, Go runtime ve process collector'larını ekler.
	DefaultCollectors bool
}

// New, metrikleri tanımlar ve yeni bir prometheus.Registry'ye kaydeder.
func New(opts Options) *Registry {
	m := &Registry{
		reg: prometheus.NewRegistry(),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    RequestDurationName,
			Help:    "Duration of HTTP requests in ms",
			Buckets: DurationBuckets,
		}, []string{"method", "route", "status_code"}),

		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: RequestsTotalName,
			Help: "Total number of API requests",
		}, []string{"method", "endpoint", "status"}),
	}

	m.reg.MustRegister(m.requestDuration, m.requestsTotal)

	if opts.DefaultCollectors {
		m.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// ObserveRequest, tamamlanan tek bir request'i histogram ve counter'a işler.
// route hem "route" hem "endpoint" label'ına yazılır.
func (m *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	ms := float64(elapsed) / float64(time.Millisecond)

	m.requestDuration.WithLabelValues(method, route, code).Observe(ms)
	m.requestsTotal.WithLabelValues(method, route, code).Inc()
}

// Gatherer, registry'yi okuma tarafı için döner (testler, healthcheck).
func (m *Registry) Gatherer() prometheus.Gatherer {
	return m.reg
}

// Handler, Prometheus text exposition formatında /metrics handler'ı.
// Gather hatasında 500 döner.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
