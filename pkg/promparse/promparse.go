// Package promparse — Prometheus text exposition çıktısı için okuma yardımcısı.
//
// /metrics çıktısını okumak için kullanılır: healthcheck binary'si toplam
// istek sayısını raporlar, testler middleware'ın doğru label'larla sayaç
// artırdığını doğrular. Parse işini expfmt yapar; bu paket metric family'leri
// exposition'daki satır adlarıyla (_bucket, _sum, _count) düz sample listesine açar.
//
// Kullanım:
//
//	m, err := promparse.Parse(body)
//	total := m.Sum("api_requests_total")
//	adds := m.Value("api_requests_total", map[string]string{"endpoint": "/add", "status": "200"})
package promparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Sample, tek bir metrik satırının parse edilmiş hali.
type Sample struct {
	Labels map[string]string
	Value  float64
}

// Metrics, metrik adı → sample listesi.
// Aynı ad farklı label kombinasyonlarıyla birden fazla kez görünebilir.
type Metrics struct {
	data map[string][]Sample
}

// Parse, exposition text'ini parse eder. Bozuk girdi hata döner.
func Parse(body string) (*Metrics, error) {
	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics: %w", err)
	}

	m := &Metrics{data: make(map[string][]Sample)}
	for name, mf := range families {
		for _, metric := range mf.GetMetric() {
			m.addMetric(name, mf.GetType(), metric)
		}
	}
	return m, nil
}

// addMetric, tek bir metriği exposition satırlarına karşılık gelen sample'lara açar.
func (m *Metrics) addMetric(name string, typ dto.MetricType, metric *dto.Metric) {
	labels := labelMap(metric.GetLabel())

	switch typ {
	case dto.MetricType_COUNTER:
		m.add(name, labels, metric.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		m.add(name, labels, metric.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := metric.GetHistogram()
		for _, b := range h.GetBucket() {
			m.add(name+"_bucket", withLabel(labels, "le", formatBound(b.GetUpperBound())), float64(b.GetCumulativeCount()))
		}
		// expfmt +Inf bucket'ını saklamaz; değeri count ile aynıdır.
		m.add(name+"_bucket", withLabel(labels, "le", "+Inf"), float64(h.GetSampleCount()))
		m.add(name+"_sum", labels, h.GetSampleSum())
		m.add(name+"_count", labels, float64(h.GetSampleCount()))
	case dto.MetricType_SUMMARY:
		s := metric.GetSummary()
		for _, q := range s.GetQuantile() {
			m.add(name, withLabel(labels, "quantile", formatBound(q.GetQuantile())), q.GetValue())
		}
		m.add(name+"_sum", labels, s.GetSampleSum())
		m.add(name+"_count", labels, float64(s.GetSampleCount()))
	default:
		m.add(name, labels, metric.GetUntyped().GetValue())
	}
}

func (m *Metrics) add(name string, labels map[string]string, v float64) {
	m.data[name] = append(m.data[name], Sample{Labels: labels, Value: v})
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	labels := make(map[string]string, len(pairs))
	for _, p := range pairs {
		labels[p.GetName()] = p.GetValue()
	}
	return labels
}

func withLabel(labels map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		out[k] = v
	}
	out[key] = value
	return out
}

// formatBound, le/quantile değerini client_golang'in yazdığı biçimde döner.
func formatBound(f float64) string {
	if math.IsInf(f, +1) {
		return "+Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Has, metriğin en az bir sample'ı var mı.
func (m *Metrics) Has(name string) bool {
	return len(m.data[name]) > 0
}

// Samples, metriğin tüm sample'larını döner.
func (m *Metrics) Samples(name string) []Sample {
	return m.data[name]
}

// Sum, tüm label kombinasyonlarının toplamı.
func (m *Metrics) Sum(name string) float64 {
	var total float64
	for _, s := range m.data[name] {
		total += s.Value
	}
	return total
}

// Value, verilen label'ların hepsini taşıyan sample'ların toplamı.
// Eşleşme yoksa 0 döner. Boş match tüm sample'ları kapsar (Sum ile aynı).
func (m *Metrics) Value(name string, match map[string]string) float64 {
	var total float64
	for _, s := range m.data[name] {
		if matches(s.Labels, match) {
			total += s.Value
		}
	}
	return total
}

func matches(labels, match map[string]string) bool {
	for k, v := range match {
		if labels[k] != v {
			return false
		}
	}
	return true
}
