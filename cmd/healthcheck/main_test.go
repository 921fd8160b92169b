package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHealthcheckURLDefaultsToLoopback(t *testing.T) {
	t.Setenv(envHealthcheckURL, "")
	assert.Equal(t, defaultHealthcheckURL, resolveHealthcheckURL())
}

func TestResolveHealthcheckURLUsesEnvOverride(t *testing.T) {
	want := "http://127.0.0.1:18080/health"
	t.Setenv(envHealthcheckURL, want)
	assert.Equal(t, want, resolveHealthcheckURL())
}

func TestProbeHealthPassesOnOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 500 * time.Millisecond}
	assert.NoError(t, probeHealth(client, srv.URL))
}

func TestProbeHealthFailsOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 500 * time.Millisecond}
	assert.Error(t, probeHealth(client, srv.URL))
}

func TestProbeHealthFailsOnUnexpectedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"starting"}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 500 * time.Millisecond}
	assert.Error(t, probeHealth(client, srv.URL))
}

func TestProbeHealthFailsOnConnectionError(t *testing.T) {
	client := &http.Client{Timeout: 200 * time.Millisecond}
	// Kapalı port: bağlantı hatası.
	assert.Error(t, probeHealth(client, "http://127.0.0.1:1/health"))
}

func TestMetricsURL(t *testing.T) {
	got, err := metricsURL("http://127.0.0.1:3002/health?verbose=1")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3002/metrics", got)
}

func TestRequestTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`# HELP api_requests_total Total number of API requests
# TYPE api_requests_total counter
api_requests_total{endpoint="/add",method="GET",status="200"} 3
api_requests_total{endpoint="/divide",method="GET",status="400"} 2
`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 500 * time.Millisecond}
	total, err := requestTotal(client, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
}

func TestRequestTotalEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# no samples yet\n"))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 500 * time.Millisecond}
	total, err := requestTotal(client, srv.URL)
	require.NoError(t, err)
	assert.Zero(t, total)
}
