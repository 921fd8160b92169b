// Command healthcheck, container HEALTHCHECK için servisin /health
// endpoint'ini yoklar. Exit code 0 = sağlıklı, 1 = sağlıksız.
//
//	healthcheck            # sadece /health
//	healthcheck -metrics   # ek olarak /metrics'ten toplam istek sayısını yazdırır
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/akinalp/calculator/metrics"
	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg/promparse"
)

const (
	defaultHealthcheckURL = "http://127.0.0.1:3002/health"
	envHealthcheckURL     = "CALCULATOR_HEALTHCHECK_URL"
)

func resolveHealthcheckURL() string {
	if raw := strings.TrimSpace(os.Getenv(envHealthcheckURL)); raw != "" {
		return raw
	}
	return defaultHealthcheckURL
}

// probeHealth, 2xx ve {"status":"ok"} bekler.
func probeHealth(client *http.Client, healthURL string) error {
	resp, err := client.Get(healthURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected health status %d", resp.StatusCode)
	}

	var body models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("invalid health body: %w", err)
	}
	if body.Status != models.HealthStatusOK {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}

// metricsURL, health URL'inin path'ini /metrics ile değiştirir.
func metricsURL(healthURL string) (string, error) {
	u, err := url.Parse(healthURL)
	if err != nil {
		return "", err
	}
	u.Path = "/metrics"
	u.RawQuery = ""
	return u.String(), nil
}

// requestTotal, /metrics'ten api_requests_total'ın tüm label'lar üzerindeki
// toplamını okur.
func requestTotal(client *http.Client, metricsURL string) (float64, error) {
	resp, err := client.Get(metricsURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected metrics status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	parsed, err := promparse.Parse(string(body))
	if err != nil {
		return 0, err
	}
	if !parsed.Has(metrics.RequestsTotalName) {
		return 0, nil
	}
	return parsed.Sum(metrics.RequestsTotalName), nil
}

func main() {
	showMetrics := flag.Bool("metrics", false, "print total served requests from /metrics")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	healthURL := resolveHealthcheckURL()
	err := probeHealth(client, healthURL)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			fmt.Printf("Healthcheck timed out: %s\n", healthURL)
		} else {
			fmt.Printf("Healthcheck failed (%s): %v\n", healthURL, err)
		}
		os.Exit(1)
	}

	if *showMetrics {
		target, err := metricsURL(healthURL)
		if err != nil {
			fmt.Printf("Invalid healthcheck url (%s): %v\n", healthURL, err)
			os.Exit(1)
		}
		total, err := requestTotal(client, target)
		if err != nil {
			fmt.Printf("Metrics scrape failed (%s): %v\n", target, err)
			os.Exit(1)
		}
		fmt.Printf("requests_total=%.0f\n", total)
	}
	os.Exit(0)
}
