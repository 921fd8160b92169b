// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar; servisin geri kalanı
// os.Getenv() çağırmaz, hazır Config nesnesini alır.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	History   HistoryConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/calculator.db)
}

// LogConfig, zap logger ayarları.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// HistoryConfig, geçmiş kayıt ve okuma ayarları.
type HistoryConfig struct {
	QueueSize    int           // recorder kuyruğunun kapasitesi
	WriteTimeout time.Duration // tek insert için üst sınır
	CacheTTL     time.Duration // GET /history cache süresi, 0 = kapalı
}

// RateLimitConfig, IP bazlı rate limit ayarları. Requests 0 ise kapalı.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Enabled, rate limit aktif mi.
func (c RateLimitConfig) Enabled() bool {
	return c.Requests > 0
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyası yoksa hata vermez; gerçek env variable'lar önceliklidir.
	_ = godotenv.Load()

	// PORT, PaaS ortamlarının (Heroku, Cloud Run) verdiği değişken.
	port, err := strconv.Atoi(getEnv("SERVER_PORT", getEnv("PORT", "3002")))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	queueSize, err := strconv.Atoi(getEnv("HISTORY_QUEUE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_QUEUE_SIZE: %w", err)
	}
	if queueSize <= 0 {
		return nil, fmt.Errorf("invalid HISTORY_QUEUE_SIZE: must be positive, got %d", queueSize)
	}

	writeTimeout, err := time.ParseDuration(getEnv("HISTORY_WRITE_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_WRITE_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("HISTORY_CACHE_TTL", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_CACHE_TTL: %w", err)
	}

	rateRequests, err := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}

	rateWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/calculator.db"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		History: HistoryConfig{
			QueueSize:    queueSize,
			WriteTimeout: writeTimeout,
			CacheTTL:     cacheTTL,
		},
		RateLimit: RateLimitConfig{
			Requests: rateRequests,
			Window:   rateWindow,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:3002").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi boşlukları kırparak böler.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
