// Package main — Service katmanı başlatma.
//
// initServices, service implementasyonlarını oluşturur.
// Sıralama: history cache → HistoryService → HistoryRecorder → CalculatorService.
// Recorder her başarılı insert'te HistoryService'in cache'ini boşaltır,
// o yüzden HistoryService recorder'dan önce hazır olmalı.
package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/config"
	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg/cache"
	"github.com/akinalp/calculator/pkg/ratelimit"
	"github.com/akinalp/calculator/services"
)

// Services, service instance'larını ve kapatılması gereken kaynaklarını tutar.
type Services struct {
	Calculator services.CalculatorService
	History    services.HistoryService
	Recorder   services.HistoryRecorder

	historyCache *cache.TTLCache[string, []models.CalculationRecord]
}

// initServices, service'leri oluşturur ve recorder worker'ını başlatır.
func initServices(repos *Repositories, cfg *config.Config, log *zap.Logger) *Services {
	historyCache := cache.New[string, []models.CalculationRecord](cfg.History.CacheTTL, time.Minute)
	historyService := services.NewHistoryService(repos.Calculation, historyCache)

	recorder := services.NewHistoryRecorder(repos.Calculation, log.Named("recorder"), services.RecorderConfig{
		QueueSize:    cfg.History.QueueSize,
		WriteTimeout: cfg.History.WriteTimeout,
		OnPersisted: func(models.CalculationRecord) {
			historyService.Invalidate()
		},
	})
	recorder.Start()

	return &Services{
		Calculator:   services.NewCalculatorService(recorder),
		History:      historyService,
		Recorder:     recorder,
		historyCache: historyCache,
	}
}

// initRateLimiter, RATE_LIMIT_REQUESTS > 0 ise IP bazlı limiter oluşturur.
// Kapalıysa nil döner; middleware nil limiter'ı pass-through sayar.
func initRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled() {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
}
