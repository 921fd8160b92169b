// Package main — uygulama bileşenlerinin kurulumu ve kapatılması.
//
// newApp, main() ile entegrasyon testlerinin paylaştığı wire-up'tır:
// config + logger verilir, hazır http.Handler ve kapatılacak kaynaklar döner.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/config"
	"github.com/akinalp/calculator/database"
	"github.com/akinalp/calculator/metrics"
	"github.com/akinalp/calculator/pkg/ratelimit"
)

type app struct {
	db      *database.DB
	svcs    *Services
	limiter *ratelimit.Limiter
	handler http.Handler
	log     *zap.Logger
}

// newApp, database → repository → service → handler → route sırasıyla
// tüm katmanları oluşturur ve birbirine bağlar.
func newApp(cfg *config.Config, log *zap.Logger, metricsOpts metrics.Options) (*app, error) {
	db, err := database.New(cfg.Database.Path, database.Migrations(), log.Named("database"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := initRepositories(db.Conn)
	svcs := initServices(repos, cfg, log)
	h := initHandlers(svcs, log)
	limiter := initRateLimiter(cfg)

	reg := metrics.New(metricsOpts)
	mux := http.NewServeMux()
	initRoutes(mux, h, reg)

	return &app{
		db:      db,
		svcs:    svcs,
		limiter: limiter,
		handler: buildHandler(mux, reg, limiter, cfg, log),
		log:     log,
	}, nil
}

// shutdown, kaynakları bağımlılık sırasının tersine kapatır:
// recorder kuyruğu boşaltılır, sonra cache, limiter ve database kapanır.
// HTTP server bu çağrıdan ÖNCE durdurulmuş olmalı.
func (a *app) shutdown(ctx context.Context) error {
	var errs []error

	if err := a.svcs.Recorder.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("recorder: %w", err))
	}

	a.svcs.historyCache.Close()

	if a.limiter != nil {
		a.limiter.Close()
	}

	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	return errors.Join(errs...)
}
