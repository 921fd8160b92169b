// Package main, calculator servisinin giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Logger'ı oluştur
//  3. Database, repository, service, handler ve route'ları kur (newApp)
//  4. HTTP Server'ı başlat
//  5. Graceful shutdown: server → recorder drain → cache → database
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/config"
	"github.com/akinalp/calculator/metrics"
	"github.com/akinalp/calculator/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "calculator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─── 2. Logger ───
	baseLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	defer logger.Flush(baseLog)

	log := baseLog.Named("main")
	log.Info("calculator service starting", zap.Int("port", cfg.Server.Port))

	// ─── 3. Wire-up ───
	a, err := newApp(cfg, baseLog, metrics.Options{DefaultCollectors: true})
	if err != nil {
		return err
	}

	// ─── 4. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// ─── 5. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	var listenErr error
	select {
	case <-done:
		log.Info("shutting down...")
	case listenErr = <-serverErr:
		log.Error("server error", zap.Error(listenErr))
	}

	// Önce HTTP server: yeni request kabul edilmez, mevcutlar bitirilir.
	// Sonra recorder kuyruğu boşaltılır; yanıtı dönmüş hesaplamalar kaybolmaz.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	if err := a.shutdown(ctx); err != nil {
		log.Error("shutdown incomplete", zap.Error(err))
	}

	log.Info("server stopped gracefully")
	return listenErr
}
