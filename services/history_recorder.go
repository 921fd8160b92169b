// Package services — HistoryRecorder, başarılı hesaplamaları arka planda
// SQLite'a yazan worker.
//
// Handler kaydı bounded bir channel'a bırakır ve hemen döner; tek bir
// worker goroutine kuyruğu boşaltır. Yazma hatası loglanır ve kayıt
// düşürülür (retry yok, at-most-once). Kuyruk doluysa kayıt yine düşürülür;
// request latency'si store latency'sine bağlanmaz.
package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/repository"
)

// HistoryRecorder, fire-and-forget history yazma interface'i.
type HistoryRecorder interface {
	// Record, kaydı kuyruğa bırakır. Asla bloklamaz, hata dönmez.
	Record(operation string, parameters map[string]float64, result float64)

	// Start, worker goroutine'ini başlatır.
	Start()

	// Stop, yeni kayıt almayı durdurur ve kuyruktaki kayıtların yazılmasını
	// ctx bitene kadar bekler. Graceful shutdown'da çağrılır. ctx biterse
	// yazılmakta olan insert iptal edilir, kalan kayıtlar yazılmadan atılır.
	Stop(ctx context.Context) error
}

// RecorderConfig, recorder ayarları.
type RecorderConfig struct {
	QueueSize    int
	WriteTimeout time.Duration

	// OnPersisted, her başarılı insert'ten sonra worker goroutine'inde çağrılır.
	// History okuma cache'ini invalidate etmek için kullanılır.
	OnPersisted func(record models.CalculationRecord)
}

type historyRecorder struct {
	repo repository.CalculationRepository
	log  *zap.Logger
	cfg  RecorderConfig

	queue chan models.CalculationRecord
	done  chan struct{}

	// abortCtx, Stop timeout'unda iptal edilir. Worker bundan sonra store'a yazmaz.
	abortCtx   context.Context
	abort      context.CancelFunc
	abortGrace time.Duration

	mu      sync.RWMutex // queue kapatma ile Record arasındaki race koruması
	closed  bool
	started bool
}

// NewHistoryRecorder, constructor.
func NewHistoryRecorder(repo repository.CalculationRepository, log *zap.Logger, cfg RecorderConfig) HistoryRecorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	abortCtx, abort := context.WithCancel(context.Background())

	return &historyRecorder{
		repo:       repo,
		log:        log,
		cfg:        cfg,
		queue:      make(chan models.CalculationRecord, cfg.QueueSize),
		done:       make(chan struct{}),
		abortCtx:   abortCtx,
		abort:      abort,
		abortGrace: time.Second,
	}
}

func (r *historyRecorder) Record(operation string, parameters map[string]float64, result float64) {
	record := models.CalculationRecord{
		Operation:  operation,
		Parameters: parameters,
		Result:     models.Number(result),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.Warn("recorder stopped, dropping calculation", zap.String("operation", operation))
		return
	}

	select {
	case r.queue <- record:
	default:
		r.log.Warn("history queue full, dropping calculation",
			zap.String("operation", operation),
			zap.Int("queue_size", r.cfg.QueueSize),
		)
	}
}

func (r *historyRecorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.started = true

	r.log.Info("starting",
		zap.Int("queue_size", r.cfg.QueueSize),
		zap.Duration("write_timeout", r.cfg.WriteTimeout),
	)

	go r.run()
}

func (r *historyRecorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	started := r.started
	r.mu.Unlock()

	if !started {
		r.abort()
		return nil
	}

	select {
	case <-r.done:
		r.abort()
		r.log.Info("stopped")
		return nil
	case <-ctx.Done():
	}

	// Worker kalan kuyruğu yazmadan boşaltır; database ardından kapanabilir.
	r.abort()
	select {
	case <-r.done:
	case <-time.After(r.abortGrace):
		r.log.Warn("worker did not exit after abort")
	}
	return ctx.Err()
}

func (r *historyRecorder) run() {
	defer close(r.done)

	var discarded int
	for record := range r.queue {
		if r.abortCtx.Err() != nil {
			discarded++
			continue
		}
		r.persist(record)
	}

	if discarded > 0 {
		r.log.Warn("stop timed out, pending calculations dropped", zap.Int("pending", discarded))
	}
}

// persist, tek kaydı yazar. Hata client'a hiçbir şekilde ulaşmaz.
func (r *historyRecorder) persist(record models.CalculationRecord) {
	ctx, cancel := context.WithTimeout(r.abortCtx, r.cfg.WriteTimeout)
	defer cancel()

	if err := r.repo.Insert(ctx, &record); err != nil {
		if r.abortCtx.Err() != nil {
			r.log.Warn("calculation write aborted on shutdown", zap.String("operation", record.Operation))
			return
		}
		r.log.Error("failed to save calculation",
			zap.String("operation", record.Operation),
			zap.Error(err),
		)
		return
	}

	if r.cfg.OnPersisted != nil {
		r.cfg.OnPersisted(record)
	}
}
