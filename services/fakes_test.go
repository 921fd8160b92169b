package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akinalp/calculator/models"
)

// fakeRepo, in-memory CalculationRepository. Insert'i block kanalıyla
// bekletmek ve hata enjekte etmek mümkündür.
type fakeRepo struct {
	mu        sync.Mutex
	records   []models.CalculationRecord
	insertErr error
	listErr   error
	deleteErr error
	listCalls int
	block     chan struct{}

	// listTaken/listRelease doluysa ListLatest snapshot'ı aldıktan sonra
	// listTaken'a sinyal verir ve listRelease kapanana kadar bekler.
	listTaken   chan struct{}
	listRelease chan struct{}
}

func (f *fakeRepo) Insert(ctx context.Context, record *models.CalculationRecord) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}
	record.ID = fmt.Sprintf("rec-%d", len(f.records)+1)
	record.Timestamp = time.Now().UTC()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRepo) ListLatest(_ context.Context, limit int) ([]models.CalculationRecord, error) {
	f.mu.Lock()
	f.listCalls++
	if f.listErr != nil {
		f.mu.Unlock()
		return nil, f.listErr
	}

	out := make([]models.CalculationRecord, 0, limit)
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	taken, release := f.listTaken, f.listRelease
	f.mu.Unlock()

	if taken != nil {
		taken <- struct{}{}
		<-release
	}
	return out, nil
}

func (f *fakeRepo) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	n := int64(len(f.records))
	f.records = nil
	return n, nil
}

func (f *fakeRepo) snapshot() []models.CalculationRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CalculationRecord(nil), f.records...)
}

// recordedCall, fakeRecorder'a gelen tek Record çağrısı.
type recordedCall struct {
	operation  string
	parameters map[string]float64
	result     float64
}

// fakeRecorder, Record çağrılarını senkron olarak biriktirir.
type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeRecorder) Record(operation string, parameters map[string]float64, result float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{operation, parameters, result})
}

func (f *fakeRecorder) Start() {}

func (f *fakeRecorder) Stop(context.Context) error { return nil }
