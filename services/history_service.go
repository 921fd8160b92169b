// Package services — HistoryService, hesaplama geçmişini okuma ve temizleme.
package services

import (
	"context"
	"fmt"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg/cache"
	"github.com/akinalp/calculator/repository"
)

// HistoryLimit, GET /history'nin döndüğü maksimum kayıt sayısı.
const HistoryLimit = 100

const latestKey = "latest"

// HistoryService, geçmiş endpoint'lerinin iş mantığı.
type HistoryService interface {
	// Latest, en yeni HistoryLimit kaydı yeniden eskiye döner.
	Latest(ctx context.Context) ([]models.CalculationRecord, error)

	// Clear, tüm kayıtları siler. Boş store'da da başarılıdır.
	Clear(ctx context.Context) (int64, error)

	// Invalidate, okuma cache'ini boşaltır. Recorder her insert'ten sonra çağırır.
	Invalidate()
}

type historyService struct {
	repo  repository.CalculationRepository
	cache *cache.TTLCache[string, []models.CalculationRecord]
}

// NewHistoryService, constructor — interface döner.
func NewHistoryService(
	repo repository.CalculationRepository,
	readCache *cache.TTLCache[string, []models.CalculationRecord],
) HistoryService {
	return &historyService{repo: repo, cache: readCache}
}

func (s *historyService) Latest(ctx context.Context) ([]models.CalculationRecord, error) {
	if records, ok := s.cache.Get(latestKey); ok {
		return records, nil
	}

	gen := s.cache.Generation()
	records, err := s.repo.ListLatest(ctx, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	// Okuma sırasında insert ya da clear olduysa sonuç cache'e yazılmaz.
	s.cache.SetIfGeneration(latestKey, records, gen)
	return records, nil
}

func (s *historyService) Clear(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		// Kısmi silme ihtimaline karşı cache yine boşaltılır.
		s.cache.Invalidate()
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	s.cache.Invalidate()
	return deleted, nil
}

func (s *historyService) Invalidate() {
	s.cache.Invalidate()
}
