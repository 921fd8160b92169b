// Package repository — CalculationRepository, hesaplama geçmişinin
// data access interface'i.
//
// Store append-only kullanılır: Insert, en yeni N kaydı okuma ve toplu silme.
// Kayıt güncelleme yoktur.
package repository

import (
	"context"

	"github.com/akinalp/calculator/models"
)

// CalculationRepository, hesaplama kayıtları için data access interface.
type CalculationRepository interface {
	// Insert, kaydı yazar. ID ve Timestamp repository tarafından atanır
	// ve verilen record üzerine yazılır.
	Insert(ctx context.Context, record *models.CalculationRecord) error

	// ListLatest, en yeni limit kadar kaydı timestamp'e göre azalan sırada döner.
	ListLatest(ctx context.Context, limit int) ([]models.CalculationRecord, error)

	// DeleteAll, tüm kayıtları siler ve silinen satır sayısını döner.
	DeleteAll(ctx context.Context) (int64, error)
}
