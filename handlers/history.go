// Package handlers — HistoryHandler: hesaplama geçmişi endpoint'leri.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg"
	"github.com/akinalp/calculator/services"
)

// Store hatalarında client'a dönen sabit mesajlar; cause sadece loglanır.
const (
	msgHistoryReadFailed  = "Failed to retrieve calculation history"
	msgHistoryClearFailed = "Failed to clear calculation history"
	msgHistoryCleared     = "History cleared successfully"
)

// HistoryHandler, geçmiş endpoint'lerini yöneten struct.
type HistoryHandler struct {
	historyService services.HistoryService
	log            *zap.Logger
}

// NewHistoryHandler, constructor.
func NewHistoryHandler(historyService services.HistoryService, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, log: log}
}

// List godoc
// GET /history
// En yeni 100 kaydı yeniden eskiye döner. Boş store'da { "history": [] }.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.historyService.Latest(r.Context())
	if err != nil {
		h.log.Error("failed to retrieve history", zap.Error(err))
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, msgHistoryReadFailed)
		return
	}

	if records == nil {
		records = []models.CalculationRecord{}
	}

	pkg.JSON(w, http.StatusOK, models.HistoryResponse{History: records})
}

// Clear godoc
// DELETE /history
// Tüm kayıtları siler. Tekrar çağrılması da başarılıdır.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.historyService.Clear(r.Context())
	if err != nil {
		h.log.Error("failed to clear history", zap.Error(err))
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, msgHistoryClearFailed)
		return
	}

	h.log.Info("history cleared", zap.Int64("deleted", deleted))
	pkg.JSON(w, http.StatusOK, models.MessageResponse{Message: msgHistoryCleared})
}
