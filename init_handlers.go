// Package main — Handler katmanı başlatma.
//
// Handler'lar "thin"dir: sadece HTTP parse + service call + response write.
package main

import (
	"go.uber.org/zap"

	"github.com/akinalp/calculator/handlers"
)

// Handlers, handler instance'larını tutan container struct.
type Handlers struct {
	Calculator *handlers.CalculatorHandler
	History    *handlers.HistoryHandler
}

// initHandlers, handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services, log *zap.Logger) *Handlers {
	return &Handlers{
		Calculator: handlers.NewCalculatorHandler(svcs.Calculator),
		History:    handlers.NewHistoryHandler(svcs.History, log.Named("history")),
	}
}
