// Package handlers — CalculatorHandler: aritmetik operasyon endpoint'leri.
//
// Her operasyon kendi route'una bağlanır (GET /add, GET /sqrt, ...).
// Handler sadece HTTP çevirisi yapar; doğrulama ve hesaplama service'te.
package handlers

import (
	"net/http"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg"
	"github.com/akinalp/calculator/services"
)

// CalculatorHandler, hesaplama endpoint'lerini yöneten struct.
type CalculatorHandler struct {
	calculatorService services.CalculatorService
}

// NewCalculatorHandler, constructor.
func NewCalculatorHandler(calculatorService services.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

// Calc, verilen operasyon için handler döner.
//
// GET /{operation}?num1=..&num2=..
// 200: { "result": 8 }
// 400: { "error": "Invalid divisor: num2 cannot be zero." }
func (h *CalculatorHandler) Calc(operation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.calculatorService.Calculate(operation, r.URL.Query())
		if err != nil {
			pkg.Error(w, err)
			return
		}

		pkg.JSON(w, http.StatusOK, models.CalculationResponse{Result: result})
	}
}
