// Package services — iş mantığı katmanı.
//
// CalculatorService: parametre doğrulama → hesaplama → geçmişe kayıt.
// Kayıt fire-and-forget'tir; yanıt store'un durumundan bağımsızdır.
package services

import (
	"fmt"
	"net/url"

	"github.com/akinalp/calculator/models"
	"github.com/akinalp/calculator/pkg"
)

// CalculatorService, aritmetik operasyonları çalıştıran interface.
type CalculatorService interface {
	// Calculate, operation adıyla belirtilen hesaplamayı query
	// parametreleriyle yapar. Validation ve domain hataları *CalcError'dur.
	// Başarılı sonuç history recorder'a gönderilir, ama kaydın sonucu
	// beklenmez.
	Calculate(operation string, query url.Values) (models.Number, error)
}

type calculatorService struct {
	recorder HistoryRecorder
}

// NewCalculatorService, constructor — interface döner.
func NewCalculatorService(recorder HistoryRecorder) CalculatorService {
	return &calculatorService{recorder: recorder}
}

func (s *calculatorService) Calculate(operation string, query url.Values) (models.Number, error) {
	op, ok := LookupOperation(operation)
	if !ok {
		return 0, fmt.Errorf("%w: unknown operation %q", pkg.ErrNotFound, operation)
	}

	params, err := ParseParams(query, op.Arity)
	if err != nil {
		return 0, err
	}

	result, err := op.Compute(params)
	if err != nil {
		return 0, err
	}

	// Sadece başarılı hesaplamalar kaydedilir.
	s.recorder.Record(op.Name, params.AsMap(), result)

	return models.Number(result), nil
}
