// Package models — hesaplama geçmişi ve request parametreleri için
// model tanımları.
package models

import (
	"encoding/json"
	"math"
	"time"
)

// Operasyon isimleri. Route path'leri ve history kayıtlarındaki
// "operation" alanı bu değerlerdir.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpPower    = "power"
	OpSqrt     = "sqrt"
	OpMod      = "mod"
)

// Parametre isimleri (query string key'leri).
const (
	ParamNum1 = "num1"
	ParamNum2 = "num2"
)

// Number, JSON'a yazılırken NaN ve ±Inf için null, -0 için 0 üreten float64.
// encoding/json bu değerleri encode edemez; power gibi operasyonlar
// patolojik girdilerde bunları üretebilir ve sonuç olduğu gibi döner.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(positiveZero(f))
}

// positiveZero, -0'ı 0'a çevirir. Diğer değerler değişmez.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// CalculationRecord, başarılı bir hesaplamanın kalıcı kaydı.
// Oluşturulduktan sonra değişmez; sadece toplu silme ile kaldırılır.
type CalculationRecord struct {
	ID         string             `json:"id"`
	Operation  string             `json:"operation"`
	Parameters map[string]float64 `json:"parameters"`
	Result     Number             `json:"result"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Params, doğrulanmış request parametreleri. Sadece request süresince yaşar.
type Params struct {
	N1 float64
	N2 float64
	// Binary, N2'nin dolu olup olmadığını belirtir (sqrt için false).
	Binary bool
}

// AsMap, parametreleri history kaydındaki parameters alanına çevirir.
func (p Params) AsMap() map[string]float64 {
	if !p.Binary {
		return map[string]float64{ParamNum1: positiveZero(p.N1)}
	}
	return map[string]float64{ParamNum1: positiveZero(p.N1), ParamNum2: positiveZero(p.N2)}
}

// CalculationResponse, aritmetik endpoint'lerinin başarılı yanıtı.
type CalculationResponse struct {
	Result Number `json:"result"`
}

// HistoryResponse, GET /history yanıtı.
type HistoryResponse struct {
	History []CalculationRecord `json:"history"`
}

// MessageResponse, DELETE /history yanıtı.
type MessageResponse struct {
	Message string `json:"message"`
}
