package services

import (
	"math"
	"slices"

	"github.com/akinalp/calculator/models"
)

// Operation, tek bir aritmetik operasyon: adı, parametre sayısı ve
// saf hesaplama fonksiyonu. Compute sadece domain hatası döner
// (sıfıra bölme, negatif karekök); sonuç yuvarlanmaz.
type Operation struct {
	Name    string
	Arity   Arity
	Compute func(p models.Params) (float64, error)
}

var operations = []Operation{
	{
		Name:  models.OpAdd,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			return p.N1 + p.N2, nil
		},
	},
	{
		Name:  models.OpSubtract,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			return p.N1 - p.N2, nil
		},
	},
	{
		Name:  models.OpMultiply,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			return p.N1 * p.N2, nil
		},
	},
	{
		Name:  models.OpDivide,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			if p.N2 == 0 {
				return 0, calcError(ErrInvalidDivisor, msgInvalidDivisor)
			}
			return p.N1 / p.N2, nil
		},
	},
	{
		// Inf/NaN sonuçlar (ör. 10^400, (-8)^0.5) olduğu gibi döner.
		Name:  models.OpPower,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			return math.Pow(p.N1, p.N2), nil
		},
	},
	{
		Name:  models.OpSqrt,
		Arity: ArityUnary,
		Compute: func(p models.Params) (float64, error) {
			if p.N1 < 0 {
				return 0, calcError(ErrNegativeOperand, msgNegativeOperand)
			}
			return math.Sqrt(p.N1), nil
		},
	},
	{
		// math.Mod truncated'dır: sonucun işareti bölünenin işaretidir.
		Name:  models.OpMod,
		Arity: ArityBinary,
		Compute: func(p models.Params) (float64, error) {
			if p.N2 == 0 {
				return 0, calcError(ErrInvalidDivisor, msgInvalidDivisor)
			}
			return math.Mod(p.N1, p.N2), nil
		},
	},
}

// Operations, tüm operasyonları route kayıt sırasıyla döner.
func Operations() []Operation {
	return slices.Clone(operations)
}

// LookupOperation, isme göre operasyonu bulur.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
