package services

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/akinalp/calculator/models"
)

// Arity, bir operasyonun kaç parametre beklediği.
type Arity int

const (
	ArityUnary  Arity = 1 // sadece num1
	ArityBinary Arity = 2 // num1 ve num2
)

// Client'a dönen validation mesajları.
const (
	msgMissingNum1     = "Missing parameter: num1"
	msgMissingBoth     = "Missing parameter: num1 or num2"
	msgInvalidNum1     = "Invalid parameter: num1 must be a number."
	msgInvalidBoth     = "Invalid parameters: num1 and num2 must be numbers."
	msgInvalidDivisor  = "Invalid divisor: num2 cannot be zero."
	msgNegativeOperand = "Invalid parameter: num1 cannot be negative."
)

// ParseParams, query string'den num1 (ve binary ise num2) parametrelerini
// okur ve doğrular. Yan etkisi yoktur, yanıtı caller yazar.
//
// Sıra önemlidir: önce eksik parametre kontrolü, sonra parse.
// Sıfır (ve -0) geçerli bir operand'dır.
func ParseParams(query url.Values, arity Arity) (models.Params, error) {
	if arity == ArityUnary {
		if !query.Has(models.ParamNum1) {
			return models.Params{}, calcError(ErrMissingParameter, msgMissingNum1)
		}
		n1, ok := parseOperand(query.Get(models.ParamNum1))
		if !ok {
			return models.Params{}, calcError(ErrInvalidParameter, msgInvalidNum1)
		}
		return models.Params{N1: n1}, nil
	}

	if !query.Has(models.ParamNum1) || !query.Has(models.ParamNum2) {
		return models.Params{}, calcError(ErrMissingParameter, msgMissingBoth)
	}
	n1, ok1 := parseOperand(query.Get(models.ParamNum1))
	n2, ok2 := parseOperand(query.Get(models.ParamNum2))
	if !ok1 || !ok2 {
		return models.Params{}, calcError(ErrInvalidParameter, msgInvalidBoth)
	}
	return models.Params{N1: n1, N2: n2, Binary: true}, nil
}

// parseOperand, sadece sonlu sayıları kabul eder.
func parseOperand(raw string) (float64, bool) {
	f := ParseLeadingFloat(raw)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isLeadingSpace, sayıdan önce atlanan karakterler: Zs kategorisi, tab/VT/FF,
// BOM (U+FEFF) ve satır sonları (LF, CR, U+2028, U+2029). U+0085 dahil değil.
func isLeadingSpace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', '\n', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ParseLeadingFloat, string'in başındaki en uzun ondalık sayı literal'ini
// parse eder; geri kalan karakterler yoksayılır.
//
//	"5abc" → 5    "  -2.5e3x" → -2500    ".5" → 0.5
//	"0x10" → 0    "Infinity"  → +Inf     "abc" → NaN
//
// Sayı prefix'i yoksa NaN döner. Taşma (ör. "1e400") ±Inf verir.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	n := numericPrefixLen(s)
	if n == 0 {
		return math.NaN()
	}

	prefix := s[:n]
	if strings.HasSuffix(prefix, "Infinity") {
		if prefix[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// numericPrefixLen, [+-]? (Infinity | digits [. digits] | . digits) [(e|E) [+-]? digits]
// kalıbına uyan en uzun prefix'in uzunluğunu döner.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
