package services

import (
	"errors"

	"github.com/akinalp/calculator/pkg"
)

// Hesaplama hata türleri. Hepsi client input hatasıdır → HTTP 400.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidDivisor   = errors.New("invalid divisor")
	ErrNegativeOperand  = errors.New("negative operand")
)

// CalcError, client'a gösterilecek mesajı ve hata türünü taşır.
//
// Error() sadece mesajı döner (yanıttaki "error" alanı birebir budur).
// Unwrap hem Kind'ı hem pkg.ErrBadRequest'i döner; böylece
// errors.Is(err, ErrInvalidDivisor) ve pkg.Error'ın 400 eşlemesi birlikte çalışır.
type CalcError struct {
	Kind    error
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

func (e *CalcError) Unwrap() []error {
	return []error{e.Kind, pkg.ErrBadRequest}
}

func calcError(kind error, message string) error {
	return &CalcError{Kind: kind, Message: message}
}
