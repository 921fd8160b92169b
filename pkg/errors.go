// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri sayesinde karşılaştırma string yerine
// referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrBadRequest) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Service katmanı bunları (veya bunlara unwrap olan error'ları) döner,
// handler katmanı Error() ile HTTP status code'a çevirir.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")
)
