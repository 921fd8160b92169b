// Package middleware — HTTP middleware'leri.
//
// Zincir sırası (dıştan içe): CORS → RequestID → Metrics → RateLimit → mux.
// RequestID en dışta olmalı ki access log ve hata yanıtları aynı id'yi taşısın.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDHeader, client'ın gönderebildiği ve her yanıtta dönen header.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID, gelen X-Request-Id geçerliyse onu kullanır, yoksa uuid üretir.
// Id context'e yazılır ve yanıt header'ına eklenir.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if !isValidRequestID(rid) {
			rid = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, rid)
		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext, RequestID middleware'inin yazdığı id'yi döner.
// Middleware çalışmadıysa boş string.
func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}

// isValidRequestID: boş değil, en fazla 128 karakter, sadece görünür ASCII.
func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, ch := range id {
		if ch < 33 || ch > 126 {
			return false
		}
	}
	return true
}
