package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse, tüm hata yanıtlarının formatı: { "error": "..." }.
// Client'lar yapılandırılmış error code beklemez, tek bir mesaj string'i yeterli.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON, payload'ı olduğu gibi JSON olarak yazar.
// Envelope yok: { "result": 8 } gibi yanıtlar doğrudan handler'dan gelir.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Header zaten yazıldı, status değiştirilemez, sadece body kesilir.
		return
	}
}

// Error, hata yanıtı gönderir.
// Domain error'ları mapErrorToStatus ile uygun HTTP status code'a çevrilir,
// mesaj olarak err.Error() kullanılır.
func Error(w http.ResponseWriter, err error) {
	ErrorWithMessage(w, mapErrorToStatus(err), err.Error())
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
// Internal hatalarda cause client'a sızdırılmaz; sabit mesaj burada verilir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is() wrap edilmiş error'ları da doğru eşler.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
