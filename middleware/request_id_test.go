package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func captureRequestID(t *testing.T, req *http.Request) (ctxID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	rec = httptest.NewRecorder()
	RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
	})).ServeHTTP(rec, req)
	return ctxID, rec
}

func TestRequestID_Generated(t *testing.T) {
	id, rec := captureRequestID(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Echoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "  trace-42 ")

	id, rec := captureRequestID(t, req)
	assert.Equal(t, "trace-42", id)
	assert.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_InvalidReplaced(t *testing.T) {
	for _, bad := range []string{"has space", strings.Repeat("x", 129), "tab\tid"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, bad)

		id, _ := captureRequestID(t, req)
		assert.NotEqual(t, bad, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "input %q", bad)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
