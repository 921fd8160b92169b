package middleware

import (
	"net/http"
	"strconv"

	"github.com/akinalp/calculator/pkg"
	"github.com/akinalp/calculator/pkg/ratelimit"
)

// RateLimitMiddleware, IP bazlı istek sınırı uygular.
// Limiter nil ise (RATE_LIMIT_REQUESTS=0) hiçbir şey yapmaz.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

// NewRateLimitMiddleware, constructor.
func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Wrap, limit aşıldığında 429 + Retry-After döner.
func (m *RateLimitMiddleware) Wrap(next http.Handler) http.Handler {
	if m.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ratelimit.ExtractIP(r)
		if !m.limiter.Allow(ip) {
			retry := m.limiter.RetryAfterSeconds(ip)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
				"Too many requests, retry in "+ratelimit.FormatRetryMessage(retry))
			return
		}

		next.ServeHTTP(w, r)
	})
}
