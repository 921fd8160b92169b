// Package ratelimit — IP bazlı, fixed-window request rate limiter.
//
// Her IP için bir pencere (window) içinde en fazla maxRequests istek kabul
// edilir. Pencere dolunca sayaç sıfırlanır. Süresi dolmuş bucket'lar arka
// plandaki goroutine tarafından temizlenir.
//
// In-memory tutulur: servis tek instance çalışır, limit state'inin
// kalıcı olmasına gerek yok.
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type bucket struct {
	count       int
	windowStart time.Time
}

// Limiter, IP bazlı rate limiter.
//
//	limiter := ratelimit.New(120, time.Minute)
//	if !limiter.Allow(ip) { /* 429 */ }
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxRequests int
	window      time.Duration
	now         func() time.Time

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// New, limiter oluşturur ve temizleme goroutine'ini başlatır.
func New(maxRequests int, window time.Duration) *Limiter {
	rl := &Limiter{
		buckets:     make(map[string]*bucket),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Allow, ip'nin bu pencerede bir istek daha yapıp yapamayacağını döner.
// Her çağrı sayacı artırır.
func (rl *Limiter) Allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists || now.Sub(b.windowStart) > rl.window {
		rl.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	b.count++
	return b.count <= rl.maxRequests
}

// RetryAfterSeconds, pencerenin kapanmasına kalan süreyi saniye olarak döner
// (Retry-After header değeri).
func (rl *Limiter) RetryAfterSeconds(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[ip]
	if !exists {
		return 0
	}

	remaining := rl.window - rl.now().Sub(b.windowStart)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// Close, temizleme goroutine'ini durdurur.
func (rl *Limiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

func (rl *Limiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *Limiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window {
			delete(rl.buckets, ip)
		}
	}
}

// ExtractIP, request'ten client IP'sini çıkarır.
// Öncelik: X-Forwarded-For (ilk değer) → X-Real-IP → RemoteAddr.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, kalan süreyi okunabilir hale getirir.
// Örn: 120 → "2 minute(s)", 45 → "45 second(s)"
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
