// Package cache — generic, thread-safe in-memory TTL cache.
//
// History okuma yolunda kullanılır: GET /history her seferinde SQLite'a
// gitmek yerine son sonucu kısa bir süre bellekte tutar. Yazma tarafı
// (recorder, clear) Invalidate ile cache'i boşaltır ve generation'ı artırır.
// Okuma, store'a gitmeden önce Generation alır ve sonucu SetIfGeneration ile
// yazar: arada bir Invalidate olduysa eski sonuç cache'e geri yazılmaz.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache, süresi dolan kayıtları okumayan ve periyodik olarak silen cache.
//
//	c := cache.New[string, []models.CalculationRecord](2*time.Second, time.Minute)
//	c.Set("latest", records)
//	records, ok := c.Get("latest")
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	gen     uint64
	now     func() time.Time

	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// New, cache oluşturur ve temizleme goroutine'ini başlatır.
// ttl <= 0 ise cache devre dışıdır: Set hiçbir şey saklamaz.
func New[K comparable, V any](ttl, cleanupInterval time.Duration) *TTLCache[K, V] {
	c := &TTLCache[K, V]{
		entries:     make(map[K]entry[V]),
		ttl:         ttl,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-c.stopCleanup:
				return
			}
		}
	}()

	return c
}

// Get, key varsa ve süresi dolmamışsa (value, true) döner.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, değeri TTL ile yazar.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Generation, Invalidate sayacının o anki değeri.
func (c *TTLCache[K, V]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.gen
}

// SetIfGeneration, generation hâlâ gen ise değeri yazar.
// Okuma sürerken Invalidate çağrıldıysa false döner ve hiçbir şey yazılmaz.
func (c *TTLCache[K, V]) SetIfGeneration(key K, value V, gen uint64) bool {
	if c.ttl <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	return true
}

// Delete, tek bir key'i siler.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Invalidate, tüm cache'i boşaltır ve generation'ı artırır.
func (c *TTLCache[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.entries = make(map[K]entry[V])
}

// Close, temizleme goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (c *TTLCache[K, V]) Close() {
	c.closeOnce.Do(func() {
		close(c.stopCleanup)
	})
}

func (c *TTLCache[K, V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
