package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/tringgo-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Each named limit keeps
// its own buckets so one endpoint group cannot drain another.
type RateLimiter struct {
	buckets sync.Map // "name|ip" -> *bucket
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	perSecond  float64
	lastRefill time.Time
	// evicted is set once the bucket has left the map; holders must
	// fetch the replacement.
	evicted bool
}

// NewRateLimiter starts a limiter that evicts idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.evictLoop(cleanupInterval)
	return rl
}

// Stop terminates the eviction goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client for the named group.
func (rl *RateLimiter) Limit(name string, perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _ := ctxutil.ClientInfoFromCtx(r.Context())
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !rl.allow(name+"|"+ip, perMinute) {
				w.Header().Set("Retry-After", strconv.Itoa(60/perMinute+1))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, perMinute int) bool {
	for {
		allowed, live := rl.bucketFor(key, perMinute).take(rl.now())
		if live {
			return allowed
		}
	}
}

func (rl *RateLimiter) bucketFor(key string, perMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	capacity := float64(perMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		perSecond:  capacity / 60,
		lastRefill: rl.now(),
	})
	return b.(*bucket)
}

// take spends one token. live is false when the bucket was evicted
// concurrently and nothing was spent.
func (b *bucket) take(now time.Time) (allowed, live bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.evicted {
		return false, false
	}

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return false, true
	}
	b.tokens--
	return true, true
}

func (rl *RateLimiter) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		if now.Sub(b.lastRefill) > bucketIdleTTL {
			b.evicted = true
			rl.buckets.CompareAndDelete(key, b)
		}
		b.mu.Unlock()
		return true
	})
}
