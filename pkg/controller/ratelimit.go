package controller

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"qcscargo/pkg/metrics"
	"qcscargo/pkg/serrors"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RateLimitOptions configures a RateLimiter.
type RateLimitOptions struct {
	// RequestsPerSecond is the sustained rate allowed per client.
	RequestsPerSecond float64
	// Burst is the number of requests a client may send at once.
	Burst int
	// CacheSize bounds the number of clients tracked at the same time.
	CacheSize int
	// TTL is how long an idle client's limiter is kept.
	TTL time.Duration
}

// RateLimiter keeps one token bucket per client IP. Buckets live in an
// expiring LRU so memory stays bounded under many distinct clients.
type RateLimiter struct {
	opts     RateLimitOptions
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewRateLimiter constructs a RateLimiter.
func NewRateLimiter(opts RateLimitOptions) *RateLimiter {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 10000
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	return &RateLimiter{
		opts:     opts,
		limiters: expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.TTL),
	}
}

// limiter returns the bucket of key, creating it on first use. Get and Add
// are not atomic together, hence the mutex.
func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(key); ok {
		return lim
	}

	lim := rate.NewLimiter(rate.Limit(l.opts.RequestsPerSecond), l.opts.Burst)
	l.limiters.Add(key, lim)

	return lim
}

// Reserve takes a token for key. It returns zero when the request may
// proceed, or how long the client should wait otherwise.
func (l *RateLimiter) Reserve(key string) time.Duration {
	r := l.limiter(key).Reserve()
	if !r.OK() {
		return time.Second
	}

	delay := r.Delay()
	if delay > 0 {
		// the request is rejected, give the token back
		r.Cancel()
	}

	return delay
}

// WithRateLimit rejects clients exceeding their rate with 429 and a
// Retry-After header.
func WithRateLimit(l *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait := l.Reserve(GetClientIP(r)); wait > 0 {
				metrics.RateLimited.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				WriteError(r.Context(), w, serrors.With(serrors.ErrRateLimited, "too many requests, slow down"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
