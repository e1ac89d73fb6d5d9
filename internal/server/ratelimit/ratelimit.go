// Package ratelimit provides token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket implements the token bucket algorithm for rate limiting.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewTokenBucket creates a new token bucket with the given capacity and refill rate.
func NewTokenBucket(maxTokens int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     float64(maxTokens),
		maxTokens:  float64(maxTokens),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow attempts to consume one token. Returns true if the request is
// allowed, along with the number of tokens remaining and the time at
// which the bucket will be full again.
func (tb *TokenBucket) Allow() (bool, int, time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	resetTime := tb.fullAt()

	if tb.tokens >= 1 {
		tb.tokens--
		return true, int(tb.tokens), resetTime
	}

	return false, 0, resetTime
}

// RetryAfter returns how long until at least one token is available.
func (tb *TokenBucket) RetryAfter() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens >= 1 {
		return 0
	}

	needed := 1 - tb.tokens
	seconds := needed / tb.refillRate
	return time.Duration(seconds * float64(time.Second))
}

// refill adds tokens based on elapsed time. Caller must hold the lock.
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens += elapsed * tb.refillRate
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastRefill = now
}

// fullAt returns when the bucket will be full. Caller must hold the lock.
func (tb *TokenBucket) fullAt() time.Time {
	missing := tb.maxTokens - tb.tokens
	if missing <= 0 {
		return time.Now()
	}
	seconds := missing / tb.refillRate
	return time.Now().Add(time.Duration(seconds * float64(time.Second)))
}

// Info describes the state of a rate limit decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages per-client token buckets keyed by client ID and endpoint tier.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*TokenBucket
	config  Config
	done    chan struct{}
}

// NewLimiter creates a limiter and starts a background cleanup goroutine
// that evicts idle buckets.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow checks whether a request from clientID against the given path and
// method is allowed under the configured limits.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	ec := l.config.MatchEndpoint(path, method)
	if ec == nil || ec.Unlimited {
		return true, Info{}
	}

	key := clientID + "|" + ec.Name
	bucket := l.bucket(key, ec)

	allowed, remaining, resetTime := bucket.Allow()
	info := Info{
		Limit:     ec.MaxRequests,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = bucket.RetryAfter()
	}
	return allowed, info
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) bucket(key string, ec *EndpointConfig) *TokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket, ok := l.buckets[key]; ok {
		return bucket
	}
	bucket = NewTokenBucket(ec.MaxRequests, ec.RefillRate())
	l.buckets[key] = bucket
	return bucket
}

// cleanupLoop periodically drops buckets that have refilled completely,
// which means the client has been idle for at least a full window.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, bucket := range l.buckets {
		bucket.mu.Lock()
		bucket.refill()
		full := bucket.tokens >= bucket.maxTokens
		bucket.mu.Unlock()
		if full {
			delete(l.buckets, key)
		}
	}
}
