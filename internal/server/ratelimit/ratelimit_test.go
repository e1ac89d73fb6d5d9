package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllowsUpToCapacity(t *testing.T) {
	// Near-zero refill so the window does not replenish during the test.
	tb := NewTokenBucket(3, 0.0001)

	for i := 0; i < 3; i++ {
		allowed, _, _ := tb.Allow()
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, remaining, _ := tb.Allow()
	assert.False(t, allowed)
	assert.Zero(t, remaining)
}

func TestTokenBucketRefills(t *testing.T) {
	// 100 tokens/sec refills a single token almost immediately.
	tb := NewTokenBucket(1, 100)

	allowed, _, _ := tb.Allow()
	require.True(t, allowed)

	allowed, _, _ = tb.Allow()
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _, _ = tb.Allow()
	assert.True(t, allowed)
}

func TestTokenBucketRetryAfter(t *testing.T) {
	tb := NewTokenBucket(1, 1) // 1 token/sec

	allowed, _, _ := tb.Allow()
	require.True(t, allowed)

	retry := tb.RetryAfter()
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Second)
}

func TestMatchEndpoint(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path   string
		method string
		want   string
	}{
		{path: "/v1/kits", method: "POST", want: "kits-create"},
		{path: "/v1/generate", method: "POST", want: "generate"},
		{path: "/v1/kits", method: "GET", want: "default"},
		{path: "/v1/kits/abc", method: "GET", want: "default"},
		{path: "/v1/providers", method: "GET", want: "default"},
		{path: "/health", method: "GET", want: "health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ec := cfg.MatchEndpoint(tt.path, tt.method)
			require.NotNil(t, ec)
			assert.Equal(t, tt.want, ec.Name)
		})
	}
}

func TestHealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiterEnforcesPerClientLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.setMax("generate", 2)
	// Near-zero refill within the test window.
	for i := range cfg.Endpoints {
		cfg.Endpoints[i].Window = time.Hour
	}

	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("client-a", "/v1/generate", "POST")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("client-a", "/v1/generate", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Zero(t, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// A different client has an independent bucket.
	allowed, _ = limiter.Allow("client-b", "/v1/generate", "POST")
	assert.True(t, allowed)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERATE_MAX", "42")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "120")

	cfg := LoadConfig()

	ec := cfg.MatchEndpoint("/v1/generate", "POST")
	require.NotNil(t, ec)
	assert.Equal(t, 42, ec.MaxRequests)
	assert.Equal(t, 2*time.Minute, ec.Window)
}
