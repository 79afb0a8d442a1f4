package ratelimit_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kprsnt/brandscore/internal/cache"
	"github.com/kprsnt/brandscore/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) now() time.Time          { return f.current }
func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newLimiter(clock *fakeClock, max int, window time.Duration) *ratelimit.Limiter {
	store := cache.New(1000, 5*time.Minute, cache.WithClock[ratelimit.State](clock.now))
	return ratelimit.New(store, max, window, ratelimit.WithClock(clock.now))
}

func TestLimiter_AllowsUpToQuota(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(clock, 3, time.Minute)

	for i := 0; i < 3; i++ {
		decision := limiter.Check("client")
		require.True(t, decision.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 2-i, decision.Remaining)
	}

	decision := limiter.Check("client")
	assert.False(t, decision.Allowed, "request over quota is rejected")
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, time.Minute, decision.ResetIn)
}

func TestLimiter_RejectionDoesNotConsumeQuota(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(clock, 1, time.Minute)

	require.True(t, limiter.Check("client").Allowed)
	for i := 0; i < 5; i++ {
		assert.False(t, limiter.Check("client").Allowed)
	}

	// The window still resets on schedule despite the rejected attempts.
	clock.advance(61 * time.Second)
	assert.True(t, limiter.Check("client").Allowed)
}

func TestLimiter_WindowRollover(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(clock, 2, time.Minute)

	require.True(t, limiter.Check("client").Allowed)
	require.True(t, limiter.Check("client").Allowed)
	require.False(t, limiter.Check("client").Allowed)

	clock.advance(time.Minute + time.Second)

	decision := limiter.Check("client")
	assert.True(t, decision.Allowed, "first request after reset starts a new window")
	assert.Equal(t, 1, decision.Remaining)
	assert.Equal(t, time.Minute, decision.ResetIn)
}

func TestLimiter_ResetInCountsDown(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(clock, 5, time.Minute)

	first := limiter.Check("client")
	assert.Equal(t, time.Minute, first.ResetIn)

	clock.advance(20 * time.Second)
	second := limiter.Check("client")
	assert.Equal(t, 40*time.Second, second.ResetIn)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	limiter := newLimiter(clock, 1, time.Minute)

	require.True(t, limiter.Check("alice").Allowed)
	assert.False(t, limiter.Check("alice").Allowed)
	assert.True(t, limiter.Check("bob").Allowed)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		want      string
	}{
		{name: "single address", forwarded: "203.0.113.7", want: "203.0.113.7"},
		{name: "first of chain", forwarded: "203.0.113.7, 10.0.0.1, 10.0.0.2", want: "203.0.113.7"},
		{name: "padded address", forwarded: "  203.0.113.7  ", want: "203.0.113.7"},
		{name: "missing header", forwarded: "", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/check-brand", nil)
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, ratelimit.ClientKey(r))
		})
	}
}
