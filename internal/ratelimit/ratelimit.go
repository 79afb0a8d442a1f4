// Package ratelimit enforces a fixed-window request quota per client,
// backed by the shared bounded cache. Limits are per-process and best
// effort: state resets when the process restarts.
package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/kprsnt/brandscore/internal/cache"
)

// State is the counter stored per client key. It is replaced, not merged,
// when a new window starts.
type State struct {
	Count     int
	ResetTime time.Time
}

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// Limiter applies a fixed-window quota using a shared cache of States.
type Limiter struct {
	store  *cache.Cache[State]
	max    int
	window time.Duration
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a Limiter allowing max requests per window, tracking client
// state in store.
func New(store *cache.Cache[State], max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{
		store:  store,
		max:    max,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check records a request attempt for key and reports whether it is within
// quota. The lookup-and-increment runs atomically inside the cache, so
// concurrent requests for the same key cannot lose counts. A rejected
// request does not consume quota.
func (l *Limiter) Check(key string) Decision {
	now := l.now()

	var decision Decision
	l.store.Mutate(key, func(state State, ok bool) (State, bool) {
		if !ok || now.After(state.ResetTime) {
			decision = Decision{
				Allowed:   true,
				Remaining: l.max - 1,
				ResetIn:   l.window,
			}
			return State{Count: 1, ResetTime: now.Add(l.window)}, true
		}

		if state.Count >= l.max {
			decision = Decision{
				Allowed:   false,
				Remaining: 0,
				ResetIn:   state.ResetTime.Sub(now),
			}
			return state, false
		}

		state.Count++
		decision = Decision{
			Allowed:   true,
			Remaining: l.max - state.Count,
			ResetIn:   state.ResetTime.Sub(now),
		}
		return state, true
	})

	return decision
}

// ClientKey derives the rate-limit key for a request from the forwarded
// address header: first element, trimmed. Requests without the header all
// share one "unknown" bucket. That coarsening is deliberate; the header is
// the only identity signal available behind a proxy.
func ClientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(first)
}
