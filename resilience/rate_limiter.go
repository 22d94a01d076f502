package resilience

import (
	"context"
	"sync"
	"time"
)

// LimiterConfig configures a Limiter.
type LimiterConfig struct {
	// Rate is the sustained number of requests per second.
	Rate float64 `yaml:"rate" mapstructure:"rate"`
	// Burst is the number of requests allowed back to back. Defaults to 1.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// Enabled reports whether the config asks for pacing at all.
func (c LimiterConfig) Enabled() bool { return c.Rate > 0 }

// Limiter is a token bucket shared by every call of a client.
type Limiter struct {
	rate  float64
	burst float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
	now    func() time.Time
}

// NewLimiter creates a limiter with a full bucket. It returns nil when the
// config is disabled; a nil Limiter never waits.
func NewLimiter(cfg LimiterConfig) *Limiter {
	if !cfg.Enabled() {
		return nil
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	l := &Limiter{
		rate:  cfg.Rate,
		burst: float64(cfg.Burst),
		now:   time.Now,
	}
	l.tokens = l.burst
	l.last = l.now()
	return l
}

// Allow takes a token if one is available.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available or ctx ends. The token is reserved
// up front, so concurrent waiters queue in arrival order.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	delay := l.reserve()
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		l.cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the tokens currently available. Negative values count
// reserved waiters.
func (l *Limiter) Tokens() float64 {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.tokens
}

func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	l.tokens--
	if l.tokens >= 0 {
		return 0
	}
	return time.Duration(-l.tokens / l.rate * float64(time.Second))
}

func (l *Limiter) cancel() {
	l.mu.Lock()
	l.tokens++
	l.mu.Unlock()
}

func (l *Limiter) refill() {
	now := l.now()
	l.tokens += now.Sub(l.last).Seconds() * l.rate
	l.last = now
	if l.tokens > l.burst {
		l.tokens = l.burst
	}
}
