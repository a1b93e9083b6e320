package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to.
// It backs local tooling and tests that need to step past lock and OTP expiry.
type ManualTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTimeProvider creates a clock frozen at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the current frozen time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Set moves the clock to t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	p.now = t
	p.mu.Unlock()
}

// Advance moves the clock forward by d
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Since returns the time elapsed since t on this clock
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the duration until t on this clock
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// Sleep advances the clock instead of blocking
func (p *ManualTimeProvider) Sleep(d core.Duration) {
	p.Advance(d.Std())
}

// WithTimeout uses a real timer; the manual clock does not drive context deadlines
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *ManualTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}
