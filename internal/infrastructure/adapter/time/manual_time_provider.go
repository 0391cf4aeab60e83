package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to.
// Sleep returns immediately and tickers fire on Advance.
type ManualTimeProvider struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualTimeProvider creates a clock frozen at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the frozen time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the clock forward and fires due tickers
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	now := p.now
	tickers := append([]*manualTicker(nil), p.tickers...)
	p.mu.Unlock()

	for _, t := range tickers {
		t.advance(now)
	}
}

// Since returns the time elapsed since t on the manual clock
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the duration until t on the manual clock
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// Sleep advances the clock instead of blocking
func (p *ManualTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Advance(d.Std())
	return nil
}

// NewTicker returns a ticker driven by Advance
func (p *ManualTimeProvider) NewTicker(d core.Duration) core.Ticker {
	p.mu.Lock()
	defer p.mu.Unlock()

	t := &manualTicker{
		interval: d.Std(),
		next:     p.now.Add(d.Std()),
		ch:       make(chan time.Time, 1),
	}
	p.tickers = append(p.tickers, t)
	return t
}

// WithTimeout uses a real deadline so blocked I/O still unblocks in tests
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *ManualTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}

type manualTicker struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
	ch       chan time.Time
	stopped  bool
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTicker) advance(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || now.Before(t.next) {
		return
	}
	for !now.Before(t.next) {
		t.next = t.next.Add(t.interval)
	}
	// Drop the tick if the reader is behind, like time.Ticker
	select {
	case t.ch <- now:
	default:
	}
}
