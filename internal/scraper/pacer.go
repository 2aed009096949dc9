package scraper

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum delay between successive page fetches.
// It is a politeness policy toward the scraped sites, not a correctness
// requirement; a zero delay disables pacing entirely.
type Pacer struct {
	delay time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewPacer creates a pacer with the given minimum delay between fetches.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Wait blocks until the pacing delay since the previous fetch has elapsed,
// or the context is canceled. The first call never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.delay <= 0 {
		return ctx.Err()
	}

	p.mu.Lock()
	now := time.Now()
	next := p.last.Add(p.delay)
	if next.Before(now) {
		next = now
	}
	p.last = next
	p.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return ctx.Err()
	}

	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
