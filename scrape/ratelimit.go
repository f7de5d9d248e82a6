package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/sitegist"
	"golang.org/x/time/rate"
)

var _ sitegist.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces successive requests to the same domain by a fixed
// politeness delay, using per-domain token buckets. The first request to a
// domain passes immediately, so no delay trails the final request of a
// crawl.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewDomainLimiter creates a new DomainLimiter with the given inter-request
// delay. A non-positive delay disables limiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limit := rate.Inf
		if d.delay > 0 {
			limit = rate.Every(d.delay)
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
