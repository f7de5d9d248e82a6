package sitegist

import "context"

// URLFrontier manages a crawl queue with deduplication by normalized URL.
// Frontier state lives for a single crawl and is never shared across crawls.
type URLFrontier interface {
	// Push adds a URL to the queue.
	// Returns false if its normalized form has already been seen.
	Push(url string) bool

	// Pop returns the next URL in FIFO order.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs waiting in the queue.
	Len() int

	// Seen returns true if the URL has been queued or processed.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
