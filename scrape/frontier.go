package scrape

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/sitegist"
)

// Compile-time interface verification.
var _ sitegist.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with Bloom filter deduplication.
// URLs are deduplicated by their normalized form, so anchor variants that
// differ only by trailing slash or fragment are rejected as duplicates.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push adds a URL to the queue.
// Returns false if the URL is unparseable or its normalized form has
// already been seen.
func (f *Frontier) Push(url string) bool {
	key, err := sitegist.NormalizeURL(url)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestString(key) {
		return false
	}
	f.seen.AddString(key)
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the next URL in FIFO order, giving a breadth-first crawl.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or processed.
func (f *Frontier) Seen(url string) bool {
	key, err := sitegist.NormalizeURL(url)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.TestString(key)
}
