package sitegist

import (
	"context"
	"time"
)

// ScrapedPage holds the extracted content of a single crawled page.
// Pages are created once during a crawl and never mutated afterwards.
type ScrapedPage struct {
	// URL as fetched (the root URL is kept verbatim, discovered links
	// are crawled in normalized form).
	URL string

	// NormalizedURL is the deduplication key for the page.
	NormalizedURL string

	// Title is the trimmed <title> text, empty if the page has none.
	Title string

	// Content is the whitespace-normalized plain text of the page.
	Content string

	// WordCount is the number of whitespace-separated words in Content.
	WordCount int

	// ScrapedAt records when the page was fetched.
	ScrapedAt time.Time
}

// ScrapeResult is the outcome of a crawl. It is constructed once at the end
// of a crawl and never mutated thereafter.
type ScrapeResult struct {
	// Pages in crawl order.
	Pages []ScrapedPage

	// Chunks is a deterministic partition of the concatenated page text.
	Chunks []string

	// ContentHash is the SHA-256 hex digest of the whitespace-normalized
	// concatenation of all page contents in crawl order.
	ContentHash string
}

// Words returns the total word count across all pages.
func (r *ScrapeResult) Words() int {
	var n int
	for i := range r.Pages {
		n += r.Pages[i].WordCount
	}
	return n
}

// Scraper crawls a website starting from a root URL and returns the
// harvested, chunked text.
type Scraper interface {
	// Scrape performs a bounded breadth-first crawl rooted at rootURL.
	// A root page that cannot be fetched is a fatal error; failures on
	// later pages degrade to partial results.
	Scrape(ctx context.Context, rootURL string) (*ScrapeResult, error)
}

// PageWriter exports scraped pages to storage.
type PageWriter interface {
	WritePage(ctx context.Context, page *ScrapedPage) error
}
