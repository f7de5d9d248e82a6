// Package scrape provides website crawl orchestration: a bounded
// breadth-first crawl over same-origin pages feeding text extraction,
// chunking and content hashing.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/sitegist"
)

// Crawl defaults, applied when the corresponding Scraper field is zero.
const (
	// DefaultMaxPages bounds how many pages a single crawl visits.
	DefaultMaxPages = 20

	// DefaultMinRenderWords is the word count below which the root page is
	// suspected to be a client-rendered shell and refetched with a browser.
	DefaultMinRenderWords = 400

	// DefaultPoliteDelay is the pause between successive fetches to the
	// target host.
	DefaultPoliteDelay = 500 * time.Millisecond

	// DefaultRefetchTimeout is the extended page-load timeout used for the
	// browser refetch of a suspected client-rendered root page.
	DefaultRefetchTimeout = 45 * time.Second
)

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ sitegist.Scraper = (*Scraper)(nil)

// Scraper orchestrates the crawling of a website. Fetches are strictly
// sequential: one in-flight request at a time, spaced by a politeness
// delay. Every Scrape call owns independent frontier and page state, so a
// single Scraper is safe for concurrent crawls.
type Scraper struct {
	Fetcher sitegist.Fetcher
	Browser sitegist.RenderFetcher
	Parser  sitegist.Parser

	// MaxPages bounds the number of pages visited per crawl.
	MaxPages int

	// ChunkWords is the target chunk size in words.
	ChunkWords int

	// MinRenderWords triggers the browser refetch heuristic on the root page.
	MinRenderWords int

	// RefetchTimeout is the page-load timeout for the heuristic refetch.
	RefetchTimeout time.Duration

	// PoliteDelay spaces successive fetches. Ignored when Limiter is set.
	PoliteDelay time.Duration

	// Limiter overrides the per-crawl politeness limiter.
	Limiter sitegist.DomainLimiter

	Logger *slog.Logger
}

// Scrape performs a bounded breadth-first crawl rooted at rootURL, then
// aggregates the harvested text: pages are concatenated in crawl order,
// whitespace-normalized, hashed (SHA-256) and chunked.
//
// A root page that cannot be fetched or parsed is a fatal error. Failures
// on later pages are logged and skipped; the crawl continues on best-effort
// partial data.
func (s *Scraper) Scrape(ctx context.Context, rootURL string) (*sitegist.ScrapeResult, error) {
	normalizedRoot, err := sitegist.NormalizeURL(rootURL)
	if err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	maxPages := s.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	begin := time.Now()
	logger.Info("starting scrape", "url", normalizedRoot, "max_pages", maxPages)

	pages, err := s.crawl(ctx, rootURL, maxPages, logger)
	if err != nil {
		return nil, err
	}

	contents := make([]string, len(pages))
	for i := range pages {
		contents[i] = pages[i].Content
	}
	combined := sitegist.NormalizeWhitespace(strings.Join(contents, " "))

	chunks := sitegist.ChunkStrings(combined, s.ChunkWords)
	contentHash := HashContent(combined)

	logger.Info("scrape completed",
		"url", normalizedRoot,
		"pages", len(pages),
		"words", sitegist.CountWords(combined),
		"chunks", len(chunks),
		"content_hash", contentHash,
		"duration", time.Since(begin),
	)

	return &sitegist.ScrapeResult{
		Pages:       pages,
		Chunks:      chunks,
		ContentHash: contentHash,
	}, nil
}

// crawl walks the frontier breadth-first until it is empty or the page
// budget is exhausted.
func (s *Scraper) crawl(ctx context.Context, rootURL string, maxPages int, logger *slog.Logger) ([]sitegist.ScrapedPage, error) {
	minRenderWords := s.MinRenderWords
	if minRenderWords <= 0 {
		minRenderWords = DefaultMinRenderWords
	}
	refetchTimeout := s.RefetchTimeout
	if refetchTimeout <= 0 {
		refetchTimeout = DefaultRefetchTimeout
	}
	limiter := s.Limiter
	if limiter == nil {
		delay := s.PoliteDelay
		if delay == 0 {
			delay = DefaultPoliteDelay
		}
		limiter = NewDomainLimiter(delay)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(rootURL)

	var pages []sitegist.ScrapedPage
	visited := 0

	for visited < maxPages {
		current, ok := frontier.Pop()
		if !ok {
			break
		}
		visited++
		isRoot := visited == 1

		// Normalized form of a URL that made it into the frontier is known good.
		normalized, err := sitegist.NormalizeURL(current)
		if err != nil {
			continue
		}

		// The limiter's first token is available immediately, so the delay
		// spaces fetches without trailing the final page.
		if err := limiter.Wait(ctx, hostOf(current)); err != nil {
			if isRoot {
				return nil, err
			}
			break
		}

		html, err := s.Fetcher.Fetch(ctx, current)
		if err != nil {
			if isRoot {
				return nil, err
			}
			logger.Warn("skipping page after fetch error", "url", current, "err", err)
			continue
		}

		result, err := s.Parser.Parse(html, current)
		if err != nil {
			if isRoot {
				return nil, err
			}
			logger.Warn("skipping page after parse error", "url", current, "err", err)
			continue
		}

		// A near-empty root page usually means a client-rendered shell.
		// Refetch it once through the browser; later pages are never
		// escalated, which is a known cost-control limitation.
		if isRoot && s.Browser != nil && sitegist.CountWords(result.Text) < minRenderWords {
			logger.Info("root page has little text, refetching with browser",
				"url", current,
				"words", sitegist.CountWords(result.Text),
			)
			if rendered, renderErr := s.Browser.FetchRendered(ctx, current, refetchTimeout); renderErr != nil {
				logger.Warn("browser refetch failed, keeping initial content", "url", current, "err", renderErr)
			} else if reparsed, parseErr := s.Parser.Parse(rendered, current); parseErr != nil {
				logger.Warn("failed to parse browser-rendered page, keeping initial content", "url", current, "err", parseErr)
			} else {
				result = reparsed
			}
		}

		if result.Text != "" {
			pages = append(pages, sitegist.ScrapedPage{
				URL:           current,
				NormalizedURL: normalized,
				Title:         result.Title,
				Content:       result.Text,
				WordCount:     sitegist.CountWords(result.Text),
				ScrapedAt:     time.Now().UTC(),
			})
		}

		for _, link := range result.Links {
			frontier.Push(link)
		}
	}

	return pages, nil
}

// hostOf returns the host component of a URL, or the URL itself if it
// cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
