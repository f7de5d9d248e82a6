package mock

import (
	"context"

	"github.com/fwojciec/sitegist"
)

var _ sitegist.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of sitegist.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, rootURL string) (*sitegist.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, rootURL string) (*sitegist.ScrapeResult, error) {
	return s.ScrapeFn(ctx, rootURL)
}
