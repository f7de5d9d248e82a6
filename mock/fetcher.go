package mock

import (
	"context"
	"time"

	"github.com/fwojciec/sitegist"
)

var _ sitegist.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitegist.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ sitegist.RenderFetcher = (*RenderFetcher)(nil)

// RenderFetcher is a mock implementation of sitegist.RenderFetcher.
type RenderFetcher struct {
	FetchRenderedFn func(ctx context.Context, url string, timeout time.Duration) (string, error)
}

func (f *RenderFetcher) FetchRendered(ctx context.Context, url string, timeout time.Duration) (string, error) {
	return f.FetchRenderedFn(ctx, url, timeout)
}
