package sitegist

import (
	"context"
	"fmt"
	"time"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// RenderFetcher retrieves HTML after JavaScript rendering, using browser
// automation. Each call acquires and releases its own browser instance, so
// implementations carry no state that outlives a call.
type RenderFetcher interface {
	// FetchRendered navigates to the URL with the given page-load timeout
	// and returns the rendered DOM serialization. A non-positive timeout
	// selects the implementation default.
	FetchRendered(ctx context.Context, url string, timeout time.Duration) (html string, err error)
}

// FetchError reports a failed primary (HTTP) fetch. StatusCode is zero for
// transport-level failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RenderError reports a failed browser-automation fetch.
type RenderError struct {
	URL string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.URL, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
