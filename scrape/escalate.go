package scrape

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/sitegist"
)

// Ensure EscalatingFetcher implements sitegist.Fetcher at compile time.
var _ sitegist.Fetcher = (*EscalatingFetcher)(nil)

// EscalatingFetcher is a sitegist.Fetcher that retries blocked responses
// through browser automation. HTTP 403 and 503 from the primary fetcher
// usually mean bot detection rather than a missing page, so those two
// statuses escalate to a rendered fetch; every other failure propagates
// unchanged.
type EscalatingFetcher struct {
	primary sitegist.Fetcher
	browser sitegist.RenderFetcher
	timeout time.Duration
}

// NewEscalatingFetcher composes a primary fetcher with a browser fallback.
// Escalated fetches use the given page-load timeout (non-positive selects
// the browser fetcher's default).
func NewEscalatingFetcher(primary sitegist.Fetcher, browser sitegist.RenderFetcher, timeout time.Duration) *EscalatingFetcher {
	return &EscalatingFetcher{
		primary: primary,
		browser: browser,
		timeout: timeout,
	}
}

// Fetch retrieves HTML via the primary fetcher, escalating to the browser
// on HTTP 403 or 503.
func (f *EscalatingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.primary.Fetch(ctx, url)
	if err == nil {
		return html, nil
	}

	var fetchErr *sitegist.FetchError
	if errors.As(err, &fetchErr) && isBlockedStatus(fetchErr.StatusCode) {
		return f.browser.FetchRendered(ctx, url, f.timeout)
	}
	return "", err
}

// Close closes the primary fetcher. The browser fetcher acquires and
// releases its resources per call and needs no cleanup here.
func (f *EscalatingFetcher) Close() error {
	return f.primary.Close()
}

func isBlockedStatus(status int) bool {
	return status == http.StatusForbidden || status == http.StatusServiceUnavailable
}
