// Package rod provides a browser-automation implementation of
// sitegist.RenderFetcher using headless Chrome. It exists for pages the
// plain HTTP fetcher cannot handle: client-rendered shells and responses
// blocked for non-browser clients.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitegist"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultPageLoadTimeout is the default timeout for a rendered page load.
const DefaultPageLoadTimeout = 30 * time.Second

// Ensure Fetcher implements sitegist.RenderFetcher at compile time.
var _ sitegist.RenderFetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome. Every call launches
// its own browser and releases it before returning, on both success and
// failure paths, so a Fetcher holds no long-lived browser state and is safe
// for concurrent use.
type Fetcher struct {
	timeout  time.Duration
	revision int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPageLoadTimeout sets the default page-load timeout used when a call
// does not supply its own. Defaults to DefaultPageLoadTimeout (30s).
func WithPageLoadTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRevision pins the browser build the launcher resolves, for
// environments where the auto-detected default is incompatible with the
// installed Chrome. Zero keeps the launcher default.
func WithRevision(rev int) Option {
	return func(f *Fetcher) {
		f.revision = rev
	}
}

// NewFetcher creates a new browser-automation Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultPageLoadTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchRendered navigates to the URL, waits for the page load, and returns
// the rendered DOM serialization. A non-positive timeout selects the
// fetcher's default. Failures are reported as *sitegist.RenderError.
func (f *Fetcher) FetchRendered(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &sitegist.RenderError{URL: url, Err: err}
	}
	if timeout <= 0 {
		timeout = f.timeout
	}

	html, err := f.fetch(ctx, url, timeout)
	if err != nil {
		return "", &sitegist.RenderError{URL: url, Err: err}
	}
	return html, nil
}

// fetch launches a browser, navigates, and captures the rendered HTML.
// The launcher and browser are always released before returning.
func (f *Fetcher) fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if f.revision != 0 {
		lnchr = lnchr.Revision(f.revision)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}
	defer lnchr.Kill()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	page = page.Context(loadCtx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}
