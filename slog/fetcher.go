// Package slog provides log/slog-based logging decorators for sitegist
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitegist"
)

// Ensure LoggingFetcher implements sitegist.Fetcher.
var _ sitegist.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured fetch logging.
type LoggingFetcher struct {
	next   sitegist.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitegist.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingRenderFetcher implements sitegist.RenderFetcher.
var _ sitegist.RenderFetcher = (*LoggingRenderFetcher)(nil)

// LoggingRenderFetcher wraps a RenderFetcher with structured fetch logging.
type LoggingRenderFetcher struct {
	next   sitegist.RenderFetcher
	logger *slog.Logger
}

// NewLoggingRenderFetcher creates a new LoggingRenderFetcher.
func NewLoggingRenderFetcher(next sitegist.RenderFetcher, logger *slog.Logger) *LoggingRenderFetcher {
	return &LoggingRenderFetcher{next: next, logger: logger}
}

// FetchRendered logs the browser fetch and delegates to the wrapped fetcher.
func (f *LoggingRenderFetcher) FetchRendered(ctx context.Context, url string, timeout time.Duration) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("browser fetch",
			"url", url,
			"timeout", timeout,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchRendered(ctx, url, timeout)
}
