package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/sitegist"
	"github.com/fwojciec/sitegist/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Documents   sitegist.DocumentService
	Scraper     sitegist.Scraper
	Synthesizer sitegist.Synthesizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape a website into text chunks"`
	List   ListCmd   `cmd:"" help:"List cached reference documents"`
	Show   ShowCmd   `cmd:"" help:"Show the cached reference document for a URL"`
	Delete DeleteCmd `cmd:"" help:"Delete the cached reference document for a URL"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Root URL to scrape"`

	MaxPages       int           `env:"SITEGIST_MAX_PAGES" default:"20" help:"Page budget per crawl"`
	ChunkWords     int           `env:"SITEGIST_CHUNK_WORDS" default:"650" help:"Target words per chunk"`
	MinRenderWords int           `env:"SITEGIST_MIN_RENDER_WORDS" default:"400" help:"Word count below which the root page is refetched with a browser"`
	PoliteDelay    time.Duration `env:"SITEGIST_POLITE_DELAY" default:"500ms" help:"Delay between fetches to the same domain"`
	HTTPTimeout    time.Duration `env:"SITEGIST_HTTP_TIMEOUT" default:"30s" help:"Plain HTTP fetch timeout"`
	BrowserTimeout time.Duration `env:"SITEGIST_BROWSER_TIMEOUT" default:"30s" help:"Browser page-load timeout"`
	RefetchTimeout time.Duration `env:"SITEGIST_REFETCH_TIMEOUT" default:"45s" help:"Page-load timeout for the sparse-root browser refetch"`

	BrowserRevision int  `env:"SITEGIST_BROWSER_REVISION" help:"Pinned Chromium revision"`
	NoBrowser       bool `help:"Disable browser escalation and refetch"`

	Out     string `short:"o" help:"Write scraped pages as markdown files under this directory"`
	Synth   bool   `help:"Synthesize and cache a reference document (requires GEMINI_API_KEY)"`
	Force   bool   `short:"f" help:"Scrape even when a cached document exists"`
	Verbose bool   `short:"v" help:"Verbose logging to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" help:"Root URL the document was scraped from"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Root URL the document was scraped from"`
	Force bool   `help:"Confirm deletion"`
}
