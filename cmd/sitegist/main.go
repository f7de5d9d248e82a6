package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitegist"
	"github.com/fwojciec/sitegist/gemini"
	"github.com/fwojciec/sitegist/goquery"
	sitehttp "github.com/fwojciec/sitegist/http"
	"github.com/fwojciec/sitegist/rod"
	"github.com/fwojciec/sitegist/scrape"
	siteslog "github.com/fwojciec/sitegist/slog"
	"github.com/fwojciec/sitegist/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService sitegist.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitegist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitegist --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEGIST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService

	// Wire command-specific dependencies based on command
	if cmd == "scrape" {
		logger := slog.New(slog.DiscardHandler)
		if cli.Scrape.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		var fetcher sitegist.Fetcher = sitehttp.NewFetcher(
			sitehttp.WithTimeout(cli.Scrape.HTTPTimeout),
		)
		fetcher = siteslog.NewLoggingFetcher(fetcher, logger)

		var browser sitegist.RenderFetcher
		if !cli.Scrape.NoBrowser {
			opts := []rod.Option{rod.WithPageLoadTimeout(cli.Scrape.BrowserTimeout)}
			if cli.Scrape.BrowserRevision > 0 {
				opts = append(opts, rod.WithRevision(cli.Scrape.BrowserRevision))
			}
			browser = siteslog.NewLoggingRenderFetcher(rod.NewFetcher(opts...), logger)
			fetcher = scrape.NewEscalatingFetcher(fetcher, browser, cli.Scrape.BrowserTimeout)
		}
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:        fetcher,
			Browser:        browser,
			Parser:         goquery.NewParser(),
			MaxPages:       cli.Scrape.MaxPages,
			ChunkWords:     cli.Scrape.ChunkWords,
			MinRenderWords: cli.Scrape.MinRenderWords,
			RefetchTimeout: cli.Scrape.RefetchTimeout,
			PoliteDelay:    cli.Scrape.PoliteDelay,
			Logger:         logger,
		}

		if cli.Scrape.Synth {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			var synthOpts []gemini.Option
			if tc, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
				logger.Warn("tokenizer unavailable, batching by chunk count", "err", err)
			} else {
				synthOpts = append(synthOpts, gemini.WithTokenCounter(tc))
			}

			deps.Synthesizer = gemini.NewSynthesizer(client, synthOpts...)
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for local token counting. It must be a model the
// google.golang.org/genai/tokenizer package ships vocabularies for.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("SITEGIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitegist.db"
	}
	dir := filepath.Join(home, ".sitegist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitegist.db")
}
