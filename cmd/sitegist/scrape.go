package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fwojciec/sitegist"
	"github.com/fwojciec/sitegist/fs"
	"github.com/fwojciec/sitegist/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	normalized, err := sitegist.NormalizeURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	// A cached document short-circuits the crawl unless forced.
	if !c.Force {
		doc, err := deps.Documents.FindDocumentBySourceURL(deps.Ctx, normalized)
		if err == nil {
			fmt.Fprintf(deps.Stdout, "Document for %s already cached (scraped %s). Use --force to scrape again or 'sitegist show %s' to view it.\n",
				normalized, doc.ScrapedAt.Format("2006-01-02"), c.URL)
			return nil
		}
		if sitegist.ErrorCode(err) != sitegist.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
			return err
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %s: %d pages, %s, %d chunks\n",
		scrape.TruncateURL(normalized, 60), len(result.Pages),
		scrape.FormatWords(result.Words()), len(result.Chunks))
	fmt.Fprintf(deps.Stdout, "  content hash %s\n", result.ContentHash)

	if c.Out != "" {
		if err := c.writePages(deps, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing pages: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  wrote %d pages to %s\n", len(result.Pages), c.Out)
	}

	if !c.Synth {
		return nil
	}
	return c.synthesize(deps, normalized, result)
}

// writePages dumps the scraped pages as markdown files, atomically.
func (c *ScrapeCmd) writePages(deps *Dependencies, result *sitegist.ScrapeResult) error {
	store := fs.NewPageStore(filepath.Dir(c.Out), filepath.Base(c.Out))
	for i := range result.Pages {
		if err := store.WritePage(deps.Ctx, &result.Pages[i]); err != nil {
			_ = store.Abort()
			return err
		}
	}
	return store.Commit()
}

// synthesize produces and caches a reference document, reusing the cached
// one when the crawled content is hash-identical.
func (c *ScrapeCmd) synthesize(deps *Dependencies, normalized string, result *sitegist.ScrapeResult) error {
	existing, err := deps.Documents.FindDocumentBySourceURL(deps.Ctx, normalized)
	switch {
	case err == nil && existing.ContentHash == result.ContentHash:
		fmt.Fprintf(deps.Stdout, "Content unchanged, keeping cached document %s\n", existing.ID)
		return nil
	case err == nil:
		if err := deps.Documents.DeleteDocument(deps.Ctx, existing.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
			return err
		}
	case sitegist.ErrorCode(err) != sitegist.ENOTFOUND:
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	content, err := deps.Synthesizer.Synthesize(deps.Ctx, normalized, result.Chunks)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error synthesizing: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	var title string
	if len(result.Pages) > 0 {
		title = result.Pages[0].Title
	}

	doc := &sitegist.Document{
		SourceURL:   normalized,
		Title:       title,
		Content:     content,
		ContentHash: result.ContentHash,
		Pages:       len(result.Pages),
		Words:       result.Words(),
		ScrapedAt:   time.Now().UTC(),
	}
	if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cached reference document %s\n", doc.ID)
	return nil
}
