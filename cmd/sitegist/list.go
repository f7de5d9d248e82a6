package main

import (
	"fmt"

	"github.com/fwojciec/sitegist"
	"github.com/fwojciec/sitegist/scrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, sitegist.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents cached. Use 'sitegist scrape --synth' to create one.")
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d pages, %s  %s\n",
			doc.ScrapedAt.Format("2006-01-02"), scrape.TruncateURL(doc.SourceURL, 48),
			doc.Pages, scrape.FormatWords(doc.Words), title)
	}

	return nil
}
