package main

import (
	"fmt"

	"github.com/fwojciec/sitegist"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	normalized, err := sitegist.NormalizeURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	doc, err := deps.Documents.FindDocumentBySourceURL(deps.Ctx, normalized)
	if err != nil {
		if sitegist.ErrorCode(err) == sitegist.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no document cached for %q. Use 'sitegist list' to see cached documents.\n", normalized)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, doc.Content)
	return nil
}
