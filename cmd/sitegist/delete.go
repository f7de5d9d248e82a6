package main

import (
	"fmt"

	"github.com/fwojciec/sitegist"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitegist.Errorf(sitegist.EINVALID, "use --force to confirm deletion")
	}

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

	if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitegist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document for %q\n", normalized)
	return nil
}
