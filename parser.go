package sitegist

// ParseResult holds the content extracted from a single HTML page.
type ParseResult struct {
	// Text is the whitespace-normalized plain text of the page with
	// script, style, nav and footer subtrees removed.
	Text string

	// Links are same-origin page links in normalized form, deduplicated,
	// in first-seen document order.
	Links []string

	// Title is the trimmed <title> text, empty if absent.
	Title string
}

// Parser extracts text, links and title from HTML.
type Parser interface {
	// Parse processes raw HTML fetched from currentURL. Relative links are
	// resolved against currentURL; links leaving its scheme+host are
	// discarded.
	Parse(html string, currentURL string) (*ParseResult, error)
}
