// Package goquery provides a goquery-based implementation of sitegist.Parser.
// It extracts normalized plain text, same-origin page links and the title
// from raw HTML.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegist"
)

// Ensure Parser implements sitegist.Parser at compile time.
var _ sitegist.Parser = (*Parser)(nil)

// nonPageExtensions lists resolved-path extensions that never point at an
// HTML page (binary and non-page resources). Links ending in one of these
// are discarded during crawling.
var nonPageExtensions = map[string]struct{}{
	".pdf": {}, ".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
	".webp": {}, ".svg": {}, ".ico": {}, ".zip": {}, ".tar": {},
	".gz": {}, ".css": {}, ".js": {}, ".json": {}, ".xml": {},
	".rss": {}, ".mp3": {}, ".mp4": {}, ".webm": {}, ".woff": {},
	".woff2": {}, ".ttf": {}, ".eot": {},
}

// nonPagePrefixes lists href prefixes that can never lead to a page.
var nonPagePrefixes = []string{"#", "mailto:", "tel:", "javascript:"}

// Parser extracts content from HTML pages. The zero value is ready to use;
// Parser is stateless and safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts text, links and title from html fetched at currentURL.
// Script, style, nav and footer subtrees are removed before any extraction,
// so links inside navigation or footer chrome are not discovered.
func (p *Parser) Parse(html string, currentURL string) (*sitegist.ParseResult, error) {
	base, err := url.Parse(currentURL)
	if err != nil {
		return nil, sitegist.Errorf(sitegist.EINVALID, "invalid page URL %q: %v", currentURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitegist.Errorf(sitegist.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	// Structurally non-content subtrees go first so neither text nor link
	// extraction sees them.
	doc.Find("script, style, nav, footer").Remove()

	text := sitegist.NormalizeWhitespace(doc.Text())
	links := extractLinks(doc, base)

	return &sitegist.ParseResult{
		Text:  text,
		Links: links,
		Title: title,
	}, nil
}

// extractLinks collects same-origin page links in normalized form,
// deduplicated, preserving first-seen document order.
func extractLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	var out []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || isNonPageLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		if !sitegist.SameOrigin(base, resolved) {
			return
		}
		if _, denied := nonPageExtensions[strings.ToLower(path.Ext(resolved.Path))]; denied {
			return
		}

		normalized, err := sitegist.NormalizeURL(resolved.String())
		if err != nil {
			return
		}
		if _, dup := seen[normalized]; dup {
			return
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	})

	return out
}

// isNonPageLink reports whether an href is fragment-only or uses a
// non-navigable scheme.
func isNonPageLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range nonPagePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
