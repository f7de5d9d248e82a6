// Package fs provides file-based storage for scraped pages.
package fs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/sitegist"
)

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Dot segments would escape the output directory.
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == ".." {
			return "", sitegist.Errorf(sitegist.EINVALID, "path traversal in URL %q", rawURL)
		}
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatPage formats a scraped page with YAML frontmatter.
func FormatPage(page *sitegist.ScrapedPage) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	fmt.Fprintf(&b, "\nwords: %d", page.WordCount)
	b.WriteString("\nscraped: ")
	b.WriteString(page.ScrapedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}
