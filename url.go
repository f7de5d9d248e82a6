package sitegist

import (
	"net/url"
	"strings"
)

// NormalizeURL builds the canonical form of a URL used as the sole
// deduplication identity during a crawl: scheme://host + path with the
// trailing slash stripped (the root path stays "/"), query preserved
// verbatim, fragment always dropped. Two URLs differing only by trailing
// slash or fragment normalize to the same string.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}

	path := strings.TrimRight(u.EscapedPath(), "/")
	if path == "" {
		path = "/"
	}

	normalized := u.Scheme + "://" + u.Host + path
	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}
	return normalized, nil
}

// SameOrigin reports whether two parsed URLs share scheme and host.
func SameOrigin(a, b *url.URL) bool {
	return a.Scheme == b.Scheme && a.Host == b.Host
}
