package scrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitegist/scrape"
	"github.com/stretchr/testify/assert"
)

func TestHashContent(t *testing.T) {
	t.Parallel()

	t.Run("known digest", func(t *testing.T) {
		t.Parallel()
		// SHA-256("hello world")
		assert.Equal(t,
			"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
			scrape.HashContent("hello world"))
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			scrape.HashContent(""))
	})

	t.Run("lowercase hex of fixed length", func(t *testing.T) {
		t.Parallel()
		got := scrape.HashContent("some content")
		assert.Len(t, got, 64)
		assert.Equal(t, strings.ToLower(got), got)
	})

	t.Run("distinct content yields distinct digests", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, scrape.HashContent("a"), scrape.HashContent("b"))
	})
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"shorter than limit", "https://example.com", 40, "https://example.com"},
		{"exactly at limit", "https://example.com", 19, "https://example.com"},
		{"keeps the end", "https://example.com/docs/getting-started", 20, "...s/getting-started"},
		{"zero length", "https://example.com", 0, ""},
		{"tiny limit", "https://example.com", 3, "htt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scrape.TruncateURL(tt.url, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.maxLen)
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5242880, "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.FormatBytes(tt.bytes))
		})
	}
}

func TestFormatWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words int
		want  string
	}{
		{0, "0 words"},
		{999, "999 words"},
		{1000, "~1k words"},
		{1499, "~1k words"},
		{1500, "~2k words"},
		{25000, "~25k words"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.FormatWords(tt.words))
		})
	}
}
