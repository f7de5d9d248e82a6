package sitegist

import "strings"

// DefaultChunkWords is the default target chunk size in words. Sized so a
// chunk fits comfortably in a language model prompt alongside instructions.
const DefaultChunkWords = 650

// Chunk is a bounded contiguous segment of crawled text.
type Chunk struct {
	Text      string
	WordCount int
}

// ChunkText splits text into chunks of roughly targetWords words each.
// Words are accumulated greedily; every chunk except possibly the last
// reaches the target, and a trailing partial segment is emitted rather than
// dropped. Chunk boundaries may fall mid-sentence; the split is intentionally
// word-based and non-overlapping. Empty or all-whitespace input yields nil.
func ChunkText(text string, targetWords int) []Chunk {
	if targetWords <= 0 {
		targetWords = DefaultChunkWords
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, (len(words)+targetWords-1)/targetWords)
	for len(words) > 0 {
		n := min(targetWords, len(words))
		chunks = append(chunks, Chunk{
			Text:      strings.Join(words[:n], " "),
			WordCount: n,
		})
		words = words[n:]
	}
	return chunks
}

// ChunkStrings is like ChunkText but returns only the chunk texts.
func ChunkStrings(text string, targetWords int) []string {
	chunks := ChunkText(text, targetWords)
	if chunks == nil {
		return nil
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}

// NormalizeWhitespace collapses every run of whitespace to a single space
// and trims leading and trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
