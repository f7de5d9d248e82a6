package sitegist

import "context"

// Synthesizer produces a single reference document from chunked site text.
type Synthesizer interface {
	// Synthesize condenses the chunks harvested from source into one
	// coherent reference document.
	Synthesize(ctx context.Context, source string, chunks []string) (string, error)
}

// TokenCounter counts model tokens in text, used to pack chunks into
// prompt-sized batches.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
