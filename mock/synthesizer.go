package mock

import (
	"context"

	"github.com/fwojciec/sitegist"
)

var _ sitegist.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of sitegist.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, source string, chunks []string) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, source string, chunks []string) (string, error) {
	return s.SynthesizeFn(ctx, source, chunks)
}
