// Package gemini implements document synthesis on top of the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitegist"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Batching limits.
const (
	// BatchChunkLimit bounds a batch when no token counter is available.
	BatchChunkLimit = 12

	// BatchTokenBudget bounds a batch when chunk sizes are measured with
	// a token counter.
	BatchTokenBudget = 24000

	// defaultConcurrency limits in-flight generation calls per Synthesize.
	defaultConcurrency = 4
)

// Ensure Synthesizer implements sitegist.Synthesizer at compile time.
var _ sitegist.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements sitegist.Synthesizer using Google Gemini. Large
// sites are summarized in concurrent batches, then the batch summaries are
// combined into the final document with one more generation call.
type Synthesizer struct {
	client *genai.Client
	tokens sitegist.TokenCounter
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithTokenCounter makes batch packing token-aware instead of counting
// chunks.
func WithTokenCounter(tc sitegist.TokenCounter) Option {
	return func(s *Synthesizer) {
		s.tokens = tc
	}
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(client *genai.Client, opts ...Option) *Synthesizer {
	s := &Synthesizer{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize condenses scraped text chunks into one reference document.
func (s *Synthesizer) Synthesize(ctx context.Context, source string, chunks []string) (string, error) {
	if source == "" {
		return "", sitegist.Errorf(sitegist.EINVALID, "source URL required")
	}
	if len(chunks) == 0 {
		return "", sitegist.Errorf(sitegist.EINVALID, "no content to synthesize")
	}

	batches, err := BatchChunks(ctx, chunks, s.tokens)
	if err != nil {
		return "", err
	}

	if len(batches) == 1 {
		return s.generate(ctx, BuildSynthesisPrompt(source, batches[0]))
	}

	summaries := make([]string, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)
	for i, batch := range batches {
		g.Go(func() error {
			summary, err := s.generate(gctx, BuildBatchPrompt(source, i+1, len(batches), batch))
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return s.generate(ctx, BuildCombinePrompt(source, summaries))
}

// generate runs a single generation call and returns the response text.
func (s *Synthesizer) generate(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", sitegist.Errorf(sitegist.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BatchChunks packs chunks into prompt-sized groups, preserving order.
// With a token counter, batches are filled greedily up to BatchTokenBudget;
// without one the packing falls back to BatchChunkLimit chunks per batch.
func BatchChunks(ctx context.Context, chunks []string, tokens sitegist.TokenCounter) ([][]string, error) {
	if tokens == nil {
		var batches [][]string
		for start := 0; start < len(chunks); start += BatchChunkLimit {
			end := min(start+BatchChunkLimit, len(chunks))
			batches = append(batches, chunks[start:end])
		}
		return batches, nil
	}

	var batches [][]string
	var current []string
	currentTokens := 0
	for _, chunk := range chunks {
		n, err := tokens.CountTokens(ctx, chunk)
		if err != nil {
			return nil, err
		}
		if len(current) > 0 && currentTokens+n > BatchTokenBudget {
			batches = append(batches, current)
			current = nil
			currentTokens = 0
		}
		current = append(current, chunk)
		currentTokens += n
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a technical writer condensing raw website text into a single well-organized reference document in Markdown. Preserve factual details, names, numbers and code snippets. Do not add information that is not present in the text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildSynthesisPrompt builds the prompt for a site small enough to
// synthesize in one call.
func BuildSynthesisPrompt(source string, chunks []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<site>%s</site>\n", source)
	writeChunks(&sb, chunks)
	sb.WriteString("\nWrite a reference document for this website based on the text above.")
	return sb.String()
}

// BuildBatchPrompt builds the prompt for one batch of a multi-batch site.
func BuildBatchPrompt(source string, part, total int, chunks []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<site>%s</site>\n", source)
	fmt.Fprintf(&sb, "<part>%d of %d</part>\n", part, total)
	writeChunks(&sb, chunks)
	sb.WriteString("\nSummarize this part of the website's text, keeping every fact a reference document would need.")
	return sb.String()
}

// BuildCombinePrompt builds the prompt that merges batch summaries into the
// final document.
func BuildCombinePrompt(source string, summaries []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<site>%s</site>\n", source)
	sb.WriteString("<summaries>\n")
	for i, summary := range summaries {
		sb.WriteString("<summary>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<content>%s</content>\n", summary)
		sb.WriteString("</summary>\n")
	}
	sb.WriteString("</summaries>\n")
	sb.WriteString("\nMerge these partial summaries into one coherent reference document for the website, in order, without repeating yourself.")
	return sb.String()
}

func writeChunks(sb *strings.Builder, chunks []string) {
	sb.WriteString("<text>\n")
	for _, chunk := range chunks {
		sb.WriteString(chunk)
		sb.WriteString("\n")
	}
	sb.WriteString("</text>\n")
}
