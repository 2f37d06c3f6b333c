package agent

import (
	"context"
	"fmt"

	"medclaims/internal/port"
)

const (
	extractSnippetBytes = 1000
	extractMaxTokens    = 1000
)

// TextExtractor asks the completion provider for the main textual content
// of a document. This is a heuristic over a bounded content prefix, not
// real PDF parsing or OCR.
type TextExtractor struct {
	completer port.Completer
}

// NewTextExtractor creates a TextExtractor.
func NewTextExtractor(completer port.Completer) *TextExtractor {
	return &TextExtractor{completer: completer}
}

// ExtractText returns the provider's response verbatim (whitespace-trimmed).
func (a *TextExtractor) ExtractText(ctx context.Context, content []byte) (string, error) {
	prompt := fmt.Sprintf(
		"Extract the main text content from the following document snippet:\n%s",
		snippet(content, extractSnippetBytes),
	)

	text, err := a.completer.Complete(ctx, prompt, extractMaxTokens)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}

	return text, nil
}
