package agent

import (
	"context"
	"fmt"

	"medclaims/internal/domain"
	"medclaims/internal/port"
)

const (
	classifySnippetBytes = 500
	classifyMaxTokens    = 10
)

// Classifier maps raw file content and a filename to a document type by
// delegating the decision to the completion provider.
type Classifier struct {
	completer port.Completer
}

// NewClassifier creates a Classifier.
func NewClassifier(completer port.Completer) *Classifier {
	return &Classifier{completer: completer}
}

// Classify returns the document type for one file. The returned label is
// case-normalized and collapses to unknown outside the closed set; a
// provider failure propagates and aborts the batch.
func (a *Classifier) Classify(ctx context.Context, content []byte, filename string) (domain.DocumentType, error) {
	prompt := fmt.Sprintf(
		"Classify the following document based on filename and content snippet:\n"+
			"Filename: %s\n"+
			"Content snippet: %s\n"+
			"Possible types: bill, discharge_summary, id_card, unknown\n"+
			"Return only the type.",
		filename, snippet(content, classifySnippetBytes),
	)

	label, err := a.completer.Complete(ctx, prompt, classifyMaxTokens)
	if err != nil {
		return "", fmt.Errorf("classifying document: %w", err)
	}

	return domain.ParseDocumentType(label), nil
}
