package port

import "context"

// Completer abstracts the outbound text-completion collaborator used by the
// classifier and extractors. Implementations run at temperature zero and
// must honor context cancellation; there are no retries at this layer.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
