package openai

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"medclaims/internal/config"
	"medclaims/internal/domain"
)

// Client implements port.Completer against the OpenAI Chat Completions API.
type Client struct {
	client  *goopenai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a completion client from provider config. BaseURL may
// point at a compatible endpoint (tests use an httptest server).
func NewClient(cfg *config.OpenAIConfig) *Client {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = goopenai.GPT4oMini
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		client:  goopenai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends one prompt and returns the trimmed response text. The
// temperature is pinned to zero; failures wrap domain.ErrCompletionFailed
// and are not retried.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
		// a literal 0 is dropped by the client's omitempty marshaling and
		// the API would fall back to its default of 1
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response, no choices", domain.ErrCompletionFailed)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
