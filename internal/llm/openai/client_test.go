package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medclaims/internal/config"
	"medclaims/internal/domain"
	"medclaims/internal/llm/openai"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*openai.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return openai.NewClient(&config.OpenAIConfig{
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		BaseURL:     srv.URL + "/v1",
		TimeoutSecs: 5,
	}), srv
}

func TestClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hello  "}}]}`))
	})

	got, err := client.Complete(context.Background(), "say hello", 10)

	require.NoError(t, err)
	assert.Equal(t, "hello", got, "response is whitespace-trimmed")
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, float64(10), gotBody["max_tokens"])

	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "say hello", msg["content"])
}

func TestClient_Complete_SendsTemperature(t *testing.T) {
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	_, err := client.Complete(context.Background(), "prompt", 10)

	require.NoError(t, err)
	require.Contains(t, gotBody, "temperature")
	assert.InDelta(t, 0, gotBody["temperature"].(float64), 1e-6)
}

func TestClient_Complete_ProviderHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := client.Complete(context.Background(), "prompt", 10)

	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "prompt", 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompletionFailed)
	assert.ErrorContains(t, err, "no choices")
}
