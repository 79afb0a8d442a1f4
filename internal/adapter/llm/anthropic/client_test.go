package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/kprsnt/brandscore/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	zero := 0
	client := NewHTTPClient("sk-ant-test", "claude-3-haiku-20240307",
		config.ProviderConfig{MaxRetries: &zero},
		config.HTTPConfig{})
	client.SetBaseURL(server.URL)
	return client
}

func TestCallSuccess(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody MessagesRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := MessagesResponse{
			Model: "claude-3-haiku-20240307",
			Content: []ContentBlock{
				{Type: "text", Text: "Tesla is a well-known "},
				{Type: "text", Text: "electric vehicle maker."},
			},
			StopReason: "end_turn",
			Usage:      Usage{InputTokens: 25, OutputTokens: 14},
		}
		json.NewEncoder(w).Encode(resp)
	})

	resp, err := client.Call(context.Background(), "tell me about Tesla", CallOptions{MaxTokens: 500})
	require.NoError(t, err)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "sk-ant-test", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, 500, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)

	assert.Equal(t, "Tesla is a well-known electric vehicle maker.", resp.Text)
	assert.Equal(t, 25, resp.TokensIn)
	assert.Equal(t, 14, resp.TokensOut)
	assert.Equal(t, "end_turn", resp.FinishReason)
}

func TestCallDefaultsMaxTokens(t *testing.T) {
	var gotBody MessagesRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(MessagesResponse{
			Content: []ContentBlock{{Type: "text", Text: "ok"}},
		})
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, fallbackMaxTokens, gotBody.MaxTokens)
}

func TestCallOverloadedIsRetryable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(529)
		w.Write([]byte(`{"error":{"type":"overloaded_error","message":"Overloaded"}}`))
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)

	var httpErr *llmhttp.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, llmhttp.ErrTypeServiceUnavailable, httpErr.Type)
	assert.True(t, httpErr.Retryable)
}

func TestCallAuthenticationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)

	var httpErr *llmhttp.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, llmhttp.ErrTypeAuthentication, httpErr.Type)
	assert.Equal(t, "invalid x-api-key", httpErr.Message)
}

func TestCallNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(MessagesResponse{})
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
