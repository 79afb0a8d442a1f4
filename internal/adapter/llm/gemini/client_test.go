package gemini

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

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	zero := 0
	client := NewHTTPClient("test-key", "gemini-2.5-flash",
		config.ProviderConfig{MaxRetries: &zero},
		config.HTTPConfig{})
	client.SetBaseURL(server.URL)
	return client, server
}

func TestCallSuccess(t *testing.T) {
	var gotPath string
	var gotBody GenerateContentRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := GenerateContentResponse{
			Candidates: []Candidate{
				{
					Content:      Content{Parts: []Part{{Text: "Tesla is an "}, {Text: "innovative company."}}},
					FinishReason: "STOP",
				},
			},
			UsageMetadata: UsageMetadata{PromptTokenCount: 42, CandidatesTokenCount: 17},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	resp, err := client.Call(context.Background(), "tell me about Tesla", CallOptions{
		Temperature: 0.7,
		MaxTokens:   500,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "tell me about Tesla", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, 500, gotBody.GenerationConfig.MaxOutputTokens)
	assert.InDelta(t, 0.7, gotBody.GenerationConfig.Temperature, 0.001)

	assert.Equal(t, "Tesla is an innovative company.", resp.Text)
	assert.Equal(t, 42, resp.TokensIn)
	assert.Equal(t, 17, resp.TokensOut)
	assert.Equal(t, "STOP", resp.FinishReason)
}

func TestCallAuthenticationError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401,"message":"API key not valid","status":"UNAUTHENTICATED"}}`))
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)

	var httpErr *llmhttp.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, llmhttp.ErrTypeAuthentication, httpErr.Type)
	assert.Equal(t, "API key not valid", httpErr.Message)
	assert.False(t, httpErr.Retryable)
}

func TestCallRateLimitRetriesThenFails(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	one := 1
	backoff := "1ms"
	client := NewHTTPClient("test-key", "gemini-2.5-flash",
		config.ProviderConfig{MaxRetries: &one, InitialBackoff: &backoff, MaxBackoff: &backoff},
		config.HTTPConfig{})
	client.SetBaseURL(server.URL)

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)

	var httpErr *llmhttp.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, llmhttp.ErrTypeRateLimit, httpErr.Type)
	assert.Equal(t, 2, attempts)
}

func TestCallServiceUnavailableThenSuccess(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"overloaded"}}`))
			return
		}
		resp := GenerateContentResponse{
			Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "recovered"}}}}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	one := 1
	backoff := "1ms"
	client := NewHTTPClient("test-key", "gemini-2.5-flash",
		config.ProviderConfig{MaxRetries: &one, InitialBackoff: &backoff, MaxBackoff: &backoff},
		config.HTTPConfig{})
	client.SetBaseURL(server.URL)

	resp, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestCallNoCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateContentResponse{})
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestCallModelNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"model not found"}}`))
	})

	_, err := client.Call(context.Background(), "prompt", CallOptions{})
	require.Error(t, err)

	var httpErr *llmhttp.Error
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, llmhttp.ErrTypeModelNotFound, httpErr.Type)
}
