package groq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kprsnt/brandscore/internal/config"
	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/usecase/check"
)

type stubClient struct {
	gotOptions CallOptions
	response   *APIResponse
}

func (s *stubClient) Call(ctx context.Context, prompt string, options CallOptions) (*APIResponse, error) {
	s.gotOptions = options
	return s.response, nil
}

func TestProviderQuery(t *testing.T) {
	stub := &stubClient{response: &APIResponse{Text: "Tesla is popular"}}
	p := NewProvider(stub, config.ProviderConfig{Model: "llama-3.3-70b-versatile", MaxTokens: 5000})

	resp, err := p.Query(context.Background(), check.ProviderRequest{Prompt: "tell me about Tesla"})
	require.NoError(t, err)

	assert.Equal(t, 5000, stub.gotOptions.MaxTokens)
	assert.Equal(t, "Llama 3.3 70B (Groq)", resp.Model)
	assert.Equal(t, domain.ModelTypeFree, resp.ModelType)
	assert.Equal(t, "groq", p.Name())
}

func TestProviderMissingClient(t *testing.T) {
	p := NewProvider(nil, config.ProviderConfig{})

	_, err := p.Query(context.Background(), check.ProviderRequest{Prompt: "x"})
	assert.Error(t, err)
}
