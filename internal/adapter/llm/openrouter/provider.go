package openrouter

import (
	"context"
	"fmt"

	"github.com/kprsnt/brandscore/internal/config"
	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/usecase/check"
)

const (
	defaultModel = "openrouter/free"
	defaultLabel = "OpenRouter (Free)"

	defaultTemperature = 0.7
)

// Client abstracts the OpenRouter HTTP client behaviour we need.
type Client interface {
	Call(ctx context.Context, prompt string, options CallOptions) (*APIResponse, error)
}

// Provider implements the check use case's Provider port.
type Provider struct {
	client    Client
	label     string
	maxTokens int
}

// NewProvider constructs a Provider for the configured model.
func NewProvider(client Client, cfg config.ProviderConfig) *Provider {
	label := defaultLabel
	if cfg.Model != "" && cfg.Model != defaultModel {
		label = cfg.Model
	}
	return &Provider{
		client:    client,
		label:     label,
		maxTokens: cfg.MaxTokens,
	}
}

// Name returns the registry name.
func (p *Provider) Name() string { return providerName }

// Label returns the human-readable model label.
func (p *Provider) Label() string { return p.label }

// Query sends the prompt to OpenRouter and translates the response.
func (p *Provider) Query(ctx context.Context, req check.ProviderRequest) (domain.ProviderResponse, error) {
	if p.client == nil {
		return domain.ProviderResponse{}, fmt.Errorf("openrouter client missing")
	}

	response, err := p.client.Call(ctx, req.Prompt, CallOptions{
		Temperature: defaultTemperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	return domain.ProviderResponse{
		Text:      response.Text,
		Model:     p.label,
		ModelType: domain.ModelTypeFree,
	}, nil
}
