package static

import (
	"context"

	"github.com/kprsnt/brandscore/internal/domain"
	"github.com/kprsnt/brandscore/internal/usecase/check"
)

const (
	providerName = "static"
	label        = "Static (mock)"
)

// Provider implements the check use case's Provider port with canned text.
type Provider struct {
	text string
}

// NewProvider constructs a static Provider. With an empty text it answers
// with a generic positive blurb.
func NewProvider(text string) *Provider {
	if text == "" {
		text = "This is an excellent and trusted brand, widely recommended in its market. " +
			"It is popular with customers and known for quality products and services."
	}
	return &Provider{text: text}
}

// Name returns the registry name.
func (p *Provider) Name() string { return providerName }

// Label returns the human-readable model label.
func (p *Provider) Label() string { return label }

// Query returns the canned answer.
func (p *Provider) Query(ctx context.Context, req check.ProviderRequest) (domain.ProviderResponse, error) {
	return domain.ProviderResponse{
		Text:      p.text,
		Model:     label,
		ModelType: domain.ModelTypeFree,
	}, nil
}
