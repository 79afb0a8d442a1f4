// Package check implements the brand-check use case: fan a prompt out to
// every configured LLM provider, tolerate partial failure, and turn the
// surviving responses into a visibility score.
package check

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kprsnt/brandscore/internal/domain"
)

// Provider defines the outbound port for LLM queries. Adapters are
// interchangeable: the orchestrator depends only on this contract.
type Provider interface {
	// Name is the registry name, e.g. "gemini".
	Name() string

	// Label is the human-readable model label, e.g. "Gemini 2.5 Flash".
	Label() string

	// Query issues exactly one upstream call with the given prompt.
	Query(ctx context.Context, req ProviderRequest) (domain.ProviderResponse, error)
}

// ProviderRequest carries the prompt for one provider call.
type ProviderRequest struct {
	Prompt string
}

// Logger is the minimal logging surface the orchestrator needs.
type Logger interface {
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
	LogWarning(ctx context.Context, message string, fields map[string]interface{})
}

// Aggregate outcomes. Per-provider failures never surface as errors; only
// these terminal conditions abort a request after fan-out has started.
var (
	ErrNoProviders        = errors.New("no providers configured")
	ErrAllProvidersFailed = errors.New("all providers failed to respond")
	ErrTimeout            = errors.New("request timeout")
)

// DefaultTimeout bounds one whole fan-out across all providers.
const DefaultTimeout = 45 * time.Second

// Orchestrator fans one prompt out to all providers in parallel and
// collects their responses.
type Orchestrator struct {
	providers []Provider
	timeout   time.Duration
	logger    Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout overrides the global fan-out timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger attaches a logger for fan-out progress and warnings.
func WithLogger(logger Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an orchestrator over the given providers. The
// slice order is the response order: callers see results in configuration
// order, never in completion order.
func NewOrchestrator(providers []Provider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		providers: providers,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run queries every provider concurrently with the same prompt and returns
// the usable responses in provider order.
//
// A failed provider call becomes a placeholder response carrying fallback
// text, the provider's model label, and the causal error; it does not abort
// the batch. Responses that carry an error AND empty text are dropped.
// Run fails only on total failure (ErrAllProvidersFailed), on the global
// timeout (ErrTimeout), or when no provider is configured (ErrNoProviders).
//
// The timeout stops the wait, not the work: in-flight calls keep running
// in the background and their late results are discarded.
func (o *Orchestrator) Run(ctx context.Context, prompt string) ([]domain.ProviderResponse, error) {
	if len(o.providers) == 0 {
		return nil, ErrNoProviders
	}

	results := make([]domain.ProviderResponse, len(o.providers))

	var wg sync.WaitGroup
	for i, provider := range o.providers {
		wg.Add(1)
		go func(i int, provider Provider) {
			defer func() {
				if r := recover(); r != nil {
					results[i] = placeholder(provider, fmt.Errorf("provider %s panicked: %v", provider.Name(), r))
				}
				wg.Done()
			}()

			response, err := provider.Query(ctx, ProviderRequest{Prompt: prompt})
			if err != nil {
				if o.logger != nil {
					o.logger.LogWarning(ctx, "provider query failed", map[string]interface{}{
						"provider": provider.Name(),
						"error":    err.Error(),
					})
				}
				results[i] = placeholder(provider, err)
				return
			}
			results[i] = response
		}(i, provider)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(o.timeout):
		return nil, ErrTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	usable := make([]domain.ProviderResponse, 0, len(results))
	for _, r := range results {
		if r.Usable() {
			usable = append(usable, r)
		}
	}

	if len(usable) == 0 {
		return nil, ErrAllProvidersFailed
	}

	if o.logger != nil {
		o.logger.LogInfo(ctx, "fan-out complete", map[string]interface{}{
			"queried": len(o.providers),
			"usable":  len(usable),
		})
	}

	return usable, nil
}

// placeholder converts a provider failure into data. The fallback text
// keeps the response usable downstream; the error stays attached for
// callers that care.
func placeholder(provider Provider, err error) domain.ProviderResponse {
	return domain.ProviderResponse{
		Text:      "Unable to fetch response from " + provider.Label(),
		Model:     provider.Label(),
		ModelType: domain.ModelTypeFree,
		Err:       err,
	}
}
