// Package llm assembles provider adapters from configuration.
package llm

import (
	"context"
	"strings"

	"github.com/kprsnt/brandscore/internal/adapter/llm/anthropic"
	"github.com/kprsnt/brandscore/internal/adapter/llm/gemini"
	"github.com/kprsnt/brandscore/internal/adapter/llm/groq"
	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/kprsnt/brandscore/internal/adapter/llm/openrouter"
	"github.com/kprsnt/brandscore/internal/adapter/llm/static"
	"github.com/kprsnt/brandscore/internal/config"
	"github.com/kprsnt/brandscore/internal/usecase/check"
)

// ProviderOrder is the fan-out order. Responses are always reported in
// this order regardless of which provider answers first.
var ProviderOrder = []string{"gemini", "groq", "openrouter", "anthropic", "static"}

// BuildProviders constructs one provider per configured entry, in
// ProviderOrder. Providers without a credential are skipped; the static
// provider only needs to be enabled.
func BuildProviders(cfg *config.Config, logger llmhttp.Logger, metrics llmhttp.Metrics) []check.Provider {
	var providers []check.Provider

	for _, name := range ProviderOrder {
		providerCfg, ok := cfg.Providers[name]
		if !ok {
			continue
		}

		if name == "static" {
			if providerCfg.Enabled {
				providers = append(providers, static.NewProvider(""))
			}
			continue
		}

		if !providerCfg.Configured() {
			if providerCfg.Enabled && logger != nil {
				err := llmhttp.NewMissingCredentialError(name, strings.ToUpper(name)+"_API_KEY")
				logger.LogWarning(context.Background(), "provider skipped", map[string]interface{}{
					"provider": name,
					"reason":   err.Error(),
				})
			}
			continue
		}

		switch name {
		case "gemini":
			client := gemini.NewHTTPClient(providerCfg.APIKey, providerCfg.Model, providerCfg, cfg.HTTP)
			client.SetLogger(logger)
			client.SetMetrics(metrics)
			providers = append(providers, gemini.NewProvider(client, providerCfg))
		case "groq":
			client := groq.NewHTTPClient(providerCfg.APIKey, providerCfg.Model, providerCfg, cfg.HTTP)
			client.SetLogger(logger)
			client.SetMetrics(metrics)
			providers = append(providers, groq.NewProvider(client, providerCfg))
		case "openrouter":
			client := openrouter.NewHTTPClient(providerCfg.APIKey, providerCfg.Model, providerCfg, cfg.HTTP)
			client.SetLogger(logger)
			client.SetMetrics(metrics)
			providers = append(providers, openrouter.NewProvider(client, providerCfg))
		case "anthropic":
			client := anthropic.NewHTTPClient(providerCfg.APIKey, providerCfg.Model, providerCfg, cfg.HTTP)
			client.SetLogger(logger)
			client.SetMetrics(metrics)
			providers = append(providers, anthropic.NewProvider(client, providerCfg))
		}
	}

	return providers
}
