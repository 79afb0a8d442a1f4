package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/kprsnt/brandscore/internal/config"
)

type warningLogger struct {
	llmhttp.Logger
	messages []string
	fields   []map[string]interface{}
}

func (l *warningLogger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.messages = append(l.messages, message)
	l.fields = append(l.fields, fields)
}

func TestBuildProvidersSkipsUnconfigured(t *testing.T) {
	cfg := &config.Config{
		Providers: map[string]config.ProviderConfig{
			"gemini":     {Enabled: true, Model: "gemini-2.5-flash", APIKey: "key"},
			"groq":       {Enabled: true, Model: "llama-3.3-70b-versatile"}, // no key
			"openrouter": {Enabled: false, APIKey: "key"},                   // disabled
			"anthropic":  {Enabled: true, Model: "claude-3-haiku-20240307", APIKey: "key"},
		},
	}

	providers := BuildProviders(cfg, nil, nil)
	require.Len(t, providers, 2)
	assert.Equal(t, "gemini", providers[0].Name())
	assert.Equal(t, "anthropic", providers[1].Name())
}

func TestBuildProvidersWarnsOnMissingCredential(t *testing.T) {
	cfg := &config.Config{
		Providers: map[string]config.ProviderConfig{
			"gemini":    {Enabled: true, Model: "gemini-2.5-flash"}, // enabled, no key
			"groq":      {Enabled: false},                           // disabled, silent
			"anthropic": {Enabled: true, APIKey: "key"},
		},
	}

	logger := &warningLogger{}
	providers := BuildProviders(cfg, logger, nil)
	require.Len(t, providers, 1)

	require.Len(t, logger.messages, 1)
	assert.Equal(t, "provider skipped", logger.messages[0])
	assert.Equal(t, "gemini", logger.fields[0]["provider"])
	assert.Contains(t, logger.fields[0]["reason"], "GEMINI_API_KEY")
}

func TestBuildProvidersFixedOrder(t *testing.T) {
	cfg := &config.Config{
		Providers: map[string]config.ProviderConfig{
			"anthropic": {Enabled: true, APIKey: "key"},
			"gemini":    {Enabled: true, APIKey: "key"},
			"static":    {Enabled: true},
			"groq":      {Enabled: true, APIKey: "key"},
		},
	}

	providers := BuildProviders(cfg, nil, nil)
	require.Len(t, providers, 4)

	var names []string
	for _, p := range providers {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"gemini", "groq", "anthropic", "static"}, names)
}

func TestBuildProvidersEmptyConfig(t *testing.T) {
	providers := BuildProviders(&config.Config{}, nil, nil)
	assert.Empty(t, providers)
}
