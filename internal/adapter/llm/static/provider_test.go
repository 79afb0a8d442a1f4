package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kprsnt/brandscore/internal/usecase/check"
)

func TestProviderQuery(t *testing.T) {
	ctx := context.Background()

	provider := NewProvider("")
	resp, err := provider.Query(ctx, check.ProviderRequest{Prompt: "tell me about Tesla"})
	assert.NoError(t, err)
	assert.Equal(t, "Static (mock)", resp.Model)
	assert.Contains(t, resp.Text, "excellent")
	assert.False(t, resp.Failed())

	custom := NewProvider("custom answer")
	resp, err = custom.Query(ctx, check.ProviderRequest{Prompt: "x"})
	assert.NoError(t, err)
	assert.Equal(t, "custom answer", resp.Text)
}
