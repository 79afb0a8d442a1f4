package http_test

import (
	"context"
	"errors"
	"testing"
	"time"

	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(maxRetries int) llmhttp.RetryConfig {
	return llmhttp.RetryConfig{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestRetryWithBackoff_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := llmhttp.RetryWithBackoff(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	}, fastRetryConfig(3))

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_RetriesRetryableErrors(t *testing.T) {
	calls := 0
	err := llmhttp.RetryWithBackoff(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return llmhttp.NewServiceUnavailableError("test", "upstream down")
		}
		return nil
	}, fastRetryConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	authErr := llmhttp.NewAuthenticationError("test", "bad key")
	err := llmhttp.RetryWithBackoff(context.Background(), func(ctx context.Context) error {
		calls++
		return authErr
	}, fastRetryConfig(5))

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, authErr)
}

func TestRetryWithBackoff_GenericErrorsAreNotRetried(t *testing.T) {
	calls := 0
	err := llmhttp.RetryWithBackoff(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("plain failure")
	}, fastRetryConfig(5))

	assert.Equal(t, 1, calls)
	assert.Error(t, err)
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	err := llmhttp.RetryWithBackoff(context.Background(), func(ctx context.Context) error {
		calls++
		return llmhttp.NewRateLimitError("test", "slow down")
	}, fastRetryConfig(2))

	assert.Equal(t, 3, calls, "initial attempt plus two retries")
	var typed *llmhttp.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, llmhttp.ErrTypeRateLimit, typed.Type)
}

func TestRetryWithBackoff_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := llmhttp.RetryWithBackoff(ctx, func(ctx context.Context) error {
		t.Fatal("operation should not run with cancelled context")
		return nil
	}, fastRetryConfig(3))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExponentialBackoff_RespectsMax(t *testing.T) {
	config := llmhttp.RetryConfig{
		MaxRetries:     10,
		InitialBackoff: time.Second,
		MaxBackoff:     4 * time.Second,
		Multiplier:     2.0,
	}

	for attempt := 0; attempt < 10; attempt++ {
		backoff := llmhttp.ExponentialBackoff(attempt, config)
		assert.GreaterOrEqual(t, backoff, time.Duration(0))
		assert.LessOrEqual(t, backoff, 4*time.Second)
	}
}

func TestShouldRetry(t *testing.T) {
	assert.False(t, llmhttp.ShouldRetry(nil))
	assert.False(t, llmhttp.ShouldRetry(errors.New("generic")))
	assert.True(t, llmhttp.ShouldRetry(llmhttp.NewTimeoutError("p", "slow")))
	assert.True(t, llmhttp.ShouldRetry(llmhttp.NewRateLimitError("p", "limited")))
	assert.False(t, llmhttp.ShouldRetry(llmhttp.NewInvalidRequestError("p", "bad")))
}
