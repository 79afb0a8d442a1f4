package http

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestRedactAPIKey(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatHuman, true)

	assert.Equal(t, "[REDACTED-wxyz]", logger.RedactAPIKey("sk-test-wxyz"))
	assert.Equal(t, "[REDACTED]", logger.RedactAPIKey("abc"))

	logger.SetRedaction(false)
	assert.Equal(t, "sk-test-wxyz", logger.RedactAPIKey("sk-test-wxyz"))
}

func TestLogRequestRedactsKey(t *testing.T) {
	logger := NewDefaultLogger(LogLevelDebug, LogFormatHuman, true)

	out := captureLog(t, func() {
		logger.LogRequest(context.Background(), RequestLog{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash",
			Timestamp:   time.Now(),
			PromptChars: 100,
			APIKey:      "sk-secret-abcd",
		})
	})

	assert.Contains(t, out, "[REDACTED-abcd]")
	assert.NotContains(t, out, "sk-secret-abcd")
}

func TestLogRequestSuppressedAboveDebug(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatHuman, true)

	out := captureLog(t, func() {
		logger.LogRequest(context.Background(), RequestLog{Provider: "gemini"})
	})
	assert.Empty(t, out)
}

func TestLogResponseJSONFormat(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatJSON, true)

	out := captureLog(t, func() {
		logger.LogResponse(context.Background(), ResponseLog{
			Provider:     "groq",
			Model:        "llama-3.3-70b-versatile",
			Timestamp:    time.Now(),
			Duration:     1200 * time.Millisecond,
			TokensIn:     30,
			TokensOut:    12,
			StatusCode:   200,
			FinishReason: "stop",
		})
	})

	assert.Contains(t, out, `"type":"response"`)
	assert.Contains(t, out, `"provider":"groq"`)
	assert.Contains(t, out, `"tokens_in":30`)
	assert.Contains(t, out, `"finish_reason":"stop"`)
}

func TestLogInfoAndWarningFields(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatHuman, false)

	out := captureLog(t, func() {
		logger.LogInfo(context.Background(), "fan-out complete", map[string]interface{}{"usable": 2})
	})
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "fan-out complete")

	out = captureLog(t, func() {
		logger.LogWarning(context.Background(), "provider query failed", map[string]interface{}{"provider": "gemini"})
	})
	assert.Contains(t, out, "[WARN]")
}
