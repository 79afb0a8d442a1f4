// Package static provides a mock LLM provider that returns a canned,
// pre-determined answer. This is useful for exercising the orchestrator,
// scoring, and HTTP layers without making live API calls.
package static
