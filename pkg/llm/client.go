// Package llm provides the gateway to an OpenAI-compatible completion and
// embedding API. The orchestrator core depends only on the Client interface;
// the HTTP implementation targets OpenRouter by default.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// EmbeddingDim is the expected embedding vector dimensionality.
const EmbeddingDim = 1536

// CompletionRequest is a typed request to the completion model.
type CompletionRequest struct {
	System          string
	User            string
	Temperature     float64
	MaxTokens       int
	ReasoningEffort string // low, medium, high; empty uses the gateway default

	// ExpectJSON strips markdown fences from the response and validates
	// that the remaining text parses as JSON.
	ExpectJSON bool
}

// CompletionResponse is the typed model response.
type CompletionResponse struct {
	Text       string
	TokensUsed int
	Model      string
}

// Client is the pluggable LLM capability consumed by the orchestrator.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Sentinel errors surfaced by the gateway.
var (
	// ErrInvalidJSON indicates the model output did not parse as JSON
	// after fence stripping (only when ExpectJSON was set).
	ErrInvalidJSON = errors.New("llm: response is not valid JSON")

	// ErrUnavailable indicates the gateway gave up after its retry budget.
	ErrUnavailable = errors.New("llm: service unavailable")
)

// RateLimitedError is returned when the provider rejects a call with 429.
// RetryAfter carries the provider's pacing hint (zero if absent).
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm: rate limited, retry after %s", e.RetryAfter)
	}
	return "llm: rate limited"
}

// IsRateLimited reports whether err is (or wraps) a RateLimitedError.
func IsRateLimited(err error) bool {
	var rl *RateLimitedError
	return errors.As(err, &rl)
}

// StripMarkdownFences removes a surrounding ```json ... ``` (or plain ```)
// fence from model output. Models routinely wrap JSON this way even when
// told not to.
func StripMarkdownFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// ParseJSONResponse strips fences and unmarshals the result into v.
// Returns ErrInvalidJSON (wrapped) on parse failure.
func ParseJSONResponse(text string, v any) error {
	cleaned := StripMarkdownFences(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}
