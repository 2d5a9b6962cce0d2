package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/metrics"
	"golang.org/x/time/rate"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 2 * time.Second
)

// HTTPClient is an OpenAI-compatible chat-completion and embedding client.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff; 429 surfaces as RateLimitedError so callers can pace themselves.
type HTTPClient struct {
	cfg        *config.LLMConfig
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	sink       metrics.Sink
}

// NewHTTPClient creates a gateway client from configuration.
// sink may be nil (token accounting disabled).
func NewHTTPClient(cfg *config.LLMConfig, apiKey string, sink metrics.Sink) *HTTPClient {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	return &HTTPClient{
		cfg:    cfg,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm),
		sink:    sink,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Reasoning   *reasoning    `json:"reasoning,omitempty"`
}

type reasoning struct {
	Effort string `json:"effort"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends a chat completion request.
func (c *HTTPClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	effort := req.ReasoningEffort
	if effort == "" {
		effort = c.cfg.ReasoningEffort
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.User})

	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if effort != "" {
		body.Reasoning = &reasoning{Effort: effort}
	}

	raw, err := c.doWithRetry(ctx, "/chat/completions", body)
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("llm: decoding completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("llm: completion response has no choices")
	}

	text := parsed.Choices[0].Message.Content
	if req.ExpectJSON {
		cleaned := StripMarkdownFences(text)
		if !json.Valid([]byte(cleaned)) {
			return nil, fmt.Errorf("%w: completion output failed validation", ErrInvalidJSON)
		}
		text = cleaned
	}

	if c.sink != nil {
		c.sink.AddCounter(metrics.TokensUsed, float64(parsed.Usage.TotalTokens))
	}

	return &CompletionResponse{
		Text:       text,
		TokensUsed: parsed.Usage.TotalTokens,
		Model:      parsed.Model,
	}, nil
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Embed returns the embedding vector for text.
func (c *HTTPClient) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	raw, err := c.doWithRetry(ctx, "/embeddings", embeddingRequest{
		Model: c.cfg.EmbeddingModel,
		Input: text,
	})
	if err != nil {
		return nil, err
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("llm: decoding embedding response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("llm: embedding response has no data")
	}

	if c.sink != nil {
		c.sink.AddCounter(metrics.TokensUsed, float64(parsed.Usage.TotalTokens))
	}

	return parsed.Data[0].Embedding, nil
}

// doWithRetry posts body to path, retrying transient failures with
// exponential backoff (2s base, x2). 4xx responses other than 429 are not
// retried; 429 is returned immediately as RateLimitedError so the retry
// manager can pace by retry_after instead of the local backoff.
func (c *HTTPClient) doWithRetry(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("llm: encoding request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			slog.Debug("Retrying LLM request", "path", path, "attempt", attempt+1, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		raw, err := c.do(ctx, path, payload)
		if err == nil {
			return raw, nil
		}
		if !isRetriable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *HTTPClient) do(ctx context.Context, path string, payload []byte) ([]byte, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transientError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transientError{err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode >= 500:
		return nil, &transientError{err: fmt.Errorf("llm: upstream %d: %s", resp.StatusCode, truncate(raw, 200))}
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("llm: request rejected with %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	return raw, nil
}

// transientError marks network and 5xx failures as retriable.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isRetriable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(header)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

func truncate(raw []byte, n int) string {
	s := string(raw)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
