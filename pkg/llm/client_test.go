package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/config"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence hugging content", "```{\"a\": 1}```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
		{"array payload", "```json\n[1, 2]\n```", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdownFences(tt.in))
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	require.NoError(t, ParseJSONResponse("```json\n{\"a\": 7}\n```", &out))
	assert.Equal(t, 7, out.A)

	err := ParseJSONResponse("not json", &out)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&RateLimitedError{}))
	assert.True(t, IsRateLimited(&RateLimitedError{RetryAfter: 3 * time.Second}))
	assert.False(t, IsRateLimited(ErrUnavailable))
	assert.False(t, IsRateLimited(nil))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.Zero(t, Cosine([]float64{1, 0}, []float64{1}), "length mismatch")
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}), "zero vector")
	assert.Zero(t, Cosine(nil, nil))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseRetryAfter("30"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2026 07:28:00 GMT"), "HTTP-date form is ignored")
	assert.Zero(t, parseRetryAfter("-5"))
}

func testHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClient(&config.LLMConfig{
		BaseURL:           baseURL,
		Model:             "test-model",
		EmbeddingModel:    "test-embed",
		RequestTimeout:    5 * time.Second,
		RequestsPerMinute: 6000,
	}, "test-key", nil)
}

func TestCompleteSendsMessagesAndAuth(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":   "test-model",
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": "hello there"}}},
			"usage":   map[string]int{"total_tokens": 42},
		})
	}))
	defer srv.Close()

	resp, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{
		System: "you are terse",
		User:   "say hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello there", resp.Text)
	assert.Equal(t, 42, resp.TokensUsed)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, "test-model", gotBody.Model)
}

func TestCompleteExpectJSONStripsFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "```json\n{\"ok\": true}\n```"}}},
		})
	}))
	defer srv.Close()

	resp, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{
		User:       "emit json",
		ExpectJSON: true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, resp.Text)
}

func TestCompleteExpectJSONRejectsProse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "Sure! Here is the plan:"}}},
		})
	}))
	defer srv.Close()

	_, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{
		User:       "emit json",
		ExpectJSON: true,
	})
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestCompleteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{User: "x"})
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))

	var rl *RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
}

func TestCompleteClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "bad request body", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{User: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, calls)
}

func TestCompleteRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "recovered"}}},
		})
	}))
	defer srv.Close()

	resp, err := testHTTPClient(srv.URL).Complete(context.Background(), CompletionRequest{User: "x"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, calls)
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-embed", req.Model)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
			"usage": map[string]int{"total_tokens": 5},
		})
	}))
	defer srv.Close()

	vec, err := testHTTPClient(srv.URL).Embed(context.Background(), "a storefront")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)
}

func TestEmbedEmptyDataIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	_, err := testHTTPClient(srv.URL).Embed(context.Background(), "x")
	assert.Error(t, err)
}
