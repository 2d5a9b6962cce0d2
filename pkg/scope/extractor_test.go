package scope

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/llm"
)

// scriptedClient returns canned completions in order.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
	requests  []llm.CompletionRequest
}

func (c *scriptedClient) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	resp := c.responses[c.calls]
	if c.calls < len(c.responses)-1 {
		c.calls++
	}
	return &llm.CompletionResponse{Text: resp, TokensUsed: 100}, nil
}

func (c *scriptedClient) Embed(context.Context, string) ([]float64, error) {
	return nil, errors.New("not used")
}

func TestPrecheck(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantClarify bool
	}{
		{"bare greeting", "hi", true},
		{"greeting with punctuation", "Hello!", true},
		{"thanks", "thanks", true},
		{"too short", "build an app", true},
		{"workable", "build a booking system for a small dental clinic", false},
		{"greeting prefix in a real request", "hi-fi store builder with product catalog and checkout", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Precheck(tt.message)
			if tt.wantClarify {
				ce, ok := NeedsClarification(err)
				require.True(t, ok)
				assert.Len(t, ce.Questions, 3)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

const validScopeJSON = `{
  "project_name": "clinic-booker",
  "goal": "a booking system for a dental clinic",
  "tech_stack": {"frontend": "", "backend": "", "database": ""},
  "features": ["calendar", "reminders"],
  "integrations": ["twilio"],
  "pages_est": 4,
  "models_est": 3,
  "endpoints_est": 6,
  "scope_of_works": {"in_scope": ["booking"], "out_scope": ["billing"], "milestones": [], "risks": [], "kpis": []}
}`

func TestExtract(t *testing.T) {
	client := &scriptedClient{responses: []string{validScopeJSON}}
	e := NewExtractor(client, slog.Default())

	scope, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	require.NoError(t, err)

	assert.Equal(t, "clinic-booker", scope.ProjectName)
	assert.Equal(t, "a booking system for a dental clinic", scope.Goal)
	assert.Equal(t, []string{"calendar", "reminders"}, scope.Features)
	assert.Equal(t, 4, scope.PagesEst)
	require.Len(t, client.requests, 1)
	assert.True(t, client.requests[0].ExpectJSON)
}

func TestExtractStripsFences(t *testing.T) {
	client := &scriptedClient{responses: []string{"```json\n" + validScopeJSON + "\n```"}}
	e := NewExtractor(client, slog.Default())

	scope, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	require.NoError(t, err)
	assert.Equal(t, "clinic-booker", scope.ProjectName)
}

func TestExtractSelfCorrectsOnce(t *testing.T) {
	client := &scriptedClient{responses: []string{"this is not json at all", validScopeJSON}}
	e := NewExtractor(client, slog.Default())

	scope, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	require.NoError(t, err)
	assert.Equal(t, "clinic-booker", scope.ProjectName)
	assert.Len(t, client.requests, 2)
	assert.Contains(t, client.requests[1].User, "was not valid JSON")
}

func TestExtractGivesUpAfterCorrection(t *testing.T) {
	client := &scriptedClient{responses: []string{"garbage", "more garbage"}}
	e := NewExtractor(client, slog.Default())

	_, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidJSON)
	assert.Len(t, client.requests, 2)
}

func TestExtractClarificationEnvelope(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"needs_clarification": true, "questions": ["What kind of clinic?", "How many practitioners?"]}`,
	}}
	e := NewExtractor(client, slog.Default())

	_, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	ce, ok := NeedsClarification(err)
	require.True(t, ok)
	assert.Equal(t, []string{"What kind of clinic?", "How many practitioners?"}, ce.Questions)
}

func TestExtractClarificationEnvelopeCapsQuestions(t *testing.T) {
	client := &scriptedClient{responses: []string{
		`{"needs_clarification": true, "questions": ["a?", "b?", "c?", "d?", "e?"]}`,
	}}
	e := NewExtractor(client, slog.Default())

	_, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	ce, ok := NeedsClarification(err)
	require.True(t, ok)
	assert.Len(t, ce.Questions, 3)
}

func TestExtractMissingGoalTriggersCorrection(t *testing.T) {
	noGoal := `{"project_name": "x", "goal": "", "tech_stack": {}, "scope_of_works": {}}`
	client := &scriptedClient{responses: []string{noGoal, validScopeJSON}}
	e := NewExtractor(client, slog.Default())

	scope, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	require.NoError(t, err)
	assert.Equal(t, "clinic-booker", scope.ProjectName)
}

func TestExtractDerivesNameFromGoal(t *testing.T) {
	noName := `{"project_name": "", "goal": "a recipe sharing community site for home cooks", "tech_stack": {}, "scope_of_works": {}}`
	client := &scriptedClient{responses: []string{noName}}
	e := NewExtractor(client, slog.Default())

	scope, err := e.Extract(context.Background(), "build a recipe sharing community site for home cooks")
	require.NoError(t, err)
	assert.Equal(t, "a recipe sharing community", scope.ProjectName)
}

func TestExtractGatewayErrorPassesThrough(t *testing.T) {
	client := &scriptedClient{err: llm.ErrUnavailable}
	e := NewExtractor(client, slog.Default())

	_, err := e.Extract(context.Background(), "build a booking system for a small dental clinic")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}
