package stack

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

// fakeClient serves canned embeddings keyed by substring and a canned
// completion for the LLM fallback.
type fakeClient struct {
	embeddings map[string][]float64
	embedErr   error
	completion string
	complErr   error
}

func (c *fakeClient) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if c.complErr != nil {
		return nil, c.complErr
	}
	return &llm.CompletionResponse{Text: c.completion, TokensUsed: 50}, nil
}

func (c *fakeClient) Embed(_ context.Context, text string) ([]float64, error) {
	if c.embedErr != nil {
		return nil, c.embedErr
	}
	for sub, vec := range c.embeddings {
		if sub != "" && contains(text, sub) {
			return vec, nil
		}
	}
	return []float64{0, 0, 1}, nil
}

func contains(s, sub string) bool {
	return len(sub) > 0 && len(s) >= len(sub) && indexOf(s, sub) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func testConfig() config.StackConfig {
	return config.StackConfig{SimilarityThreshold: 0.7}
}

func TestInferExplicitStackWins(t *testing.T) {
	inf := NewInferencer(&fakeClient{}, nil, testConfig(), nil, slog.Default())

	scope := &models.Scope{
		Goal: "anything",
		TechStack: models.TechStack{
			Frontend: "Svelte",
			Backend:  "Django",
			Database: "MySQL",
		},
	}
	result, err := inf.Infer(context.Background(), scope)
	require.NoError(t, err)

	assert.Equal(t, "Django", result.Backend)
	assert.Equal(t, "Svelte", result.Frontend)
	assert.Equal(t, "MySQL", result.Database)
	assert.Equal(t, 1.0, result.Confidence)
	assert.False(t, result.Fallback)
}

func TestInferPartialExplicitStackStillInfers(t *testing.T) {
	// Backend stated but frontend missing: inference still runs, and the
	// embed failure drops to the conservative default.
	inf := NewInferencer(&fakeClient{embedErr: errors.New("boom")}, nil, testConfig(), nil, slog.Default())

	scope := &models.Scope{
		Goal:      "a storefront",
		TechStack: models.TechStack{Backend: "Django"},
	}
	result, err := inf.Infer(context.Background(), scope)
	require.NoError(t, err)
	assert.True(t, result.Fallback)
}

func TestInferEmbedFailureUsesConservativeDefault(t *testing.T) {
	inf := NewInferencer(&fakeClient{embedErr: errors.New("embedding service down")}, nil, testConfig(), nil, slog.Default())

	result, err := inf.Infer(context.Background(), &models.Scope{Goal: "a marketplace"})
	require.NoError(t, err, "embed failure must not fail the run")

	assert.Equal(t, "FastAPI", result.Backend)
	assert.Equal(t, "React", result.Frontend)
	assert.Equal(t, "PostgreSQL", result.Database)
	assert.Zero(t, result.Confidence)
	assert.True(t, result.Fallback)
}

func TestInferTemplateMatch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	templates := services.NewTemplateService(client)
	ctx := context.Background()

	// Seed one template whose embedding matches the scope exactly and one
	// orthogonal distractor.
	require.NoError(t, templates.Upsert(ctx, services.UpsertInput{
		Title:     "ecommerce-store",
		Backend:   "Django",
		Frontend:  "Next.js",
		Database:  "PostgreSQL",
		Embedding: []float64{1, 0, 0},
	}))
	require.NoError(t, templates.Upsert(ctx, services.UpsertInput{
		Title:     "realtime-collab",
		Backend:   "Phoenix",
		Frontend:  "React",
		Database:  "PostgreSQL",
		Embedding: []float64{0, 1, 0},
	}))

	fake := &fakeClient{embeddings: map[string][]float64{"storefront": {1, 0, 0}}}
	inf := NewInferencer(fake, templates, testConfig(), nil, slog.Default())

	result, err := inf.Infer(ctx, &models.Scope{Goal: "an online storefront with checkout"})
	require.NoError(t, err)

	assert.Equal(t, "ecommerce-store", result.TemplateTitle)
	assert.Equal(t, "Django", result.Backend)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	assert.False(t, result.Fallback)
}

func TestInferBelowThresholdFallsBackToLLM(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	templates := services.NewTemplateService(client)
	ctx := context.Background()

	require.NoError(t, templates.Upsert(ctx, services.UpsertInput{
		Title:     "landing-site",
		Backend:   "None",
		Frontend:  "Astro",
		Database:  "None",
		Embedding: []float64{1, 0, 0},
	}))

	fake := &fakeClient{
		// Orthogonal to the only template: similarity 0, below threshold.
		embeddings: map[string][]float64{"compiler": {0, 1, 0}},
		completion: `{"backend": "Go", "frontend": "none", "database": "SQLite", "confidence": 0.6}`,
	}
	inf := NewInferencer(fake, templates, testConfig(), nil, slog.Default())

	result, err := inf.Infer(ctx, &models.Scope{Goal: "an online compiler playground"})
	require.NoError(t, err)

	assert.Equal(t, "Go", result.Backend)
	assert.Equal(t, "SQLite", result.Database)
	assert.True(t, result.Fallback)
	assert.Empty(t, result.TemplateTitle)
}

func TestInferLLMFallbackFailureUsesDefault(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	templates := services.NewTemplateService(client)
	ctx := context.Background()

	fake := &fakeClient{complErr: llm.ErrUnavailable}
	inf := NewInferencer(fake, templates, testConfig(), nil, slog.Default())

	// Empty corpus: nothing can match, LLM fails, default wins.
	result, err := inf.Infer(ctx, &models.Scope{Goal: "a niche internal tool"})
	require.NoError(t, err)
	assert.Equal(t, "FastAPI", result.Backend)
	assert.True(t, result.Fallback)
}

func TestSeedPopulatesCorpus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	templates := services.NewTemplateService(client)
	ctx := context.Background()

	fake := &fakeClient{}
	require.NoError(t, Seed(ctx, fake, templates, slog.Default()))

	scored, err := templates.Nearest(ctx, []float64{0, 0, 1}, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(scored), 10, "all seed templates present")

	// Seeding twice is idempotent.
	require.NoError(t, Seed(ctx, fake, templates, slog.Default()))
	again, err := templates.Nearest(ctx, []float64{0, 0, 1}, 0)
	require.NoError(t, err)
	assert.Len(t, again, len(scored))
}
