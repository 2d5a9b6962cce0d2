// Package stack infers a technology stack for a project from its scope by
// matching against a seeded template corpus, with an LLM fallback for
// unfamiliar domains.
package stack

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// Inferencer resolves a concrete stack for a scope.
type Inferencer struct {
	llm       llm.Client
	templates *services.TemplateService
	cfg       config.StackConfig
	sink      metrics.Sink
	logger    *slog.Logger
}

// NewInferencer creates an Inferencer.
func NewInferencer(client llm.Client, templates *services.TemplateService, cfg config.StackConfig, sink metrics.Sink, logger *slog.Logger) *Inferencer {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Inferencer{
		llm:       client,
		templates: templates,
		cfg:       cfg,
		sink:      sink,
		logger:    logger.With("component", "stack_inferencer"),
	}
}

// conservativeDefault is the stack used when neither template matching nor
// the LLM fallback can produce an answer.
func conservativeDefault() models.StackInference {
	return models.StackInference{
		Backend:    "FastAPI",
		Frontend:   "React",
		Database:   "PostgreSQL",
		Confidence: 0.0,
		Fallback:   true,
	}
}

// Infer resolves a stack for the scope. The project description is embedded
// and matched against the seeded template corpus; a top match at or above
// the similarity threshold wins. Below threshold the LLM proposes a stack
// directly. If embedding itself fails, a conservative default is returned
// rather than failing the run.
func (inf *Inferencer) Infer(ctx context.Context, scope *models.Scope) (models.StackInference, error) {
	ctx, span := tracing.Tracer("stack").Start(ctx, "stack_inference.infer")
	defer span.End()

	// Explicit user choices always win over inference.
	if scope.TechStack.Backend != "" && scope.TechStack.Frontend != "" && scope.TechStack.Database != "" {
		result := models.StackInference{
			Backend:    scope.TechStack.Backend,
			Frontend:   scope.TechStack.Frontend,
			Database:   scope.TechStack.Database,
			Confidence: 1.0,
		}
		inf.record(span, result, 1.0)
		return result, nil
	}

	query := describeScope(scope)
	embedding, err := inf.llm.Embed(ctx, query)
	if err != nil {
		inf.logger.Warn("embedding failed, using conservative default stack",
			"project", scope.ProjectName, "error", err)
		result := conservativeDefault()
		inf.record(span, result, 0)
		return result, nil
	}

	scored, err := inf.templates.Nearest(ctx, embedding, 1)
	if err != nil {
		return models.StackInference{}, fmt.Errorf("template lookup failed: %w", err)
	}

	if len(scored) > 0 && scored[0].Similarity >= inf.cfg.SimilarityThreshold {
		best := scored[0]
		result := models.StackInference{
			Backend:       best.Template.Backend,
			Frontend:      best.Template.Frontend,
			Database:      best.Template.Database,
			Confidence:    best.Similarity,
			TemplateTitle: best.Template.Title,
		}
		inf.logger.Info("stack inferred from template",
			"project", scope.ProjectName,
			"template", best.Template.Title,
			"similarity", best.Similarity)
		inf.record(span, result, best.Similarity)
		return result, nil
	}

	similarity := 0.0
	if len(scored) > 0 {
		similarity = scored[0].Similarity
	}

	result, err := inf.inferWithLLM(ctx, scope, query)
	if err != nil {
		inf.logger.Warn("llm stack fallback failed, using conservative default",
			"project", scope.ProjectName, "error", err)
		result = conservativeDefault()
	}
	inf.logger.Info("stack inferred via llm fallback",
		"project", scope.ProjectName,
		"backend", result.Backend,
		"best_template_similarity", similarity,
		"confidence", result.Confidence)
	inf.record(span, result, similarity)
	return result, nil
}

func (inf *Inferencer) record(span tracing.Span, result models.StackInference, similarity float64) {
	span.SetAttributes(
		tracing.FloatAttr("stack.similarity", similarity),
		tracing.FloatAttr("stack.confidence", result.Confidence),
		tracing.BoolAttr("stack.fallback", result.Fallback),
	)
	inf.sink.ObserveHistogram(metrics.StackConfidence, result.Confidence)
}

const stackPrompt = `You select a technology stack for a software project.
Respond with a JSON object only, no prose:
{"backend": "<framework>", "frontend": "<framework>", "database": "<engine>", "confidence": <0.0-1.0>}
Pick mainstream, well-supported frameworks appropriate to the project.`

func (inf *Inferencer) inferWithLLM(ctx context.Context, scope *models.Scope, query string) (models.StackInference, error) {
	resp, err := inf.llm.Complete(ctx, llm.CompletionRequest{
		System:      stackPrompt,
		User:        query,
		Temperature: 0.2,
		MaxTokens:   256,
		ExpectJSON:  true,
	})
	if err != nil {
		return models.StackInference{}, err
	}

	var parsed struct {
		Backend    string  `json:"backend"`
		Frontend   string  `json:"frontend"`
		Database   string  `json:"database"`
		Confidence float64 `json:"confidence"`
	}
	if err := llm.ParseJSONResponse(resp.Text, &parsed); err != nil {
		return models.StackInference{}, err
	}
	if parsed.Backend == "" || parsed.Database == "" {
		return models.StackInference{}, fmt.Errorf("%w: incomplete stack proposal", llm.ErrInvalidJSON)
	}
	return models.StackInference{
		Backend:    parsed.Backend,
		Frontend:   parsed.Frontend,
		Database:   parsed.Database,
		Confidence: parsed.Confidence,
		Fallback:   true,
	}, nil
}

func describeScope(scope *models.Scope) string {
	var b strings.Builder
	b.WriteString(scope.Goal)
	if len(scope.Features) > 0 {
		b.WriteString("\nFeatures: ")
		b.WriteString(strings.Join(scope.Features, ", "))
	}
	if len(scope.Integrations) > 0 {
		b.WriteString("\nIntegrations: ")
		b.WriteString(strings.Join(scope.Integrations, ", "))
	}
	return b.String()
}
