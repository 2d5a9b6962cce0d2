// Package scope turns a free-form user request into a structured project
// scope via LLM extraction, gated by a cheap pre-check for requests too
// thin to plan from.
package scope

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// ClarificationError is returned when the request is too vague to extract a
// scope from. Questions carries up to three follow-ups for the user.
type ClarificationError struct {
	Questions []string
}

func (e *ClarificationError) Error() string {
	return fmt.Sprintf("request needs clarification (%d questions)", len(e.Questions))
}

// NeedsClarification reports whether err is a ClarificationError and
// returns it if so.
func NeedsClarification(err error) (*ClarificationError, bool) {
	var ce *ClarificationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Extractor extracts structured scopes from user messages.
type Extractor struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(client llm.Client, logger *slog.Logger) *Extractor {
	return &Extractor{llm: client, logger: logger.With("component", "scope_extractor")}
}

// greetings that carry no project content. Checked against the whole
// normalized message, not substrings, so "hi-fi store builder" still passes.
var greetingOnly = map[string]bool{
	"hi": true, "hello": true, "hey": true, "yo": true, "sup": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"thanks": true, "thank you": true, "test": true, "help": true,
}

var defaultQuestions = []string{
	"What are you trying to build? A sentence or two about the product is enough.",
	"Who will use it, and what is the single most important thing they should be able to do?",
	"Do you have any technology preferences or constraints, or should we pick the stack?",
}

const minTokens = 5

// Precheck rejects messages too thin to extract from: fewer than five
// whitespace tokens, or a bare greeting. It never calls the LLM.
func Precheck(message string) error {
	normalized := strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(message), "!.,?")))
	if greetingOnly[normalized] {
		return &ClarificationError{Questions: defaultQuestions}
	}
	if len(strings.Fields(message)) < minTokens {
		return &ClarificationError{Questions: defaultQuestions}
	}
	return nil
}

const extractPrompt = `You extract a structured project scope from a user's request.
Respond with a JSON object only, matching this schema exactly:
{
  "project_name": "<short name>",
  "goal": "<one-sentence goal>",
  "tech_stack": {"frontend": "", "backend": "", "database": "", "auth": "", "deployment": ""},
  "features": ["..."],
  "integrations": ["..."],
  "competitors": ["..."],
  "timeline": "",
  "pages_est": 0,
  "models_est": 0,
  "endpoints_est": 0,
  "scope_of_works": {
    "in_scope": ["..."],
    "out_scope": ["..."],
    "milestones": ["..."],
    "risks": ["..."],
    "kpis": ["..."]
  }
}
Fill tech_stack fields only when the user stated a preference; otherwise leave them empty strings.
Estimates are rough integer counts of pages, data models, and API endpoints. Use 0 when unknowable.
If the request genuinely cannot be scoped, respond instead with:
{"needs_clarification": true, "questions": ["...", "..."]}
with at most three specific questions.`

const correctionPrompt = `Your previous response was not valid JSON matching the schema. Error: %s
Respond again with ONLY the JSON object, no markdown fences, no commentary.`

// Extract runs the precheck and then LLM extraction. One self-correction
// round-trip is attempted when the model's first answer fails to parse.
func (e *Extractor) Extract(ctx context.Context, message string) (*models.Scope, error) {
	ctx, span := tracing.Tracer("scope").Start(ctx, "scope.extract")
	defer span.End()

	if err := Precheck(message); err != nil {
		span.SetAttributes(tracing.BoolAttr("scope.needs_clarification", true))
		return nil, err
	}

	scope, parseErr := e.extractOnce(ctx, message, "")
	if parseErr != nil && errors.Is(parseErr, llm.ErrInvalidJSON) {
		e.logger.Warn("scope extraction returned invalid JSON, retrying with correction", "error", parseErr)
		scope, parseErr = e.extractOnce(ctx, message, parseErr.Error())
	}
	if parseErr != nil {
		return nil, parseErr
	}

	span.SetAttributes(
		tracing.StringAttr("scope.project_name", scope.ProjectName),
		tracing.IntAttr("scope.features", len(scope.Features)),
	)
	return scope, nil
}

func (e *Extractor) extractOnce(ctx context.Context, message, correction string) (*models.Scope, error) {
	user := message
	if correction != "" {
		user = message + "\n\n" + fmt.Sprintf(correctionPrompt, correction)
	}

	resp, err := e.llm.Complete(ctx, llm.CompletionRequest{
		System:      extractPrompt,
		User:        user,
		Temperature: 0.1,
		MaxTokens:   2048,
		ExpectJSON:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("scope extraction failed: %w", err)
	}

	// The model may answer with a clarification envelope instead of a scope.
	var clarify struct {
		NeedsClarification bool     `json:"needs_clarification"`
		Questions          []string `json:"questions"`
	}
	if err := llm.ParseJSONResponse(resp.Text, &clarify); err == nil && clarify.NeedsClarification {
		if len(clarify.Questions) > 3 {
			clarify.Questions = clarify.Questions[:3]
		}
		if len(clarify.Questions) == 0 {
			clarify.Questions = defaultQuestions
		}
		return nil, &ClarificationError{Questions: clarify.Questions}
	}

	var scope models.Scope
	if err := llm.ParseJSONResponse(resp.Text, &scope); err != nil {
		return nil, err
	}
	if scope.Goal == "" {
		return nil, fmt.Errorf("%w: missing goal", llm.ErrInvalidJSON)
	}
	if scope.ProjectName == "" {
		scope.ProjectName = deriveName(scope.Goal)
	}
	return &scope, nil
}

// deriveName builds a fallback project name from the first few words of the
// goal when the model omits one.
func deriveName(goal string) string {
	words := strings.Fields(goal)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
