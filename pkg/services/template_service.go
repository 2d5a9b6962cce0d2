package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/stacktemplate"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/google/uuid"
)

// TemplateService manages seeded stack templates and nearest-neighbor lookup.
type TemplateService struct {
	client *ent.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(client *ent.Client) *TemplateService {
	return &TemplateService{client: client}
}

// UpsertInput carries one seeded stack template.
type UpsertInput struct {
	Title       string
	Backend     string
	Frontend    string
	Database    string
	Description string
	Embedding   []float64
}

// Upsert inserts or updates a template keyed by its unique title.
func (s *TemplateService) Upsert(ctx context.Context, input UpsertInput) error {
	existing, err := s.client.StackTemplate.Query().
		Where(stacktemplate.TitleEQ(input.Title)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.StackTemplate.Create().
			SetID(uuid.New().String()).
			SetTitle(input.Title).
			SetBackend(input.Backend).
			SetFrontend(input.Frontend).
			SetDatabase(input.Database).
			SetDescription(input.Description).
			SetEmbedding(input.Embedding).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create template %q: %w", input.Title, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to query template %q: %w", input.Title, err)
	}

	err = s.client.StackTemplate.UpdateOneID(existing.ID).
		SetBackend(input.Backend).
		SetFrontend(input.Frontend).
		SetDatabase(input.Database).
		SetDescription(input.Description).
		SetEmbedding(input.Embedding).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update template %q: %w", input.Title, err)
	}
	return nil
}

// ScoredTemplate pairs a template with its similarity to a query embedding.
type ScoredTemplate struct {
	Template   *ent.StackTemplate
	Similarity float64
}

// Nearest returns the k templates most similar to the embedding, ordered by
// cosine similarity descending. The seeded corpus is small, so ranking
// happens in-process.
func (s *TemplateService) Nearest(ctx context.Context, embedding []float64, k int) ([]ScoredTemplate, error) {
	templates, err := s.client.StackTemplate.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	scored := make([]ScoredTemplate, 0, len(templates))
	for _, t := range templates {
		scored = append(scored, ScoredTemplate{
			Template:   t,
			Similarity: llm.Cosine(embedding, t.Embedding),
		})
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}
