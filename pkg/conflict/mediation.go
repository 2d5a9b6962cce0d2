package conflict

import (
	"context"
	"fmt"

	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// DetectConflict embeds the UI and backend artifacts and computes their
// cosine similarity. Mediation is indicated when similarity falls below the
// configured threshold.
func (r *Resolver) DetectConflict(ctx context.Context, uiArtifact, backendArtifact string) (similarity float64, shouldMediate bool, err error) {
	ctx, span := tracing.Tracer("conflict").Start(ctx, "conflict.detect")
	defer span.End()

	uiVec, err := r.llm.Embed(ctx, uiArtifact)
	if err != nil {
		return 0, false, fmt.Errorf("failed to embed ui artifact: %w", err)
	}
	backendVec, err := r.llm.Embed(ctx, backendArtifact)
	if err != nil {
		return 0, false, fmt.Errorf("failed to embed backend artifact: %w", err)
	}

	similarity = llm.Cosine(uiVec, backendVec)
	shouldMediate = similarity < r.thresh

	span.SetAttributes(
		tracing.FloatAttr("conflict.similarity", similarity),
		tracing.BoolAttr("conflict.should_mediate", shouldMediate),
	)
	r.sink.ObserveHistogram(metrics.ConflictSimilarity, similarity)
	if shouldMediate {
		r.sink.IncCounter(metrics.ConflictsDetected)
	}
	return similarity, shouldMediate, nil
}

const mediatePrompt = `Two artifacts from the same project disagree: a UI specification
and the backend API it consumes. Rewrite the UI specification so that every
data reference, endpoint path, and payload shape matches the backend exactly.
Keep the UI's structure and intent; change only what conflicts.
Respond with the revised UI specification only, no commentary.`

// Mediate regenerates the UI artifact against the backend artifact and
// re-measures similarity, recording a conflict_resolved event with the pre
// and post scores and returning the tokens the regeneration consumed. The
// revised artifact is returned even when the post similarity still misses
// the goal; the caller decides whether to iterate.
func (r *Resolver) Mediate(ctx context.Context, swarmID, uiArtifact, backendArtifact string, preSimilarity float64) (string, float64, int, error) {
	ctx, span := tracing.Tracer("conflict").Start(ctx, "conflict.mediate")
	defer span.End()

	resp, err := r.llm.Complete(ctx, llm.CompletionRequest{
		System:      mediatePrompt,
		User:        "UI specification:\n" + uiArtifact + "\n\nBackend API:\n" + backendArtifact,
		Temperature: 0.2,
		MaxTokens:   4096,
	})
	if err != nil {
		return "", 0, 0, fmt.Errorf("mediation failed: %w", err)
	}
	revised := resp.Text

	// Measured directly rather than through DetectConflict: the re-check is
	// bookkeeping for this mediation, not a second detected conflict.
	revisedVec, err := r.llm.Embed(ctx, revised)
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to re-measure similarity: %w", err)
	}
	backendVec, err := r.llm.Embed(ctx, backendArtifact)
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to re-measure similarity: %w", err)
	}
	postSimilarity := llm.Cosine(revisedVec, backendVec)

	if err := r.pub.ConflictResolved(ctx, swarmID, events.ConflictResolvedPayload{
		PreSimilarity:  preSimilarity,
		PostSimilarity: postSimilarity,
		Mediated:       true,
	}); err != nil {
		return "", 0, 0, err
	}
	r.sink.IncCounter(metrics.ConflictsResolved)

	span.SetAttributes(
		tracing.FloatAttr("conflict.pre_similarity", preSimilarity),
		tracing.FloatAttr("conflict.post_similarity", postSimilarity),
	)
	if postSimilarity < r.goal {
		r.logger.Warn("mediation finished below similarity goal",
			"swarm_id", swarmID,
			"pre", preSimilarity, "post", postSimilarity, "goal", r.goal)
	}
	return revised, postSimilarity, resp.TokensUsed, nil
}
