package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/agent"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/planner"
	"github.com/crewforge/crewforge/pkg/slo"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// generatePlan produces and persists the plan. An invalid plan (cycle) is a
// hard failure; nothing is persisted for it.
func (e *Engine) generatePlan(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	plan, err := e.planner.Plan(ctx, wc.scope)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidPlan) {
			return nil, err
		}
		return nil, retriable(err)
	}
	if err := e.planner.Materialize(ctx, wc.swarmID, plan); err != nil {
		return nil, err
	}
	if err := e.swarms.RecordPlan(ctx, wc.swarmID, plan.NumAgents(), plan.Complexity); err != nil {
		return nil, err
	}
	wc.complexity = plan.Complexity

	return map[string]interface{}{
		"complexity": plan.Complexity,
		"score":      plan.Score,
		"strategy":   plan.Strategy,
		"num_agents": plan.NumAgents(),
		"num_tasks":  plan.NumTasks(),
	}, nil
}

// dispatchTasksParallel drains the ready queue in waves: each wave fans out
// at most one task per agent, bounded by the crew size, and waits for the
// whole wave before re-enumerating. Observed completion order within a wave
// is arbitrary; step ordering stays strict.
func (e *Engine) dispatchTasksParallel(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	agents, err := e.swarms.ListAgents(ctx, wc.swarmID)
	if err != nil {
		return nil, retriable(err)
	}
	agentByID := make(map[string]*ent.Agent, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}

	var firstEscalation *agent.EscalatedError
	completed, failed := 0, 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ready, err := e.scheduler.ReadyTasks(ctx, wc.swarmID)
		if err != nil {
			return nil, retriable(err)
		}
		wave := oneTaskPerAgent(ready)
		if len(wave) == 0 {
			verdict, escErr, err := e.dispatchStall(ctx, wc.swarmID)
			if err != nil {
				return nil, err
			}
			if escErr != nil {
				return nil, escErr
			}
			if verdict == stallHealable {
				select {
				case <-time.After(e.healWait):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				continue
			}
			break
		}

		var (
			wg sync.WaitGroup
			mu sync.Mutex
		)
		for _, t := range wave {
			a := agentByID[deref(t.AgentID)]
			if a == nil {
				return nil, fmt.Errorf("task %s has no owning agent", t.TaskKey)
			}
			wg.Add(1)
			go func(a *ent.Agent, t *ent.Task) {
				defer wg.Done()
				_, execErr := e.executor.Execute(ctx, wc.swarmID, a, t, wc.scope)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case execErr == nil:
					completed++
				default:
					var esc *agent.EscalatedError
					if errors.As(execErr, &esc) {
						if firstEscalation == nil {
							firstEscalation = esc
						}
						return
					}
					failed++
				}
			}(a, t)
		}
		wg.Wait()
	}

	progress, err := e.scheduler.CalculateProgress(ctx, wc.swarmID)
	if err != nil {
		return nil, retriable(err)
	}
	result := map[string]interface{}{
		"completed": progress.Completed,
		"failed":    progress.Failed,
		"blocked":   progress.Blocked,
		"total":     progress.Total,
	}
	if progress.Completed == progress.Total {
		return result, nil
	}
	if firstEscalation != nil {
		return nil, firstEscalation
	}
	// Failed tasks belong to the monitor now; re-running this activity
	// picks them back up once they are requeued.
	return nil, retriable(fmt.Errorf("dispatch incomplete: %d of %d tasks completed",
		progress.Completed, progress.Total))
}

type stallVerdict int

const (
	stallDrained  stallVerdict = iota // nothing left worth waiting on
	stallHealable                     // the monitor can still make progress
)

// dispatchStall decides what an empty wave means while tasks remain
// unfinished. A failed task with retry budget left heals in place: the
// monitor either requeues it or escalates it, so the dispatcher waits
// instead of declaring the run incomplete. A task parked behind an open
// escalation pauses the workflow, which also covers a reclaimed swarm whose
// escalation predates this process. Only when neither applies does the
// dispatcher fall through to the incomplete-run failure.
func (e *Engine) dispatchStall(ctx context.Context, swarmID string) (stallVerdict, *agent.EscalatedError, error) {
	all, err := e.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		return stallDrained, nil, retriable(err)
	}

	healable := false
	var escalated *agent.EscalatedError
	for _, t := range all {
		switch t.Status {
		case task.StatusInProgress:
			// An orphaned claim from another incarnation; the monitor times
			// it out.
			healable = true
		case task.StatusFailed, task.StatusBlocked:
			esc, tagged := e.openEscalation(ctx, t)
			switch {
			case esc != nil:
				if escalated == nil {
					escalated = &agent.EscalatedError{Kind: string(esc.Kind), EscalationID: esc.ID}
				}
			case t.Status == task.StatusFailed && !tagged && t.Attempts < t.MaxAttempts:
				healable = true
			}
		}
	}
	if healable {
		return stallHealable, nil, nil
	}
	if escalated != nil {
		return stallDrained, escalated, nil
	}
	return stallDrained, nil, nil
}

// openEscalation returns the still-pending escalation a task is parked
// behind, if any, and whether the task carries an escalation tag at all.
func (e *Engine) openEscalation(ctx context.Context, t *ent.Task) (*ent.Escalation, bool) {
	id, ok := t.Data["escalation_id"].(string)
	if !ok || id == "" {
		return nil, false
	}
	esc, err := e.escalations.Get(ctx, id)
	if err != nil || esc.Status != escalation.StatusPending {
		return nil, true
	}
	return esc, true
}

// oneTaskPerAgent keeps ready-queue order but takes at most one task per
// owning agent, so a wave never double-books an agent.
func oneTaskPerAgent(ready []*ent.Task) []*ent.Task {
	taken := make(map[string]bool)
	var wave []*ent.Task
	for _, t := range ready {
		id := deref(t.AgentID)
		if id == "" || taken[id] {
			continue
		}
		taken[id] = true
		wave = append(wave, t)
	}
	return wave
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// uiPlan is the structured output of the UI inference activity.
type uiPlan struct {
	Components  []string `json:"components"`
	Constraints struct {
		Responsive bool   `json:"responsive"`
		WCAG       string `json:"wcag"`
		Theme      string `json:"theme"`
	} `json:"constraints"`
	Hooks       []string `json:"hooks"`
	NeedsReview bool     `json:"needs_review"`
}

const uiInferencePrompt = `You are reviewing a delivered project to produce its UI plan.
Given the frontend and backend artifacts, respond with a JSON object only:
{"components": ["..."], "constraints": {"responsive": true, "wcag": "2.1", "theme": "<theme>"},
 "hooks": ["..."], "needs_review": false}
components lists every UI component; hooks lists the data hooks binding them to the API.
Set needs_review when the artifacts leave UI decisions unresolved.`

// uiInference generates the UI plan from the dispatched artifacts, carrying
// the inferred stack as context.
func (e *Engine) uiInference(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	frontend, backend, err := e.collectArtifacts(ctx, wc.swarmID)
	if err != nil {
		return nil, retriable(err)
	}

	var stackLine string
	if wc.scope.StackInference != nil {
		stackLine = fmt.Sprintf("Stack: backend=%s frontend=%s database=%s\n",
			wc.scope.StackInference.Backend, wc.scope.StackInference.Frontend, wc.scope.StackInference.Database)
	}
	resp, err := e.llm.Complete(ctx, llm.CompletionRequest{
		System:      uiInferencePrompt,
		User:        stackLine + "Frontend artifacts:\n" + frontend + "\n\nBackend artifacts:\n" + backend,
		Temperature: 0.2,
		MaxTokens:   4096,
		ExpectJSON:  true,
	})
	if err != nil {
		return nil, retriable(err)
	}
	var plan uiPlan
	if err := llm.ParseJSONResponse(resp.Text, &plan); err != nil {
		return nil, retriable(err)
	}
	if plan.Constraints.WCAG == "" {
		plan.Constraints.WCAG = "2.1"
	}

	tracing.SpanFromContext(ctx).SetAttributes(
		tracing.IntAttr("ui.components_count", len(plan.Components)),
		tracing.BoolAttr("ui.needs_review", plan.NeedsReview),
	)
	return map[string]interface{}{
		"ui_plan":     llm.StripMarkdownFences(resp.Text),
		"components":  len(plan.Components),
		"tokens_used": resp.TokensUsed,
	}, nil
}

// visualResult is the structured output of the visual test activity.
type visualResult struct {
	DiffPct        float64  `json:"diff_pct"`
	WCAGViolations int      `json:"wcag_violations"`
	Notes          []string `json:"notes"`
}

const visualTestPrompt = `You audit a UI plan for visual regressions and accessibility.
Compare the UI plan against the project goal and report, as JSON only:
{"diff_pct": <0-100 estimated deviation from the intended design>,
 "wcag_violations": <count of WCAG 2.1 AA violations implied by the plan>,
 "notes": ["..."]}`

// visualTest runs the accessibility + responsive + diff audit. The step
// passes iff the diff stays under the configured ceiling and there are zero
// WCAG violations.
func (e *Engine) visualTest(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	uiCheckpoint, _ := wc.checkpoints[StepUIInference].(map[string]interface{})
	uiArtifact, _ := uiCheckpoint["ui_plan"].(string)
	if uiArtifact == "" {
		return nil, errors.New("visual test has no ui plan to audit")
	}

	resp, err := e.llm.Complete(ctx, llm.CompletionRequest{
		System:      visualTestPrompt,
		User:        "Goal: " + wc.scope.Goal + "\n\nUI plan:\n" + uiArtifact,
		Temperature: 0.1,
		MaxTokens:   1024,
		ExpectJSON:  true,
	})
	if err != nil {
		return nil, retriable(err)
	}
	var vr visualResult
	if err := llm.ParseJSONResponse(resp.Text, &vr); err != nil {
		return nil, retriable(err)
	}

	tracing.SpanFromContext(ctx).SetAttributes(
		tracing.FloatAttr("visual.diff_score", vr.DiffPct),
		tracing.IntAttr("visual.wcag_violations", vr.WCAGViolations),
	)
	e.sink.ObserveHistogram(metrics.VisualDiffScore, vr.DiffPct)

	if vr.DiffPct >= e.cfg.VisualDiffMax || vr.WCAGViolations > 0 {
		return nil, retriable(fmt.Errorf("visual test failed: diff %.1f%% (max %.1f%%), %d wcag violations",
			vr.DiffPct, e.cfg.VisualDiffMax, vr.WCAGViolations))
	}
	return map[string]interface{}{
		"diff_pct":        vr.DiffPct,
		"wcag_violations": vr.WCAGViolations,
		"tokens_used":     resp.TokensUsed,
	}, nil
}

// conflictResolution measures UI/backend similarity and mediates when the
// two sides disagree.
func (e *Engine) conflictResolution(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	uiCheckpoint, _ := wc.checkpoints[StepUIInference].(map[string]interface{})
	uiArtifact, _ := uiCheckpoint["ui_plan"].(string)
	_, backend, err := e.collectArtifacts(ctx, wc.swarmID)
	if err != nil {
		return nil, retriable(err)
	}
	if uiArtifact == "" || backend == "" {
		return map[string]interface{}{"mediated": false, "similarity": 1.0}, nil
	}

	similarity, shouldMediate, err := e.resolver.DetectConflict(ctx, uiArtifact, backend)
	if err != nil {
		return nil, retriable(err)
	}
	tracing.SpanFromContext(ctx).SetAttributes(
		tracing.FloatAttr("conflict.similarity", similarity),
	)
	if !shouldMediate {
		return map[string]interface{}{"mediated": false, "similarity": similarity}, nil
	}
	e.pub.AppendBestEffort(ctx, wc.swarmID, events.KindConflictDetected, map[string]interface{}{
		"similarity": similarity,
	})

	revised, post, tokens, err := e.resolver.Mediate(ctx, wc.swarmID, uiArtifact, backend, similarity)
	if err != nil {
		return nil, retriable(err)
	}
	return map[string]interface{}{
		"mediated":        true,
		"similarity":      similarity,
		"post_similarity": post,
		"tokens_used":     tokens,
		"ui_plan":         revised,
	}, nil
}

// testGate enforces the reported-coverage floor. Tasks report coverage in
// their output data; the gate takes the highest reported figure.
func (e *Engine) testGate(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	tasks, err := e.tasks.ListTasks(ctx, wc.swarmID, task.StatusCompleted)
	if err != nil {
		return nil, retriable(err)
	}

	coverage, reported := -1.0, false
	for _, t := range tasks {
		if v, ok := t.Data["coverage_pct"].(float64); ok {
			reported = true
			if v > coverage {
				coverage = v
			}
		}
	}
	if !reported {
		e.logger.Warn("no task reported test coverage, gate passes vacuously",
			"swarm_id", wc.swarmID)
		return map[string]interface{}{"coverage_reported": false}, nil
	}
	if coverage < e.cfg.TestCoverageMin {
		return nil, retriable(fmt.Errorf("test gate failed: coverage %.1f%% below %.1f%%",
			coverage, e.cfg.TestCoverageMin))
	}
	return map[string]interface{}{
		"coverage_reported": true,
		"coverage_pct":      coverage,
	}, nil
}

// sloEnforce evaluates the run against the configured objectives. Hard
// breaches fail the workflow; warnings are recorded and execution proceeds.
func (e *Engine) sloEnforce(ctx context.Context, wc *workflowContext) (map[string]interface{}, error) {
	tokens, err := e.totalTokens(ctx, wc)
	if err != nil {
		return nil, retriable(err)
	}

	coverage := -1.0
	if gate, ok := wc.checkpoints[StepTestGate].(map[string]interface{}); ok {
		if v, ok := gate["coverage_pct"].(float64); ok {
			coverage = v
		}
	}
	confidence := 0.0
	if wc.scope.StackInference != nil {
		confidence = wc.scope.StackInference.Confidence
	}

	m := measurementsFor(tokens, time.Since(wc.startedAt), coverage, confidence)
	results, err := e.gate.Enforce(ctx, wc.swarmID, m)
	out := map[string]interface{}{
		"cost_usd":    e.gate.Cost(tokens),
		"tokens_used": tokens,
		"results":     results,
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func measurementsFor(tokens int, duration time.Duration, coverage, confidence float64) slo.Measurements {
	m := slo.Measurements{
		TokensUsed:      tokens,
		Duration:        duration,
		CoveragePct:     coverage,
		StackConfidence: confidence,
	}
	if coverage < 0 {
		// Nothing reported; don't manufacture a breach out of absence.
		m.CoveragePct = 100
	}
	return m
}

// totalTokens sums token usage across task outputs and engine-level
// activities.
func (e *Engine) totalTokens(ctx context.Context, wc *workflowContext) (int, error) {
	tasks, err := e.tasks.ListTasks(ctx, wc.swarmID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, t := range tasks {
		if v, ok := t.Data["tokens_used"].(float64); ok {
			total += int(v)
		}
	}
	for _, name := range []string{StepUIInference, StepVisualTest, StepConflictResolution} {
		if cp, ok := wc.checkpoints[name].(map[string]interface{}); ok {
			// int when the checkpoint was written this run, float64 when it
			// was decoded from persisted metadata.
			switch v := cp["tokens_used"].(type) {
			case int:
				total += v
			case float64:
				total += int(v)
			}
		}
	}
	return total, nil
}

// collectArtifacts concatenates completed-task artifacts split by the
// owning agent's side of the stack.
func (e *Engine) collectArtifacts(ctx context.Context, swarmID string) (frontend, backend string, err error) {
	agents, err := e.swarms.ListAgents(ctx, swarmID)
	if err != nil {
		return "", "", err
	}
	roleByID := make(map[string]string, len(agents))
	for _, a := range agents {
		roleByID[a.ID] = a.Role
	}

	tasks, err := e.tasks.ListTasks(ctx, swarmID, task.StatusCompleted)
	if err != nil {
		return "", "", err
	}

	var fb, bb strings.Builder
	for _, t := range tasks {
		artifacts, ok := t.Data["artifacts"].(map[string]interface{})
		if !ok {
			continue
		}
		role := roleByID[deref(t.AgentID)]
		for name, v := range artifacts {
			content, ok := v.(string)
			if !ok {
				continue
			}
			entry := fmt.Sprintf("--- %s (%s) ---\n%s\n", name, t.TaskKey, content)
			if role == models.RoleFrontendArchitect {
				fb.WriteString(entry)
			} else {
				bb.WriteString(entry)
			}
		}
	}
	return fb.String(), bb.String(), nil
}
