// Package workflow drives each swarm through its ordered activity sequence.
// Every activity persists its result into the swarm's metadata before the
// engine advances, so a crashed process resumes from the last checkpoint
// instead of re-executing completed activities.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/pkg/agent"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/planner"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/slo"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// Activity names, in execution order. These double as checkpoint keys.
const (
	StepGeneratePlan       = "generate_plan"
	StepDispatch           = "dispatch_tasks_parallel"
	StepUIInference        = "ui_inference"
	StepVisualTest         = "visual_test"
	StepConflictResolution = "conflict_resolution"
	StepTestGate           = "test_gate"
	StepSLOEnforce         = "slo_enforce"
	StepFinalize           = "finalize"
)

const checkpointsKey = "checkpoints"

// retriableError marks an activity failure worth re-running in place.
type retriableError struct {
	err error
}

func (e *retriableError) Error() string { return e.err.Error() }
func (e *retriableError) Unwrap() error { return e.err }

func retriable(err error) error {
	if err == nil {
		return nil
	}
	return &retriableError{err: err}
}

// Engine executes swarm workflows.
type Engine struct {
	swarms      *services.SwarmService
	tasks       *services.TaskService
	escalations *services.EscalationService
	planner     *planner.Planner
	scheduler   *scheduler.Scheduler
	executor    *agent.Executor
	resolver    *conflict.Resolver
	gate        *slo.Gate
	llm         llm.Client
	pub         *events.Publisher
	cfg         config.WorkflowConfig
	sink        metrics.Sink
	logger      *slog.Logger

	// healWait paces the dispatcher while it waits for the monitor to
	// requeue or escalate failed tasks.
	healWait time.Duration
}

// NewEngine creates an Engine.
func NewEngine(
	swarms *services.SwarmService,
	tasks *services.TaskService,
	escalations *services.EscalationService,
	pl *planner.Planner,
	sched *scheduler.Scheduler,
	executor *agent.Executor,
	resolver *conflict.Resolver,
	gate *slo.Gate,
	client llm.Client,
	pub *events.Publisher,
	cfg config.WorkflowConfig,
	sink metrics.Sink,
	logger *slog.Logger,
) *Engine {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Engine{
		swarms:      swarms,
		tasks:       tasks,
		escalations: escalations,
		planner:     pl,
		scheduler:   sched,
		executor:    executor,
		resolver:    resolver,
		gate:        gate,
		llm:         client,
		pub:         pub,
		cfg:         cfg,
		sink:        sink,
		logger:      logger.With("component", "workflow_engine"),
		healWait:    2 * time.Second,
	}
}

type step struct {
	name        string
	timeout     time.Duration
	maxAttempts int
	run         func(ctx context.Context, wc *workflowContext) (map[string]interface{}, error)
}

// workflowContext carries the swarm's loaded state across activities.
type workflowContext struct {
	swarmID     string
	scope       *models.Scope
	complexity  string
	checkpoints map[string]interface{}
	startedAt   time.Time
}

// ExecuteSwarm runs the full step machine for one claimed swarm. It is the
// entry point the worker queue calls. Returning nil means the swarm reached
// a terminal state (completed, failed, or cancelled); the queue does not
// interpret partial progress.
func (e *Engine) ExecuteSwarm(ctx context.Context, swarmID string) error {
	ctx, span := tracing.Tracer("workflow").Start(ctx, "workflow.execute_swarm")
	defer span.End()
	span.SetAttributes(tracing.StringAttr("swarm.id", swarmID))

	sw, err := e.swarms.GetSwarm(ctx, swarmID)
	if err != nil {
		return err
	}
	if isTerminal(sw.Status) {
		return nil
	}

	wc, err := e.loadContext(sw.ID, sw.Metadata)
	if err != nil {
		return e.failSwarm(ctx, swarmID, "", fmt.Errorf("corrupt swarm metadata: %w", err))
	}
	if sw.StartedAt != nil {
		wc.startedAt = *sw.StartedAt
	} else {
		wc.startedAt = time.Now()
		if err := e.markStarted(ctx, swarmID, wc.startedAt); err != nil {
			return err
		}
	}

	steps := []step{
		{StepGeneratePlan, e.cfg.PlanTimeout, 1, e.generatePlan},
		{StepDispatch, e.cfg.DispatchTimeout, 3, e.dispatchTasksParallel},
		{StepUIInference, e.cfg.UIInferenceTimeout, 3, e.uiInference},
		{StepVisualTest, e.cfg.VisualTestTimeout, 2, e.visualTest},
		{StepConflictResolution, e.cfg.ConflictResolveTimeout, 3, e.conflictResolution},
		{StepTestGate, e.cfg.TestGateTimeout, 1, e.testGate},
		{StepSLOEnforce, e.cfg.SLOEnforceTimeout, 1, e.sloEnforce},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return e.Cancel(context.WithoutCancel(ctx), swarmID)
		}
		if _, done := wc.checkpoints[s.name]; done {
			continue
		}
		result, err := e.runStep(ctx, wc, s)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return e.Cancel(context.WithoutCancel(ctx), swarmID)
			}
			var esc *agent.EscalatedError
			if errors.As(err, &esc) {
				// The swarm stays running with the escalation outstanding;
				// the monitor resumes it once a human responds.
				e.logger.Info("workflow paused on escalation",
					"swarm_id", swarmID, "step", s.name, "escalation_id", esc.EscalationID)
				return nil
			}
			return e.failSwarm(ctx, swarmID, s.name, err)
		}
		if err := e.checkpoint(ctx, wc, s.name, result); err != nil {
			return err
		}
	}

	return e.finalize(ctx, wc)
}

// runStep executes one activity under its wall-clock timeout with its
// retry budget. Non-retriable errors abort immediately.
func (e *Engine) runStep(ctx context.Context, wc *workflowContext, s step) (map[string]interface{}, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		stepCtx, cancel := context.WithTimeout(ctx, s.timeout)
		stepCtx, span := tracing.Tracer("workflow").Start(stepCtx, "workflow."+s.name)
		span.SetAttributes(
			tracing.StringAttr("swarm.id", wc.swarmID),
			tracing.IntAttr("step.attempt", attempt),
		)
		result, err := s.run(stepCtx, wc)
		span.End()
		cancel()

		if err == nil {
			return result, nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = retriable(fmt.Errorf("activity %s timed out after %s", s.name, s.timeout))
		}
		var re *retriableError
		if !errors.As(err, &re) || attempt == s.maxAttempts {
			return nil, err
		}
		lastErr = err
		backoff := 2 * time.Second << (attempt - 1)
		e.logger.Warn("activity failed, retrying",
			"swarm_id", wc.swarmID, "step", s.name,
			"attempt", attempt, "backoff", backoff, "error", err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (e *Engine) loadContext(swarmID string, metadata map[string]interface{}) (*workflowContext, error) {
	wc := &workflowContext{
		swarmID:     swarmID,
		checkpoints: map[string]interface{}{},
	}
	if raw, ok := metadata["scope"]; ok {
		scope, err := decodeAs[models.Scope](raw)
		if err != nil {
			return nil, fmt.Errorf("decoding scope: %w", err)
		}
		wc.scope = scope
	}
	if wc.scope == nil {
		return nil, errors.New("swarm has no scope")
	}
	if raw, ok := metadata[checkpointsKey].(map[string]interface{}); ok {
		wc.checkpoints = raw
	}
	wc.complexity, _ = metadata["complexity"].(string)
	return wc, nil
}

// checkpoint persists the activity result before the engine advances.
func (e *Engine) checkpoint(ctx context.Context, wc *workflowContext, name string, result map[string]interface{}) error {
	if result == nil {
		result = map[string]interface{}{}
	}
	wc.checkpoints[name] = result
	fields := map[string]interface{}{checkpointsKey: wc.checkpoints}
	if wc.complexity != "" {
		fields["complexity"] = wc.complexity
	}
	return e.swarms.MergeMetadata(ctx, wc.swarmID, fields)
}

func (e *Engine) markStarted(ctx context.Context, swarmID string, at time.Time) error {
	if err := e.swarms.UpdateSwarmStatus(ctx, swarmID, swarm.StatusRunning, ""); err != nil {
		return err
	}
	return e.swarms.MergeMetadata(ctx, swarmID, map[string]interface{}{
		"workflow_started_at": at.Format(time.RFC3339),
	})
}

func (e *Engine) finalize(ctx context.Context, wc *workflowContext) error {
	if err := e.swarms.UpdateSwarmStatus(ctx, wc.swarmID, swarm.StatusCompleted, ""); err != nil {
		return err
	}
	duration := time.Since(wc.startedAt)
	e.sink.IncCounter(metrics.WorkflowsCompleted, wc.complexity)
	e.sink.ObserveHistogram(metrics.WorkflowDurationSeconds, duration.Seconds())
	e.resolver.Forget(wc.swarmID)

	e.logger.Info("workflow completed",
		"swarm_id", wc.swarmID,
		"complexity", wc.complexity,
		"duration", duration)
	return e.checkpoint(ctx, wc, StepFinalize, map[string]interface{}{
		"duration_seconds": duration.Seconds(),
	})
}

func (e *Engine) failSwarm(ctx context.Context, swarmID, stepName string, cause error) error {
	ctx = context.WithoutCancel(ctx)
	msg := cause.Error()
	if stepName != "" {
		msg = stepName + ": " + msg
	}
	if err := e.swarms.UpdateSwarmStatus(ctx, swarmID, swarm.StatusFailed, msg); err != nil {
		return err
	}
	sw, err := e.swarms.GetSwarm(ctx, swarmID)
	complexity := ""
	if err == nil {
		complexity, _ = sw.Metadata["complexity"].(string)
	}
	e.sink.IncCounter(metrics.WorkflowsFailed, complexity)
	e.resolver.Forget(swarmID)

	e.logger.Error("workflow failed",
		"swarm_id", swarmID, "step", stepName, "error", cause)
	return nil
}

// Cancel stops a swarm: pending tasks are skipped, locks released, and the
// swarm transitions to cancelled. Safe to call repeatedly; a swarm already
// terminal is left untouched.
func (e *Engine) Cancel(ctx context.Context, swarmID string) error {
	sw, err := e.swarms.GetSwarm(ctx, swarmID)
	if err != nil {
		return err
	}
	if isTerminal(sw.Status) {
		return nil
	}

	skipped, err := e.tasks.SkipPending(ctx, swarmID)
	if err != nil {
		return err
	}
	e.resolver.Forget(swarmID)
	if err := e.swarms.UpdateSwarmStatus(ctx, swarmID, swarm.StatusCancelled, ""); err != nil {
		return err
	}
	e.logger.Info("swarm cancelled", "swarm_id", swarmID, "tasks_skipped", skipped)
	return nil
}

func isTerminal(s swarm.Status) bool {
	switch s {
	case swarm.StatusCompleted, swarm.StatusFailed, swarm.StatusCancelled:
		return true
	}
	return false
}

// decodeAs round-trips a metadata value through JSON into a typed struct.
func decodeAs[T any](raw interface{}) (*T, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
