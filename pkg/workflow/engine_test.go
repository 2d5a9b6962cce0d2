package workflow

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/agent"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/monitor"
	"github.com/crewforge/crewforge/pkg/planner"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/slo"
	"github.com/crewforge/crewforge/test/util"
)

// routedLLM answers each activity by recognizing its system prompt. One
// fake covers agent execution, UI inference, and the visual audit. Setting
// failUserSubstring rate-limits the first failuresLeft completions whose
// user prompt contains it.
type routedLLM struct {
	mu                sync.Mutex
	completions       int
	agentText         string
	visualText        string
	failUserSubstring string
	failuresLeft      int
}

const defaultAgentText = `{
	"summary": "Delivered the assigned slice end to end.",
	"artifacts": {"notes": "components, routes, and the endpoints they consume"},
	"coverage_pct": 92
}`

const passingVisualText = `{"diff_pct": 1.2, "wcag_violations": 0, "notes": []}`

func (r *routedLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	r.mu.Lock()
	r.completions++
	fail := r.failUserSubstring != "" && r.failuresLeft > 0 &&
		strings.Contains(req.User, r.failUserSubstring)
	if fail {
		r.failuresLeft--
	}
	r.mu.Unlock()
	if fail {
		return nil, &llm.RateLimitedError{}
	}

	var text string
	switch {
	case strings.Contains(req.System, "visual regressions"):
		text = r.visualText
	case strings.Contains(req.System, "reviewing a delivered project"):
		text = `{"components": ["ProductList", "Cart"], "constraints": {"responsive": true, "wcag": "2.1", "theme": "light"}, "hooks": ["useProducts"], "needs_review": false}`
	default:
		text = r.agentText
	}
	return &llm.CompletionResponse{Text: text, TokensUsed: 100, Model: "test-model"}, nil
}

func (r *routedLLM) Embed(context.Context, string) ([]float64, error) {
	vec := make([]float64, llm.EmbeddingDim)
	vec[0] = 1
	return vec, nil
}

func (r *routedLLM) completionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions
}

type engineFixture struct {
	client      *ent.Client
	swarms      *services.SwarmService
	tasks       *services.TaskService
	escalations *services.EscalationService
	events      *services.EventService
	resolver    *conflict.Resolver
	pub         *events.Publisher
	engine      *Engine
	swarm       *ent.Swarm
}

type noopInvoker struct{}

func (noopInvoker) Call(context.Context, string, map[string]interface{}, string, string) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

func simpleScope() *models.Scope {
	return &models.Scope{
		ProjectName: "storefront",
		Goal:        "sell handmade goods online",
		Features:    []string{"catalog"},
		StackInference: &models.StackInference{
			Backend:    "FastAPI",
			Frontend:   "React",
			Database:   "PostgreSQL",
			Confidence: 0.9,
		},
	}
}

func setupEngine(t *testing.T, model llm.Client, sloCfg config.SLOConfig) *engineFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	logger := slog.Default()

	swarms := services.NewSwarmService(client)
	tasks := services.NewTaskService(client)
	escalations := services.NewEscalationService(client)
	pub := events.NewPublisher(client)

	wfCfg := config.WorkflowConfig{
		PlanTimeout:             30 * time.Second,
		DispatchTimeout:         30 * time.Second,
		UIInferenceTimeout:      30 * time.Second,
		VisualTestTimeout:       30 * time.Second,
		ConflictResolveTimeout:  30 * time.Second,
		TestGateTimeout:         30 * time.Second,
		SLOEnforceTimeout:       30 * time.Second,
		TestCoverageMin:         80,
		VisualDiffMax:           5,
		MediationSimilarityGoal: 0.85,
	}
	resolver := conflict.NewResolver(model, pub,
		config.ConflictConfig{SimilarityThreshold: 0.7},
		config.FileLockConfig{TTL: 30 * time.Minute},
		wfCfg, nil, logger)
	executor := agent.NewExecutor(model, noopInvoker{}, tasks, swarms, escalations,
		resolver, pub, config.LLMConfig{ReasoningEffort: "medium"}, logger)
	gate := slo.NewGate(sloCfg, 0.009, pub, nil, logger)

	engine := NewEngine(swarms, tasks, escalations,
		planner.New(swarms, tasks, logger),
		scheduler.New(tasks, resolver),
		executor, resolver, gate, model, pub, wfCfg, nil, logger)
	engine.healWait = 50 * time.Millisecond

	sw, err := swarms.CreateSwarm(ctx, services.CreateSwarmInput{
		Name:     "engine-test",
		Metadata: map[string]interface{}{"scope": simpleScope()},
	})
	require.NoError(t, err)

	return &engineFixture{
		client:      client,
		swarms:      swarms,
		tasks:       tasks,
		escalations: escalations,
		events:      services.NewEventService(client),
		resolver:    resolver,
		pub:         pub,
		engine:      engine,
		swarm:       sw,
	}
}

func defaultSLOConfig() config.SLOConfig {
	return config.SLOConfig{CostUSD: 5, LatencySeconds: 720, CoveragePct: 80, ConfidenceMin: 0.8}
}

func TestExecuteSwarmHappyPath(t *testing.T) {
	model := &routedLLM{agentText: defaultAgentText, visualText: passingVisualText}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusCompleted, sw.Status)
	assert.NotNil(t, sw.CompletedAt)
	assert.Equal(t, models.ComplexitySimple, sw.Complexity)
	assert.Equal(t, 2, sw.NumAgents, "simple plans run a two-agent crew")

	checkpoints, ok := sw.Metadata["checkpoints"].(map[string]interface{})
	require.True(t, ok, "every activity leaves a checkpoint")
	for _, step := range []string{
		StepGeneratePlan, StepDispatch, StepUIInference, StepVisualTest,
		StepConflictResolution, StepTestGate, StepSLOEnforce, StepFinalize,
	} {
		assert.Contains(t, checkpoints, step)
	}

	dispatch := checkpoints[StepDispatch].(map[string]interface{})
	assert.Equal(t, dispatch["total"], dispatch["completed"], "every task completed")

	gate := checkpoints[StepTestGate].(map[string]interface{})
	assert.Equal(t, true, gate["coverage_reported"])
	assert.EqualValues(t, 92, gate["coverage_pct"])

	conflictCp := checkpoints[StepConflictResolution].(map[string]interface{})
	assert.Equal(t, false, conflictCp["mediated"], "identical embeddings need no mediation")

	remaining, err := f.tasks.ListTasks(ctx, f.swarm.ID, task.StatusPending, task.StatusInProgress)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	breaches, err := f.events.QueryByKind(ctx, f.swarm.ID, events.KindSLOBreach)
	require.NoError(t, err)
	assert.Empty(t, breaches, "a healthy run breaches nothing")
}

func TestExecuteSwarmResumesFromCheckpoints(t *testing.T) {
	model := &routedLLM{agentText: defaultAgentText, visualText: passingVisualText}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	// A previous incarnation finished everything up to the test gate.
	require.NoError(t, f.swarms.MergeMetadata(ctx, f.swarm.ID, map[string]interface{}{
		checkpointsKey: map[string]interface{}{
			StepGeneratePlan:       map[string]interface{}{"complexity": "simple"},
			StepDispatch:           map[string]interface{}{"completed": 8, "total": 8},
			StepUIInference:        map[string]interface{}{"ui_plan": `{"components": []}`, "tokens_used": 50},
			StepVisualTest:         map[string]interface{}{"diff_pct": 1.0, "tokens_used": 40},
			StepConflictResolution: map[string]interface{}{"mediated": false, "similarity": 1.0},
		},
	}))

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusCompleted, sw.Status)
	assert.Zero(t, model.completionCount(), "checkpointed activities are not re-executed")
}

func TestExecuteSwarmPausesOnEscalation(t *testing.T) {
	model := &routedLLM{visualText: passingVisualText}
	model.agentText = `{
		"escalation": {
			"kind": "configuration",
			"description": "DATABASE_URL is not configured for the staging environment"
		}
	}`
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID),
		"an escalation pauses the workflow instead of failing it")

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusRunning, sw.Status, "the swarm waits for the human")

	open, err := services.NewEscalationService(f.client).ListOpen(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, open)

	blocked, err := f.tasks.ListTasks(ctx, f.swarm.ID, task.StatusBlocked)
	require.NoError(t, err)
	assert.NotEmpty(t, blocked)
}

func TestExecuteSwarmFailsAfterVisualTestRetries(t *testing.T) {
	model := &routedLLM{
		agentText:  defaultAgentText,
		visualText: `{"diff_pct": 60, "wcag_violations": 3, "notes": ["layout diverges"]}`,
	}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusFailed, sw.Status)
	require.NotNil(t, sw.ErrorMessage)
	assert.Contains(t, *sw.ErrorMessage, StepVisualTest)
	assert.Contains(t, *sw.ErrorMessage, "wcag")
}

func TestExecuteSwarmFailsOnHardSLOBreach(t *testing.T) {
	model := &routedLLM{agentText: defaultAgentText, visualText: passingVisualText}
	cfg := defaultSLOConfig()
	cfg.CostUSD = 0.0001 // any tokens at all blow the budget
	f := setupEngine(t, model, cfg)
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusFailed, sw.Status)
	require.NotNil(t, sw.ErrorMessage)
	assert.Contains(t, *sw.ErrorMessage, StepSLOEnforce)

	breaches, err := f.events.QueryByKind(ctx, f.swarm.ID, events.KindSLOBreach)
	require.NoError(t, err)
	assert.NotEmpty(t, breaches)
}

func TestCancelSkipsPendingAndIsIdempotent(t *testing.T) {
	model := &routedLLM{agentText: defaultAgentText, visualText: passingVisualText}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	// Materialize a plan, then cancel mid-flight.
	pl := planner.New(f.swarms, f.tasks, slog.Default())
	plan, err := pl.Plan(ctx, simpleScope())
	require.NoError(t, err)
	require.NoError(t, pl.Materialize(ctx, f.swarm.ID, plan))
	require.NoError(t, f.swarms.UpdateSwarmStatus(ctx, f.swarm.ID, swarm.StatusRunning, ""))

	require.NoError(t, f.engine.Cancel(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusCancelled, sw.Status)

	pending, err := f.tasks.ListTasks(ctx, f.swarm.ID, task.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
	skipped, err := f.tasks.ListTasks(ctx, f.swarm.ID, task.StatusSkipped)
	require.NoError(t, err)
	assert.NotEmpty(t, skipped)

	require.NoError(t, f.engine.Cancel(ctx, f.swarm.ID), "cancelling twice is harmless")
}

func TestExecuteSwarmIgnoresTerminalSwarm(t *testing.T) {
	model := &routedLLM{agentText: defaultAgentText, visualText: passingVisualText}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	require.NoError(t, f.swarms.UpdateSwarmStatus(ctx, f.swarm.ID, swarm.StatusCancelled, ""))
	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))
	assert.Zero(t, model.completionCount())
}

func TestExecuteSwarmHealsTransientFailures(t *testing.T) {
	model := &routedLLM{
		agentText:         defaultAgentText,
		visualText:        passingVisualText,
		failUserSubstring: "Task 1.1:",
		failuresLeft:      2,
	}
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	mon := monitor.New(f.tasks, f.escalations, f.resolver, f.pub,
		config.MonitorConfig{TickInterval: time.Second},
		config.TaskConfig{Timeout: 30 * time.Minute}, nil, slog.Default())

	done := make(chan error, 1)
	go func() { done <- f.engine.ExecuteSwarm(ctx, f.swarm.ID) }()

	// The dispatcher waits for the monitor; drive its ticks by hand so the
	// rate-limited task gets requeued once each backoff elapses.
	timeout := time.After(90 * time.Second)
	var execErr error
waiting:
	for {
		select {
		case execErr = <-done:
			break waiting
		case <-timeout:
			t.Fatal("workflow did not finish while the monitor was healing")
		case <-time.After(100 * time.Millisecond):
			mon.Tick(ctx)
		}
	}
	require.NoError(t, execErr)

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusCompleted, sw.Status)

	all, err := f.tasks.ListTasks(ctx, f.swarm.ID)
	require.NoError(t, err)
	var healed *ent.Task
	for _, tk := range all {
		if tk.TaskKey == "1.1" {
			healed = tk
		}
	}
	require.NotNil(t, healed)
	assert.Equal(t, task.StatusCompleted, healed.Status)
	assert.Equal(t, 3, healed.Attempts, "two rate-limited attempts plus the success")

	retries, err := f.events.QueryByKind(ctx, f.swarm.ID, events.KindRetry)
	require.NoError(t, err)
	require.Len(t, retries, 2)
	for _, evt := range retries {
		assert.Equal(t, "transient", evt.Data["error_kind"])
		assert.Equal(t, "1.1", evt.Data["task_key"])
	}
}

func TestExecuteSwarmRepausesOnReclaimedEscalation(t *testing.T) {
	model := &routedLLM{visualText: passingVisualText}
	model.agentText = `{
		"escalation": {
			"kind": "design_decision",
			"description": "Two payment providers fit equally well; a human has to pick one"
		}
	}`
	f := setupEngine(t, model, defaultSLOConfig())
	ctx := context.Background()

	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))
	paused := model.completionCount()

	// A worker that reclaims the swarm must park on the same escalation
	// instead of failing the run.
	require.NoError(t, f.engine.ExecuteSwarm(ctx, f.swarm.ID))

	sw, err := f.swarms.GetSwarm(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusRunning, sw.Status)
	assert.Nil(t, sw.ErrorMessage)
	assert.Equal(t, paused, model.completionCount(),
		"no task re-executes while the escalation is open")

	open, err := f.escalations.ListOpen(ctx, f.swarm.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, open)
}

// mediationLLM forces a UI/backend conflict: the original UI plan embeds
// orthogonally to everything else, the mediated revision aligns.
type mediationLLM struct{}

func (mediationLLM) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{
		Text: "revised ui plan aligned to the api", TokensUsed: 64, Model: "test-model",
	}, nil
}

func (mediationLLM) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, llm.EmbeddingDim)
	if strings.Contains(text, "original ui plan") {
		vec[0] = 1
	} else {
		vec[1] = 1
	}
	return vec, nil
}

func TestConflictResolutionCheckpointCarriesMediationTokens(t *testing.T) {
	f := setupEngine(t, mediationLLM{}, defaultSLOConfig())
	ctx := context.Background()

	created, err := f.tasks.CreateTasks(ctx, f.swarm.ID, []services.CreateTaskInput{
		{Key: "2.1", Title: "Implement catalog API", Description: "REST endpoints"},
	})
	require.NoError(t, err)
	applied, err := f.tasks.UpdateTaskStatus(ctx, created[0].ID, task.StatusCompleted,
		map[string]interface{}{
			"artifacts": map[string]interface{}{"api": "catalog endpoints and payload shapes"},
		})
	require.NoError(t, err)
	require.True(t, applied)

	wc := &workflowContext{
		swarmID: f.swarm.ID,
		scope:   simpleScope(),
		checkpoints: map[string]interface{}{
			StepUIInference: map[string]interface{}{"ui_plan": "original ui plan"},
		},
	}
	out, err := f.engine.conflictResolution(ctx, wc)
	require.NoError(t, err)
	assert.Equal(t, true, out["mediated"])
	assert.Equal(t, 64, out["tokens_used"], "mediation spend feeds the cost objective")

	wc.checkpoints[StepConflictResolution] = out
	total, err := f.engine.totalTokens(ctx, wc)
	require.NoError(t, err)
	assert.Equal(t, 64, total)
}

func TestOneTaskPerAgent(t *testing.T) {
	a, b := "agent-a", "agent-b"
	ready := []*ent.Task{
		{TaskKey: "1.1", AgentID: &a},
		{TaskKey: "1.2", AgentID: &a},
		{TaskKey: "2.1", AgentID: &b},
		{TaskKey: "9.9"}, // unassigned, never dispatched
	}
	wave := oneTaskPerAgent(ready)
	require.Len(t, wave, 2)
	assert.Equal(t, "1.1", wave[0].TaskKey)
	assert.Equal(t, "2.1", wave[1].TaskKey)
}
