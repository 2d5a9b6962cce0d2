package agent

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/tools"
	"github.com/crewforge/crewforge/test/util"
)

// scriptedLLM returns a canned completion and records the prompts it saw.
type scriptedLLM struct {
	text     string
	tokens   int
	err      error
	calls    int
	lastUser string
}

func (s *scriptedLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	s.lastUser = req.User
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Text: s.text, TokensUsed: s.tokens, Model: "test-model"}, nil
}

func (s *scriptedLLM) Embed(context.Context, string) ([]float64, error) {
	return make([]float64, llm.EmbeddingDim), nil
}

// recordingInvoker captures tool calls instead of executing them.
type recordingInvoker struct {
	mu    sync.Mutex
	calls []tools.ToolCall
}

func (r *recordingInvoker) Call(_ context.Context, name string, args map[string]interface{}, _, _ string) (map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, tools.ToolCall{Name: name, Args: args})
	return map[string]interface{}{"acknowledged": true}, nil
}

type execFixture struct {
	client      *ent.Client
	tasks       *services.TaskService
	swarms      *services.SwarmService
	escalations *services.EscalationService
	events      *services.EventService
	resolver    *conflict.Resolver
	invoker     *recordingInvoker
	executor    *Executor
	swarmID     string
	agent       *ent.Agent
	task        *ent.Task
}

func setupExecutor(t *testing.T, client llm.Client) *execFixture {
	t.Helper()
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	swarms := services.NewSwarmService(db)
	sw, err := swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "exec-test"})
	require.NoError(t, err)

	agents, err := swarms.CreateAgents(ctx, sw.ID, []string{models.RoleBackendIntegrator})
	require.NoError(t, err)

	tasksSvc := services.NewTaskService(db)
	created, err := tasksSvc.CreateTasks(ctx, sw.ID, []services.CreateTaskInput{
		{Key: "2.1", Title: "Implement checkout API", Description: "POST /checkout"},
	})
	require.NoError(t, err)

	pub := events.NewPublisher(db)
	resolver := conflict.NewResolver(client, pub,
		config.ConflictConfig{SimilarityThreshold: 0.7},
		config.FileLockConfig{TTL: 30 * time.Minute},
		config.WorkflowConfig{MediationSimilarityGoal: 0.85},
		nil, slog.Default())
	invoker := &recordingInvoker{}

	exec := NewExecutor(client, invoker, tasksSvc, swarms,
		services.NewEscalationService(db), resolver, pub,
		config.LLMConfig{ReasoningEffort: "medium"}, slog.Default())

	return &execFixture{
		client:      db,
		tasks:       tasksSvc,
		swarms:      swarms,
		escalations: services.NewEscalationService(db),
		events:      services.NewEventService(db),
		resolver:    resolver,
		invoker:     invoker,
		executor:    exec,
		swarmID:     sw.ID,
		agent:       agents[models.RoleBackendIntegrator],
		task:        created[0],
	}
}

func TestExecuteCompletesTask(t *testing.T) {
	model := &scriptedLLM{
		tokens: 432,
		text: `{
			"summary": "Implemented POST /checkout with cart validation.",
			"artifacts": {"api_contract": "POST /checkout -> 201 {order_id}"},
			"tool_calls": [{"name": "record_decision", "args": {"note": "orders are immutable"}}],
			"coverage_pct": 91
		}`,
	}
	f := setupExecutor(t, model)
	ctx := context.Background()

	out, err := f.executor.Execute(ctx, f.swarmID, f.agent, f.task, scopeFixture())
	require.NoError(t, err)
	assert.Contains(t, out.Summary, "POST /checkout")

	got, err := f.tasks.GetTask(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Contains(t, got.Data["summary"], "checkout")
	assert.EqualValues(t, 432, got.Data["tokens_used"])
	assert.EqualValues(t, 91, got.Data["coverage_pct"])
	artifacts, ok := got.Data["artifacts"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, artifacts["api_contract"], "order_id")

	require.Len(t, f.invoker.calls, 1)
	assert.Equal(t, "record_decision", f.invoker.calls[0].Name)

	a, err := f.client.Agent.Get(ctx, f.agent.ID)
	require.NoError(t, err)
	assert.Nil(t, a.CurrentTaskID, "the agent is released after the task")
}

func TestExecuteEscalatesInsteadOfFailing(t *testing.T) {
	model := &scriptedLLM{text: `{
		"escalation": {
			"kind": "configuration",
			"description": "STRIPE_SECRET_KEY is not configured",
			"suggested_actions": ["add the key to the environment"],
			"can_continue_without": false
		}
	}`}
	f := setupExecutor(t, model)
	ctx := context.Background()

	out, err := f.executor.Execute(ctx, f.swarmID, f.agent, f.task, scopeFixture())
	var esc *EscalatedError
	require.ErrorAs(t, err, &esc)
	assert.Equal(t, "configuration", esc.Kind)
	require.NotNil(t, out)
	require.NotNil(t, out.Escalation)

	got, err := f.tasks.GetTask(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBlocked, got.Status, "only the task blocks, not the swarm")
	assert.Equal(t, esc.EscalationID, got.Data["escalation_id"])

	open, err := f.escalations.ListOpen(ctx, f.swarmID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, escalation.KindConfiguration, open[0].Kind)
	assert.Contains(t, open[0].Description, "STRIPE_SECRET_KEY")

	published, err := f.events.QueryByKind(ctx, f.swarmID, events.KindEscalation)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, esc.EscalationID, published[0].Data["escalation_id"])
}

func TestExecuteFailureRecordsReasonAndFreesLocks(t *testing.T) {
	model := &scriptedLLM{err: llm.ErrUnavailable}
	f := setupExecutor(t, model)
	ctx := context.Background()

	require.True(t, f.resolver.AcquireLock(ctx, f.swarmID, "src/checkout.py", f.agent.ID))

	_, err := f.executor.Execute(ctx, f.swarmID, f.agent, f.task, scopeFixture())
	require.ErrorIs(t, err, llm.ErrUnavailable)

	got, err := f.tasks.GetTask(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Contains(t, *got.FailureReason, "unavailable")

	assert.Empty(t, f.resolver.HeldLocks(f.swarmID))
	blocked, reason := f.resolver.ShouldBlock(f.swarmID, []string{"2.1"})
	assert.True(t, blocked, "dependents hold off until the failure recovers")
	assert.Contains(t, reason, "2.1")
}

func TestExecuteLostClaimRace(t *testing.T) {
	model := &scriptedLLM{text: `{"summary": "never used"}`}
	f := setupExecutor(t, model)
	ctx := context.Background()

	require.NoError(t, f.tasks.MarkInProgress(ctx, f.task.ID, "someone-else"))

	_, err := f.executor.Execute(ctx, f.swarmID, f.agent, f.task, scopeFixture())
	require.ErrorIs(t, err, services.ErrConcurrentModification)
	assert.Zero(t, model.calls, "a lost claim never reaches the model")
}

func TestExecuteRejectsDisallowedTool(t *testing.T) {
	model := &scriptedLLM{text: `{
		"summary": "done",
		"tool_calls": [{"name": "drop_database", "args": {}}]
	}`}
	f := setupExecutor(t, model)
	ctx := context.Background()

	_, err := f.executor.Execute(ctx, f.swarmID, f.agent, f.task, scopeFixture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, tools.ErrUnknownTool))
	assert.Empty(t, f.invoker.calls)

	got, err := f.tasks.GetTask(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
}

func TestExecutePassesFailureContextToRetry(t *testing.T) {
	model := &scriptedLLM{text: `{"summary": "fixed the import"}`}
	f := setupExecutor(t, model)
	ctx := context.Background()

	require.NoError(t, f.tasks.MergeData(ctx, f.task.ID,
		map[string]interface{}{"failure_context": "ImportError: no module named stripe"}))
	fresh, err := f.tasks.GetTask(ctx, f.task.ID)
	require.NoError(t, err)

	_, err = f.executor.Execute(ctx, f.swarmID, f.agent, fresh, scopeFixture())
	require.NoError(t, err)
	assert.Contains(t, model.lastUser, "ImportError: no module named stripe")
}

func TestEscalationKindMapping(t *testing.T) {
	assert.Equal(t, escalation.KindConfiguration, escalationKind("configuration"))
	assert.Equal(t, escalation.KindExternalService, escalationKind("external_service"))
	assert.Equal(t, escalation.KindUnclearRequirement, escalationKind("made_up_kind"),
		"unrecognized kinds degrade to unclear_requirement")
}
