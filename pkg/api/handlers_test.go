package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/agent"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/database"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/planner"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/scope"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/slo"
	"github.com/crewforge/crewforge/pkg/stack"
	"github.com/crewforge/crewforge/pkg/workflow"
	"github.com/crewforge/crewforge/test/util"
)

const scopedProjectJSON = `{
	"project_name": "petstore",
	"goal": "sell pet supplies online",
	"tech_stack": {"frontend": "React", "backend": "FastAPI", "database": "PostgreSQL", "auth": "", "deployment": ""},
	"features": ["catalog", "cart"],
	"integrations": [],
	"competitors": [],
	"timeline": "",
	"pages_est": 4,
	"models_est": 3,
	"endpoints_est": 6,
	"scope_of_works": {
		"in_scope": ["storefront"], "out_scope": [], "milestones": ["mvp"], "risks": [], "kpis": []
	}
}`

// intakeLLM answers scope extraction with a fixed project; everything else
// is unused by these tests.
type intakeLLM struct{}

func (intakeLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if strings.Contains(req.System, "structured project scope") {
		return &llm.CompletionResponse{Text: scopedProjectJSON, TokensUsed: 50}, nil
	}
	return nil, errors.New("unexpected completion")
}

func (intakeLLM) Embed(context.Context, string) ([]float64, error) {
	return make([]float64, llm.EmbeddingDim), nil
}

type apiFixture struct {
	client      *ent.Client
	router      *gin.Engine
	swarms      *services.SwarmService
	tasks       *services.TaskService
	escalations *services.EscalationService
	resolver    *conflict.Resolver
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client, db := util.SetupTestDatabase(t)
	logger := slog.Default()
	model := intakeLLM{}

	swarms := services.NewSwarmService(client)
	tasks := services.NewTaskService(client)
	escalations := services.NewEscalationService(client)
	eventsSvc := services.NewEventService(client)
	pub := events.NewPublisher(client)

	wfCfg := config.WorkflowConfig{
		PlanTimeout:     time.Minute,
		DispatchTimeout: time.Minute,
		TestCoverageMin: 80,
		VisualDiffMax:   5,
	}
	resolver := conflict.NewResolver(model, pub,
		config.ConflictConfig{SimilarityThreshold: 0.7},
		config.FileLockConfig{TTL: 30 * time.Minute},
		wfCfg, nil, logger)
	sched := scheduler.New(tasks, resolver)
	executor := agent.NewExecutor(model, nil, tasks, swarms, escalations,
		resolver, pub, config.LLMConfig{}, logger)
	gate := slo.NewGate(config.SLOConfig{CostUSD: 5, LatencySeconds: 720, CoveragePct: 80, ConfidenceMin: 0.8},
		0.009, pub, nil, logger)
	engine := workflow.NewEngine(swarms, tasks, escalations,
		planner.New(swarms, tasks, logger), sched, executor, resolver,
		gate, model, pub, wfCfg, nil, logger)

	server := NewServer(
		database.NewClientFromEnt(client, db),
		swarms, tasks, escalations, eventsSvc,
		scope.NewExtractor(model, logger),
		stack.NewInferencer(model, services.NewTemplateService(client),
			config.StackConfig{SimilarityThreshold: 0.7}, nil, logger),
		sched, resolver, engine, nil, nil, logger)

	return &apiFixture{
		client:      client,
		router:      server.Router(),
		swarms:      swarms,
		tasks:       tasks,
		escalations: escalations,
		resolver:    resolver,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestProcessMessageAccepted(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/orchestrator/process", ProcessRequest{
		Message: "Build me an online store that sells pet supplies with a cart and checkout",
		UserID:  "user-1",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	resp := decode[ProcessResponse](t, w)
	assert.Equal(t, "accepted", resp.Status)
	require.NotEmpty(t, resp.SwarmID)
	assert.Equal(t, "/api/planner/"+resp.SwarmID, resp.PlannerURL)

	sw, err := f.swarms.GetSwarm(context.Background(), resp.SwarmID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusIdle, sw.Status, "the worker pool picks it up from idle")
	assert.Equal(t, "petstore", sw.Name)

	scopeMeta, ok := sw.Metadata["scope"].(map[string]interface{})
	require.True(t, ok)
	stackMeta, ok := scopeMeta["stack_inference"].(map[string]interface{})
	require.True(t, ok, "stack inference rides along in the scope")
	assert.Equal(t, "FastAPI", stackMeta["backend"])
	assert.EqualValues(t, 1.0, stackMeta["confidence"], "explicit user stack is certain")
}

func TestProcessMessageNeedsClarification(t *testing.T) {
	f := setupAPI(t)

	for _, message := range []string{"hi", "build an app"} {
		w := f.do(t, http.MethodPost, "/orchestrator/process", ProcessRequest{Message: message})
		require.Equal(t, http.StatusOK, w.Code, "message %q", message)

		resp := decode[ProcessResponse](t, w)
		assert.Equal(t, "needs_clarification", resp.Status)
		assert.NotEmpty(t, resp.ClarificationQuestions)
		assert.Empty(t, resp.SwarmID, "nothing is enqueued for a vague request")
	}
}

func TestProcessMessageRejectsEmptyBody(t *testing.T) {
	f := setupAPI(t)
	w := f.do(t, http.MethodPost, "/orchestrator/process", map[string]string{"user_id": "u"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTaskTree(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "tree"})
	require.NoError(t, err)
	_, err = f.tasks.CreateTasks(ctx, sw.ID, []services.CreateTaskInput{
		{Key: "2", Title: "backend"},
		{Key: "2.10", Title: "backend sub ten"},
		{Key: "2.9", Title: "backend sub nine"},
		{Key: "1", Title: "frontend"},
		{Key: "1.1", Title: "frontend sub"},
	})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/api/planner/"+sw.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[TaskTreeResponse](t, w)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, "1", resp.Tasks[0].ID)
	assert.Equal(t, "2", resp.Tasks[1].ID)
	require.Len(t, resp.Tasks[0].Subtasks, 1)
	require.Len(t, resp.Tasks[1].Subtasks, 2)
	assert.Equal(t, "2.9", resp.Tasks[1].Subtasks[0].ID, "segments order numerically, not lexically")
	assert.Equal(t, "2.10", resp.Tasks[1].Subtasks[1].ID)
}

func TestGetTaskTreeUnknownSwarm(t *testing.T) {
	f := setupAPI(t)
	w := f.do(t, http.MethodGet, "/api/planner/no-such-swarm", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1", "2", true},
		{"2.9", "2.10", true},
		{"2.10", "2.9", false},
		{"1", "1.1", true},
		{"1.1", "1", false},
		{"3.2.1", "3.2.2", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, keyLess(c.a, c.b), "%s < %s", c.a, c.b)
	}
}

func TestGetProgress(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "progress"})
	require.NoError(t, err)
	created, err := f.tasks.CreateTasks(ctx, sw.ID, []services.CreateTaskInput{
		{Key: "1.1", Title: "done"},
		{Key: "1.2", Title: "queued", Dependencies: []string{"1.1"}},
	})
	require.NoError(t, err)
	require.NoError(t, f.tasks.MarkInProgress(ctx, created[0].ID, "agent-a"))
	_, err = f.tasks.UpdateTaskStatus(ctx, created[0].ID, task.StatusCompleted, nil)
	require.NoError(t, err)
	require.True(t, f.resolver.AcquireLock(ctx, sw.ID, "src/app.py", "agent-a"))

	w := f.do(t, http.MethodGet, "/api/planner/"+sw.ID+"/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)

	progress := decode[models.Progress](t, w)
	assert.Equal(t, 2, progress.Total)
	assert.Equal(t, 1, progress.Completed)
	assert.InDelta(t, 0.5, progress.Progress, 0.001)
	assert.Contains(t, progress.ReadyTasks, "1.2")
	require.NotNil(t, progress.ConflictStats)
	assert.Equal(t, 1, progress.ConflictStats.ActiveLocks)
}

func TestListEscalations(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "escalations"})
	require.NoError(t, err)
	open, err := f.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     sw.ID,
		Kind:        escalation.KindConfiguration,
		Description: "missing STRIPE_KEY",
	})
	require.NoError(t, err)
	resolved, err := f.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     sw.ID,
		Kind:        escalation.KindDesignDecision,
		Description: "already handled",
	})
	require.NoError(t, err)
	_, err = f.escalations.Resolve(ctx, resolved.ID, "pick_default", nil, true)
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/api/planner/"+sw.ID+"/escalations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[EscalationsResponse](t, w)
	require.Len(t, resp.Escalations, 1, "resolved escalations are not listed")
	assert.Equal(t, open.ID, resp.Escalations[0].ID)
	assert.Equal(t, "configuration", resp.Escalations[0].Kind)
}

func TestResolveEscalationRequeuesBlockedTask(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "resolve"})
	require.NoError(t, err)
	created, err := f.tasks.CreateTasks(ctx, sw.ID, []services.CreateTaskInput{
		{Key: "1.1", Title: "needs the key"},
	})
	require.NoError(t, err)
	require.NoError(t, f.tasks.MarkInProgress(ctx, created[0].ID, "agent-a"))
	require.NoError(t, f.tasks.MarkFailed(ctx, created[0].ID, "missing secret"))

	esc, err := f.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     sw.ID,
		TaskID:      created[0].ID,
		Kind:        escalation.KindConfiguration,
		Description: "missing STRIPE_KEY",
	})
	require.NoError(t, err)

	// Partial input stays pending and leaves the task alone.
	w := f.do(t, http.MethodPost, "/api/planner/"+sw.ID+"/escalations/"+esc.ID+"/resolve",
		map[string]interface{}{"action": "provide_value", "value": map[string]string{"key": "sk_test"}, "complete": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", decode[ResolveResponse](t, w).Status)

	got, err := f.tasks.GetTask(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)

	// Completion resolves and requeues.
	w = f.do(t, http.MethodPost, "/api/planner/"+sw.ID+"/escalations/"+esc.ID+"/resolve",
		map[string]interface{}{"action": "provide_value", "value": map[string]string{"confirmed": "yes"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "resolved", decode[ResolveResponse](t, w).Status)

	got, err = f.tasks.GetTask(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status, "the unblocked task goes back in the queue")

	// Resolving again conflicts.
	w = f.do(t, http.MethodPost, "/api/planner/"+sw.ID+"/escalations/"+esc.ID+"/resolve",
		map[string]interface{}{"action": "provide_value"})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode[ErrorResponse](t, w)
	require.NotNil(t, resp.Failure)
	assert.Equal(t, "already_resolved", resp.Failure.Kind)
}

func TestResolveEscalationWrongSwarm(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw1, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "one"})
	require.NoError(t, err)
	sw2, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "two"})
	require.NoError(t, err)
	esc, err := f.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     sw1.ID,
		Kind:        escalation.KindConfiguration,
		Description: "belongs to swarm one",
	})
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/planner/"+sw2.ID+"/escalations/"+esc.ID+"/resolve",
		map[string]interface{}{"action": "noop"})
	assert.Equal(t, http.StatusNotFound, w.Code, "escalations are scoped to their swarm")
}

func TestListSwarms(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	first, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "older"})
	require.NoError(t, err)
	require.NoError(t, f.swarms.UpdateSwarmStatus(ctx, first.ID, swarm.StatusFailed, "plan exploded"))
	time.Sleep(10 * time.Millisecond)
	_, err = f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "newer"})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/swarms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[SwarmsResponse](t, w)
	require.Len(t, resp.Swarms, 2)
	assert.Equal(t, "newer", resp.Swarms[0].Name, "newest first")
	assert.Equal(t, "plan exploded", resp.Swarms[1].Error)
	assert.NotNil(t, resp.Swarms[1].CompletedAt)
}

func TestCancelSwarm(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	sw, err := f.swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "cancel"})
	require.NoError(t, err)
	_, err = f.tasks.CreateTasks(ctx, sw.ID, []services.CreateTaskInput{{Key: "1.1", Title: "queued"}})
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/swarms/"+sw.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.swarms.GetSwarm(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusCancelled, got.Status)

	skipped, err := f.tasks.ListTasks(ctx, sw.ID, task.StatusSkipped)
	require.NoError(t, err)
	assert.Len(t, skipped, 1)
}

func TestCancelUnknownSwarm(t *testing.T) {
	f := setupAPI(t)
	w := f.do(t, http.MethodPost, "/swarms/nope/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	f := setupAPI(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[HealthResponse](t, w)
	assert.True(t, resp.OK)
	require.NotNil(t, resp.Database)
	assert.Nil(t, resp.WorkerPool, "no pool is wired in this configuration")
}
