package monitor

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

type fixture struct {
	client      *ent.Client
	tasks       *services.TaskService
	escalations *services.EscalationService
	events      *services.EventService
	resolver    *conflict.Resolver
	monitor     *Monitor
	swarmID     string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	sw, err := services.NewSwarmService(client).CreateSwarm(ctx, services.CreateSwarmInput{Name: "monitor-test"})
	require.NoError(t, err)

	pub := events.NewPublisher(client)
	resolver := conflict.NewResolver(nil, pub,
		config.ConflictConfig{SimilarityThreshold: 0.7},
		config.FileLockConfig{TTL: 30 * time.Minute},
		config.WorkflowConfig{MediationSimilarityGoal: 0.85},
		nil, slog.Default())

	tasks := services.NewTaskService(client)
	escalations := services.NewEscalationService(client)
	mon := New(tasks, escalations, resolver, pub,
		config.MonitorConfig{TickInterval: 10 * time.Second},
		config.TaskConfig{Timeout: 30 * time.Minute},
		nil, slog.Default())

	return &fixture{
		client:      client,
		tasks:       tasks,
		escalations: escalations,
		events:      services.NewEventService(client),
		resolver:    resolver,
		monitor:     mon,
		swarmID:     sw.ID,
	}
}

func (f *fixture) failTask(t *testing.T, key, reason string, maxAttempts int) *ent.Task {
	t.Helper()
	ctx := context.Background()
	created, err := f.tasks.CreateTasks(ctx, f.swarmID, []services.CreateTaskInput{
		{Key: key, Title: "t-" + key, MaxAttempts: maxAttempts},
	})
	require.NoError(t, err)
	id := created[0].ID
	require.NoError(t, f.tasks.MarkInProgress(ctx, id, "agent-a"))
	require.NoError(t, f.tasks.MarkFailed(ctx, id, reason))
	got, err := f.tasks.GetTask(ctx, id)
	require.NoError(t, err)
	return got
}

func TestTickRequeuesDueTransientFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	failed := f.failTask(t, "1.1", "request timed out", 5)

	// Backoff for attempt 1 is 2s; a tick inside the window does nothing.
	f.monitor.Tick(ctx)
	got, err := f.tasks.GetTask(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status, "backoff window still open")

	// Move past the window and tick again.
	f.monitor.now = func() time.Time { return time.Now().Add(time.Minute) }
	f.monitor.Tick(ctx)

	got, err = f.tasks.GetTask(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status)

	retries, err := f.events.QueryByKind(ctx, f.swarmID, events.KindRetry)
	require.NoError(t, err)
	require.Len(t, retries, 1)
	assert.Equal(t, "1.1", retries[0].Data["task_key"])
	assert.Equal(t, "transient", retries[0].Data["error_kind"])
}

func TestTickStashesFailureContextForRegeneration(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	failed := f.failTask(t, "1.1", "SyntaxError: unexpected token", 5)
	f.monitor.Tick(ctx)

	got, err := f.tasks.GetTask(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status, "code errors regenerate without delay")
	assert.Equal(t, "SyntaxError: unexpected token", got.Data["failure_context"],
		"the next attempt sees what broke")
}

func TestTickEscalatesZeroRetryKinds(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	failed := f.failTask(t, "1.1", "missing secret STRIPE_KEY", 5)
	f.monitor.Tick(ctx)

	got, err := f.tasks.GetTask(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status, "configuration failures never self-retry")

	open, err := f.escalations.ListOpen(ctx, f.swarmID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Contains(t, open[0].Description, "1.1")
	assert.Contains(t, open[0].Description, "STRIPE_KEY")
	assert.Equal(t, "configuration", string(open[0].Kind))

	// The task is tagged so a second tick does not duplicate the escalation.
	assert.Equal(t, open[0].ID, got.Data["escalation_id"])
	f.monitor.Tick(ctx)
	open, err = f.escalations.ListOpen(ctx, f.swarmID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestTickFailsStalledTasksAndFreesLocks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.tasks.CreateTasks(ctx, f.swarmID, []services.CreateTaskInput{
		{Key: "1.1", Title: "slow"},
	})
	require.NoError(t, err)
	require.NoError(t, f.tasks.MarkInProgress(ctx, created[0].ID, "agent-a"))
	require.True(t, f.resolver.AcquireLock(ctx, f.swarmID, "src/app.py", "agent-a"))

	// Shrink the stall timeout below zero so the fresh task counts as stalled.
	f.monitor.taskTimeout = -time.Second
	f.monitor.Tick(ctx)

	got, err := f.tasks.GetTask(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, "timeout", *got.FailureReason)

	assert.Empty(t, f.resolver.HeldLocks(f.swarmID), "the stalled agent's locks are released")
}

func TestTickBlocksDependentsOfExhaustedTasks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// 1.1 fails permanently (budget 1); 1.2 and the milestone 1.0 depend on it.
	dead := f.failTask(t, "1.1", "authentication failed", 1)
	created, err := f.tasks.CreateTasks(ctx, f.swarmID, []services.CreateTaskInput{
		{Key: "1.2", Title: "dependent", Dependencies: []string{"1.1"}},
		{Key: "1.0", Title: "phase gate", Dependencies: []string{"1.1", "1.2"}, Milestone: true},
	})
	require.NoError(t, err)

	f.monitor.Tick(ctx)

	got, err := f.tasks.GetTask(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBlocked, got.Status)
	assert.Equal(t, "1.1", got.Data["blocked_by"])

	gate, err := f.tasks.GetTask(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusBlocked, gate.Status)

	// The dead task stays failed and untouched.
	got, err = f.tasks.GetTask(ctx, dead.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)

	open, err := f.escalations.ListOpen(ctx, f.swarmID)
	require.NoError(t, err)
	assert.NotEmpty(t, open, "a blocked critical path is surfaced to the human")
}

func TestStartStop(t *testing.T) {
	f := setup(t)
	f.monitor.tick = 5 * time.Millisecond

	f.monitor.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	f.monitor.Stop()
}
