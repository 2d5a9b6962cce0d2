package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/test/util"
)

func setupTaskService(t *testing.T) (*TaskService, string) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	sw, err := NewSwarmService(client).CreateSwarm(context.Background(), CreateSwarmInput{Name: "task-test"})
	require.NoError(t, err)
	return NewTaskService(client), sw.ID
}

func TestCreateTasksAtomic(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{
		{Key: "1.1", Title: "Design schema", Priority: 8},
		{Key: "1.2", Title: "Build endpoints", Priority: 5, Dependencies: []string{"1.1"}},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, task.StatusPending, created[0].Status)
	assert.Equal(t, 5, created[0].MaxAttempts, "default retry budget applies")
	assert.Equal(t, []string{"1.1"}, created[1].Dependencies)

	// A batch with a missing key writes nothing.
	_, err = svc.CreateTasks(ctx, swarmID, []CreateTaskInput{
		{Key: "2.1", Title: "ok"},
		{Title: "missing key"},
	})
	require.Error(t, err)

	all, err := svc.ListTasks(ctx, swarmID)
	require.NoError(t, err)
	assert.Len(t, all, 2, "the failed batch rolled back entirely")
}

func TestListTasksFiltersByStatus(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{
		{Key: "1.1", Title: "a"},
		{Key: "1.2", Title: "b"},
	})
	require.NoError(t, err)
	require.NoError(t, svc.MarkInProgress(ctx, created[0].ID, "agent-a"))

	pending, err := svc.ListTasks(ctx, swarmID, task.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1.2", pending[0].TaskKey)
}

func TestMarkInProgressClaimsOnce(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a"}})
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, svc.MarkInProgress(ctx, id, "agent-a"))

	err = svc.MarkInProgress(ctx, id, "agent-b")
	assert.ErrorIs(t, err, ErrConcurrentModification, "second claim loses")

	got, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attempts)
	require.NotNil(t, got.AgentID)
	assert.Equal(t, "agent-a", *got.AgentID)
}

func TestUpdateTaskStatusIdempotent(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a"}})
	require.NoError(t, err)
	id := created[0].ID

	applied, err := svc.UpdateTaskStatus(ctx, id, task.StatusCompleted, map[string]interface{}{"artifact": "code"})
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = svc.UpdateTaskStatus(ctx, id, task.StatusCompleted, nil)
	require.NoError(t, err)
	assert.False(t, applied, "repeat transition is a no-op")

	got, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "code", got.Data["artifact"])
}

func TestMergeDataKeepsStatus(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a"}})
	require.NoError(t, err)
	id := created[0].ID
	require.NoError(t, svc.MarkInProgress(ctx, id, "agent-a"))
	require.NoError(t, svc.MarkFailed(ctx, id, "boom"))

	require.NoError(t, svc.MergeData(ctx, id, map[string]interface{}{"failure_context": "boom"}))
	require.NoError(t, svc.MergeData(ctx, id, map[string]interface{}{"escalation_id": "esc-1"}))

	got, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, "boom", got.Data["failure_context"])
	assert.Equal(t, "esc-1", got.Data["escalation_id"])
}

func TestRetryCyclePreservesAttempts(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a", MaxAttempts: 2}})
	require.NoError(t, err)
	id := created[0].ID

	// attempt 1: claim, fail
	require.NoError(t, svc.MarkInProgress(ctx, id, "agent-a"))
	require.NoError(t, svc.MarkFailed(ctx, id, "request timed out"))

	got, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.FailureReason)
	assert.Equal(t, "request timed out", *got.FailureReason)
	assert.NotNil(t, got.LastFailedAt)

	// requeue, attempt 2
	require.NoError(t, svc.RequeueForRetry(ctx, id))
	got, err = svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, got.Status)
	assert.Nil(t, got.FailureReason, "requeue clears the stale reason")
	assert.Equal(t, 1, got.Attempts, "budget survives the requeue")

	require.NoError(t, svc.MarkInProgress(ctx, id, "agent-a"))
	got, err = svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Attempts)
}

func TestRequeueForRetryOnlyFromFailed(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a"}})
	require.NoError(t, err)

	err = svc.RequeueForRetry(ctx, created[0].ID)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestSkipPending(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{
		{Key: "1.1", Title: "a"},
		{Key: "1.2", Title: "b"},
		{Key: "1.3", Title: "c"},
	})
	require.NoError(t, err)
	require.NoError(t, svc.MarkInProgress(ctx, created[0].ID, "agent-a"))

	n, err := svc.SkipPending(ctx, swarmID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	skipped, err := svc.ListTasks(ctx, swarmID, task.StatusSkipped)
	require.NoError(t, err)
	assert.Len(t, skipped, 2)
}

func TestRetryableAndExhaustedTasks(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{
		{Key: "1.1", Title: "a", MaxAttempts: 1},
		{Key: "1.2", Title: "b", MaxAttempts: 3},
	})
	require.NoError(t, err)

	for _, c := range created {
		require.NoError(t, svc.MarkInProgress(ctx, c.ID, "agent-a"))
		require.NoError(t, svc.MarkFailed(ctx, c.ID, "boom"))
	}

	retryable, err := svc.RetryableTasks(ctx)
	require.NoError(t, err)
	require.Len(t, retryable, 1)
	assert.Equal(t, "1.2", retryable[0].TaskKey)

	exhausted, err := svc.ExhaustedTasks(ctx)
	require.NoError(t, err)
	require.Len(t, exhausted, 1)
	assert.Equal(t, "1.1", exhausted[0].TaskKey)
}

func TestStalledTasks(t *testing.T) {
	svc, swarmID := setupTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTasks(ctx, swarmID, []CreateTaskInput{{Key: "1.1", Title: "a"}})
	require.NoError(t, err)
	require.NoError(t, svc.MarkInProgress(ctx, created[0].ID, "agent-a"))

	stalled, err := svc.StalledTasks(ctx, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, stalled, "fresh work is not stalled")

	stalled, err = svc.StalledTasks(ctx, -time.Second)
	require.NoError(t, err)
	require.Len(t, stalled, 1)
	assert.Equal(t, "1.1", stalled[0].TaskKey)
}
