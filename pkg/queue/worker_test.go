package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

// stubExecutor records executions and lets tests script the outcome.
type stubExecutor struct {
	mu       sync.Mutex
	executed []string
	err      error
	block    chan struct{} // when set, ExecuteSwarm waits until closed
	onExec   func(ctx context.Context, swarmID string) error
}

func (s *stubExecutor) ExecuteSwarm(ctx context.Context, swarmID string) error {
	s.mu.Lock()
	s.executed = append(s.executed, swarmID)
	s.mu.Unlock()
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
		}
	}
	if s.onExec != nil {
		return s.onExec(ctx, swarmID)
	}
	return s.err
}

func (s *stubExecutor) executedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.executed...)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 10 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour // driven manually in tests
	return cfg
}

func createIdleSwarm(t *testing.T, client *ent.Client, name string) *ent.Swarm {
	t.Helper()
	sw, err := services.NewSwarmService(client).CreateSwarm(context.Background(), services.CreateSwarmInput{Name: name})
	require.NoError(t, err)
	return sw
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestWorkerClaimsAndCompletesSwarm(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	sw := createIdleSwarm(t, client, "claim-me")

	// The executor writes the terminal status, like the real engine does.
	exec := &stubExecutor{onExec: func(ctx context.Context, swarmID string) error {
		return client.Swarm.UpdateOneID(swarmID).
			SetStatus(swarm.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
	}}

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitFor(t, 5*time.Second, func() bool {
		got, err := client.Swarm.Get(ctx, sw.ID)
		return err == nil && got.Status == swarm.StatusCompleted
	})

	assert.Equal(t, []string{sw.ID}, exec.executedIDs())
	got, err := client.Swarm.Get(ctx, sw.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "pod-test", *got.PodID)
	assert.NotNil(t, got.StartedAt)
}

func TestWorkerBackstopsExecutorError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	sw := createIdleSwarm(t, client, "will-fail")
	exec := &stubExecutor{err: assert.AnError}

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitFor(t, 5*time.Second, func() bool {
		got, err := client.Swarm.Get(ctx, sw.ID)
		return err == nil && got.Status == swarm.StatusFailed
	})

	got, err := client.Swarm.Get(ctx, sw.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, assert.AnError.Error())
	assert.NotNil(t, got.CompletedAt)
}

func TestWorkerLeavesPausedSwarmAlone(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	// A nil executor return with the swarm still running models the
	// escalation pause: the worker must not touch the status.
	sw := createIdleSwarm(t, client, "paused")
	exec := &stubExecutor{}

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitFor(t, 5*time.Second, func() bool {
		return len(exec.executedIDs()) == 1
	})
	time.Sleep(50 * time.Millisecond)

	got, err := client.Swarm.Get(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusRunning, got.Status,
		"a paused swarm stays running until its heartbeat goes stale")
}

func TestCancelSwarm(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	sw := createIdleSwarm(t, client, "cancel-me")
	exec := &stubExecutor{block: make(chan struct{}), onExec: func(ctx context.Context, swarmID string) error {
		// Blocked until cancellation; record it like the engine would.
		if ctx.Err() != nil {
			return client.Swarm.UpdateOneID(swarmID).
				SetStatus(swarm.StatusCancelled).
				SetCompletedAt(time.Now()).
				Exec(context.Background())
		}
		return nil
	}}

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitFor(t, 5*time.Second, func() bool {
		return len(exec.executedIDs()) == 1
	})
	assert.True(t, pool.CancelSwarm(sw.ID), "swarm is registered while executing")

	waitFor(t, 5*time.Second, func() bool {
		got, err := client.Swarm.Get(ctx, sw.ID)
		return err == nil && got.Status == swarm.StatusCancelled
	})

	assert.False(t, pool.CancelSwarm(sw.ID), "finished swarms are unregistered")
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	stale := createIdleSwarm(t, client, "stale")
	fresh := createIdleSwarm(t, client, "fresh")

	// Simulate a dead pod: running with an old heartbeat.
	require.NoError(t, client.Swarm.UpdateOneID(stale.ID).
		SetStatus(swarm.StatusRunning).
		SetPodID("pod-dead").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx))
	require.NoError(t, client.Swarm.UpdateOneID(fresh.ID).
		SetStatus(swarm.StatusRunning).
		SetPodID("pod-alive").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), &stubExecutor{})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := client.Swarm.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusIdle, got.Status, "stale swarm returns to the queue")
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.LastHeartbeatAt)

	got, err = client.Swarm.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusRunning, got.Status, "healthy swarm untouched")

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine := createIdleSwarm(t, client, "mine")
	theirs := createIdleSwarm(t, client, "theirs")

	require.NoError(t, client.Swarm.UpdateOneID(mine.ID).
		SetStatus(swarm.StatusRunning).
		SetPodID("pod-restarting").
		Exec(ctx))
	require.NoError(t, client.Swarm.UpdateOneID(theirs.ID).
		SetStatus(swarm.StatusRunning).
		SetPodID("pod-other").
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-restarting"))

	got, err := client.Swarm.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusIdle, got.Status)

	got, err = client.Swarm.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, swarm.StatusRunning, got.Status, "other pods' work is left alone")
}

func TestPoolHealthReportsQueueDepth(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	createIdleSwarm(t, client, "queued-1")
	createIdleSwarm(t, client, "queued-2")

	pool := NewWorkerPool("pod-test", client, testQueueConfig(), &stubExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	// Workers will start draining the queue; depth is read best-effort.
	health := pool.Health()
	assert.Equal(t, "pod-test", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}
