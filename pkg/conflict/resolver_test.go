package conflict

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

// embedByContent returns a canned vector per substring so tests can dial in
// exact similarities.
type embedByContent struct {
	vectors  map[string][]float64
	fallback []float64
	revised  string
}

func (c *embedByContent) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Text: c.revised, TokensUsed: 80}, nil
}

func (c *embedByContent) Embed(_ context.Context, text string) ([]float64, error) {
	for sub, vec := range c.vectors {
		if strings.Contains(text, sub) {
			return vec, nil
		}
	}
	return c.fallback, nil
}

func newTestResolver(t *testing.T, client llm.Client) (*Resolver, *services.EventService, string) {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)

	swarm, err := services.NewSwarmService(entClient).CreateSwarm(
		context.Background(), services.CreateSwarmInput{Name: "conflict-test"})
	require.NoError(t, err)

	r := NewResolver(client, events.NewPublisher(entClient),
		config.ConflictConfig{SimilarityThreshold: 0.70},
		config.FileLockConfig{TTL: 30 * time.Minute},
		config.WorkflowConfig{MediationSimilarityGoal: 0.85},
		nil, slog.Default())
	return r, services.NewEventService(entClient), swarm.ID
}

func TestAcquireLockExclusive(t *testing.T) {
	r, eventsSvc, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	assert.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-a"))
	assert.False(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-b"))
	assert.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-a"), "re-entrant for the holder")

	held := r.HeldLocks(swarmID)
	assert.Equal(t, map[string]string{"src/app.py": "agent-a"}, held)

	n, err := eventsSvc.CountByKind(ctx, swarmID, events.KindLockAcquired)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "re-entrant claims do not re-log")
}

func TestAcquireLockIsPerSwarm(t *testing.T) {
	r, _, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	require.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-a"))
	assert.True(t, r.AcquireLock(ctx, "other-swarm", "src/app.py", "agent-b"),
		"the same path in another swarm is an unrelated lock")
}

func TestAcquireLockBreaksStaleHolder(t *testing.T) {
	r, eventsSvc, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }
	require.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-a"))

	// Just inside the TTL: still held.
	r.now = func() time.Time { return base.Add(29 * time.Minute) }
	assert.False(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-b"))

	// Past the TTL: broken and reassigned.
	r.now = func() time.Time { return base.Add(31 * time.Minute) }
	assert.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-b"))
	assert.Equal(t, map[string]string{"src/app.py": "agent-b"}, r.HeldLocks(swarmID))

	broken, err := eventsSvc.QueryByKind(ctx, swarmID, events.KindLockBroken)
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, "agent-a", broken[0].Data["previous_owner"])
	assert.Equal(t, "agent-b", broken[0].Data["agent_id"])
}

func TestReleaseLockOnlyByHolder(t *testing.T) {
	r, eventsSvc, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	require.True(t, r.AcquireLock(ctx, swarmID, "src/app.py", "agent-a"))

	r.ReleaseLock(ctx, swarmID, "src/app.py", "agent-b")
	assert.Len(t, r.HeldLocks(swarmID), 1, "a non-holder release is a no-op")

	r.ReleaseLock(ctx, swarmID, "src/app.py", "agent-a")
	assert.Empty(t, r.HeldLocks(swarmID))

	n, err := eventsSvc.CountByKind(ctx, swarmID, events.KindLockReleased)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReleaseAll(t *testing.T) {
	r, _, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	require.True(t, r.AcquireLock(ctx, swarmID, "src/a.py", "agent-a"))
	require.True(t, r.AcquireLock(ctx, swarmID, "src/b.py", "agent-a"))
	require.True(t, r.AcquireLock(ctx, swarmID, "src/c.py", "agent-b"))

	released := r.ReleaseAll(ctx, swarmID, "agent-a")
	assert.Equal(t, 2, released)
	assert.Equal(t, map[string]string{"src/c.py": "agent-b"}, r.HeldLocks(swarmID))
}

func TestOnTaskFailedBlocksDependentsAndFreesLocks(t *testing.T) {
	r, _, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	require.True(t, r.AcquireLock(ctx, swarmID, "src/a.py", "agent-a"))
	r.OnTaskFailed(ctx, swarmID, "1.2", "agent-a")

	assert.Empty(t, r.HeldLocks(swarmID), "a failing agent drops its locks")

	blocked, reason := r.ShouldBlock(swarmID, []string{"1.1", "1.2"})
	assert.True(t, blocked)
	assert.Contains(t, reason, "1.2")

	blocked, _ = r.ShouldBlock(swarmID, []string{"1.1"})
	assert.False(t, blocked)
}

func TestOnTaskRecoveredUnblocks(t *testing.T) {
	r, _, swarmID := newTestResolver(t, nil)

	r.OnTaskFailed(context.Background(), swarmID, "1.2", "agent-a")
	r.OnTaskRecovered(swarmID, "1.2")

	blocked, _ := r.ShouldBlock(swarmID, []string{"1.2"})
	assert.False(t, blocked)
}

func TestForgetDropsSwarmState(t *testing.T) {
	r, _, swarmID := newTestResolver(t, nil)
	ctx := context.Background()

	require.True(t, r.AcquireLock(ctx, swarmID, "src/a.py", "agent-a"))
	r.OnTaskFailed(ctx, swarmID, "1.2", "agent-b")

	r.Forget(swarmID)

	assert.Empty(t, r.HeldLocks(swarmID))
	blocked, _ := r.ShouldBlock(swarmID, []string{"1.2"})
	assert.False(t, blocked)
}

func TestDetectConflict(t *testing.T) {
	fake := &embedByContent{
		vectors: map[string][]float64{
			"login form": {1, 0, 0},
			"auth api":   {0, 1, 0},
		},
	}
	r, _, _ := newTestResolver(t, fake)

	similarity, mediate, err := r.DetectConflict(context.Background(), "login form spec", "auth api spec")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, similarity, 1e-9)
	assert.True(t, mediate, "orthogonal artifacts need mediation")

	fake.vectors["login form"] = []float64{0, 1, 0}
	similarity, mediate, err = r.DetectConflict(context.Background(), "login form spec", "auth api spec")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, similarity, 1e-9)
	assert.False(t, mediate)
}

func TestMediate(t *testing.T) {
	fake := &embedByContent{
		vectors: map[string][]float64{
			"original ui": {1, 0, 0},
			"backend":     {0, 1, 0},
			"revised ui":  {0, 1, 0},
		},
		revised: "revised ui spec aligned to backend",
	}
	r, eventsSvc, swarmID := newTestResolver(t, fake)
	ctx := context.Background()

	revised, post, tokens, err := r.Mediate(ctx, swarmID, "original ui spec", "backend api", 0.1)
	require.NoError(t, err)
	assert.Equal(t, "revised ui spec aligned to backend", revised)
	assert.InDelta(t, 1.0, post, 1e-9)
	assert.Equal(t, 80, tokens, "mediation reports the tokens it spent")

	evts, err := eventsSvc.QueryByKind(ctx, swarmID, events.KindConflictResolved)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.InDelta(t, 0.1, evts[0].Data["pre_similarity"].(float64), 1e-9)
	assert.InDelta(t, 1.0, evts[0].Data["post_similarity"].(float64), 1e-9)
	assert.Equal(t, true, evts[0].Data["mediated"])
}

// countingSink tallies counter increments per instrument.
type countingSink struct {
	mu       sync.Mutex
	counters map[string]int
}

func (s *countingSink) IncCounter(name string, _ ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counters == nil {
		s.counters = make(map[string]int)
	}
	s.counters[name]++
}

func (s *countingSink) AddCounter(string, float64, ...string)       {}
func (s *countingSink) ObserveHistogram(string, float64, ...string) {}
func (s *countingSink) SetGauge(string, float64, ...string)         {}

func (s *countingSink) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[name]
}

func TestMediateDoesNotRecountDetection(t *testing.T) {
	fake := &embedByContent{
		vectors: map[string][]float64{
			"original ui": {1, 0, 0},
			"backend":     {0, 1, 0},
			"revised ui":  {0, 1, 0},
		},
		revised: "revised ui spec aligned to backend",
	}
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	sw, err := services.NewSwarmService(entClient).CreateSwarm(ctx,
		services.CreateSwarmInput{Name: "mediation-metrics-test"})
	require.NoError(t, err)

	sink := &countingSink{}
	r := NewResolver(fake, events.NewPublisher(entClient),
		config.ConflictConfig{SimilarityThreshold: 0.70},
		config.FileLockConfig{TTL: 30 * time.Minute},
		config.WorkflowConfig{MediationSimilarityGoal: 0.85},
		sink, slog.Default())

	_, mediate, err := r.DetectConflict(ctx, "original ui spec", "backend api")
	require.NoError(t, err)
	require.True(t, mediate)

	_, _, _, err = r.Mediate(ctx, sw.ID, "original ui spec", "backend api", 0.0)
	require.NoError(t, err)

	assert.Equal(t, 1, sink.count(metrics.ConflictsDetected),
		"the post-mediation measurement is not a new conflict")
	assert.Equal(t, 1, sink.count(metrics.ConflictsResolved))
}
