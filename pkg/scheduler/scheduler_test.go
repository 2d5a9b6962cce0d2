package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/task"
)

func mkTask(key string, status task.Status, priority int, deps ...string) *ent.Task {
	return &ent.Task{
		ID:           "task-" + key,
		TaskKey:      key,
		Status:       status,
		Priority:     priority,
		Dependencies: deps,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func withAgent(t *ent.Task, agentID string) *ent.Task {
	t.AgentID = &agentID
	return t
}

func keys(tasks []*ent.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.TaskKey)
	}
	return out
}

func TestAreDependenciesMet(t *testing.T) {
	all := []*ent.Task{
		mkTask("1.1", task.StatusCompleted, 5),
		mkTask("1.2", task.StatusPending, 5, "1.1"),
		mkTask("2.1", task.StatusPending, 5, "1.2"),
		mkTask("3.1", task.StatusPending, 5, "missing"),
	}
	byKey := ByKey(all)

	assert.True(t, AreDependenciesMet(byKey["1.2"], byKey))
	assert.False(t, AreDependenciesMet(byKey["2.1"], byKey), "dependency pending")
	assert.False(t, AreDependenciesMet(byKey["3.1"], byKey), "unknown dependency is never met")
	assert.True(t, AreDependenciesMet(byKey["1.1"], byKey), "no dependencies")
}

func TestHasFailedDependency(t *testing.T) {
	all := []*ent.Task{
		mkTask("1.1", task.StatusFailed, 5),
		mkTask("1.2", task.StatusPending, 5, "1.1"),
		mkTask("2.1", task.StatusPending, 5, "1.2"),
	}
	byKey := ByKey(all)

	failed, dep := HasFailedDependency(byKey["1.2"], byKey)
	assert.True(t, failed)
	assert.Equal(t, "1.1", dep)

	failed, _ = HasFailedDependency(byKey["2.1"], byKey)
	assert.False(t, failed, "failure is direct, not transitive, here")
}

func TestDownstreamCounts(t *testing.T) {
	// 1.1 <- 1.2 <- 2.1, and 1.1 <- 3.1
	all := []*ent.Task{
		mkTask("1.1", task.StatusPending, 5),
		mkTask("1.2", task.StatusPending, 5, "1.1"),
		mkTask("2.1", task.StatusPending, 5, "1.2"),
		mkTask("3.1", task.StatusPending, 5, "1.1"),
	}
	counts := DownstreamCounts(all)

	assert.Equal(t, 3, counts["1.1"], "transitive dependents")
	assert.Equal(t, 1, counts["1.2"])
	assert.Equal(t, 0, counts["2.1"])
	assert.Equal(t, 0, counts["3.1"])
}

func TestOrderReady(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	a := mkTask("1.1", task.StatusPending, 5)
	b := mkTask("1.2", task.StatusPending, 9)
	c := mkTask("2.1", task.StatusPending, 5)
	c.CreatedAt = late
	a.CreatedAt = early

	ready := []*ent.Task{c, a, b}
	OrderReady(ready, map[string]int{})

	assert.Equal(t, []string{"1.2", "1.1", "2.1"}, keys(ready),
		"priority desc, then created_at asc")
}

func TestReadyFromExcludesBusyAgents(t *testing.T) {
	inProgress := withAgent(mkTask("1.1", task.StatusInProgress, 5), "agent-a")
	sameAgent := withAgent(mkTask("1.2", task.StatusPending, 5), "agent-a")
	otherAgent := withAgent(mkTask("2.1", task.StatusPending, 5), "agent-b")

	ready := readyFrom("s1", []*ent.Task{inProgress, sameAgent, otherAgent}, nil)

	assert.Equal(t, []string{"2.1"}, keys(ready),
		"an agent with an in_progress task takes no new work")
}

type stubBlocker struct {
	blockedDeps map[string]bool
}

func (s *stubBlocker) ShouldBlock(_ string, deps []string) (bool, string) {
	for _, d := range deps {
		if s.blockedDeps[d] {
			return true, "dependency " + d + " failed"
		}
	}
	return false, ""
}

func TestReadyFromHonorsBlocker(t *testing.T) {
	all := []*ent.Task{
		mkTask("1.1", task.StatusCompleted, 5),
		mkTask("1.2", task.StatusPending, 5, "1.1"),
		mkTask("2.1", task.StatusPending, 5),
	}
	blocker := &stubBlocker{blockedDeps: map[string]bool{"1.1": true}}

	ready := readyFrom("s1", all, blocker)
	assert.Equal(t, []string{"2.1"}, keys(ready))
}

func TestDetectCycleEdges(t *testing.T) {
	t.Run("dag", func(t *testing.T) {
		graph := map[string][]string{
			"1.1": nil,
			"1.2": {"1.1"},
			"2.1": {"1.1", "1.2"},
		}
		assert.Nil(t, DetectCycleEdges(graph))
	})

	t.Run("self loop", func(t *testing.T) {
		graph := map[string][]string{"1.1": {"1.1"}}
		cycle := DetectCycleEdges(graph)
		require.NotNil(t, cycle)
		assert.Equal(t, []string{"1.1", "1.1"}, cycle)
	})

	t.Run("two node cycle", func(t *testing.T) {
		graph := map[string][]string{
			"1.1": {"1.2"},
			"1.2": {"1.1"},
		}
		cycle := DetectCycleEdges(graph)
		require.NotNil(t, cycle)
		// Path closes on its entry point.
		assert.Equal(t, cycle[0], cycle[len(cycle)-1])
		assert.Len(t, cycle, 3)
	})

	t.Run("cycle behind a chain is trimmed to the loop", func(t *testing.T) {
		graph := map[string][]string{
			"0.1": {"1.1"},
			"1.1": {"1.2"},
			"1.2": {"1.3"},
			"1.3": {"1.1"},
		}
		cycle := DetectCycleEdges(graph)
		require.NotNil(t, cycle)
		assert.Equal(t, cycle[0], cycle[len(cycle)-1])
		assert.NotContains(t, cycle, "0.1", "entry chain is not part of the cycle")
	})

	t.Run("unknown dependency is not a cycle", func(t *testing.T) {
		graph := map[string][]string{"1.1": {"ghost"}}
		assert.Nil(t, DetectCycleEdges(graph))
	})
}

func TestProgressFrom(t *testing.T) {
	all := []*ent.Task{
		mkTask("1.1", task.StatusCompleted, 5),
		mkTask("1.2", task.StatusCompleted, 5, "1.1"),
		mkTask("2.1", task.StatusInProgress, 5),
		mkTask("2.2", task.StatusPending, 5, "2.1"),
		mkTask("3.1", task.StatusPending, 5, "1.2"),
		mkTask("4.1", task.StatusFailed, 5),
		mkTask("4.2", task.StatusBlocked, 5, "4.1"),
	}

	p := ProgressFrom("s1", all, nil)

	assert.Equal(t, 7, p.Total)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 1, p.InProgress)
	assert.Equal(t, 2, p.Pending)
	assert.Equal(t, 1, p.Failed)
	assert.Equal(t, 1, p.Blocked)
	assert.InDelta(t, 2.0/7.0, p.Progress, 1e-9)
	assert.Equal(t, []string{"3.1"}, p.ReadyTasks,
		"only the pending task with completed deps is ready")
	assert.False(t, p.HasCycle)
}

func TestProgressFromEmpty(t *testing.T) {
	p := ProgressFrom("s1", nil, nil)
	assert.Zero(t, p.Total)
	assert.Zero(t, p.Progress)
	assert.Empty(t, p.ReadyTasks)
}
