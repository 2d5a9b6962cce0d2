// Package scheduler implements dependency-aware task selection: ready-queue
// enumeration, cycle detection, and progress accounting.
package scheduler

import (
	"context"
	"sort"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
)

// Blocker reports whether a set of dependencies is blocked by prior failures.
// Implemented by the conflict resolver.
type Blocker interface {
	ShouldBlock(swarmID string, dependencies []string) (bool, string)
}

// Scheduler selects ready tasks for a swarm.
type Scheduler struct {
	tasks   *services.TaskService
	blocker Blocker
}

// New creates a Scheduler. blocker may be nil (no failure propagation).
func New(tasks *services.TaskService, blocker Blocker) *Scheduler {
	return &Scheduler{tasks: tasks, blocker: blocker}
}

// ByKey indexes tasks by their hierarchy key.
func ByKey(tasks []*ent.Task) map[string]*ent.Task {
	m := make(map[string]*ent.Task, len(tasks))
	for _, t := range tasks {
		m[t.TaskKey] = t
	}
	return m
}

// AreDependenciesMet reports whether every dependency of t is completed and
// none has failed. An unknown dependency key counts as not met.
func AreDependenciesMet(t *ent.Task, byKey map[string]*ent.Task) bool {
	for _, dep := range t.Dependencies {
		d, ok := byKey[dep]
		if !ok {
			return false
		}
		if d.Status != task.StatusCompleted {
			return false
		}
	}
	return true
}

// HasFailedDependency reports whether any dependency of t has failed, along
// with the first failed key.
func HasFailedDependency(t *ent.Task, byKey map[string]*ent.Task) (bool, string) {
	for _, dep := range t.Dependencies {
		if d, ok := byKey[dep]; ok && d.Status == task.StatusFailed {
			return true, dep
		}
	}
	return false, ""
}

// DownstreamCounts returns, for each task key, how many tasks transitively
// depend on it. Used as the critical-path tie-break.
func DownstreamCounts(tasks []*ent.Task) map[string]int {
	dependents := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			dependents[dep] = append(dependents[dep], t.TaskKey)
		}
	}

	counts := make(map[string]int, len(tasks))
	for _, t := range tasks {
		seen := make(map[string]bool)
		stack := append([]string(nil), dependents[t.TaskKey]...)
		for len(stack) > 0 {
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[k] {
				continue
			}
			seen[k] = true
			stack = append(stack, dependents[k]...)
		}
		counts[t.TaskKey] = len(seen)
	}
	return counts
}

// OrderReady sorts ready tasks by priority descending, then creation time
// ascending. Ties on both break toward the task with fewer downstream
// dependents (critical-path heuristic).
func OrderReady(ready []*ent.Task, downstream map[string]int) {
	sort.SliceStable(ready, func(i, j int) bool {
		a, b := ready[i], ready[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return downstream[a.TaskKey] < downstream[b.TaskKey]
	})
}

// ReadyTasks enumerates pending tasks whose dependencies are met and whose
// owning agent is not currently occupied by another in_progress task.
func (s *Scheduler) ReadyTasks(ctx context.Context, swarmID string) ([]*ent.Task, error) {
	all, err := s.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		return nil, err
	}
	return readyFrom(swarmID, all, s.blocker), nil
}

func readyFrom(swarmID string, all []*ent.Task, blocker Blocker) []*ent.Task {
	byKey := ByKey(all)

	busyAgents := make(map[string]bool)
	for _, t := range all {
		if t.Status == task.StatusInProgress && t.AgentID != nil {
			busyAgents[*t.AgentID] = true
		}
	}

	var ready []*ent.Task
	for _, t := range all {
		if t.Status != task.StatusPending {
			continue
		}
		if !AreDependenciesMet(t, byKey) {
			continue
		}
		if t.AgentID != nil && busyAgents[*t.AgentID] {
			continue
		}
		if blocker != nil {
			if blocked, _ := blocker.ShouldBlock(swarmID, t.Dependencies); blocked {
				continue
			}
		}
		ready = append(ready, t)
	}

	OrderReady(ready, DownstreamCounts(all))
	return ready
}

// CanAgentStart combines the dependency check and the conflict-resolver
// block check for one task.
func (s *Scheduler) CanAgentStart(ctx context.Context, swarmID, taskID string) (bool, string, error) {
	t, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return false, "", err
	}
	all, err := s.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		return false, "", err
	}
	byKey := ByKey(all)

	if failed, dep := HasFailedDependency(t, byKey); failed {
		return false, "dependency " + dep + " failed", nil
	}
	if !AreDependenciesMet(t, byKey) {
		return false, "dependencies not completed", nil
	}
	if s.blocker != nil {
		if blocked, reason := s.blocker.ShouldBlock(swarmID, t.Dependencies); blocked {
			return false, reason, nil
		}
	}
	return true, "", nil
}

// DetectCycle runs DFS over the swarm's dependency graph and returns the
// offending cycle as a key path, or nil if the graph is a DAG.
func (s *Scheduler) DetectCycle(ctx context.Context, swarmID string) ([]string, error) {
	all, err := s.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		return nil, err
	}
	graph := make(map[string][]string, len(all))
	for _, t := range all {
		graph[t.TaskKey] = t.Dependencies
	}
	return DetectCycleEdges(graph), nil
}

// DetectCycleEdges finds a cycle in a key → dependency-keys graph using DFS
// with visited and on-stack sets. Returns the cycle path or nil.
// Shared by the scheduler (persisted tasks) and the planner (pre-persist
// validation).
func DetectCycleEdges(graph map[string][]string) []string {
	const (
		unvisited = 0
		onStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(graph))

	// Deterministic iteration keeps test output stable.
	keys := make([]string, 0, len(graph))
	for k := range graph {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var cycle []string
	var visit func(k string, path []string) bool
	visit = func(k string, path []string) bool {
		state[k] = onStack
		path = append(path, k)
		for _, dep := range graph[k] {
			if _, known := graph[dep]; !known {
				continue // unknown deps are a readiness problem, not a cycle
			}
			switch state[dep] {
			case onStack:
				// Trim the path to the cycle entry point.
				for i, p := range path {
					if p == dep {
						cycle = append(append([]string(nil), path[i:]...), dep)
						return true
					}
				}
				cycle = append(append([]string(nil), path...), dep)
				return true
			case unvisited:
				if visit(dep, path) {
					return true
				}
			}
		}
		state[k] = done
		return false
	}

	for _, k := range keys {
		if state[k] == unvisited {
			if visit(k, nil) {
				return cycle
			}
		}
	}
	return nil
}

// CalculateProgress computes completed/total plus per-status counts and the
// current ready queue for a swarm.
func (s *Scheduler) CalculateProgress(ctx context.Context, swarmID string) (*models.Progress, error) {
	all, err := s.tasks.ListTasks(ctx, swarmID)
	if err != nil {
		return nil, err
	}
	return ProgressFrom(swarmID, all, s.blocker), nil
}

// ProgressFrom computes a progress report from an in-memory task slice.
func ProgressFrom(swarmID string, all []*ent.Task, blocker Blocker) *models.Progress {
	p := &models.Progress{Total: len(all)}
	for _, t := range all {
		switch t.Status {
		case task.StatusCompleted:
			p.Completed++
		case task.StatusInProgress:
			p.InProgress++
		case task.StatusPending:
			p.Pending++
		case task.StatusFailed:
			p.Failed++
		case task.StatusBlocked:
			p.Blocked++
		case task.StatusSkipped:
			p.Skipped++
		}
	}
	if p.Total > 0 {
		p.Progress = float64(p.Completed) / float64(p.Total)
	}

	for _, t := range readyFrom(swarmID, all, blocker) {
		p.ReadyTasks = append(p.ReadyTasks, t.TaskKey)
	}

	graph := make(map[string][]string, len(all))
	for _, t := range all {
		graph[t.TaskKey] = t.Dependencies
	}
	p.HasCycle = DetectCycleEdges(graph) != nil

	return p
}
