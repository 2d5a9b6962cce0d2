// Package conflict owns the shared-resource safety rails: an in-process
// file-lock registry mirrored to the event log, dependency-failure
// propagation, and similarity-based mediation between UI and backend
// artifacts.
package conflict

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
)

type lockEntry struct {
	agentID    string
	acquiredAt time.Time
}

// Resolver is constructed once and shared by the workflow engine, the
// scheduler, and the monitor. It owns its maps behind a mutex; there are no
// ambient singletons.
type Resolver struct {
	mu sync.Mutex
	// filepath → holder, per swarm
	locks map[string]map[string]lockEntry
	// swarm → set of failed task keys
	failed map[string]map[string]bool

	ttl    time.Duration
	goal   float64
	thresh float64

	llm    llm.Client
	pub    *events.Publisher
	sink   metrics.Sink
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver creates a Resolver.
func NewResolver(client llm.Client, pub *events.Publisher, cfg config.ConflictConfig, lockCfg config.FileLockConfig, wf config.WorkflowConfig, sink metrics.Sink, logger *slog.Logger) *Resolver {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Resolver{
		locks:  make(map[string]map[string]lockEntry),
		failed: make(map[string]map[string]bool),
		ttl:    lockCfg.TTL,
		goal:   wf.MediationSimilarityGoal,
		thresh: cfg.SimilarityThreshold,
		llm:    client,
		pub:    pub,
		sink:   sink,
		logger: logger.With("component", "conflict_resolver"),
		now:    time.Now,
	}
}

// AcquireLock claims filepath for agentID within a swarm. The claim
// succeeds when the path is unheld, already held by the same agent, or held
// by a holder past the stale TTL (in which case the old lock is broken and
// a lock_broken event recorded).
func (r *Resolver) AcquireLock(ctx context.Context, swarmID, filepath, agentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	swarmLocks := r.locks[swarmID]
	if swarmLocks == nil {
		swarmLocks = make(map[string]lockEntry)
		r.locks[swarmID] = swarmLocks
	}

	existing, held := swarmLocks[filepath]
	switch {
	case !held:
		// fallthrough to acquire
	case existing.agentID == agentID:
		return true
	case r.now().Sub(existing.acquiredAt) > r.ttl:
		r.logger.Warn("breaking stale file lock",
			"swarm_id", swarmID, "filepath", filepath,
			"stale_holder", existing.agentID, "new_holder", agentID)
		r.pub.LockBroken(ctx, swarmID, events.LockPayload{
			Filepath:      filepath,
			AgentID:       agentID,
			PreviousOwner: existing.agentID,
		})
	default:
		return false
	}

	swarmLocks[filepath] = lockEntry{agentID: agentID, acquiredAt: r.now()}
	r.pub.LockAcquired(ctx, swarmID, events.LockPayload{Filepath: filepath, AgentID: agentID})
	r.sink.SetGauge(metrics.ActiveFileLocks, float64(r.totalLocksLocked()))
	return true
}

// ReleaseLock releases filepath if held by agentID; otherwise a no-op.
func (r *Resolver) ReleaseLock(ctx context.Context, swarmID, filepath, agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	swarmLocks := r.locks[swarmID]
	if entry, held := swarmLocks[filepath]; held && entry.agentID == agentID {
		delete(swarmLocks, filepath)
		r.pub.LockReleased(ctx, swarmID, events.LockPayload{Filepath: filepath, AgentID: agentID})
		r.sink.SetGauge(metrics.ActiveFileLocks, float64(r.totalLocksLocked()))
	}
}

// ReleaseAll releases every lock held by agentID in the swarm. Used on task
// failure and cancellation.
func (r *Resolver) ReleaseAll(ctx context.Context, swarmID, agentID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releaseAllLocked(ctx, swarmID, agentID)
}

func (r *Resolver) releaseAllLocked(ctx context.Context, swarmID, agentID string) int {
	released := 0
	for filepath, entry := range r.locks[swarmID] {
		if entry.agentID == agentID {
			delete(r.locks[swarmID], filepath)
			r.pub.LockReleased(ctx, swarmID, events.LockPayload{Filepath: filepath, AgentID: agentID})
			released++
		}
	}
	if released > 0 {
		r.sink.SetGauge(metrics.ActiveFileLocks, float64(r.totalLocksLocked()))
	}
	return released
}

// OnTaskFailed records the failure for dependency propagation and releases
// every lock the failing agent held.
func (r *Resolver) OnTaskFailed(ctx context.Context, swarmID, taskKey, agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failed[swarmID] == nil {
		r.failed[swarmID] = make(map[string]bool)
	}
	r.failed[swarmID][taskKey] = true
	released := r.releaseAllLocked(ctx, swarmID, agentID)

	r.logger.Info("task failure recorded",
		"swarm_id", swarmID, "task_key", taskKey,
		"agent_id", agentID, "locks_released", released)
}

// OnTaskRecovered clears a previously recorded failure once the task
// completes after retry, unblocking its dependents.
func (r *Resolver) OnTaskRecovered(swarmID, taskKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failed[swarmID], taskKey)
}

// ShouldBlock reports whether any dependency key is in the swarm's failed
// set, with the first offender as the reason.
func (r *Resolver) ShouldBlock(swarmID string, dependencies []string) (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	failed := r.failed[swarmID]
	for _, dep := range dependencies {
		if failed[dep] {
			return true, "dependency " + dep + " failed"
		}
	}
	return false, ""
}

// Forget drops all resolver state for a swarm. Called when a swarm reaches
// a terminal status.
func (r *Resolver) Forget(swarmID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, swarmID)
	delete(r.failed, swarmID)
	r.sink.SetGauge(metrics.ActiveFileLocks, float64(r.totalLocksLocked()))
}

// HeldLocks returns the current filepath → agent map for a swarm.
func (r *Resolver) HeldLocks(swarmID string) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.locks[swarmID]))
	for filepath, entry := range r.locks[swarmID] {
		out[filepath] = entry.agentID
	}
	return out
}

func (r *Resolver) totalLocksLocked() int {
	n := 0
	for _, swarmLocks := range r.locks {
		n += len(swarmLocks)
	}
	return n
}
