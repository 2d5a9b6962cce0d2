// Package monitor runs the self-healing background loop: due-retry
// requeuing, stall detection, blocked-dependency propagation, and health
// accounting.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/retry"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/services"
)

// Monitor ticks over the whole task table; it is not scoped to one swarm.
type Monitor struct {
	tasks       *services.TaskService
	escalations *services.EscalationService
	resolver    *conflict.Resolver
	pub         *events.Publisher
	sink        metrics.Sink
	logger      *slog.Logger

	tick        time.Duration
	taskTimeout time.Duration
	now         func() time.Time

	mu            sync.Mutex
	retries       int
	recoveries    int
	interventions int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a Monitor.
func New(tasks *services.TaskService, escalations *services.EscalationService, resolver *conflict.Resolver, pub *events.Publisher, cfg config.MonitorConfig, taskCfg config.TaskConfig, sink metrics.Sink, logger *slog.Logger) *Monitor {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Monitor{
		tasks:       tasks,
		escalations: escalations,
		resolver:    resolver,
		pub:         pub,
		sink:        sink,
		logger:      logger.With("component", "monitor"),
		tick:        cfg.TickInterval,
		taskTimeout: taskCfg.Timeout,
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start runs the loop until Stop is called or ctx is cancelled. The current
// tick always finishes before the loop exits.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Tick(ctx)
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop terminates the loop after the current tick and waits for it.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

// Tick runs one pass. Exposed for tests.
func (m *Monitor) Tick(ctx context.Context) {
	m.requeueDueRetries(ctx)
	m.failStalledTasks(ctx)
	m.propagateBlockedDependencies(ctx)
	m.publishHealth()
}

// requeueDueRetries moves failed tasks with budget left back to pending
// once their backoff window has elapsed.
func (m *Monitor) requeueDueRetries(ctx context.Context) {
	candidates, err := m.tasks.RetryableTasks(ctx)
	if err != nil {
		m.logger.Error("failed to query retryable tasks", "error", err)
		return
	}

	for _, t := range candidates {
		reason := failureReason(t)
		decision := retry.Decide(reason, t.Attempts)
		if !decision.Retry {
			m.escalateExhausted(ctx, t, decision)
			continue
		}
		if t.LastFailedAt != nil && m.now().Sub(*t.LastFailedAt) < decision.Delay {
			continue
		}

		// Regeneration wants the failure in the agent's context; the
		// requeue below clears failure_reason.
		if decision.Action == retry.ActionRegenerate || decision.Action == retry.ActionReplan {
			if err := m.tasks.MergeData(ctx, t.ID, map[string]interface{}{
				"failure_context": reason,
			}); err != nil {
				m.logger.Error("failed to stash failure context", "task_key", t.TaskKey, "error", err)
			}
		}

		if err := m.tasks.RequeueForRetry(ctx, t.ID); err != nil {
			if err != services.ErrConcurrentModification {
				m.logger.Error("failed to requeue task", "task_key", t.TaskKey, "error", err)
			}
			continue
		}
		if err := m.pub.Retry(ctx, t.SwarmID, events.RetryPayload{
			TaskID:    t.ID,
			TaskKey:   t.TaskKey,
			Attempt:   t.Attempts + 1,
			ErrorKind: string(decision.Kind),
			Reason:    reason,
		}); err != nil {
			m.logger.Error("failed to record retry event", "task_key", t.TaskKey, "error", err)
		}
		m.sink.IncCounter(metrics.TaskRetriesTotal, string(decision.Kind))

		m.mu.Lock()
		m.retries++
		m.interventions++
		m.mu.Unlock()

		m.logger.Info("task requeued for retry",
			"swarm_id", t.SwarmID, "task_key", t.TaskKey,
			"attempt", t.Attempts+1, "kind", decision.Kind, "action", decision.Action)
	}
}

// escalateExhausted surfaces failures whose policy allows no (more) retries.
// A zero-retry kind escalates on first failure; budget exhaustion escalates
// once the attempts run out.
func (m *Monitor) escalateExhausted(ctx context.Context, t *ent.Task, decision retry.Decision) {
	if hasEsc, _ := t.Data["escalation_id"].(string); hasEsc != "" {
		return
	}
	kind := escalation.KindUnclearRequirement
	switch decision.Kind {
	case retry.KindConfiguration:
		kind = escalation.KindConfiguration
	case retry.KindExternalBlocker:
		kind = escalation.KindExternalService
	case retry.KindDesignFlaw:
		kind = escalation.KindDesignDecision
	}
	reason := failureReason(t)
	created, err := m.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     t.SwarmID,
		TaskID:      t.ID,
		Kind:        kind,
		Description: "task " + t.TaskKey + " cannot proceed: " + reason,
		SuggestedActions: []string{
			"review the failure reason and adjust configuration or requirements",
			"resolve this escalation to requeue the task",
		},
	})
	if err != nil {
		m.logger.Error("failed to create escalation", "task_key", t.TaskKey, "error", err)
		return
	}
	if err := m.tasks.MergeData(ctx, t.ID, map[string]interface{}{
		"escalation_id": created.ID,
	}); err != nil {
		m.logger.Error("failed to tag task with escalation", "task_key", t.TaskKey, "error", err)
	}
	if err := m.pub.Escalation(ctx, t.SwarmID, events.EscalationPayload{
		EscalationID: created.ID,
		TaskID:       t.ID,
		Kind:         string(kind),
		Description:  reason,
	}); err != nil {
		m.logger.Error("failed to record escalation event", "task_key", t.TaskKey, "error", err)
	}

	m.mu.Lock()
	m.interventions++
	m.mu.Unlock()

	m.logger.Warn("task escalated after retry exhaustion",
		"swarm_id", t.SwarmID, "task_key", t.TaskKey,
		"kind", kind, "escalation_id", created.ID)
}

// failStalledTasks times out in_progress tasks and releases their agents'
// locks.
func (m *Monitor) failStalledTasks(ctx context.Context) {
	stalled, err := m.tasks.StalledTasks(ctx, m.taskTimeout)
	if err != nil {
		m.logger.Error("failed to query stalled tasks", "error", err)
		return
	}
	for _, t := range stalled {
		if err := m.tasks.MarkFailed(ctx, t.ID, "timeout"); err != nil {
			m.logger.Error("failed to time out task", "task_key", t.TaskKey, "error", err)
			continue
		}
		if t.AgentID != nil {
			m.resolver.OnTaskFailed(ctx, t.SwarmID, t.TaskKey, *t.AgentID)
		}

		m.mu.Lock()
		m.interventions++
		m.mu.Unlock()

		m.logger.Warn("stalled task timed out",
			"swarm_id", t.SwarmID, "task_key", t.TaskKey,
			"stalled_for", m.now().Sub(t.UpdatedAt))
	}
}

// propagateBlockedDependencies blocks pending tasks whose dependencies have
// failed permanently, escalating when a milestone sits behind the failure.
func (m *Monitor) propagateBlockedDependencies(ctx context.Context) {
	// Only permanently failed deps block: budget left means retry is coming.
	failed, err := m.tasks.ExhaustedTasks(ctx)
	if err != nil {
		m.logger.Error("failed to query exhausted tasks", "error", err)
		return
	}
	if len(failed) == 0 {
		return
	}

	permanent := make(map[string]map[string]*ent.Task) // swarm → key → task
	for _, t := range failed {
		if permanent[t.SwarmID] == nil {
			permanent[t.SwarmID] = make(map[string]*ent.Task)
		}
		permanent[t.SwarmID][t.TaskKey] = t
	}

	for swarmID, failedKeys := range permanent {
		all, err := m.tasks.ListTasks(ctx, swarmID)
		if err != nil {
			m.logger.Error("failed to list swarm tasks", "swarm_id", swarmID, "error", err)
			continue
		}
		for _, t := range all {
			if t.Status != task.StatusPending {
				continue
			}
			blockedBy := ""
			for _, dep := range t.Dependencies {
				if _, isFailed := failedKeys[dep]; isFailed {
					blockedBy = dep
					break
				}
			}
			if blockedBy == "" {
				continue
			}
			if _, err := m.tasks.UpdateTaskStatus(ctx, t.ID, task.StatusBlocked, map[string]interface{}{
				"blocked_by": blockedBy,
			}); err != nil {
				if err != services.ErrConcurrentModification {
					m.logger.Error("failed to block task", "task_key", t.TaskKey, "error", err)
				}
				continue
			}
			m.mu.Lock()
			m.interventions++
			m.mu.Unlock()
			m.logger.Warn("task blocked by failed dependency",
				"swarm_id", swarmID, "task_key", t.TaskKey, "blocked_by", blockedBy)

			if m.onCriticalPath(all, t.TaskKey) {
				m.escalateCriticalPath(ctx, swarmID, t, blockedBy, failedKeys[blockedBy])
			}
		}
	}
}

// onCriticalPath treats a task as critical when it is a milestone or has
// downstream dependents.
func (m *Monitor) onCriticalPath(all []*ent.Task, key string) bool {
	counts := scheduler.DownstreamCounts(all)
	if counts[key] > 0 {
		return true
	}
	for _, t := range all {
		if t.TaskKey == key {
			return t.Milestone
		}
	}
	return false
}

func (m *Monitor) escalateCriticalPath(ctx context.Context, swarmID string, t *ent.Task, blockedBy string, cause *ent.Task) {
	reason := "unknown failure"
	if cause != nil && cause.FailureReason != nil {
		reason = *cause.FailureReason
	}
	created, err := m.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:     swarmID,
		TaskID:      t.ID,
		Kind:        escalation.KindDesignDecision,
		Description: "critical-path task " + t.TaskKey + " is blocked by failed dependency " + blockedBy + ": " + reason,
		SuggestedActions: []string{
			"resolve the failed dependency manually",
			"skip the blocked branch if it is not essential",
		},
	})
	if err != nil {
		m.logger.Error("failed to escalate critical-path block", "task_key", t.TaskKey, "error", err)
		return
	}
	if err := m.pub.Escalation(ctx, swarmID, events.EscalationPayload{
		EscalationID: created.ID,
		TaskID:       t.ID,
		Kind:         string(escalation.KindDesignDecision),
		Description:  "critical path blocked by " + blockedBy,
	}); err != nil {
		m.logger.Error("failed to record escalation event", "task_key", t.TaskKey, "error", err)
	}
}

// publishHealth exports the loop's intervention counters.
func (m *Monitor) publishHealth() {
	m.mu.Lock()
	retries, recoveries, interventions := m.retries, m.recoveries, m.interventions
	m.mu.Unlock()

	rate := 0.0
	if retries > 0 {
		rate = float64(recoveries) / float64(retries)
	}
	m.sink.SetGauge("monitor_retry_success_rate", rate)
	m.sink.SetGauge("monitor_interventions_total", float64(interventions))
}

// RecordRecovery is called when a previously retried task completes, so the
// retry success rate reflects outcomes rather than attempts.
func (m *Monitor) RecordRecovery() {
	m.mu.Lock()
	m.recoveries++
	m.mu.Unlock()
}

func failureReason(t *ent.Task) string {
	if t.FailureReason == nil {
		return ""
	}
	return *t.FailureReason
}
