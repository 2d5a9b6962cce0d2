package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/google/uuid"
)

// TaskService manages task rows and their status transitions.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTaskInput carries the fields for one task row.
type CreateTaskInput struct {
	Key          string
	AgentID      string
	Title        string
	Description  string
	Priority     int
	Dependencies []string
	Phase        string
	Milestone    bool
	MaxAttempts  int
}

// CreateTasks persists a full plan's tasks atomically. Either every task
// row is written or none is.
func (s *TaskService) CreateTasks(ctx context.Context, swarmID string, inputs []CreateTaskInput) ([]*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tasks := make([]*ent.Task, 0, len(inputs))
	for _, in := range inputs {
		if in.Key == "" {
			return nil, NewValidationError("key", "required")
		}
		maxAttempts := in.MaxAttempts
		if maxAttempts <= 0 {
			maxAttempts = 5
		}
		builder := tx.Task.Create().
			SetID(uuid.New().String()).
			SetSwarmID(swarmID).
			SetTaskKey(in.Key).
			SetTitle(in.Title).
			SetDescription(in.Description).
			SetPriority(in.Priority).
			SetDependencies(in.Dependencies).
			SetMilestone(in.Milestone).
			SetMaxAttempts(maxAttempts)
		if in.AgentID != "" {
			builder.SetAgentID(in.AgentID)
		}
		if in.Phase != "" {
			builder.SetPhase(in.Phase)
		}
		t, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create task %s: %w", in.Key, err)
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a task by row ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns all tasks for a swarm, optionally filtered by status.
func (s *TaskService) ListTasks(ctx context.Context, swarmID string, statuses ...task.Status) ([]*ent.Task, error) {
	q := s.client.Task.Query().Where(task.SwarmIDEQ(swarmID))
	if len(statuses) > 0 {
		q = q.Where(task.StatusIn(statuses...))
	}
	tasks, err := q.Order(ent.Asc(task.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus transitions a task to status, optionally merging output
// data. The update is idempotent: if the task is already in the target
// status the call is a no-op and reports applied=false, so completion
// metrics are never double-counted.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID string, status task.Status, data map[string]interface{}) (applied bool, err error) {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return false, err
	}
	if t.Status == status {
		return false, nil
	}

	// Conditional update keyed on the previously read status gives
	// single-writer semantics without a row lock.
	n, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(t.Status)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update task status: %w", err)
	}
	if n == 0 {
		return false, ErrConcurrentModification
	}

	if data != nil {
		merged := make(map[string]interface{}, len(t.Data)+len(data))
		for k, v := range t.Data {
			merged[k] = v
		}
		for k, v := range data {
			merged[k] = v
		}
		if err := s.client.Task.UpdateOneID(taskID).SetData(merged).Exec(ctx); err != nil {
			return true, fmt.Errorf("failed to merge task data: %w", err)
		}
	}
	return true, nil
}

// MergeData merges fields into the task's data map without touching status.
func (s *TaskService) MergeData(ctx context.Context, taskID string, fields map[string]interface{}) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	merged := make(map[string]interface{}, len(t.Data)+len(fields))
	for k, v := range t.Data {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	if err := s.client.Task.UpdateOneID(taskID).SetData(merged).Exec(ctx); err != nil {
		return fmt.Errorf("failed to merge task data: %w", err)
	}
	return nil
}

// MarkInProgress claims a task for an agent. The conditional update
// enforces that only a pending task can move to in_progress, and records
// the single owning agent.
func (s *TaskService) MarkInProgress(ctx context.Context, taskID, agentID string) error {
	n, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusPending)).
		SetStatus(task.StatusInProgress).
		SetAgentID(agentID).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim task: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// MarkFailed records a failure with its reason and timestamp.
func (s *TaskService) MarkFailed(ctx context.Context, taskID, reason string) error {
	err := s.client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusFailed).
		SetFailureReason(reason).
		SetLastFailedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark task failed: %w", err)
	}
	return nil
}

// RequeueForRetry moves a failed task back to pending. Attempts are
// preserved (MarkInProgress increments them) so retry budgets hold across
// the failed → pending → in_progress cycle.
func (s *TaskService) RequeueForRetry(ctx context.Context, taskID string) error {
	n, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusFailed)).
		SetStatus(task.StatusPending).
		ClearFailureReason().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue task: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// SkipPending marks every pending task of the swarm skipped (cancellation
// drain) and returns how many were skipped.
func (s *TaskService) SkipPending(ctx context.Context, swarmID string) (int, error) {
	n, err := s.client.Task.Update().
		Where(task.SwarmIDEQ(swarmID), task.StatusEQ(task.StatusPending)).
		SetStatus(task.StatusSkipped).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to skip pending tasks: %w", err)
	}
	return n, nil
}

// StalledTasks returns in_progress tasks whose last update is older than
// the timeout. Used by the monitor for stall detection.
func (s *TaskService) StalledTasks(ctx context.Context, timeout time.Duration) ([]*ent.Task, error) {
	cutoff := time.Now().Add(-timeout)
	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusInProgress), task.UpdatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stalled tasks: %w", err)
	}
	return tasks, nil
}

// RetryableTasks returns failed tasks that still have attempts left.
func (s *TaskService) RetryableTasks(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusFailed)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed tasks: %w", err)
	}
	out := tasks[:0]
	for _, t := range tasks {
		if t.Attempts < t.MaxAttempts {
			out = append(out, t)
		}
	}
	return out, nil
}

// ExhaustedTasks returns failed tasks whose retry budget is spent.
func (s *TaskService) ExhaustedTasks(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusFailed)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed tasks: %w", err)
	}
	out := tasks[:0]
	for _, t := range tasks {
		if t.Attempts >= t.MaxAttempts {
			out = append(out, t)
		}
	}
	return out, nil
}
