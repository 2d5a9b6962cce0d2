package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes swarms.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor SwarmExecutor
	pool     SwarmRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentSwarmID  string
	swarmsProcessed int
	lastActivity    time.Time
}

// SwarmRegistry is the subset of WorkerPool used by Worker for swarm
// registration.
type SwarmRegistry interface {
	RegisterSwarm(swarmID string, cancel context.CancelFunc)
	UnregisterSwarm(swarmID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor SwarmExecutor, pool SwarmRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          string(w.status),
		CurrentSwarmID:  w.currentSwarmID,
		SwarmsProcessed: w.swarmsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSwarmsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing swarm", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a swarm, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Swarm.Query().
		Where(swarm.StatusEQ(swarm.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active swarms: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSwarms {
		return ErrAtCapacity
	}

	// 2. Claim next swarm
	sw, err := w.claimNextSwarm(ctx)
	if err != nil {
		return err
	}

	log := slog.With("swarm_id", sw.ID, "worker_id", w.id)
	log.Info("Swarm claimed")

	w.setStatus(WorkerStatusWorking, sw.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create swarm context with timeout
	swarmCtx, cancelSwarm := context.WithTimeout(ctx, w.config.SwarmTimeout)
	defer cancelSwarm()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterSwarm(sw.ID, cancelSwarm)
	defer w.pool.UnregisterSwarm(sw.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(swarmCtx)
	go w.runHeartbeat(heartbeatCtx, sw.ID)

	// 6. Execute the workflow. The engine writes terminal status itself;
	// the worker only backstops executor errors.
	execErr := w.executor.ExecuteSwarm(swarmCtx, sw.ID)

	// 7. Stop heartbeat
	cancelHeartbeat()

	if execErr != nil {
		// Use background context — swarm ctx may be cancelled.
		if err := w.markFailed(context.Background(), sw.ID, execErr); err != nil {
			log.Error("Failed to record swarm failure", "error", err)
			return err
		}
	}

	w.mu.Lock()
	w.swarmsProcessed++
	w.mu.Unlock()

	log.Info("Swarm processing complete")
	return nil
}

// claimNextSwarm atomically claims the next idle swarm using
// FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextSwarm(ctx context.Context) (*ent.Swarm, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	sw, err := tx.Swarm.Query().
		Where(swarm.StatusEQ(swarm.StatusIdle)).
		Order(ent.Asc(swarm.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSwarmsAvailable
		}
		return nil, fmt.Errorf("failed to query idle swarm: %w", err)
	}

	// Claim: set running, pod_id, started_at, last_heartbeat_at
	now := time.Now()
	sw, err = sw.Update().
		SetStatus(swarm.StatusRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim swarm: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return sw, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, swarmID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Swarm.UpdateOneID(swarmID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "swarm_id", swarmID, "error", err)
			}
		}
	}
}

// markFailed records an executor error as a terminal failure, unless the
// engine already reached a terminal state.
func (w *Worker) markFailed(ctx context.Context, swarmID string, cause error) error {
	sw, err := w.client.Swarm.Get(ctx, swarmID)
	if err != nil {
		return err
	}
	switch sw.Status {
	case swarm.StatusCompleted, swarm.StatusFailed, swarm.StatusCancelled:
		return nil
	}
	return w.client.Swarm.UpdateOneID(swarmID).
		SetStatus(swarm.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(cause.Error()).
		Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, swarmID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSwarmID = swarmID
	w.lastActivity = time.Now()
}
