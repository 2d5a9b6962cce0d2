package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor SwarmExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Swarm cancel registry: swarm_id → cancel function
	activeSwarms map[string]context.CancelFunc
	mu           sync.RWMutex
	started      bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor SwarmExecutor) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		workers:      make([]*Worker, 0, cfg.WorkerCount),
		stopCh:       make(chan struct{}),
		activeSwarms: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current swarms before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveSwarmIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active swarms to complete",
			"count", len(active),
			"swarm_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterSwarm stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterSwarm(swarmID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSwarms[swarmID] = cancel
}

// UnregisterSwarm removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSwarm(swarmID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSwarms, swarmID)
}

// CancelSwarm triggers context cancellation for a swarm on this pod.
// Returns true if the swarm was found and cancelled on this pod.
func (p *WorkerPool) CancelSwarm(swarmID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSwarms[swarmID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Swarm.Query().
		Where(swarm.StatusEQ(swarm.StatusIdle)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeSwarms, errA := p.client.Swarm.Query().
		Where(
			swarm.StatusEQ(swarm.StatusRunning),
			swarm.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active swarms for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeSwarms <= p.config.MaxConcurrentSwarms && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active swarms query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveSwarms:     activeSwarms,
		MaxConcurrent:    p.config.MaxConcurrentSwarms,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveSwarmIDs returns IDs of currently processing swarms (for logging).
func (p *WorkerPool) getActiveSwarmIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	swarms := make([]string, 0, len(p.activeSwarms))
	for id := range p.activeSwarms {
		swarms = append(swarms, id)
	}
	return swarms
}
