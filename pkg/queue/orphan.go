package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/swarm"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned swarms.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running swarms with stale heartbeats and
// requeues them. Workflows checkpoint every activity, so a requeued swarm
// resumes from its last checkpoint on whichever pod claims it next.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Swarm.Query().
		Where(
			swarm.StatusEQ(swarm.StatusRunning),
			swarm.LastHeartbeatAtNotNil(),
			swarm.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned swarms: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned swarms", "count", len(orphans))

	recovered := 0
	for _, sw := range orphans {
		if err := p.requeueOrphanedSwarm(ctx, sw); err != nil {
			slog.Error("Failed to requeue orphaned swarm",
				"swarm_id", sw.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedSwarm returns a single orphaned swarm to the idle queue.
func (p *WorkerPool) requeueOrphanedSwarm(ctx context.Context, sw *ent.Swarm) error {
	log := slog.With("swarm_id", sw.ID, "old_pod_id", sw.PodID)

	lastHeartbeat := "unknown"
	if sw.LastHeartbeatAt != nil {
		lastHeartbeat = sw.LastHeartbeatAt.Format(time.RFC3339)
	}

	// The conditional status predicate makes requeueing race-safe when
	// multiple pods scan simultaneously.
	n, err := p.client.Swarm.Update().
		Where(swarm.IDEQ(sw.ID), swarm.StatusEQ(swarm.StatusRunning)).
		SetStatus(swarm.StatusIdle).
		ClearPodID().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue swarm: %w", err)
	}
	if n == 0 {
		return nil // another pod got there first
	}

	log.Warn("Orphaned swarm requeued for resume", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues swarms owned by this pod that were running
// when the pod previously crashed. Called once during startup, before the
// worker pool begins processing, so this pod can reclaim its own work.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Swarm.Query().
		Where(
			swarm.StatusEQ(swarm.StatusRunning),
			swarm.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, sw := range orphans {
		err := sw.Update().
			SetStatus(swarm.StatusIdle).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to requeue startup orphan",
				"swarm_id", sw.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "swarm_id", sw.ID)
	}

	return nil
}
