// Package queue provides swarm queue management and processing
// infrastructure: claim-based dispatch across pods, heartbeats, and orphan
// recovery.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSwarmsAvailable indicates no idle swarms are in the queue.
	ErrNoSwarmsAvailable = errors.New("no swarms available")

	// ErrAtCapacity indicates the global concurrent swarm limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SwarmExecutor runs the workflow for one claimed swarm.
//
// The executor owns the entire workflow internally: it checkpoints each
// activity and writes the terminal swarm status itself. A nil return means
// the swarm reached a terminal state OR paused legitimately (outstanding
// escalation); the worker only handles claiming, heartbeat, and failure
// fallback.
type SwarmExecutor interface {
	ExecuteSwarm(ctx context.Context, swarmID string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSwarms     int            `json:"active_swarms"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"` // "idle" or "working"
	CurrentSwarmID  string    `json:"current_swarm_id,omitempty"`
	SwarmsProcessed int       `json:"swarms_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
