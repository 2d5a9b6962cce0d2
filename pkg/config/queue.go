package config

import "time"

// QueueConfig contains swarm queue and worker pool configuration.
// These values control how idle swarms are polled, claimed, and executed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and executes swarms.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSwarms is the global limit of concurrently executing
	// swarms across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentSwarms int `yaml:"max_concurrent_swarms"`

	// PollInterval is the base interval for checking idle swarms.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// SwarmTimeout is the maximum time a single workflow execution may run.
	SwarmTimeout time.Duration `yaml:"swarm_timeout"`

	// HeartbeatInterval is how often workers refresh last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active workflows
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned swarms.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a swarm can go without a heartbeat
	// before it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentSwarms:     5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SwarmTimeout:            60 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 60 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
