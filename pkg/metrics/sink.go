// Package metrics defines the orchestrator's fixed instrument set behind a
// Sink interface so the collector is swappable.
package metrics

// Instrument names. Counters and histograms keep their metric-style names so
// every Sink implementation exports an identical series set.
const (
	WorkflowsCompleted      = "workflows_completed"
	WorkflowsFailed         = "workflows_failed"
	WorkflowDurationSeconds = "workflow_duration_seconds"
	TaskRetriesTotal        = "task_retries_total"
	StackConfidence         = "stack_confidence"
	ConflictsDetected       = "conflicts_detected"
	ConflictsResolved       = "conflicts_resolved"
	ConflictSimilarity      = "conflict_similarity"
	VisualDiffScore         = "visual_diff_score"
	TokensUsed              = "openrouter_tokens_used"
	ActiveFileLocks         = "active_file_locks"
)

// Sink receives counters, histograms, and gauges from the orchestrator.
type Sink interface {
	// IncCounter increments a counter by 1 with optional label values.
	IncCounter(name string, labels ...string)

	// AddCounter adds value to a counter.
	AddCounter(name string, value float64, labels ...string)

	// ObserveHistogram records an observation.
	ObserveHistogram(name string, value float64, labels ...string)

	// SetGauge sets a gauge to value.
	SetGauge(name string, value float64, labels ...string)
}

// Noop is a Sink that discards everything. Useful in tests.
type Noop struct{}

func (Noop) IncCounter(string, ...string)                {}
func (Noop) AddCounter(string, float64, ...string)       {}
func (Noop) ObserveHistogram(string, float64, ...string) {}
func (Noop) SetGauge(string, float64, ...string)         {}
