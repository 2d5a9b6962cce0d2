package models

// ConflictStats summarizes conflict-resolver activity for a swarm.
type ConflictStats struct {
	ActiveLocks       int `json:"active_locks"`
	ConflictsDetected int `json:"conflicts_detected"`
	ConflictsResolved int `json:"conflicts_resolved"`
	LocksBroken       int `json:"locks_broken"`
}

// Progress is the real-time progress report for a swarm.
type Progress struct {
	Progress      float64        `json:"progress"` // completed/total in [0,1]
	Completed     int            `json:"completed"`
	InProgress    int            `json:"in_progress"`
	Pending       int            `json:"pending"`
	Failed        int            `json:"failed"`
	Blocked       int            `json:"blocked"`
	Skipped       int            `json:"skipped"`
	Total         int            `json:"total"`
	ReadyTasks    []string       `json:"ready_tasks"`
	HasCycle      bool           `json:"has_cycle"`
	ConflictStats *ConflictStats `json:"conflict_stats,omitempty"`
}

// FailureRecord is the structured failure surfaced to API callers.
type FailureRecord struct {
	Kind            string   `json:"kind"`
	Message         string   `json:"message"`
	Remediation     string   `json:"remediation,omitempty"`
	AffectedTaskIDs []string `json:"affected_task_ids,omitempty"`
}
