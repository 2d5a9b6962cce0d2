// Package events provides the append-only audit log for swarm execution:
// retries, conflicts, lock transitions, escalations, and SLO outcomes.
// Event rows are the source of truth for the self-healing loop and for
// observability counters; they are never mutated, and they outlive the
// swarms they describe.
package events

// Event kinds written to the audit log.
const (
	KindRetry            = "retry"
	KindConflictDetected = "conflict_detected"
	KindConflictResolved = "conflict_resolved"
	KindLockAcquired     = "lock_acquired"
	KindLockReleased     = "lock_released"
	KindLockBroken       = "lock_broken"
	KindEscalation       = "escalation"
	KindSLOBreach        = "slo_breach"
	KindDecision         = "decision"
	KindConstraint       = "constraint"
	KindLearning         = "learning"
)

// RetryPayload records a task retry decision.
type RetryPayload struct {
	TaskID    string `json:"task_id"`
	TaskKey   string `json:"task_key"`
	Attempt   int    `json:"attempt"`
	ErrorKind string `json:"error_kind"`
	Reason    string `json:"reason,omitempty"`
}

// LockPayload records a file-lock transition.
type LockPayload struct {
	Filepath      string `json:"filepath"`
	AgentID       string `json:"agent_id"`
	PreviousOwner string `json:"previous_owner,omitempty"` // set for lock_broken
}

// ConflictResolvedPayload records a mediation outcome.
type ConflictResolvedPayload struct {
	PreSimilarity  float64 `json:"pre_similarity"`
	PostSimilarity float64 `json:"post_similarity"`
	Mediated       bool    `json:"mediated"`
}

// EscalationPayload records a surfaced blocker.
type EscalationPayload struct {
	EscalationID string `json:"escalation_id"`
	TaskID       string `json:"task_id,omitempty"`
	Kind         string `json:"kind"`
	Description  string `json:"description"`
}

// SLOBreachPayload records an objective violation.
type SLOBreachPayload struct {
	SLO       string  `json:"slo"`
	Actual    float64 `json:"actual"`
	Threshold float64 `json:"threshold"`
	Hard      bool    `json:"hard"`
}
