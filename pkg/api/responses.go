package api

import (
	"time"

	"github.com/crewforge/crewforge/pkg/database"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/queue"
)

// ProcessRequest is the body of POST /orchestrator/process.
type ProcessRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

// ProcessResponse is returned by POST /orchestrator/process.
type ProcessResponse struct {
	Status                 string   `json:"status"` // accepted | needs_clarification
	SwarmID                string   `json:"swarm_id,omitempty"`
	PlannerURL             string   `json:"planner_url,omitempty"`
	ClarificationQuestions []string `json:"clarification_questions,omitempty"`
}

// TaskNode is one node of the hierarchical task tree.
type TaskNode struct {
	ID       string      `json:"id"` // hierarchy key, e.g. "1.2"
	Title    string      `json:"title"`
	Status   string      `json:"status"`
	Priority int         `json:"priority"`
	Subtasks []*TaskNode `json:"subtasks"`
}

// TaskTreeResponse is returned by GET /api/planner/:swarm_id.
type TaskTreeResponse struct {
	SwarmID string      `json:"swarm_id"`
	Tasks   []*TaskNode `json:"tasks"`
}

// EscalationView is one open escalation as surfaced to callers.
type EscalationView struct {
	ID                 string    `json:"id"`
	TaskID             string    `json:"task_id,omitempty"`
	Kind               string    `json:"kind"`
	Severity           string    `json:"severity"`
	Description        string    `json:"description"`
	SuggestedActions   []string  `json:"suggested_actions,omitempty"`
	CanContinueWithout bool      `json:"can_continue_without"`
	CreatedAt          time.Time `json:"created_at"`
}

// EscalationsResponse is returned by GET /api/planner/:swarm_id/escalations.
type EscalationsResponse struct {
	Escalations []EscalationView `json:"escalations"`
}

// ResolveRequest is the body of POST .../escalations/:id/resolve.
type ResolveRequest struct {
	Action   string                 `json:"action" binding:"required"`
	Value    map[string]interface{} `json:"value"`
	Complete *bool                  `json:"complete"`
}

// ResolveResponse is returned after applying escalation input.
type ResolveResponse struct {
	Status string `json:"status"` // resolved | pending
}

// SwarmView is one swarm in the list response.
type SwarmView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	NumAgents   int        `json:"num_agents"`
	Complexity  string     `json:"complexity,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// SwarmsResponse is returned by GET /swarms.
type SwarmsResponse struct {
	Swarms []SwarmView `json:"swarms"`
}

// CancelResponse is returned by POST /swarms/:swarm_id/cancel.
type CancelResponse struct {
	SwarmID string `json:"swarm_id"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	OK         bool                   `json:"ok"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// ErrorResponse is the uniform error envelope. Failure is set for
// structured orchestrator failures per the error-handling contract.
type ErrorResponse struct {
	Error   string                `json:"error"`
	Failure *models.FailureRecord `json:"failure,omitempty"`
}
