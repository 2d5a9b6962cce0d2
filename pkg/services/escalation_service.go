package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/google/uuid"
)

// EscalationService manages surfaced blockers awaiting human input.
type EscalationService struct {
	client *ent.Client
}

// NewEscalationService creates a new EscalationService.
func NewEscalationService(client *ent.Client) *EscalationService {
	return &EscalationService{client: client}
}

// CreateEscalationInput carries the fields for a new escalation.
type CreateEscalationInput struct {
	SwarmID            string
	TaskID             string
	AgentID            string
	Kind               escalation.Kind
	Severity           string
	Description        string
	SuggestedActions   []string
	CanContinueWithout bool
}

// Create persists a new pending escalation.
func (s *EscalationService) Create(ctx context.Context, input CreateEscalationInput) (*ent.Escalation, error) {
	if input.SwarmID == "" {
		return nil, NewValidationError("swarm_id", "required")
	}
	if input.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	severity := input.Severity
	if severity == "" {
		severity = "high"
	}

	builder := s.client.Escalation.Create().
		SetID(uuid.New().String()).
		SetSwarmID(input.SwarmID).
		SetKind(input.Kind).
		SetSeverity(severity).
		SetDescription(input.Description).
		SetSuggestedActions(input.SuggestedActions).
		SetCanContinueWithout(input.CanContinueWithout)
	if input.TaskID != "" {
		builder.SetTaskID(input.TaskID)
	}
	if input.AgentID != "" {
		builder.SetAgentID(input.AgentID)
	}

	esc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create escalation: %w", err)
	}
	return esc, nil
}

// Get fetches an escalation by ID.
func (s *EscalationService) Get(ctx context.Context, escalationID string) (*ent.Escalation, error) {
	esc, err := s.client.Escalation.Get(ctx, escalationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get escalation: %w", err)
	}
	return esc, nil
}

// ListOpen returns pending escalations for a swarm.
func (s *EscalationService) ListOpen(ctx context.Context, swarmID string) ([]*ent.Escalation, error) {
	escs, err := s.client.Escalation.Query().
		Where(escalation.SwarmIDEQ(swarmID), escalation.StatusEQ(escalation.StatusPending)).
		Order(ent.Asc(escalation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalations: %w", err)
	}
	return escs, nil
}

// Resolve applies human input to a pending escalation.
//
// Partial input merges into the resolution payload and leaves the
// escalation pending; the escalation transitions to resolved only when the
// caller marks the action complete. Resolving a non-pending escalation
// returns ErrAlreadyResolved.
func (s *EscalationService) Resolve(ctx context.Context, escalationID, action string, value map[string]interface{}, complete bool) (*ent.Escalation, error) {
	esc, err := s.client.Escalation.Get(ctx, escalationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get escalation: %w", err)
	}
	if esc.Status != escalation.StatusPending {
		return nil, ErrAlreadyResolved
	}

	merged := make(map[string]interface{}, len(esc.Resolution)+len(value)+1)
	for k, v := range esc.Resolution {
		merged[k] = v
	}
	for k, v := range value {
		merged[k] = v
	}
	merged["action"] = action

	upd := s.client.Escalation.UpdateOneID(escalationID).SetResolution(merged)
	if complete {
		upd.SetStatus(escalation.StatusResolved).SetResolvedAt(time.Now())
	}
	esc, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve escalation: %w", err)
	}
	return esc, nil
}
