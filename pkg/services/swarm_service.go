package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/google/uuid"
)

// SwarmService manages swarm lifecycle.
type SwarmService struct {
	client *ent.Client
}

// NewSwarmService creates a new SwarmService.
func NewSwarmService(client *ent.Client) *SwarmService {
	return &SwarmService{client: client}
}

// CreateSwarmInput carries the fields needed to create a swarm.
type CreateSwarmInput struct {
	Name      string
	NumAgents int
	Metadata  map[string]interface{}
}

// CreateSwarm creates a swarm in idle status. The queue picks it up from there.
func (s *SwarmService) CreateSwarm(ctx context.Context, input CreateSwarmInput) (*ent.Swarm, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	sw, err := s.client.Swarm.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetStatus(swarm.StatusIdle).
		SetNumAgents(input.NumAgents).
		SetMetadata(input.Metadata).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create swarm: %w", err)
	}
	return sw, nil
}

// GetSwarm fetches a swarm by ID.
func (s *SwarmService) GetSwarm(ctx context.Context, swarmID string) (*ent.Swarm, error) {
	sw, err := s.client.Swarm.Get(ctx, swarmID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get swarm: %w", err)
	}
	return sw, nil
}

// ListSwarms returns swarms ordered newest first.
func (s *SwarmService) ListSwarms(ctx context.Context) ([]*ent.Swarm, error) {
	swarms, err := s.client.Swarm.Query().
		Order(ent.Desc(swarm.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list swarms: %w", err)
	}
	return swarms, nil
}

// UpdateSwarmStatus transitions a swarm to status. Terminal transitions set
// completed_at; an optional error message is recorded for failed swarms.
func (s *SwarmService) UpdateSwarmStatus(ctx context.Context, swarmID string, status swarm.Status, errorMessage string) error {
	upd := s.client.Swarm.UpdateOneID(swarmID).SetStatus(status)
	switch status {
	case swarm.StatusCompleted, swarm.StatusFailed, swarm.StatusCancelled:
		upd.SetCompletedAt(time.Now())
	}
	if errorMessage != "" {
		upd.SetErrorMessage(errorMessage)
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update swarm status: %w", err)
	}
	return nil
}

// MergeMetadata merges fields into the swarm's metadata map. Used by the
// workflow engine to persist checkpoints before advancing a step.
func (s *SwarmService) MergeMetadata(ctx context.Context, swarmID string, fields map[string]interface{}) error {
	sw, err := s.GetSwarm(ctx, swarmID)
	if err != nil {
		return err
	}
	merged := make(map[string]interface{}, len(sw.Metadata)+len(fields))
	for k, v := range sw.Metadata {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	if err := s.client.Swarm.UpdateOneID(swarmID).SetMetadata(merged).Exec(ctx); err != nil {
		return fmt.Errorf("failed to merge swarm metadata: %w", err)
	}
	return nil
}

// RecordPlan records the planned crew size and complexity bucket once the
// plan exists.
func (s *SwarmService) RecordPlan(ctx context.Context, swarmID string, numAgents int, complexity string) error {
	if err := s.client.Swarm.UpdateOneID(swarmID).
		SetNumAgents(numAgents).
		SetComplexity(complexity).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update num_agents: %w", err)
	}
	return nil
}

// Heartbeat refreshes last_heartbeat_at for orphan detection.
func (s *SwarmService) Heartbeat(ctx context.Context, swarmID string) error {
	return s.client.Swarm.UpdateOneID(swarmID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// CreateAgents creates the swarm's agent rows in one transaction and
// returns them keyed by role.
func (s *SwarmService) CreateAgents(ctx context.Context, swarmID string, roles []string) (map[string]*ent.Agent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	agents := make(map[string]*ent.Agent, len(roles))
	for _, role := range roles {
		a, err := tx.Agent.Create().
			SetID(uuid.New().String()).
			SetSwarmID(swarmID).
			SetRole(role).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent %s: %w", role, err)
		}
		agents[role] = a
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agents: %w", err)
	}
	return agents, nil
}

// ListAgents returns the swarm's agents.
func (s *SwarmService) ListAgents(ctx context.Context, swarmID string) ([]*ent.Agent, error) {
	sw, err := s.GetSwarm(ctx, swarmID)
	if err != nil {
		return nil, err
	}
	agents, err := sw.QueryAgents().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// UpdateAgentState updates an agent's status, current task, and data.
// currentTaskID of "" clears the assignment.
func (s *SwarmService) UpdateAgentState(ctx context.Context, agentID string, working bool, currentTaskID string, data map[string]interface{}) error {
	upd := s.client.Agent.UpdateOneID(agentID)
	if working {
		upd.SetStatus(agent.StatusWorking).SetCurrentTaskID(currentTaskID)
	} else {
		upd.SetStatus(agent.StatusIdle).ClearCurrentTaskID()
	}
	if data != nil {
		upd.SetData(data)
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update agent state: %w", err)
	}
	return nil
}
