package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/crewforge/crewforge/ent"
)

// Publisher appends audit events to the events table.
//
// Each public method accepts a specific typed payload struct — see types.go.
// Payloads are marshaled to a generic map so the column stays queryable JSON.
// Append is durable before return: a failed insert is a failed publish.
type Publisher struct {
	client *ent.Client
}

// NewPublisher creates an event publisher over the given ent client.
func NewPublisher(client *ent.Client) *Publisher {
	return &Publisher{client: client}
}

// Append writes a raw event. Prefer the typed helpers below.
func (p *Publisher) Append(ctx context.Context, swarmID, kind string, payload any) error {
	data, err := toMap(payload)
	if err != nil {
		return fmt.Errorf("events: marshaling %s payload: %w", kind, err)
	}
	_, err = p.client.Event.Create().
		SetSwarmID(swarmID).
		SetKind(kind).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("events: appending %s event: %w", kind, err)
	}
	return nil
}

// AppendBestEffort appends and logs instead of returning on failure.
// Used on paths where the primary operation must not fail because the
// audit write did (e.g. lock bookkeeping).
func (p *Publisher) AppendBestEffort(ctx context.Context, swarmID, kind string, payload any) {
	if err := p.Append(ctx, swarmID, kind, payload); err != nil {
		slog.Error("Failed to append audit event", "swarm_id", swarmID, "kind", kind, "error", err)
	}
}

// Retry records a task retry.
func (p *Publisher) Retry(ctx context.Context, swarmID string, payload RetryPayload) error {
	return p.Append(ctx, swarmID, KindRetry, payload)
}

// LockAcquired records a successful lock acquisition.
func (p *Publisher) LockAcquired(ctx context.Context, swarmID string, payload LockPayload) {
	p.AppendBestEffort(ctx, swarmID, KindLockAcquired, payload)
}

// LockReleased records a lock release.
func (p *Publisher) LockReleased(ctx context.Context, swarmID string, payload LockPayload) {
	p.AppendBestEffort(ctx, swarmID, KindLockReleased, payload)
}

// LockBroken records a stale lock takeover.
func (p *Publisher) LockBroken(ctx context.Context, swarmID string, payload LockPayload) {
	p.AppendBestEffort(ctx, swarmID, KindLockBroken, payload)
}

// ConflictResolved records a mediation outcome.
func (p *Publisher) ConflictResolved(ctx context.Context, swarmID string, payload ConflictResolvedPayload) error {
	return p.Append(ctx, swarmID, KindConflictResolved, payload)
}

// Escalation records a surfaced blocker.
func (p *Publisher) Escalation(ctx context.Context, swarmID string, payload EscalationPayload) error {
	return p.Append(ctx, swarmID, KindEscalation, payload)
}

// SLOBreach records an objective violation.
func (p *Publisher) SLOBreach(ctx context.Context, swarmID string, payload SLOBreachPayload) error {
	return p.Append(ctx, swarmID, KindSLOBreach, payload)
}

func toMap(payload any) (map[string]interface{}, error) {
	if payload == nil {
		return nil, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
