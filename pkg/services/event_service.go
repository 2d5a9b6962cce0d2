package services

import (
	"context"
	"fmt"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/event"
)

// EventService queries the append-only audit log.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// QueryByKind returns a swarm's events of one kind in append order.
func (s *EventService) QueryByKind(ctx context.Context, swarmID, kind string) ([]*ent.Event, error) {
	evts, err := s.client.Event.Query().
		Where(event.SwarmIDEQ(swarmID), event.KindEQ(kind)).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return evts, nil
}

// CountByKind returns how many events of one kind a swarm has recorded.
func (s *EventService) CountByKind(ctx context.Context, swarmID, kind string) (int, error) {
	n, err := s.client.Event.Query().
		Where(event.SwarmIDEQ(swarmID), event.KindEQ(kind)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}
