package tools

import (
	"context"
	"fmt"

	"github.com/crewforge/crewforge/pkg/events"
)

// LockManager is the subset of the conflict resolver the file tools need.
type LockManager interface {
	AcquireLock(ctx context.Context, swarmID, filepath, agentID string) bool
	ReleaseLock(ctx context.Context, swarmID, filepath, agentID string)
}

// RegisterBuiltins installs the orchestrator-provided tools: file-lock
// claims and audit-log writes. Agent-specific tools register on top.
func RegisterBuiltins(r *Registry, locks LockManager, pub *events.Publisher) {
	r.Register("acquire_file_lock", func(ctx context.Context, inv Invocation) (map[string]interface{}, error) {
		path, err := stringArg(inv.Call.Args, "filepath")
		if err != nil {
			return nil, err
		}
		acquired := locks.AcquireLock(ctx, inv.SwarmID, path, inv.AgentID)
		return map[string]interface{}{"acquired": acquired}, nil
	})

	r.Register("release_file_lock", func(ctx context.Context, inv Invocation) (map[string]interface{}, error) {
		path, err := stringArg(inv.Call.Args, "filepath")
		if err != nil {
			return nil, err
		}
		locks.ReleaseLock(ctx, inv.SwarmID, path, inv.AgentID)
		return map[string]interface{}{"released": true}, nil
	})

	// Decisions, constraints, and learnings share one handler; the event
	// kind is the routing key.
	for _, kind := range []string{events.KindDecision, events.KindConstraint, events.KindLearning} {
		kind := kind
		r.Register("record_"+kind, func(ctx context.Context, inv Invocation) (map[string]interface{}, error) {
			note, err := stringArg(inv.Call.Args, "note")
			if err != nil {
				return nil, err
			}
			if err := pub.Append(ctx, inv.SwarmID, kind, map[string]interface{}{
				"agent_id": inv.AgentID,
				"note":     note,
			}); err != nil {
				return nil, err
			}
			return map[string]interface{}{"recorded": true}, nil
		})
	}
}

func stringArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required arg %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("arg %q must be a non-empty string", key)
	}
	return s, nil
}
