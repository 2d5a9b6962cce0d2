package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

type fakeLocks struct {
	acquireResult bool
	acquired      []string
	released      []string
}

func (f *fakeLocks) AcquireLock(_ context.Context, _, filepath, _ string) bool {
	f.acquired = append(f.acquired, filepath)
	return f.acquireResult
}

func (f *fakeLocks) ReleaseLock(_ context.Context, _, filepath, _ string) {
	f.released = append(f.released, filepath)
}

func TestRegistryUnknownTool(t *testing.T) {
	r := NewRegistry()
	_, err := r.Call(context.Background(), "summon_demons", nil, "s1", "a1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Contains(t, err.Error(), "summon_demons")
}

func TestRegistryRegisterAndCall(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func(_ context.Context, inv Invocation) (map[string]interface{}, error) {
		return map[string]interface{}{
			"swarm": inv.SwarmID,
			"agent": inv.AgentID,
			"value": inv.Call.Args["value"],
		}, nil
	})

	out, err := r.Call(context.Background(), "echo", map[string]interface{}{"value": 42}, "s1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "s1", out["swarm"])
	assert.Equal(t, "a1", out["agent"])
	assert.Equal(t, 42, out["value"])
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	nop := func(context.Context, Invocation) (map[string]interface{}, error) { return nil, nil }
	r.Register("zeta", nop)
	r.Register("alpha", nop)
	r.Register("mid", nop)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestBuiltinsRegisterExpectedNames(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r, &fakeLocks{}, nil)

	names := r.Names()
	assert.Contains(t, names, "acquire_file_lock")
	assert.Contains(t, names, "release_file_lock")
	assert.Contains(t, names, "record_decision")
	assert.Contains(t, names, "record_constraint")
	assert.Contains(t, names, "record_learning")
}

func TestAcquireFileLockTool(t *testing.T) {
	locks := &fakeLocks{acquireResult: true}
	r := NewRegistry()
	RegisterBuiltins(r, locks, nil)

	out, err := r.Call(context.Background(), "acquire_file_lock",
		map[string]interface{}{"filepath": "src/app.py"}, "s1", "a1")
	require.NoError(t, err)
	assert.Equal(t, true, out["acquired"])
	assert.Equal(t, []string{"src/app.py"}, locks.acquired)
}

func TestAcquireFileLockToolDenied(t *testing.T) {
	locks := &fakeLocks{acquireResult: false}
	r := NewRegistry()
	RegisterBuiltins(r, locks, nil)

	out, err := r.Call(context.Background(), "acquire_file_lock",
		map[string]interface{}{"filepath": "src/app.py"}, "s1", "a2")
	require.NoError(t, err, "a denied lock is a result, not an error")
	assert.Equal(t, false, out["acquired"])
}

func TestFileLockToolArgValidation(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r, &fakeLocks{}, nil)

	_, err := r.Call(context.Background(), "acquire_file_lock", nil, "s1", "a1")
	assert.ErrorContains(t, err, "filepath")

	_, err = r.Call(context.Background(), "release_file_lock",
		map[string]interface{}{"filepath": ""}, "s1", "a1")
	assert.ErrorContains(t, err, "filepath")
}

func TestReleaseFileLockTool(t *testing.T) {
	locks := &fakeLocks{}
	r := NewRegistry()
	RegisterBuiltins(r, locks, nil)

	out, err := r.Call(context.Background(), "release_file_lock",
		map[string]interface{}{"filepath": "src/app.py"}, "s1", "a1")
	require.NoError(t, err)
	assert.Equal(t, true, out["released"])
	assert.Equal(t, []string{"src/app.py"}, locks.released)
}

func TestRecordToolsAppendAuditEvents(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	swarms := services.NewSwarmService(client)
	swarm, err := swarms.CreateSwarm(ctx, services.CreateSwarmInput{Name: "audit-test"})
	require.NoError(t, err)

	r := NewRegistry()
	RegisterBuiltins(r, &fakeLocks{}, events.NewPublisher(client))

	out, err := r.Call(ctx, "record_decision",
		map[string]interface{}{"note": "chose REST over gRPC"}, swarm.ID, "a1")
	require.NoError(t, err)
	assert.Equal(t, true, out["recorded"])

	_, err = r.Call(ctx, "record_learning",
		map[string]interface{}{"note": "stripe test keys are rate limited"}, swarm.ID, "a2")
	require.NoError(t, err)

	eventsSvc := services.NewEventService(client)
	decisions, err := eventsSvc.QueryByKind(ctx, swarm.ID, events.KindDecision)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "chose REST over gRPC", decisions[0].Data["note"])
	assert.Equal(t, "a1", decisions[0].Data["agent_id"])

	n, err := eventsSvc.CountByKind(ctx, swarm.ID, events.KindLearning)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordToolRequiresNote(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r, &fakeLocks{}, nil)

	_, err := r.Call(context.Background(), "record_constraint", map[string]interface{}{}, "s1", "a1")
	assert.ErrorContains(t, err, "note")
}
