package slo

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/test/util"
)

func testSLOConfig() config.SLOConfig {
	return config.SLOConfig{
		CostUSD:        5.00,
		LatencySeconds: 720,
		CoveragePct:    80,
		ConfidenceMin:  0.80,
	}
}

func newTestGate(t *testing.T) (*Gate, *services.EventService, string) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	swarms := services.NewSwarmService(client)
	swarm, err := swarms.CreateSwarm(context.Background(), services.CreateSwarmInput{Name: "slo-test"})
	require.NoError(t, err)

	gate := NewGate(testSLOConfig(), 0.009, events.NewPublisher(client), nil, slog.Default())
	return gate, services.NewEventService(client), swarm.ID
}

func healthy() Measurements {
	return Measurements{
		TokensUsed:      100_000, // $0.90 at $0.009/1k
		Duration:        5 * time.Minute,
		CoveragePct:     92,
		StackConfidence: 0.95,
	}
}

func TestCost(t *testing.T) {
	g := NewGate(testSLOConfig(), 0.009, nil, nil, slog.Default())
	assert.InDelta(t, 0.9, g.Cost(100_000), 1e-9)
	assert.Zero(t, g.Cost(0))
}

func TestEnforceAllPass(t *testing.T) {
	gate, eventsSvc, swarmID := newTestGate(t)
	ctx := context.Background()

	results, err := gate.Enforce(ctx, swarmID, healthy())
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.False(t, r.Breached, r.Objective)
		assert.Equal(t, VerdictPass, r.Verdict)
	}

	n, err := eventsSvc.CountByKind(ctx, swarmID, events.KindSLOBreach)
	require.NoError(t, err)
	assert.Zero(t, n, "no breach events for a clean run")
}

func TestEnforceCostBreachFailsHard(t *testing.T) {
	gate, eventsSvc, swarmID := newTestGate(t)
	ctx := context.Background()

	m := healthy()
	m.TokensUsed = 1_000_000 // $9.00, over the $5 objective

	results, err := gate.Enforce(ctx, swarmID, m)
	require.Error(t, err)

	var breach *BreachError
	require.ErrorAs(t, err, &breach)
	assert.Equal(t, ObjectiveCost, breach.Result.Objective)
	assert.False(t, breach.Retryable)
	assert.InDelta(t, 9.0, breach.Result.Actual, 1e-9)

	require.Len(t, results, 4)
	assert.Equal(t, VerdictFailHard, results[0].Verdict)

	evts, err := eventsSvc.QueryByKind(ctx, swarmID, events.KindSLOBreach)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, ObjectiveCost, evts[0].Data["slo"])
	assert.Equal(t, true, evts[0].Data["hard"])
}

func TestEnforceLatencyBreachOnlyWarns(t *testing.T) {
	gate, eventsSvc, swarmID := newTestGate(t)
	ctx := context.Background()

	m := healthy()
	m.Duration = 20 * time.Minute // over 720s

	results, err := gate.Enforce(ctx, swarmID, m)
	require.NoError(t, err, "latency breaches never block completion")
	assert.Equal(t, VerdictWarn, results[1].Verdict)

	n, err := eventsSvc.CountByKind(ctx, swarmID, events.KindSLOBreach)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "warn breaches still hit the audit log")
}

func TestEnforceCoverageBreachIsRetryable(t *testing.T) {
	gate, _, swarmID := newTestGate(t)

	m := healthy()
	m.CoveragePct = 61

	_, err := gate.Enforce(context.Background(), swarmID, m)
	require.Error(t, err)

	var breach *BreachError
	require.ErrorAs(t, err, &breach)
	assert.Equal(t, ObjectiveCoverage, breach.Result.Objective)
	assert.True(t, breach.Retryable)
}

func TestEnforceConfidenceBreachOnlyWarns(t *testing.T) {
	gate, _, swarmID := newTestGate(t)

	m := healthy()
	m.StackConfidence = 0.4

	results, err := gate.Enforce(context.Background(), swarmID, m)
	require.NoError(t, err)
	assert.Equal(t, VerdictWarn, results[3].Verdict)
	assert.True(t, results[3].Breached)
}

func TestEnforceHardBreachWinsOverRetryable(t *testing.T) {
	gate, eventsSvc, swarmID := newTestGate(t)
	ctx := context.Background()

	m := Measurements{
		TokensUsed:      2_000_000, // hard cost breach
		Duration:        time.Hour, // warn
		CoveragePct:     10,        // retryable
		StackConfidence: 0.1,       // warn
	}

	_, err := gate.Enforce(ctx, swarmID, m)
	require.Error(t, err)

	var breach *BreachError
	require.ErrorAs(t, err, &breach)
	assert.Equal(t, ObjectiveCost, breach.Result.Objective)
	assert.False(t, breach.Retryable, "hard breach outranks the retryable one")

	n, err := eventsSvc.CountByKind(ctx, swarmID, events.KindSLOBreach)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "every breached objective is recorded")
}
