package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/test/util"
)

func setupEscalationService(t *testing.T) (*EscalationService, string) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	sw, err := NewSwarmService(client).CreateSwarm(context.Background(), CreateSwarmInput{Name: "esc-test"})
	require.NoError(t, err)
	return NewEscalationService(client), sw.ID
}

func TestCreateEscalation(t *testing.T) {
	svc, swarmID := setupEscalationService(t)
	ctx := context.Background()

	esc, err := svc.Create(ctx, CreateEscalationInput{
		SwarmID:            swarmID,
		Kind:               escalation.KindConfiguration,
		Description:        "missing STRIPE_API_KEY",
		SuggestedActions:   []string{"provide_value", "skip_integration"},
		CanContinueWithout: true,
	})
	require.NoError(t, err)

	assert.Equal(t, escalation.StatusPending, esc.Status)
	assert.Equal(t, "high", esc.Severity, "severity defaults to high")
	assert.Nil(t, esc.TaskID)
	assert.True(t, esc.CanContinueWithout)
}

func TestCreateEscalationValidation(t *testing.T) {
	svc, swarmID := setupEscalationService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEscalationInput{Description: "no swarm"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "swarm_id", verr.Field)

	_, err = svc.Create(ctx, CreateEscalationInput{SwarmID: swarmID})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
}

func TestListOpenExcludesResolved(t *testing.T) {
	svc, swarmID := setupEscalationService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateEscalationInput{
		SwarmID: swarmID, Kind: escalation.KindConfiguration, Description: "missing key A",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateEscalationInput{
		SwarmID: swarmID, Kind: escalation.KindExternalService, Description: "provider outage",
	})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, first.ID, "provide_value", map[string]interface{}{"value": "sk_test"}, true)
	require.NoError(t, err)

	open, err := svc.ListOpen(ctx, swarmID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "provider outage", open[0].Description)
}

func TestResolvePartialThenComplete(t *testing.T) {
	svc, swarmID := setupEscalationService(t)
	ctx := context.Background()

	esc, err := svc.Create(ctx, CreateEscalationInput{
		SwarmID: swarmID, Kind: escalation.KindConfiguration, Description: "missing key",
	})
	require.NoError(t, err)

	// Partial input keeps the escalation open.
	esc, err = svc.Resolve(ctx, esc.ID, "provide_value", map[string]interface{}{"key_name": "STRIPE_API_KEY"}, false)
	require.NoError(t, err)
	assert.Equal(t, escalation.StatusPending, esc.Status)
	assert.Equal(t, "STRIPE_API_KEY", esc.Resolution["key_name"])
	assert.Nil(t, esc.ResolvedAt)

	// Completing merges over the partial payload.
	esc, err = svc.Resolve(ctx, esc.ID, "provide_value", map[string]interface{}{"value": "sk_test"}, true)
	require.NoError(t, err)
	assert.Equal(t, escalation.StatusResolved, esc.Status)
	assert.Equal(t, "STRIPE_API_KEY", esc.Resolution["key_name"], "earlier input survives")
	assert.Equal(t, "sk_test", esc.Resolution["value"])
	assert.Equal(t, "provide_value", esc.Resolution["action"])
	assert.NotNil(t, esc.ResolvedAt)
}

func TestResolveTwiceFails(t *testing.T) {
	svc, swarmID := setupEscalationService(t)
	ctx := context.Background()

	esc, err := svc.Create(ctx, CreateEscalationInput{
		SwarmID: swarmID, Kind: escalation.KindDesignDecision, Description: "conflicting requirements",
	})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, esc.ID, "replan", nil, true)
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, esc.ID, "replan", nil, true)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestResolveNotFound(t *testing.T) {
	svc, _ := setupEscalationService(t)

	_, err := svc.Resolve(context.Background(), "ghost", "skip", nil, true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
