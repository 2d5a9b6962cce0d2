package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/test/util"
)

func TestCreateSwarm(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	sw, err := svc.CreateSwarm(ctx, CreateSwarmInput{
		Name:     "storefront",
		Metadata: map[string]interface{}{"user_id": "u1"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sw.ID)
	assert.Equal(t, "storefront", sw.Name)
	assert.Equal(t, swarm.StatusIdle, sw.Status, "new swarms wait for the queue")
	assert.Equal(t, "u1", sw.Metadata["user_id"])
	assert.Nil(t, sw.CompletedAt)
}

func TestCreateSwarmRequiresName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)

	_, err := svc.CreateSwarm(context.Background(), CreateSwarmInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestGetSwarmNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)

	_, err := svc.GetSwarm(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSwarmsNewestFirst(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	first, err := svc.CreateSwarm(ctx, CreateSwarmInput{Name: "first"})
	require.NoError(t, err)
	second, err := svc.CreateSwarm(ctx, CreateSwarmInput{Name: "second"})
	require.NoError(t, err)

	swarms, err := svc.ListSwarms(ctx)
	require.NoError(t, err)
	require.Len(t, swarms, 2)
	assert.Equal(t, second.ID, swarms[0].ID)
	assert.Equal(t, first.ID, swarms[1].ID)
}

func TestUpdateSwarmStatusTerminalSetsCompletedAt(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	sw, err := svc.CreateSwarm(ctx, CreateSwarmInput{Name: "s"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSwarmStatus(ctx, sw.ID, swarm.StatusRunning, ""))
	sw, err = svc.GetSwarm(ctx, sw.ID)
	require.NoError(t, err)
	assert.Nil(t, sw.CompletedAt)

	require.NoError(t, svc.UpdateSwarmStatus(ctx, sw.ID, swarm.StatusFailed, "plan step exploded"))
	sw, err = svc.GetSwarm(ctx, sw.ID)
	require.NoError(t, err)
	assert.NotNil(t, sw.CompletedAt)
	require.NotNil(t, sw.ErrorMessage)
	assert.Equal(t, "plan step exploded", *sw.ErrorMessage)
}

func TestMergeMetadataPreservesExistingKeys(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	sw, err := svc.CreateSwarm(ctx, CreateSwarmInput{
		Name:     "s",
		Metadata: map[string]interface{}{"scope": "original", "user_id": "u1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.MergeMetadata(ctx, sw.ID, map[string]interface{}{
		"checkpoint": "dispatch_tasks_parallel",
		"user_id":    "u2",
	}))

	sw, err = svc.GetSwarm(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", sw.Metadata["scope"])
	assert.Equal(t, "dispatch_tasks_parallel", sw.Metadata["checkpoint"])
	assert.Equal(t, "u2", sw.Metadata["user_id"], "incoming fields win")
}

func TestRecordPlan(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	sw, err := svc.CreateSwarm(ctx, CreateSwarmInput{Name: "s"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordPlan(ctx, sw.ID, 5, "complex"))

	sw, err = svc.GetSwarm(ctx, sw.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, sw.NumAgents)
	assert.Equal(t, "complex", sw.Complexity)
}

func TestCreateAgentsAndUpdateState(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSwarmService(client)
	ctx := context.Background()

	sw, err := svc.CreateSwarm(ctx, CreateSwarmInput{Name: "s"})
	require.NoError(t, err)

	agents, err := svc.CreateAgents(ctx, sw.ID, []string{"frontend_dev", "backend_dev"})
	require.NoError(t, err)
	require.Len(t, agents, 2)
	require.Contains(t, agents, "frontend_dev")

	fe := agents["frontend_dev"]
	require.NoError(t, svc.UpdateAgentState(ctx, fe.ID, true, "task-1", map[string]interface{}{"focus": "layout"}))

	listed, err := svc.ListAgents(ctx, sw.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	for _, a := range listed {
		if a.ID != fe.ID {
			continue
		}
		require.NotNil(t, a.CurrentTaskID)
		assert.Equal(t, "task-1", *a.CurrentTaskID)
		assert.Equal(t, "layout", a.Data["focus"])
	}

	// Going idle clears the assignment.
	require.NoError(t, svc.UpdateAgentState(ctx, fe.ID, false, "", nil))
	listed, err = svc.ListAgents(ctx, sw.ID)
	require.NoError(t, err)
	for _, a := range listed {
		if a.ID == fe.ID {
			assert.Nil(t, a.CurrentTaskID)
		}
	}
}
