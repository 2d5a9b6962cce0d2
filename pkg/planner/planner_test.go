package planner

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/scheduler"
)

func scopeWithScore(features, integrations, pages, dataModels, endpoints int) *models.Scope {
	return &models.Scope{
		ProjectName:  "test-project",
		Goal:         "a test project",
		Features:     make([]string, features),
		Integrations: make([]string, integrations),
		PagesEst:     pages,
		ModelsEst:    dataModels,
		EndpointsEst: endpoints,
	}
}

func testPlanner() *Planner {
	return New(nil, nil, slog.Default())
}

func TestScore(t *testing.T) {
	// 2·features + 3·integrations + 1·pages + 2·models + 1.5·endpoints
	s := scopeWithScore(3, 2, 4, 1, 2)
	assert.InDelta(t, 2*3+3*2+1*4+2*1+1.5*2, Score(s), 1e-9) // 21
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, models.ComplexitySimple, BucketFor(0))
	assert.Equal(t, models.ComplexitySimple, BucketFor(19.9))
	assert.Equal(t, models.ComplexityMedium, BucketFor(20))
	assert.Equal(t, models.ComplexityMedium, BucketFor(49.9))
	assert.Equal(t, models.ComplexityComplex, BucketFor(50))
	assert.Equal(t, models.ComplexityComplex, BucketFor(99.9))
	assert.Equal(t, models.ComplexityMonster, BucketFor(100))
}

func TestPlanSimple(t *testing.T) {
	// Score 2·2 + 1·3 = 7 → simple
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(2, 0, 3, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, models.ComplexitySimple, plan.Complexity)
	assert.Equal(t, "single-phase", plan.Strategy)
	assert.Equal(t, 2, plan.NumAgents(), "simple plans run frontend + backend")
	assert.Equal(t, 8, plan.NumTasks(), "four subtasks per agent")
	assert.Empty(t, plan.Phases)
}

func TestPlanMedium(t *testing.T) {
	// Score 2·5 + 3·2 + 1·6 + 2·2 = 26 → medium
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(5, 2, 6, 2, 0))
	require.NoError(t, err)

	assert.Equal(t, models.ComplexityMedium, plan.Complexity)
	assert.Equal(t, 3, plan.NumAgents())
	assert.Equal(t, 12, plan.NumTasks())
}

func TestPlanComplex(t *testing.T) {
	// Score 2·10 + 3·5 + 1·8 + 2·3 + 1.5·2 = 64 → complex
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(10, 5, 8, 3, 2))
	require.NoError(t, err)

	assert.Equal(t, models.ComplexityComplex, plan.Complexity)
	assert.Equal(t, 5, plan.NumAgents())
	// Four subtasks plus one integration checkpoint per agent.
	assert.Equal(t, 25, plan.NumTasks())

	checkpoints := 0
	for _, task := range plan.Tasks {
		if strings.HasPrefix(task.Title, "Integration checkpoint") {
			checkpoints++
			require.Len(t, task.Dependencies, 1,
				"checkpoint chains off the agent's last subtask")
		}
	}
	assert.Equal(t, 5, checkpoints)
}

func TestPlanMonster(t *testing.T) {
	// Score 2·20 + 3·15 + 1·20 + 2·10 + 1.5·10 = 140 → monster, 8 agents
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(20, 15, 20, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, models.ComplexityMonster, plan.Complexity)
	assert.Equal(t, "phased", plan.Strategy)
	assert.Equal(t, []string{models.PhaseMVP, models.PhaseEnhanced, models.PhasePolish}, plan.Phases)
	assert.Equal(t, 8, plan.NumAgents())
	// 3 phases × (2 tasks per agent + 1 milestone) = 3·(16+1)
	assert.Equal(t, 51, plan.NumTasks())

	milestones := make(map[string]models.PlannedTask)
	for _, task := range plan.Tasks {
		if task.Milestone {
			milestones[task.Key] = task
		}
	}
	require.Len(t, milestones, 3)
	assert.Contains(t, milestones, "1.0")
	assert.Contains(t, milestones, "2.0")
	assert.Contains(t, milestones, "3.0")
	assert.Len(t, milestones["1.0"].Dependencies, 16,
		"milestone gates every task in its phase")
	assert.Equal(t, 10, milestones["1.0"].Priority)

	// Phase 2 roots depend on phase 1's milestone.
	for _, task := range plan.Tasks {
		if task.Key == "2.1.1" {
			assert.Equal(t, []string{"1.0"}, task.Dependencies)
		}
	}
}

func TestPlanMonsterCrewScaling(t *testing.T) {
	// Score ≥150 adds the API designer, ≥200 the docs scribe.
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(30, 20, 10, 10, 0)) // 150
	require.NoError(t, err)
	assert.Equal(t, 9, plan.NumAgents())

	plan, err = testPlanner().Plan(context.Background(), scopeWithScore(40, 30, 10, 10, 0)) // 200
	require.NoError(t, err)
	assert.Equal(t, 10, plan.NumAgents())
}

func TestPlanDeploymentWaitsForFrontendAndBackend(t *testing.T) {
	plan, err := testPlanner().Plan(context.Background(), scopeWithScore(5, 2, 6, 2, 0))
	require.NoError(t, err)

	var firstDeploy *models.PlannedTask
	for i := range plan.Tasks {
		if plan.Tasks[i].AgentRole == models.RoleDeploymentGuardian {
			firstDeploy = &plan.Tasks[i]
			break
		}
	}
	require.NotNil(t, firstDeploy)
	assert.Contains(t, firstDeploy.Dependencies, "1.4", "frontend chain tail")
	assert.Contains(t, firstDeploy.Dependencies, "2.4", "backend chain tail")
}

func TestPlanIsAcyclic(t *testing.T) {
	for _, scope := range []*models.Scope{
		scopeWithScore(2, 0, 3, 0, 0),
		scopeWithScore(5, 2, 6, 2, 0),
		scopeWithScore(10, 5, 8, 3, 2),
		scopeWithScore(20, 15, 20, 10, 10),
	} {
		plan, err := testPlanner().Plan(context.Background(), scope)
		require.NoError(t, err)

		graph := make(map[string][]string, len(plan.Tasks))
		for _, task := range plan.Tasks {
			graph[task.Key] = task.Dependencies
		}
		assert.Nil(t, scheduler.DetectCycleEdges(graph))
	}
}

func TestExpandSubstitutesGoal(t *testing.T) {
	scope := &models.Scope{Goal: "an invoicing tool"}
	out := expand("Design the schema for: {goal}", scope)
	assert.Equal(t, "Design the schema for: an invoicing tool", out)
}

func TestTemplateForUnknownRoleFallsBack(t *testing.T) {
	tmpl := templateFor("growth_hacker")
	for _, sub := range tmpl.Subtasks {
		assert.NotEmpty(t, sub.Title)
	}
}
