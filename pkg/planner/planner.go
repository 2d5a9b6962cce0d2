// Package planner maps a scoped project to a concrete plan: how many agents,
// which roles, which tasks, and how they depend on each other.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// ErrInvalidPlan is returned when a generated plan fails validation (e.g. a
// dependency cycle). No rows are persisted for an invalid plan.
var ErrInvalidPlan = errors.New("invalid plan")

// Complexity score weights. Integrations dominate because every external
// system multiplies coordination work.
const (
	weightFeatures     = 2.0
	weightIntegrations = 3.0
	weightPages        = 1.0
	weightModels       = 2.0
	weightEndpoints    = 1.5
)

// Bucket thresholds.
const (
	mediumScore  = 20
	complexScore = 50
	monsterScore = 100
)

// Planner turns scopes into plans and persists them.
type Planner struct {
	swarms *services.SwarmService
	tasks  *services.TaskService
	logger *slog.Logger
}

// New creates a Planner.
func New(swarms *services.SwarmService, tasks *services.TaskService, logger *slog.Logger) *Planner {
	return &Planner{swarms: swarms, tasks: tasks, logger: logger.With("component", "planner")}
}

// Score computes the complexity score of a scope.
func Score(scope *models.Scope) float64 {
	return weightFeatures*float64(len(scope.Features)) +
		weightIntegrations*float64(len(scope.Integrations)) +
		weightPages*float64(scope.PagesEst) +
		weightModels*float64(scope.ModelsEst) +
		weightEndpoints*float64(scope.EndpointsEst)
}

// BucketFor maps a score to its complexity bucket.
func BucketFor(score float64) string {
	switch {
	case score < mediumScore:
		return models.ComplexitySimple
	case score < complexScore:
		return models.ComplexityMedium
	case score < monsterScore:
		return models.ComplexityComplex
	default:
		return models.ComplexityMonster
	}
}

// rolesFor returns the agent roles for a bucket. Monster plans scale the
// crew with the score, capped at ten.
func rolesFor(bucket string, score float64) []string {
	base := []string{models.RoleFrontendArchitect, models.RoleBackendIntegrator}
	switch bucket {
	case models.ComplexitySimple:
		return base
	case models.ComplexityMedium:
		return append(base, models.RoleDeploymentGuardian)
	case models.ComplexityComplex:
		return append(base,
			models.RoleDeploymentGuardian,
			models.RoleDataModeler,
			models.RoleQASentinel,
		)
	default:
		roles := append(base,
			models.RoleDeploymentGuardian,
			models.RoleDataModeler,
			models.RoleQASentinel,
			models.RoleIntegrationSpecialist,
			models.RoleSecurityAuditor,
			models.RolePerformanceTuner,
		)
		if score >= 150 {
			roles = append(roles, models.RoleAPIDesigner)
		}
		if score >= 200 {
			roles = append(roles, models.RoleDocsScribe)
		}
		return roles
	}
}

// Plan generates a plan for the scope. Below monster every agent gets the
// four role-templated subtasks; the complex bucket additionally gives each
// agent an integration checkpoint so cross-agent seams are explicit.
// Monster plans run three delivery phases, each closed by a milestone gate.
func (p *Planner) Plan(ctx context.Context, scope *models.Scope) (*models.Plan, error) {
	_, span := tracing.Tracer("planner").Start(ctx, "planner.plan")
	defer span.End()

	score := Score(scope)
	bucket := BucketFor(score)
	roles := rolesFor(bucket, score)

	plan := &models.Plan{
		Complexity: bucket,
		Score:      score,
		Strategy:   "single-phase",
	}
	for _, role := range roles {
		plan.Agents = append(plan.Agents, models.PlannedAgent{Role: role})
	}

	if bucket == models.ComplexityMonster {
		plan.Strategy = "phased"
		plan.Phases = []string{models.PhaseMVP, models.PhaseEnhanced, models.PhasePolish}
		plan.Tasks = phasedTasks(roles, scope)
	} else {
		plan.Tasks = singlePhaseTasks(bucket, roles, scope)
	}

	if cycle := planCycle(plan); cycle != nil {
		return nil, fmt.Errorf("%w: dependency cycle %s", ErrInvalidPlan, strings.Join(cycle, " -> "))
	}

	span.SetAttributes(
		tracing.StringAttr("plan.complexity", bucket),
		tracing.FloatAttr("plan.score", score),
		tracing.IntAttr("plan.agents", plan.NumAgents()),
		tracing.IntAttr("plan.tasks", plan.NumTasks()),
	)
	p.logger.Info("plan generated",
		"project", scope.ProjectName,
		"complexity", bucket,
		"score", score,
		"agents", plan.NumAgents(),
		"tasks", plan.NumTasks())
	return plan, nil
}

// singlePhaseTasks lays out agent-local subtask chains plus the cross-agent
// dependencies: frontend and backend run in parallel, deployment starts only
// after both finish.
func singlePhaseTasks(bucket string, roles []string, scope *models.Scope) []models.PlannedTask {
	var tasks []models.PlannedTask
	lastKeyByRole := make(map[string]string, len(roles))

	for i, role := range roles {
		tmpl := templateFor(role)
		agentNum := i + 1
		var prev string
		for j, sub := range tmpl.Subtasks {
			key := fmt.Sprintf("%d.%d", agentNum, j+1)
			t := models.PlannedTask{
				Key:         key,
				AgentRole:   role,
				Title:       sub.Title,
				Description: expand(sub.Description, scope),
				Priority:    sub.Priority,
			}
			if prev != "" {
				t.Dependencies = []string{prev}
			}
			tasks = append(tasks, t)
			prev = key
		}
		if bucket == models.ComplexityComplex {
			key := fmt.Sprintf("%d.%d", agentNum, len(tmpl.Subtasks)+1)
			tasks = append(tasks, models.PlannedTask{
				Key:          key,
				AgentRole:    role,
				Title:        "Integration checkpoint: " + role,
				Description:  "Verify this agent's deliverables integrate cleanly with the rest of the crew's output.",
				Priority:     4,
				Dependencies: []string{prev},
			})
			prev = key
		}
		lastKeyByRole[role] = prev
	}

	// Deployment waits for frontend and backend.
	if deployLast, ok := lastKeyByRole[models.RoleDeploymentGuardian]; ok {
		firstDeployKey := firstKeyOfChain(tasks, models.RoleDeploymentGuardian)
		for i := range tasks {
			if tasks[i].Key != firstDeployKey {
				continue
			}
			for _, dep := range []string{
				lastKeyByRole[models.RoleFrontendArchitect],
				lastKeyByRole[models.RoleBackendIntegrator],
			} {
				if dep != "" && dep != deployLast {
					tasks[i].Dependencies = append(tasks[i].Dependencies, dep)
				}
			}
		}
	}
	return tasks
}

func firstKeyOfChain(tasks []models.PlannedTask, role string) string {
	for _, t := range tasks {
		if t.AgentRole == role {
			return t.Key
		}
	}
	return ""
}

// phasedTasks builds the monster layout: per phase, two tasks per agent
// chained locally, then one milestone gate owned by the deployment guardian
// that depends on every task in the phase. Phase N+1 tasks depend on phase
// N's milestone.
func phasedTasks(roles []string, scope *models.Scope) []models.PlannedTask {
	phases := []string{models.PhaseMVP, models.PhaseEnhanced, models.PhasePolish}
	phasePriority := map[string]int{
		models.PhaseMVP:      8,
		models.PhaseEnhanced: 5,
		models.PhasePolish:   3,
	}
	phaseTitle := map[string]string{
		models.PhaseMVP:      "MVP",
		models.PhaseEnhanced: "Enhanced",
		models.PhasePolish:   "Polish",
	}

	var tasks []models.PlannedTask
	prevMilestone := ""

	for p, phase := range phases {
		phaseNum := p + 1
		var phaseKeys []string

		for i, role := range roles {
			tmpl := templateFor(role)
			agentNum := i + 1
			prev := prevMilestone
			// Two tasks per agent per phase, drawn from the role template
			// and scoped to the phase.
			for j := 0; j < 2; j++ {
				sub := tmpl.Subtasks[j%len(tmpl.Subtasks)]
				key := fmt.Sprintf("%d.%d.%d", phaseNum, agentNum, j+1)
				t := models.PlannedTask{
					Key:         key,
					AgentRole:   role,
					Title:       fmt.Sprintf("[%s] %s", phaseTitle[phase], sub.Title),
					Description: expand(sub.Description, scope),
					Priority:    phasePriority[phase],
					Phase:       phase,
				}
				if prev != "" {
					t.Dependencies = []string{prev}
				}
				tasks = append(tasks, t)
				phaseKeys = append(phaseKeys, key)
				prev = key
			}
		}

		milestoneKey := fmt.Sprintf("%d.0", phaseNum)
		tasks = append(tasks, models.PlannedTask{
			Key:          milestoneKey,
			AgentRole:    models.RoleDeploymentGuardian,
			Title:        phaseTitle[phase] + " milestone gate",
			Description:  "Verify every deliverable of the " + phaseTitle[phase] + " phase is complete and coherent before the next phase begins.",
			Priority:     10,
			Phase:        phase,
			Milestone:    true,
			Dependencies: phaseKeys,
		})
		prevMilestone = milestoneKey
	}
	return tasks
}

func planCycle(plan *models.Plan) []string {
	graph := make(map[string][]string, len(plan.Tasks))
	for _, t := range plan.Tasks {
		graph[t.Key] = t.Dependencies
	}
	return scheduler.DetectCycleEdges(graph)
}

// Materialize persists a validated plan: agent rows first, then all task
// rows with their agent assignments. The cycle check runs again on the
// final task set so no invalid plan ever reaches the store.
func (p *Planner) Materialize(ctx context.Context, swarmID string, plan *models.Plan) error {
	if cycle := planCycle(plan); cycle != nil {
		return fmt.Errorf("%w: dependency cycle %s", ErrInvalidPlan, strings.Join(cycle, " -> "))
	}

	roles := make([]string, 0, len(plan.Agents))
	for _, a := range plan.Agents {
		roles = append(roles, a.Role)
	}
	agents, err := p.swarms.CreateAgents(ctx, swarmID, roles)
	if err != nil {
		return fmt.Errorf("failed to create agents: %w", err)
	}

	inputs := make([]services.CreateTaskInput, 0, len(plan.Tasks))
	for _, t := range plan.Tasks {
		a, ok := agents[t.AgentRole]
		if !ok {
			return fmt.Errorf("%w: task %s references unknown role %s", ErrInvalidPlan, t.Key, t.AgentRole)
		}
		inputs = append(inputs, services.CreateTaskInput{
			Key:          t.Key,
			AgentID:      a.ID,
			Title:        t.Title,
			Description:  t.Description,
			Priority:     t.Priority,
			Dependencies: t.Dependencies,
			Phase:        t.Phase,
			Milestone:    t.Milestone,
		})
	}
	if _, err := p.tasks.CreateTasks(ctx, swarmID, inputs); err != nil {
		return fmt.Errorf("failed to persist plan tasks: %w", err)
	}
	return nil
}

// expand substitutes the project goal into a template description.
func expand(description string, scope *models.Scope) string {
	return strings.ReplaceAll(description, "{goal}", scope.Goal)
}
