// Package agent implements the role-scoped workers that execute tasks by
// calling the LLM gateway and the tool registry.
package agent

import (
	"fmt"
	"strings"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/tools"
)

// Escalation is an agent-signaled blocker that needs human input.
type Escalation struct {
	Kind               string   `json:"kind"`
	Description        string   `json:"description"`
	SuggestedActions   []string `json:"suggested_actions,omitempty"`
	CanContinueWithout bool     `json:"can_continue_without,omitempty"`
}

// Output is the structured result of one task execution.
type Output struct {
	Summary     string            `json:"summary"`
	Artifacts   map[string]string `json:"artifacts,omitempty"`
	ToolCalls   []tools.ToolCall  `json:"tool_calls,omitempty"`
	Escalation  *Escalation       `json:"escalation,omitempty"`
	CoveragePct *float64          `json:"coverage_pct,omitempty"`
}

// Capability is what a role knows how to do. Adding a role means adding a
// Capability implementation, not wiring runtime strings.
type Capability interface {
	Role() string
	BuildPrompt(task *ent.Task, scope *models.Scope, failureContext string) (system, user string)
	ParseOutput(text string) (*Output, error)
	AllowedTools() []string
}

// CapabilityFor returns the capability for a role. Adaptive roles without a
// dedicated implementation get the generalist behavior under their own name.
func CapabilityFor(role string) Capability {
	switch role {
	case models.RoleFrontendArchitect:
		return frontendArchitect{}
	case models.RoleBackendIntegrator:
		return backendIntegrator{}
	case models.RoleDeploymentGuardian:
		return deploymentGuardian{}
	default:
		return generalist{role: role}
	}
}

const outputContract = `Respond with a JSON object only:
{
  "summary": "<what you did, one paragraph>",
  "artifacts": {"<artifact_name>": "<content>"},
  "tool_calls": [{"name": "<tool>", "args": {}}],
  "escalation": null,
  "coverage_pct": null
}
Use "escalation" only when you are blocked on something a human must decide:
{"kind": "configuration|design_decision|external_service|unclear_requirement",
 "description": "...", "suggested_actions": ["..."], "can_continue_without": false}
Set "coverage_pct" only when the task produced a measured test coverage number.`

var baseTools = []string{
	"acquire_file_lock",
	"release_file_lock",
	"record_decision",
	"record_constraint",
	"record_learning",
}

func buildUser(task *ent.Task, scope *models.Scope, failureContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\nGoal: %s\n", scope.ProjectName, scope.Goal)
	if scope.StackInference != nil {
		fmt.Fprintf(&b, "Stack: backend=%s frontend=%s database=%s\n",
			scope.StackInference.Backend, scope.StackInference.Frontend, scope.StackInference.Database)
	}
	fmt.Fprintf(&b, "\nTask %s: %s\n%s\n", task.TaskKey, task.Title, task.Description)
	if failureContext != "" {
		fmt.Fprintf(&b, "\nYour previous attempt failed with:\n%s\nFix the cause and try again.\n", failureContext)
	}
	return b.String()
}

func parseOutput(text string) (*Output, error) {
	var out Output
	if err := llm.ParseJSONResponse(text, &out); err != nil {
		return nil, err
	}
	if out.Summary == "" && out.Escalation == nil {
		return nil, fmt.Errorf("%w: output has neither summary nor escalation", llm.ErrInvalidJSON)
	}
	return &out, nil
}

type frontendArchitect struct{}

func (frontendArchitect) Role() string { return models.RoleFrontendArchitect }
func (frontendArchitect) BuildPrompt(task *ent.Task, scope *models.Scope, failureContext string) (string, string) {
	system := `You are a senior frontend engineer. You design component
hierarchies, implement UI, and wire it to backend APIs. Describe concrete
components, routes, and state; name the endpoints you consume.
` + outputContract
	return system, buildUser(task, scope, failureContext)
}
func (frontendArchitect) ParseOutput(text string) (*Output, error) { return parseOutput(text) }
func (frontendArchitect) AllowedTools() []string                   { return baseTools }

type backendIntegrator struct{}

func (backendIntegrator) Role() string { return models.RoleBackendIntegrator }
func (backendIntegrator) BuildPrompt(task *ent.Task, scope *models.Scope, failureContext string) (string, string) {
	system := `You are a senior backend engineer. You design data models and
implement APIs with validation and auth. Specify exact endpoint paths,
methods, and payload shapes; the frontend builds against what you declare.
` + outputContract
	return system, buildUser(task, scope, failureContext)
}
func (backendIntegrator) ParseOutput(text string) (*Output, error) { return parseOutput(text) }
func (backendIntegrator) AllowedTools() []string                   { return baseTools }

type deploymentGuardian struct{}

func (deploymentGuardian) Role() string { return models.RoleDeploymentGuardian }
func (deploymentGuardian) BuildPrompt(task *ent.Task, scope *models.Scope, failureContext string) (string, string) {
	system := `You are a platform engineer. You containerize, set up CI, and
ship to production. Be explicit about environments, secrets, and rollout
verification. Escalate missing credentials instead of inventing them.
` + outputContract
	return system, buildUser(task, scope, failureContext)
}
func (deploymentGuardian) ParseOutput(text string) (*Output, error) { return parseOutput(text) }
func (deploymentGuardian) AllowedTools() []string                   { return baseTools }

type generalist struct {
	role string
}

func (g generalist) Role() string { return g.role }
func (g generalist) BuildPrompt(task *ent.Task, scope *models.Scope, failureContext string) (string, string) {
	system := fmt.Sprintf(`You are the %s on a software delivery crew. Own your
deliverable end to end and keep it consistent with the rest of the crew.
`, strings.ReplaceAll(g.role, "_", " ")) + outputContract
	return system, buildUser(task, scope, failureContext)
}
func (g generalist) ParseOutput(text string) (*Output, error) { return parseOutput(text) }
func (g generalist) AllowedTools() []string                   { return baseTools }
