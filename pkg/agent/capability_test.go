package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
)

func scopeFixture() *models.Scope {
	return &models.Scope{
		ProjectName: "storefront",
		Goal:        "sell handmade goods online",
		StackInference: &models.StackInference{
			Backend:  "FastAPI",
			Frontend: "React",
			Database: "PostgreSQL",
		},
	}
}

func taskFixture() *ent.Task {
	return &ent.Task{
		TaskKey:     "2.1",
		Title:       "Implement checkout API",
		Description: "POST /checkout with cart validation",
	}
}

func TestCapabilityForKnownRoles(t *testing.T) {
	for _, role := range []string{
		models.RoleFrontendArchitect,
		models.RoleBackendIntegrator,
		models.RoleDeploymentGuardian,
	} {
		assert.Equal(t, role, CapabilityFor(role).Role())
	}
}

func TestCapabilityForAdaptiveRoleFallsBackToGeneralist(t *testing.T) {
	c := CapabilityFor("payment_specialist")
	assert.Equal(t, "payment_specialist", c.Role())

	system, _ := c.BuildPrompt(taskFixture(), scopeFixture(), "")
	assert.Contains(t, system, "payment specialist", "role name is humanized in the prompt")
}

func TestBuildPromptCarriesTaskAndStack(t *testing.T) {
	c := CapabilityFor(models.RoleBackendIntegrator)
	system, user := c.BuildPrompt(taskFixture(), scopeFixture(), "")

	assert.Contains(t, system, "backend engineer")
	assert.Contains(t, system, `"summary"`, "the output contract rides along")
	assert.Contains(t, user, "Task 2.1: Implement checkout API")
	assert.Contains(t, user, "backend=FastAPI")
	assert.NotContains(t, user, "previous attempt failed")
}

func TestBuildPromptInjectsFailureContext(t *testing.T) {
	c := CapabilityFor(models.RoleFrontendArchitect)
	_, user := c.BuildPrompt(taskFixture(), scopeFixture(), "TypeError: cart is undefined")

	assert.Contains(t, user, "Your previous attempt failed with:")
	assert.Contains(t, user, "TypeError: cart is undefined")
}

func TestParseOutput(t *testing.T) {
	c := CapabilityFor(models.RoleBackendIntegrator)

	out, err := c.ParseOutput(`{"summary": "built checkout", "artifacts": {"api": "POST /checkout"}}`)
	require.NoError(t, err)
	assert.Equal(t, "built checkout", out.Summary)
	assert.Equal(t, "POST /checkout", out.Artifacts["api"])

	// Fenced output is routine model behavior.
	out, err = c.ParseOutput("```json\n{\"summary\": \"ok\", \"coverage_pct\": 87.5}\n```")
	require.NoError(t, err)
	require.NotNil(t, out.CoveragePct)
	assert.InDelta(t, 87.5, *out.CoveragePct, 0.001)

	// An escalation with no summary is a legitimate blocked result.
	out, err = c.ParseOutput(`{"escalation": {"kind": "configuration", "description": "need API key"}}`)
	require.NoError(t, err)
	require.NotNil(t, out.Escalation)
	assert.Equal(t, "configuration", out.Escalation.Kind)

	_, err = c.ParseOutput(`{"artifacts": {}}`)
	assert.ErrorIs(t, err, llm.ErrInvalidJSON, "neither summary nor escalation")

	_, err = c.ParseOutput("I built the checkout flow for you!")
	assert.ErrorIs(t, err, llm.ErrInvalidJSON)
}

func TestAllowedToolsIncludeLocksAndMemory(t *testing.T) {
	for _, role := range []string{
		models.RoleFrontendArchitect,
		models.RoleBackendIntegrator,
		models.RoleDeploymentGuardian,
		"qa_specialist",
	} {
		allowed := strings.Join(CapabilityFor(role).AllowedTools(), ",")
		assert.Contains(t, allowed, "acquire_file_lock", "role %s", role)
		assert.Contains(t, allowed, "record_decision", "role %s", role)
	}
}
