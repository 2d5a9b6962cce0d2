package planner

import "github.com/crewforge/crewforge/pkg/models"

type subtaskTemplate struct {
	Title       string
	Description string
	Priority    int
}

type roleTemplate struct {
	Subtasks [4]subtaskTemplate
}

// templateFor returns the four-subtask template for a role. Unknown roles
// get the generalist template so adaptive roles always plan cleanly.
func templateFor(role string) roleTemplate {
	if t, ok := roleTemplates[role]; ok {
		return t
	}
	return generalistTemplate
}

var roleTemplates = map[string]roleTemplate{
	models.RoleFrontendArchitect: {Subtasks: [4]subtaskTemplate{
		{"Design component hierarchy", "Lay out the page and component structure for: {goal}", 8},
		{"Build core UI components", "Implement the primary screens and shared components for: {goal}", 7},
		{"Wire API integration", "Connect the UI to backend endpoints with loading and error states.", 6},
		{"Polish responsiveness and accessibility", "Make the interface responsive and keyboard-accessible.", 4},
	}},
	models.RoleBackendIntegrator: {Subtasks: [4]subtaskTemplate{
		{"Design data models", "Define the persistence schema and relations for: {goal}", 8},
		{"Implement API endpoints", "Build the REST endpoints with validation and auth for: {goal}", 7},
		{"Add business logic", "Implement the domain rules and background jobs behind the endpoints.", 6},
		{"Write API tests", "Cover the endpoints with integration tests against a real database.", 5},
	}},
	models.RoleDeploymentGuardian: {Subtasks: [4]subtaskTemplate{
		{"Containerize services", "Write Dockerfiles and compose configuration for local parity.", 6},
		{"Set up CI pipeline", "Lint, test, and build on every push.", 5},
		{"Provision deployment target", "Configure the hosting environment, secrets, and database.", 5},
		{"Ship and verify", "Deploy, run smoke checks, and confirm the release is healthy.", 4},
	}},
	models.RoleDataModeler: {Subtasks: [4]subtaskTemplate{
		{"Model core entities", "Design the entity-relationship model for: {goal}", 8},
		{"Write migrations", "Author forward and rollback migrations for the schema.", 6},
		{"Seed reference data", "Create seed fixtures for lookup tables and demo data.", 5},
		{"Tune indexes", "Add indexes for the read paths the API actually hits.", 4},
	}},
	models.RoleQASentinel: {Subtasks: [4]subtaskTemplate{
		{"Define test strategy", "Decide the unit, integration, and end-to-end split for: {goal}", 6},
		{"Build end-to-end suite", "Automate the critical user journeys in the browser.", 6},
		{"Add regression coverage", "Lock known-good behavior behind regression tests.", 5},
		{"Verify quality gates", "Confirm coverage and flake rates meet the bar before release.", 5},
	}},
	models.RoleIntegrationSpecialist: {Subtasks: [4]subtaskTemplate{
		{"Map external integrations", "Inventory every third-party service and its auth model for: {goal}", 7},
		{"Implement integration clients", "Build resilient clients with retries and timeouts.", 6},
		{"Handle webhooks", "Receive, verify, and idempotently process inbound webhooks.", 6},
		{"Test failure modes", "Simulate provider outages and confirm graceful degradation.", 5},
	}},
	models.RoleSecurityAuditor: {Subtasks: [4]subtaskTemplate{
		{"Threat-model the surface", "Identify trust boundaries and abuse cases for: {goal}", 7},
		{"Harden authentication", "Review session handling, password storage, and token scopes.", 6},
		{"Audit data handling", "Check PII storage, encryption at rest, and access controls.", 6},
		{"Run dependency audit", "Scan dependencies and pin or patch known vulnerabilities.", 5},
	}},
	models.RolePerformanceTuner: {Subtasks: [4]subtaskTemplate{
		{"Establish baselines", "Measure current latency and throughput for the key flows.", 6},
		{"Optimize hot paths", "Profile and fix the worst offenders in API and query time.", 5},
		{"Add caching", "Introduce caching where reads dominate and staleness is tolerable.", 5},
		{"Load-test the result", "Verify the system holds target load after tuning.", 4},
	}},
	models.RoleAPIDesigner: {Subtasks: [4]subtaskTemplate{
		{"Draft API contract", "Write the OpenAPI specification for: {goal}", 7},
		{"Review resource naming", "Normalize resource names, verbs, and pagination conventions.", 5},
		{"Version the API", "Establish the versioning and deprecation policy.", 5},
		{"Publish API docs", "Generate and publish reference documentation from the contract.", 4},
	}},
	models.RoleDocsScribe: {Subtasks: [4]subtaskTemplate{
		{"Write setup guide", "Document local development setup end to end.", 5},
		{"Document architecture", "Capture the system design and the reasoning behind it.", 4},
		{"Write user guide", "Explain the product's core flows for end users.", 4},
		{"Maintain changelog", "Record user-visible changes per release.", 3},
	}},
}

var generalistTemplate = roleTemplate{Subtasks: [4]subtaskTemplate{
	{"Scope the work", "Break down this agent's responsibility for: {goal}", 6},
	{"Implement core deliverable", "Build the main output this role owns.", 6},
	{"Integrate with the crew", "Align the deliverable with adjacent agents' outputs.", 5},
	{"Verify and document", "Test the deliverable and document how it works.", 4},
}}
