package models

// Core agent roles present in every plan shape.
const (
	RoleFrontendArchitect  = "frontend_architect"
	RoleBackendIntegrator  = "backend_integrator"
	RoleDeploymentGuardian = "deployment_guardian"
)

// Adaptive roles added as complexity grows, in escalation order.
const (
	RoleDataModeler           = "data_modeler"
	RoleQASentinel            = "qa_sentinel"
	RoleIntegrationSpecialist = "integration_specialist"
	RoleSecurityAuditor       = "security_auditor"
	RolePerformanceTuner      = "performance_tuner"
	RoleAPIDesigner           = "api_designer"
	RoleDocsScribe            = "docs_scribe"
)
