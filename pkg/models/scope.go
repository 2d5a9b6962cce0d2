// Package models defines the plain data structures shared across the
// orchestrator: scopes, plans, progress reports, and API payloads.
package models

// TechStack is the technology selection for a scoped project.
type TechStack struct {
	Frontend   string `json:"frontend"`
	Backend    string `json:"backend"`
	Database   string `json:"database"`
	Auth       string `json:"auth,omitempty"`
	Deployment string `json:"deployment,omitempty"`
}

// ScopeOfWorks is the delivery envelope extracted from a user request.
type ScopeOfWorks struct {
	InScope    []string `json:"in_scope"`
	OutScope   []string `json:"out_scope"`
	Milestones []string `json:"milestones"`
	Risks      []string `json:"risks"`
	KPIs       []string `json:"kpis"`
}

// StackInference is the result of nearest-neighbor stack lookup (or its
// LLM fallback).
type StackInference struct {
	Backend       string  `json:"backend"`
	Frontend      string  `json:"frontend"`
	Database      string  `json:"database"`
	Confidence    float64 `json:"confidence"`
	TemplateTitle string  `json:"template_title,omitempty"`
	Fallback      bool    `json:"fallback"`
}

// Scope is the structured project description extracted from a user message.
type Scope struct {
	ProjectName    string          `json:"project_name"`
	Goal           string          `json:"goal"`
	TechStack      TechStack       `json:"tech_stack"`
	Features       []string        `json:"features"`
	Integrations   []string        `json:"integrations,omitempty"`
	Competitors    []string        `json:"competitors,omitempty"`
	Timeline       string          `json:"timeline,omitempty"`
	PagesEst       int             `json:"pages_est,omitempty"`
	ModelsEst      int             `json:"models_est,omitempty"`
	EndpointsEst   int             `json:"endpoints_est,omitempty"`
	ScopeOfWorks   ScopeOfWorks    `json:"scope_of_works"`
	StackInference *StackInference `json:"stack_inference,omitempty"`
}
