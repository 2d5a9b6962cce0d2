package models

// Complexity buckets produced by the adaptive planner.
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
	ComplexityMonster = "monster"
)

// Delivery phases for monster plans.
const (
	PhaseMVP      = "mvp"
	PhaseEnhanced = "enhanced"
	PhasePolish   = "polish"
)

// PlannedAgent describes one agent row the planner will create.
type PlannedAgent struct {
	Role string `json:"role"`
}

// PlannedTask describes one task row the planner will create.
// Dependencies reference other tasks by Key within the same plan.
type PlannedTask struct {
	Key          string   `json:"key"`
	AgentRole    string   `json:"agent_role"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Priority     int      `json:"priority"`
	Dependencies []string `json:"dependencies,omitempty"`
	Phase        string   `json:"phase,omitempty"`
	Milestone    bool     `json:"milestone,omitempty"`
}

// Plan is the structured output of the adaptive planner (the Plan DSL).
type Plan struct {
	Complexity string         `json:"complexity"`
	Score      float64        `json:"score"`
	Strategy   string         `json:"strategy"` // single-phase or phased
	Agents     []PlannedAgent `json:"agents"`
	Tasks      []PlannedTask  `json:"tasks"`
	Phases     []string       `json:"phases,omitempty"`
}

// NumAgents returns the planned agent count.
func (p *Plan) NumAgents() int { return len(p.Agents) }

// NumTasks returns the planned task count.
func (p *Plan) NumTasks() int { return len(p.Tasks) }
