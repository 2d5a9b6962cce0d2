// Package config loads and validates orchestrator configuration from a
// YAML config directory plus environment variables.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and passed throughout the application.
type Config struct {
	configDir string

	LLM      *LLMConfig      `yaml:"llm"`
	SLO      *SLOConfig      `yaml:"slo"`
	Monitor  *MonitorConfig  `yaml:"monitor"`
	Conflict *ConflictConfig `yaml:"conflict"`
	Stack    *StackConfig    `yaml:"stack"`
	Task     *TaskConfig     `yaml:"task"`
	FileLock *FileLockConfig `yaml:"file_lock"`
	Workflow *WorkflowConfig `yaml:"workflow"`
	Queue    *QueueConfig    `yaml:"queue"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// LLMConfig controls the completion/embedding gateway.
type LLMConfig struct {
	// Model is the completion model requested from the gateway.
	Model string `yaml:"model"`

	// EmbeddingModel is the model used for Embed calls.
	EmbeddingModel string `yaml:"embedding_model"`

	// ReasoningEffort is passed through to the gateway: low, medium, high.
	ReasoningEffort string `yaml:"reasoning_effort"`

	// RatePerKTokens is the USD cost per 1000 tokens, used by the SLO gate.
	RatePerKTokens float64 `yaml:"rate_per_k_tokens"`

	// BaseURL is the OpenAI-compatible API base (e.g. OpenRouter).
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// RequestsPerMinute bounds outbound gateway calls (token bucket).
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestTimeout is the per-call HTTP timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// SLOConfig holds the per-workflow service-level objectives.
type SLOConfig struct {
	CostUSD        float64 `yaml:"cost_usd"`
	LatencySeconds float64 `yaml:"latency_seconds"`
	CoveragePct    float64 `yaml:"coverage_pct"`
	ConfidenceMin  float64 `yaml:"confidence_min"`
}

// MonitorConfig controls the self-healing background loop.
type MonitorConfig struct {
	TickInterval time.Duration `yaml:"tick_seconds"`
}

// ConflictConfig controls UI/API mismatch mediation.
type ConflictConfig struct {
	// SimilarityThreshold below which artifacts are mediated.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// StackConfig controls template acceptance for stack inference.
type StackConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
}

// TaskConfig controls task-level stall detection.
type TaskConfig struct {
	Timeout time.Duration `yaml:"timeout_seconds"`
}

// FileLockConfig controls stale-lock breaking.
type FileLockConfig struct {
	TTL time.Duration `yaml:"ttl_seconds"`
}

// WorkflowConfig holds per-activity timeouts and the workflow test gate.
type WorkflowConfig struct {
	PlanTimeout             time.Duration `yaml:"plan_timeout"`
	DispatchTimeout         time.Duration `yaml:"dispatch_timeout"`
	UIInferenceTimeout      time.Duration `yaml:"ui_inference_timeout"`
	VisualTestTimeout       time.Duration `yaml:"visual_test_timeout"`
	ConflictResolveTimeout  time.Duration `yaml:"conflict_resolve_timeout"`
	TestGateTimeout         time.Duration `yaml:"test_gate_timeout"`
	SLOEnforceTimeout       time.Duration `yaml:"slo_enforce_timeout"`
	TestCoverageMin         float64       `yaml:"test_coverage_min"`
	VisualDiffMax           float64       `yaml:"visual_diff_max"`
	MediationSimilarityGoal float64       `yaml:"mediation_similarity_goal"`
}
