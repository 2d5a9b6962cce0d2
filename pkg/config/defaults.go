package config

import "time"

// Built-in defaults. User YAML overrides individual fields.

// DefaultLLMConfig returns the built-in LLM gateway defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:             "anthropic/claude-sonnet-4",
		EmbeddingModel:    "openai/text-embedding-3-small",
		ReasoningEffort:   "medium",
		RatePerKTokens:    0.009,
		BaseURL:           "https://openrouter.ai/api/v1",
		APIKeyEnv:         "OPENROUTER_API_KEY",
		RequestsPerMinute: 60,
		RequestTimeout:    120 * time.Second,
	}
}

// DefaultSLOConfig returns the built-in SLO thresholds.
func DefaultSLOConfig() *SLOConfig {
	return &SLOConfig{
		CostUSD:        5.00,
		LatencySeconds: 720,
		CoveragePct:    95,
		ConfidenceMin:  0.80,
	}
}

// DefaultMonitorConfig returns the built-in monitor cadence.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		TickInterval: 10 * time.Second,
	}
}

// DefaultConflictConfig returns the built-in mediation threshold.
func DefaultConflictConfig() *ConflictConfig {
	return &ConflictConfig{
		SimilarityThreshold: 0.70,
	}
}

// DefaultStackConfig returns the built-in template acceptance threshold.
func DefaultStackConfig() *StackConfig {
	return &StackConfig{
		SimilarityThreshold: 0.70,
	}
}

// DefaultTaskConfig returns the built-in task stall timeout.
func DefaultTaskConfig() *TaskConfig {
	return &TaskConfig{
		Timeout: 30 * time.Minute,
	}
}

// DefaultFileLockConfig returns the built-in stale-lock TTL.
func DefaultFileLockConfig() *FileLockConfig {
	return &FileLockConfig{
		TTL: 30 * time.Minute,
	}
}

// DefaultWorkflowConfig returns the built-in per-activity timeouts.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		PlanTimeout:             60 * time.Second,
		DispatchTimeout:         30 * time.Minute,
		UIInferenceTimeout:      45 * time.Second,
		VisualTestTimeout:       90 * time.Second,
		ConflictResolveTimeout:  60 * time.Second,
		TestGateTimeout:         30 * time.Second,
		SLOEnforceTimeout:       30 * time.Second,
		TestCoverageMin:         80,
		VisualDiffMax:           5,
		MediationSimilarityGoal: 0.85,
	}
}
