package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the orchestrator configuration file inside the config dir.
const ConfigFileName = "crewforge.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load crewforge.yaml from configDir (optional — defaults apply if absent)
//  3. Expand environment variables ({{.VAR}} syntax)
//  4. Unmarshal over the defaults (user values override)
//  5. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		configDir: configDir,
		LLM:       DefaultLLMConfig(),
		SLO:       DefaultSLOConfig(),
		Monitor:   DefaultMonitorConfig(),
		Conflict:  DefaultConflictConfig(),
		Stack:     DefaultStackConfig(),
		Task:      DefaultTaskConfig(),
		FileLock:  DefaultFileLockConfig(),
		Workflow:  DefaultWorkflowConfig(),
		Queue:     DefaultQueueConfig(),
	}

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("No configuration file found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_model", cfg.LLM.Model,
		"workers", cfg.Queue.WorkerCount,
		"monitor_tick", cfg.Monitor.TickInterval)

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}
	switch cfg.LLM.ReasoningEffort {
	case "low", "medium", "high":
	default:
		return fmt.Errorf("llm.reasoning_effort must be low, medium, or high (got %q)", cfg.LLM.ReasoningEffort)
	}
	if cfg.LLM.RatePerKTokens < 0 {
		return fmt.Errorf("llm.rate_per_k_tokens must be >= 0")
	}
	if cfg.SLO.CostUSD <= 0 {
		return fmt.Errorf("slo.cost_usd must be > 0")
	}
	if cfg.SLO.CoveragePct < 0 || cfg.SLO.CoveragePct > 95 {
		return fmt.Errorf("slo.coverage_pct must be in [0, 95] (got %v)", cfg.SLO.CoveragePct)
	}
	if cfg.SLO.ConfidenceMin < 0 || cfg.SLO.ConfidenceMin > 1 {
		return fmt.Errorf("slo.confidence_min must be in [0, 1]")
	}
	if cfg.Conflict.SimilarityThreshold <= 0 || cfg.Conflict.SimilarityThreshold > 1 {
		return fmt.Errorf("conflict.similarity_threshold must be in (0, 1]")
	}
	if cfg.Stack.SimilarityThreshold <= 0 || cfg.Stack.SimilarityThreshold > 1 {
		return fmt.Errorf("stack.similarity_threshold must be in (0, 1]")
	}
	if cfg.Monitor.TickInterval <= 0 {
		return fmt.Errorf("monitor.tick_seconds must be > 0")
	}
	if cfg.Task.Timeout <= 0 {
		return fmt.Errorf("task.timeout_seconds must be > 0")
	}
	if cfg.FileLock.TTL <= 0 {
		return fmt.Errorf("file_lock.ttl_seconds must be > 0")
	}
	if cfg.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be > 0")
	}
	if cfg.Workflow.TestCoverageMin < 0 || cfg.Workflow.TestCoverageMin > 100 {
		return fmt.Errorf("workflow.test_coverage_min must be in [0, 100]")
	}
	return nil
}

// Duration settings are plain integer seconds in YAML
// (e.g. monitor.tick_seconds: 10). Custom unmarshallers convert them to
// time.Duration so the rest of the codebase works in durations.

type monitorYAML struct {
	TickSeconds int `yaml:"tick_seconds"`
}

// UnmarshalYAML implements yaml.Unmarshaler for MonitorConfig.
func (m *MonitorConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw monitorYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TickSeconds > 0 {
		m.TickInterval = time.Duration(raw.TickSeconds) * time.Second
	}
	return nil
}

type taskYAML struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// UnmarshalYAML implements yaml.Unmarshaler for TaskConfig.
func (t *TaskConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw taskYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TimeoutSeconds > 0 {
		t.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	return nil
}

type fileLockYAML struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

// UnmarshalYAML implements yaml.Unmarshaler for FileLockConfig.
func (f *FileLockConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw fileLockYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TTLSeconds > 0 {
		f.TTL = time.Duration(raw.TTLSeconds) * time.Second
	}
	return nil
}
