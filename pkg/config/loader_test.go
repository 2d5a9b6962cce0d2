package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-sonnet-4", cfg.LLM.Model)
	assert.Equal(t, "medium", cfg.LLM.ReasoningEffort)
	assert.Equal(t, 5.00, cfg.SLO.CostUSD)
	assert.Equal(t, 95.0, cfg.SLO.CoveragePct)
	assert.Equal(t, 10*time.Second, cfg.Monitor.TickInterval)
	assert.Equal(t, 30*time.Minute, cfg.Task.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.FileLock.TTL)
	assert.Equal(t, 0.70, cfg.Conflict.SimilarityThreshold)
	assert.Positive(t, cfg.Queue.WorkerCount)
}

func TestInitializeOverridesFromYAML(t *testing.T) {
	dir := writeConfig(t, `
llm:
  model: test/custom-model
  reasoning_effort: high
slo:
  cost_usd: 12.5
  coverage_pct: 90
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "test/custom-model", cfg.LLM.Model)
	assert.Equal(t, "high", cfg.LLM.ReasoningEffort)
	assert.Equal(t, 12.5, cfg.SLO.CostUSD)
	assert.Equal(t, 90.0, cfg.SLO.CoveragePct)
	// Untouched sections keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Monitor.TickInterval)
}

func TestInitializeSecondsFieldsBecomeDurations(t *testing.T) {
	dir := writeConfig(t, `
monitor:
  tick_seconds: 25
task:
  timeout_seconds: 120
file_lock:
  ttl_seconds: 600
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 25*time.Second, cfg.Monitor.TickInterval)
	assert.Equal(t, 2*time.Minute, cfg.Task.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.FileLock.TTL)
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty model", "llm:\n  model: \"\"\n", "llm.model"},
		{"bad effort", "llm:\n  reasoning_effort: extreme\n", "reasoning_effort"},
		{"negative rate", "llm:\n  rate_per_k_tokens: -1\n", "rate_per_k_tokens"},
		{"zero cost slo", "slo:\n  cost_usd: 0\n", "cost_usd"},
		{"coverage above cap", "slo:\n  coverage_pct: 96\n", "coverage_pct"},
		{"confidence out of range", "slo:\n  confidence_min: 1.5\n", "confidence_min"},
		{"conflict threshold", "conflict:\n  similarity_threshold: 0\n", "similarity_threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestInitializeMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "llm: [not: a: mapping\n")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("CREWFORGE_TEST_MODEL", "env/model")

	out := ExpandEnv([]byte("model: {{.CREWFORGE_TEST_MODEL}}"))
	assert.Equal(t, "model: env/model", string(out))
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("key: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestExpandEnvPlainYAMLUntouched(t *testing.T) {
	in := []byte("password: p$ss{w0rd\nregex: ^a$\n")
	assert.Equal(t, in, ExpandEnv(in))
}

func TestInitializeExpandsEnvInConfig(t *testing.T) {
	t.Setenv("CREWFORGE_TEST_BASE_URL", "http://localhost:9999/v1")
	dir := writeConfig(t, "llm:\n  base_url: \"{{.CREWFORGE_TEST_BASE_URL}}\"\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/v1", cfg.LLM.BaseURL)
}
