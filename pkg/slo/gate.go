// Package slo enforces the per-workflow service-level objectives: cost,
// end-to-end latency, reported test coverage, and stack inference
// confidence.
package slo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/metrics"
)

// Objective names as they appear in results, events, and error messages.
const (
	ObjectiveCost       = "cost_usd"
	ObjectiveLatency    = "latency_seconds"
	ObjectiveCoverage   = "coverage_pct"
	ObjectiveConfidence = "confidence_min"
)

// Verdict is the outcome of checking one objective.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	// VerdictWarn breaches record an event but never fail the workflow.
	VerdictWarn Verdict = "warn"
	// VerdictFailRetryable breaches fail the workflow but the retry
	// manager may re-run it.
	VerdictFailRetryable Verdict = "fail_retryable"
	// VerdictFailHard breaches fail the workflow permanently.
	VerdictFailHard Verdict = "fail_hard"
)

// Result is the evaluation of one objective.
type Result struct {
	Objective string  `json:"objective"`
	Actual    float64 `json:"actual"`
	Threshold float64 `json:"threshold"`
	Breached  bool    `json:"breached"`
	Verdict   Verdict `json:"verdict"`
}

// BreachError is returned when a failing objective blocks completion.
type BreachError struct {
	Result    Result
	Retryable bool
}

func (e *BreachError) Error() string {
	return fmt.Sprintf("slo breach: %s actual %.2f vs threshold %.2f",
		e.Result.Objective, e.Result.Actual, e.Result.Threshold)
}

// Measurements carries the observed values for one workflow run.
type Measurements struct {
	TokensUsed      int
	Duration        time.Duration
	CoveragePct     float64
	StackConfidence float64
}

// Gate evaluates measurements against configured thresholds.
type Gate struct {
	cfg    config.SLOConfig
	rate   float64 // USD per 1k tokens
	pub    *events.Publisher
	sink   metrics.Sink
	logger *slog.Logger
}

// NewGate creates a Gate.
func NewGate(cfg config.SLOConfig, ratePerKTokens float64, pub *events.Publisher, sink metrics.Sink, logger *slog.Logger) *Gate {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Gate{
		cfg:    cfg,
		rate:   ratePerKTokens,
		pub:    pub,
		sink:   sink,
		logger: logger.With("component", "slo_gate"),
	}
}

// Cost converts a token count to estimated USD.
func (g *Gate) Cost(tokensUsed int) float64 {
	return float64(tokensUsed) / 1000 * g.rate
}

// Enforce checks every objective, records breach events, and returns all
// results plus the blocking error, if any. Hard breaches win over retryable
// ones when both occur.
func (g *Gate) Enforce(ctx context.Context, swarmID string, m Measurements) ([]Result, error) {
	cost := g.Cost(m.TokensUsed)
	results := []Result{
		g.check(ObjectiveCost, cost, g.cfg.CostUSD, cost <= g.cfg.CostUSD, VerdictFailHard),
		g.check(ObjectiveLatency, m.Duration.Seconds(), g.cfg.LatencySeconds, m.Duration.Seconds() <= g.cfg.LatencySeconds, VerdictWarn),
		g.check(ObjectiveCoverage, m.CoveragePct, g.cfg.CoveragePct, m.CoveragePct >= g.cfg.CoveragePct, VerdictFailRetryable),
		g.check(ObjectiveConfidence, m.StackConfidence, g.cfg.ConfidenceMin, m.StackConfidence >= g.cfg.ConfidenceMin, VerdictWarn),
	}

	var blocking *BreachError
	for _, r := range results {
		if !r.Breached {
			continue
		}
		hard := r.Verdict == VerdictFailHard
		if err := g.pub.SLOBreach(ctx, swarmID, events.SLOBreachPayload{
			SLO:       r.Objective,
			Actual:    r.Actual,
			Threshold: r.Threshold,
			Hard:      hard,
		}); err != nil {
			return results, err
		}
		g.logger.Warn("slo breached",
			"swarm_id", swarmID,
			"objective", r.Objective,
			"actual", r.Actual,
			"threshold", r.Threshold,
			"verdict", r.Verdict)

		switch r.Verdict {
		case VerdictFailHard:
			blocking = &BreachError{Result: r, Retryable: false}
		case VerdictFailRetryable:
			if blocking == nil {
				blocking = &BreachError{Result: r, Retryable: true}
			}
		}
	}

	if blocking != nil {
		return results, blocking
	}
	return results, nil
}

func (g *Gate) check(objective string, actual, threshold float64, ok bool, onBreach Verdict) Result {
	r := Result{Objective: objective, Actual: actual, Threshold: threshold, Verdict: VerdictPass}
	if !ok {
		r.Breached = true
		r.Verdict = onBreach
	}
	return r
}
