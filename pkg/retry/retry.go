// Package retry classifies task failures and selects backoff policies. The
// classification is a deterministic pattern match over error kind and
// message substrings; the policies encode how many times each kind is worth
// retrying and how.
package retry

import (
	"errors"
	"strings"
	"time"

	"github.com/crewforge/crewforge/pkg/llm"
)

// Kind buckets a failure for policy selection.
type Kind string

const (
	// KindTransient covers network faults, timeouts, 5xx responses, and
	// rate limiting. Retried with exponential backoff.
	KindTransient Kind = "transient"
	// KindRecoverableCode covers syntax, type, and import errors in
	// generated artifacts. Regenerated with error context injected.
	KindRecoverableCode Kind = "recoverable_code"
	// KindConfiguration covers missing secrets and bad credentials. Never
	// retried; escalated for human input.
	KindConfiguration Kind = "configuration"
	// KindDesignFlaw covers dependency cycles and contradictory
	// requirements. The planner is asked to redesign.
	KindDesignFlaw Kind = "design_flaw"
	// KindExternalBlocker covers upstream services being down. Never
	// retried; escalated with suggested alternatives.
	KindExternalBlocker Kind = "external_blocker"
	// KindInternal is the catch-all for everything unclassified.
	KindInternal Kind = "internal"
)

// Action selects what the monitor does with a classified failure.
type Action string

const (
	// ActionBackoff requeues the task after the policy's backoff delay.
	ActionBackoff Action = "backoff"
	// ActionRegenerate requeues immediately with the error injected into
	// the agent's context.
	ActionRegenerate Action = "regenerate"
	// ActionReplan asks the planner to redesign the affected tasks.
	ActionReplan Action = "replan"
	// ActionEscalate creates an escalation; the task stays failed until a
	// human responds.
	ActionEscalate Action = "escalate"
)

// Policy is the retry contract for one error kind.
type Policy struct {
	Kind        Kind
	Action      Action
	MaxAttempts int // 0 means never retried
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// policies is the taxonomy table.
var policies = map[Kind]Policy{
	KindTransient:       {Kind: KindTransient, Action: ActionBackoff, MaxAttempts: 5, BaseDelay: 2 * time.Second, MaxDelay: 60 * time.Second},
	KindRecoverableCode: {Kind: KindRecoverableCode, Action: ActionRegenerate, MaxAttempts: 2},
	KindConfiguration:   {Kind: KindConfiguration, Action: ActionEscalate, MaxAttempts: 0},
	KindDesignFlaw:      {Kind: KindDesignFlaw, Action: ActionReplan, MaxAttempts: 2},
	KindExternalBlocker: {Kind: KindExternalBlocker, Action: ActionEscalate, MaxAttempts: 0},
	KindInternal:        {Kind: KindInternal, Action: ActionBackoff, MaxAttempts: 3, BaseDelay: 2 * time.Second, MaxDelay: 60 * time.Second},
}

// PolicyFor returns the policy for a kind.
func PolicyFor(kind Kind) Policy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return policies[KindInternal]
}

// substring tables for message-based classification, checked in order: the
// first matching kind wins, so more specific kinds come first.
var classificationTable = []struct {
	Kind       Kind
	Substrings []string
}{
	{KindConfiguration, []string{
		"missing secret", "secret not found", "api key", "invalid credentials",
		"unauthorized", "authentication failed", "missing environment variable",
		"permission denied",
	}},
	{KindExternalBlocker, []string{
		"service unavailable", "upstream", "connection refused by provider",
		"provider outage", "dependency service down",
	}},
	{KindDesignFlaw, []string{
		"dependency cycle", "cycle detected", "contradictory", "conflicting requirements",
		"impossible constraint",
	}},
	{KindRecoverableCode, []string{
		"syntax error", "syntaxerror", "type error", "typeerror",
		"import error", "importerror", "module not found", "cannot find module",
		"undefined variable", "compilation failed", "parse error",
	}},
	{KindTransient, []string{
		"timeout", "timed out", "connection reset", "connection refused",
		"temporarily unavailable", "rate limit", "too many requests",
		"502", "503", "504", "network", "eof", "broken pipe", "deadline exceeded",
	}},
}

// Classify buckets an error. Typed errors from the LLM gateway classify
// first; everything else falls through to the substring table.
func Classify(err error) Kind {
	if err == nil {
		return KindInternal
	}
	if llm.IsRateLimited(err) || errors.Is(err, llm.ErrUnavailable) {
		return KindTransient
	}
	if errors.Is(err, llm.ErrInvalidJSON) {
		return KindRecoverableCode
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage buckets a failure reason string. Used for failures read
// back from the store, where only the recorded reason survives.
func ClassifyMessage(message string) Kind {
	msg := strings.ToLower(message)
	for _, row := range classificationTable {
		for _, sub := range row.Substrings {
			if strings.Contains(msg, sub) {
				return row.Kind
			}
		}
	}
	return KindInternal
}

// Backoff returns the delay before attempt n (1-based) under a policy:
// base · 2^(n-1), capped at the policy maximum. Non-backoff policies have
// no delay.
func (p Policy) Backoff(attempt int) time.Duration {
	if p.BaseDelay == 0 {
		return 0
	}
	if attempt < 1 {
		attempt = 1
	}
	d := p.BaseDelay << (attempt - 1)
	if d > p.MaxDelay || d <= 0 {
		return p.MaxDelay
	}
	return d
}

// ShouldRetry reports whether a task that has already made `attempts`
// attempts is still within the policy budget.
func (p Policy) ShouldRetry(attempts int) bool {
	return attempts < p.MaxAttempts
}

// Decision is the monitor-facing verdict for one failed task.
type Decision struct {
	Kind   Kind
	Policy Policy
	Retry  bool
	Delay  time.Duration
	Action Action
}

// Decide classifies a recorded failure reason and applies the policy
// against the task's attempt count. When the budget is exhausted the
// decision degrades to escalation.
func Decide(failureReason string, attempts int) Decision {
	kind := ClassifyMessage(failureReason)
	policy := PolicyFor(kind)

	d := Decision{Kind: kind, Policy: policy, Action: policy.Action}
	if policy.ShouldRetry(attempts) {
		d.Retry = true
		d.Delay = policy.Backoff(attempts)
		return d
	}
	d.Action = ActionEscalate
	return d
}
