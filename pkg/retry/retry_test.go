package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crewforge/crewforge/pkg/llm"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Kind
	}{
		{"network timeout", "request timed out after 30s", KindTransient},
		{"rate limit", "429 too many requests", KindTransient},
		{"bad gateway", "upstream returned 502", KindExternalBlocker},
		{"syntax error", "SyntaxError: unexpected token at line 4", KindRecoverableCode},
		{"missing import", "module not found: stripe", KindRecoverableCode},
		{"missing secret", "missing secret STRIPE_KEY", KindConfiguration},
		{"bad credentials", "authentication failed for service account", KindConfiguration},
		{"cycle", "dependency cycle between 1.2 and 2.1", KindDesignFlaw},
		{"contradiction", "contradictory requirements for auth flow", KindDesignFlaw},
		{"provider down", "payment provider outage reported", KindExternalBlocker},
		{"unknown", "something inexplicable happened", KindInternal},
		{"empty", "", KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.message))
		})
	}
}

func TestClassifyMessageOrderSpecificFirst(t *testing.T) {
	// "unauthorized" (configuration) must win over "network" (transient)
	// when both appear: configuration rows are checked first.
	got := ClassifyMessage("network call returned unauthorized")
	assert.Equal(t, KindConfiguration, got)
}

func TestClassifyTypedErrors(t *testing.T) {
	assert.Equal(t, KindTransient, Classify(llm.ErrUnavailable))
	assert.Equal(t, KindTransient, Classify(&llm.RateLimitedError{RetryAfter: time.Second}))
	assert.Equal(t, KindRecoverableCode, Classify(fmt.Errorf("parsing: %w", llm.ErrInvalidJSON)))
	assert.Equal(t, KindInternal, Classify(errors.New("weird state")))
	assert.Equal(t, KindInternal, Classify(nil))
}

func TestBackoff(t *testing.T) {
	p := PolicyFor(KindTransient)

	assert.Equal(t, 2*time.Second, p.Backoff(1))
	assert.Equal(t, 4*time.Second, p.Backoff(2))
	assert.Equal(t, 8*time.Second, p.Backoff(3))
	assert.Equal(t, 16*time.Second, p.Backoff(4))
	assert.Equal(t, 32*time.Second, p.Backoff(5))
	// Capped at the policy max from attempt 6 on.
	assert.Equal(t, 60*time.Second, p.Backoff(6))
	assert.Equal(t, 60*time.Second, p.Backoff(50))
	// Degenerate attempt numbers clamp to the first step.
	assert.Equal(t, 2*time.Second, p.Backoff(0))
}

func TestBackoffNonBackoffPolicies(t *testing.T) {
	assert.Zero(t, PolicyFor(KindConfiguration).Backoff(1))
	assert.Zero(t, PolicyFor(KindRecoverableCode).Backoff(3))
}

func TestPolicyBudgets(t *testing.T) {
	assert.True(t, PolicyFor(KindTransient).ShouldRetry(4))
	assert.False(t, PolicyFor(KindTransient).ShouldRetry(5))
	assert.False(t, PolicyFor(KindConfiguration).ShouldRetry(0))
	assert.False(t, PolicyFor(KindExternalBlocker).ShouldRetry(0))
	assert.True(t, PolicyFor(KindDesignFlaw).ShouldRetry(1))
	assert.False(t, PolicyFor(KindDesignFlaw).ShouldRetry(2))
}

func TestDecide(t *testing.T) {
	t.Run("transient within budget backs off", func(t *testing.T) {
		d := Decide("connection reset by peer", 2)
		assert.Equal(t, KindTransient, d.Kind)
		assert.True(t, d.Retry)
		assert.Equal(t, ActionBackoff, d.Action)
		assert.Equal(t, 4*time.Second, d.Delay)
	})

	t.Run("recoverable code regenerates immediately", func(t *testing.T) {
		d := Decide("TypeError: cannot read property of undefined", 1)
		assert.Equal(t, KindRecoverableCode, d.Kind)
		assert.True(t, d.Retry)
		assert.Equal(t, ActionRegenerate, d.Action)
		assert.Zero(t, d.Delay)
	})

	t.Run("configuration escalates without retry", func(t *testing.T) {
		d := Decide("missing environment variable DATABASE_URL", 0)
		assert.Equal(t, KindConfiguration, d.Kind)
		assert.False(t, d.Retry)
		assert.Equal(t, ActionEscalate, d.Action)
	})

	t.Run("exhausted budget degrades to escalation", func(t *testing.T) {
		d := Decide("request timed out", 5)
		assert.Equal(t, KindTransient, d.Kind)
		assert.False(t, d.Retry)
		assert.Equal(t, ActionEscalate, d.Action)
	})

	t.Run("design flaw replans", func(t *testing.T) {
		d := Decide("cycle detected in generated schema", 0)
		assert.Equal(t, KindDesignFlaw, d.Kind)
		assert.True(t, d.Retry)
		assert.Equal(t, ActionReplan, d.Action)
	})
}

func TestPolicyForUnknownKind(t *testing.T) {
	p := PolicyFor(Kind("nonsense"))
	assert.Equal(t, KindInternal, p.Kind)
}
