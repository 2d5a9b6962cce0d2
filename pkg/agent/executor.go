package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crewforge/crewforge/ent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/task"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/models"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/tools"
	"github.com/crewforge/crewforge/pkg/tracing"
)

// EscalatedError signals that the task is blocked on human input rather
// than failed. The workflow keeps the swarm running with the escalation
// outstanding.
type EscalatedError struct {
	Kind         string
	EscalationID string
}

func (e *EscalatedError) Error() string {
	return fmt.Sprintf("escalated (%s): awaiting human input", e.Kind)
}

// Executor runs one task on behalf of one agent.
type Executor struct {
	llm         llm.Client
	invoker     tools.Invoker
	tasks       *services.TaskService
	swarms      *services.SwarmService
	escalations *services.EscalationService
	resolver    *conflict.Resolver
	pub         *events.Publisher
	llmCfg      config.LLMConfig
	logger      *slog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(client llm.Client, invoker tools.Invoker, tasks *services.TaskService, swarms *services.SwarmService, escalations *services.EscalationService, resolver *conflict.Resolver, pub *events.Publisher, llmCfg config.LLMConfig, logger *slog.Logger) *Executor {
	return &Executor{
		llm:         client,
		invoker:     invoker,
		tasks:       tasks,
		swarms:      swarms,
		escalations: escalations,
		resolver:    resolver,
		pub:         pub,
		llmCfg:      llmCfg,
		logger:      logger.With("component", "agent_executor"),
	}
}

// Execute claims the task for the agent, runs the role's prompt, applies
// tool calls, and records the outcome. A lost claim race returns
// ErrConcurrentModification without side effects.
func (e *Executor) Execute(ctx context.Context, swarmID string, a *ent.Agent, t *ent.Task, scope *models.Scope) (*Output, error) {
	ctx, span := tracing.Tracer("agent").Start(ctx, "agent.execute_task")
	defer span.End()
	span.SetAttributes(
		tracing.StringAttr("agent.role", a.Role),
		tracing.StringAttr("task.key", t.TaskKey),
	)

	if err := e.tasks.MarkInProgress(ctx, t.ID, a.ID); err != nil {
		return nil, err
	}
	if err := e.swarms.UpdateAgentState(ctx, a.ID, true, t.ID, nil); err != nil {
		return nil, err
	}
	defer func() {
		if err := e.swarms.UpdateAgentState(context.WithoutCancel(ctx), a.ID, false, "", nil); err != nil {
			e.logger.Error("failed to release agent", "agent_id", a.ID, "error", err)
		}
	}()

	out, tokensUsed, err := e.run(ctx, swarmID, a, t, scope)
	if err != nil {
		var esc *EscalatedError
		if errors.As(err, &esc) {
			return out, err
		}
		e.fail(ctx, swarmID, a, t, err)
		return nil, err
	}

	data := map[string]interface{}{
		"summary":     out.Summary,
		"tokens_used": tokensUsed,
	}
	if len(out.Artifacts) > 0 {
		data["artifacts"] = out.Artifacts
	}
	if out.CoveragePct != nil {
		data["coverage_pct"] = *out.CoveragePct
	}
	if _, err := e.tasks.UpdateTaskStatus(ctx, t.ID, task.StatusCompleted, data); err != nil {
		return nil, err
	}
	e.resolver.OnTaskRecovered(swarmID, t.TaskKey)
	e.resolver.ReleaseAll(ctx, swarmID, a.ID)

	e.logger.Info("task completed",
		"swarm_id", swarmID, "task_key", t.TaskKey,
		"role", a.Role, "tokens_used", tokensUsed)
	return out, nil
}

func (e *Executor) run(ctx context.Context, swarmID string, a *ent.Agent, t *ent.Task, scope *models.Scope) (*Output, int, error) {
	capability := CapabilityFor(a.Role)

	failureContext, _ := t.Data["failure_context"].(string)
	system, user := capability.BuildPrompt(t, scope, failureContext)

	resp, err := e.llm.Complete(ctx, llm.CompletionRequest{
		System:          system,
		User:            user,
		Temperature:     0.3,
		MaxTokens:       8192,
		ReasoningEffort: e.llmCfg.ReasoningEffort,
		ExpectJSON:      true,
	})
	if err != nil {
		return nil, 0, err
	}

	out, err := capability.ParseOutput(resp.Text)
	if err != nil {
		return nil, resp.TokensUsed, err
	}

	if out.Escalation != nil {
		escErr := e.escalate(ctx, swarmID, a, t, out.Escalation)
		return out, resp.TokensUsed, escErr
	}

	allowed := make(map[string]bool, len(capability.AllowedTools()))
	for _, name := range capability.AllowedTools() {
		allowed[name] = true
	}
	for _, call := range out.ToolCalls {
		if !allowed[call.Name] {
			return nil, resp.TokensUsed, fmt.Errorf("%w: %s not allowed for role %s", tools.ErrUnknownTool, call.Name, a.Role)
		}
		if _, err := e.invoker.Call(ctx, call.Name, call.Args, swarmID, a.ID); err != nil {
			return nil, resp.TokensUsed, fmt.Errorf("tool %s failed: %w", call.Name, err)
		}
	}
	return out, resp.TokensUsed, nil
}

// escalate records the blocker, blocks only this task, and keeps the swarm
// running.
func (e *Executor) escalate(ctx context.Context, swarmID string, a *ent.Agent, t *ent.Task, esc *Escalation) error {
	created, err := e.escalations.Create(ctx, services.CreateEscalationInput{
		SwarmID:            swarmID,
		TaskID:             t.ID,
		AgentID:            a.ID,
		Kind:               escalationKind(esc.Kind),
		Description:        esc.Description,
		SuggestedActions:   esc.SuggestedActions,
		CanContinueWithout: esc.CanContinueWithout,
	})
	if err != nil {
		return err
	}
	if err := e.pub.Escalation(ctx, swarmID, events.EscalationPayload{
		EscalationID: created.ID,
		TaskID:       t.ID,
		Kind:         esc.Kind,
		Description:  esc.Description,
	}); err != nil {
		return err
	}
	if _, err := e.tasks.UpdateTaskStatus(ctx, t.ID, task.StatusBlocked, map[string]interface{}{
		"escalation_id": created.ID,
	}); err != nil {
		return err
	}
	e.logger.Warn("task escalated",
		"swarm_id", swarmID, "task_key", t.TaskKey,
		"kind", esc.Kind, "escalation_id", created.ID)
	return &EscalatedError{Kind: esc.Kind, EscalationID: created.ID}
}

func escalationKind(kind string) escalation.Kind {
	switch escalation.Kind(kind) {
	case escalation.KindConfiguration, escalation.KindDesignDecision,
		escalation.KindExternalService, escalation.KindUnclearRequirement:
		return escalation.Kind(kind)
	default:
		return escalation.KindUnclearRequirement
	}
}

func (e *Executor) fail(ctx context.Context, swarmID string, a *ent.Agent, t *ent.Task, cause error) {
	ctx = context.WithoutCancel(ctx)
	if err := e.tasks.MarkFailed(ctx, t.ID, cause.Error()); err != nil {
		e.logger.Error("failed to record task failure", "task_key", t.TaskKey, "error", err)
	}
	e.resolver.OnTaskFailed(ctx, swarmID, t.TaskKey, a.ID)
	e.logger.Warn("task failed",
		"swarm_id", swarmID, "task_key", t.TaskKey,
		"role", a.Role, "error", cause)
}
