// Package tools defines the typed tool-call surface agents execute against.
// Tool names route through a registry; unknown names fail loudly instead of
// being best-effort routed.
package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTool is returned when a call names a tool the registry has no
// handler for.
var ErrUnknownTool = errors.New("unknown tool")

// ToolCall is one typed invocation request produced by an agent.
type ToolCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// Invocation carries the call plus its orchestration context.
type Invocation struct {
	Call    ToolCall
	SwarmID string
	AgentID string
}

// Handler executes one tool.
type Handler func(ctx context.Context, inv Invocation) (map[string]interface{}, error)

// Invoker is the uniform interface agent code paths call tools through.
type Invoker interface {
	Call(ctx context.Context, name string, args map[string]interface{}, swarmID, agentID string) (map[string]interface{}, error)
}

// Registry maps tool names to handlers. Registration happens at startup;
// lookups are concurrent.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to a name. Re-registering a name replaces the
// previous handler.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call routes an invocation to its handler.
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}, swarmID, agentID string) (map[string]interface{}, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h(ctx, Invocation{
		Call:    ToolCall{Name: name, Args: args},
		SwarmID: swarmID,
		AgentID: agentID,
	})
}
