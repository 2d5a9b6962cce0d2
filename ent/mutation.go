// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/event"
	"github.com/crewforge/crewforge/ent/predicate"
	"github.com/crewforge/crewforge/ent/stacktemplate"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent         = "Agent"
	TypeEscalation    = "Escalation"
	TypeEvent         = "Event"
	TypeStackTemplate = "StackTemplate"
	TypeSwarm         = "Swarm"
	TypeTask          = "Task"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	role            *string
	status          *agent.Status
	current_task_id *string
	data            *map[string]interface{}
	assigned_at     *time.Time
	clearedFields   map[string]struct{}
	swarm           *string
	clearedswarm    bool
	done            bool
	oldValue        func(context.Context) (*Agent, error)
	predicates      []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSwarmID sets the "swarm_id" field.
func (m *AgentMutation) SetSwarmID(s string) {
	m.swarm = &s
}

// SwarmID returns the value of the "swarm_id" field in the mutation.
func (m *AgentMutation) SwarmID() (r string, exists bool) {
	v := m.swarm
	if v == nil {
		return
	}
	return *v, true
}

// OldSwarmID returns the old "swarm_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSwarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwarmID: %w", err)
	}
	return oldValue.SwarmID, nil
}

// ResetSwarmID resets all changes to the "swarm_id" field.
func (m *AgentMutation) ResetSwarmID() {
	m.swarm = nil
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentTaskID sets the "current_task_id" field.
func (m *AgentMutation) SetCurrentTaskID(s string) {
	m.current_task_id = &s
}

// CurrentTaskID returns the value of the "current_task_id" field in the mutation.
func (m *AgentMutation) CurrentTaskID() (r string, exists bool) {
	v := m.current_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTaskID returns the old "current_task_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCurrentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTaskID: %w", err)
	}
	return oldValue.CurrentTaskID, nil
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (m *AgentMutation) ClearCurrentTaskID() {
	m.current_task_id = nil
	m.clearedFields[agent.FieldCurrentTaskID] = struct{}{}
}

// CurrentTaskIDCleared returns if the "current_task_id" field was cleared in this mutation.
func (m *AgentMutation) CurrentTaskIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldCurrentTaskID]
	return ok
}

// ResetCurrentTaskID resets all changes to the "current_task_id" field.
func (m *AgentMutation) ResetCurrentTaskID() {
	m.current_task_id = nil
	delete(m.clearedFields, agent.FieldCurrentTaskID)
}

// SetData sets the "data" field.
func (m *AgentMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *AgentMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *AgentMutation) ClearData() {
	m.data = nil
	m.clearedFields[agent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *AgentMutation) DataCleared() bool {
	_, ok := m.clearedFields[agent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *AgentMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, agent.FieldData)
}

// SetAssignedAt sets the "assigned_at" field.
func (m *AgentMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *AgentMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAssignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *AgentMutation) ResetAssignedAt() {
	m.assigned_at = nil
}

// ClearSwarm clears the "swarm" edge to the Swarm entity.
func (m *AgentMutation) ClearSwarm() {
	m.clearedswarm = true
	m.clearedFields[agent.FieldSwarmID] = struct{}{}
}

// SwarmCleared reports if the "swarm" edge to the Swarm entity was cleared.
func (m *AgentMutation) SwarmCleared() bool {
	return m.clearedswarm
}

// SwarmIDs returns the "swarm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SwarmID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) SwarmIDs() (ids []string) {
	if id := m.swarm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSwarm resets all changes to the "swarm" edge.
func (m *AgentMutation) ResetSwarm() {
	m.swarm = nil
	m.clearedswarm = false
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.swarm != nil {
		fields = append(fields, agent.FieldSwarmID)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.current_task_id != nil {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.data != nil {
		fields = append(fields, agent.FieldData)
	}
	if m.assigned_at != nil {
		fields = append(fields, agent.FieldAssignedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldSwarmID:
		return m.SwarmID()
	case agent.FieldRole:
		return m.Role()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCurrentTaskID:
		return m.CurrentTaskID()
	case agent.FieldData:
		return m.Data()
	case agent.FieldAssignedAt:
		return m.AssignedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldSwarmID:
		return m.OldSwarmID(ctx)
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCurrentTaskID:
		return m.OldCurrentTaskID(ctx)
	case agent.FieldData:
		return m.OldData(ctx)
	case agent.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldSwarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwarmID(v)
		return nil
	case agent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCurrentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTaskID(v)
		return nil
	case agent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case agent.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldCurrentTaskID) {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.FieldCleared(agent.FieldData) {
		fields = append(fields, agent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldCurrentTaskID:
		m.ClearCurrentTaskID()
		return nil
	case agent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldSwarmID:
		m.ResetSwarmID()
		return nil
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCurrentTaskID:
		m.ResetCurrentTaskID()
		return nil
	case agent.FieldData:
		m.ResetData()
		return nil
	case agent.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.swarm != nil {
		edges = append(edges, agent.EdgeSwarm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeSwarm:
		if id := m.swarm; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedswarm {
		edges = append(edges, agent.EdgeSwarm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeSwarm:
		return m.clearedswarm
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeSwarm:
		m.ClearSwarm()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeSwarm:
		m.ResetSwarm()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// EscalationMutation represents an operation that mutates the Escalation nodes in the graph.
type EscalationMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	task_id                 *string
	agent_id                *string
	kind                    *escalation.Kind
	severity                *string
	description             *string
	suggested_actions       *[]string
	appendsuggested_actions []string
	can_continue_without    *bool
	status                  *escalation.Status
	resolution              *map[string]interface{}
	created_at              *time.Time
	resolved_at             *time.Time
	clearedFields           map[string]struct{}
	swarm                   *string
	clearedswarm            bool
	done                    bool
	oldValue                func(context.Context) (*Escalation, error)
	predicates              []predicate.Escalation
}

var _ ent.Mutation = (*EscalationMutation)(nil)

// escalationOption allows management of the mutation configuration using functional options.
type escalationOption func(*EscalationMutation)

// newEscalationMutation creates new mutation for the Escalation entity.
func newEscalationMutation(c config, op Op, opts ...escalationOption) *EscalationMutation {
	m := &EscalationMutation{
		config:        c,
		op:            op,
		typ:           TypeEscalation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEscalationID sets the ID field of the mutation.
func withEscalationID(id string) escalationOption {
	return func(m *EscalationMutation) {
		var (
			err   error
			once  sync.Once
			value *Escalation
		)
		m.oldValue = func(ctx context.Context) (*Escalation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Escalation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEscalation sets the old Escalation of the mutation.
func withEscalation(node *Escalation) escalationOption {
	return func(m *EscalationMutation) {
		m.oldValue = func(context.Context) (*Escalation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EscalationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EscalationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Escalation entities.
func (m *EscalationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EscalationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EscalationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Escalation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSwarmID sets the "swarm_id" field.
func (m *EscalationMutation) SetSwarmID(s string) {
	m.swarm = &s
}

// SwarmID returns the value of the "swarm_id" field in the mutation.
func (m *EscalationMutation) SwarmID() (r string, exists bool) {
	v := m.swarm
	if v == nil {
		return
	}
	return *v, true
}

// OldSwarmID returns the old "swarm_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldSwarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwarmID: %w", err)
	}
	return oldValue.SwarmID, nil
}

// ResetSwarmID resets all changes to the "swarm_id" field.
func (m *EscalationMutation) ResetSwarmID() {
	m.swarm = nil
}

// SetTaskID sets the "task_id" field.
func (m *EscalationMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EscalationMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *EscalationMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[escalation.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *EscalationMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[escalation.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EscalationMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, escalation.FieldTaskID)
}

// SetAgentID sets the "agent_id" field.
func (m *EscalationMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EscalationMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *EscalationMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[escalation.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *EscalationMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[escalation.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EscalationMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, escalation.FieldAgentID)
}

// SetKind sets the "kind" field.
func (m *EscalationMutation) SetKind(e escalation.Kind) {
	m.kind = &e
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EscalationMutation) Kind() (r escalation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldKind(ctx context.Context) (v escalation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EscalationMutation) ResetKind() {
	m.kind = nil
}

// SetSeverity sets the "severity" field.
func (m *EscalationMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *EscalationMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *EscalationMutation) ResetSeverity() {
	m.severity = nil
}

// SetDescription sets the "description" field.
func (m *EscalationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EscalationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *EscalationMutation) ResetDescription() {
	m.description = nil
}

// SetSuggestedActions sets the "suggested_actions" field.
func (m *EscalationMutation) SetSuggestedActions(s []string) {
	m.suggested_actions = &s
	m.appendsuggested_actions = nil
}

// SuggestedActions returns the value of the "suggested_actions" field in the mutation.
func (m *EscalationMutation) SuggestedActions() (r []string, exists bool) {
	v := m.suggested_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedActions returns the old "suggested_actions" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldSuggestedActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedActions: %w", err)
	}
	return oldValue.SuggestedActions, nil
}

// AppendSuggestedActions adds s to the "suggested_actions" field.
func (m *EscalationMutation) AppendSuggestedActions(s []string) {
	m.appendsuggested_actions = append(m.appendsuggested_actions, s...)
}

// AppendedSuggestedActions returns the list of values that were appended to the "suggested_actions" field in this mutation.
func (m *EscalationMutation) AppendedSuggestedActions() ([]string, bool) {
	if len(m.appendsuggested_actions) == 0 {
		return nil, false
	}
	return m.appendsuggested_actions, true
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (m *EscalationMutation) ClearSuggestedActions() {
	m.suggested_actions = nil
	m.appendsuggested_actions = nil
	m.clearedFields[escalation.FieldSuggestedActions] = struct{}{}
}

// SuggestedActionsCleared returns if the "suggested_actions" field was cleared in this mutation.
func (m *EscalationMutation) SuggestedActionsCleared() bool {
	_, ok := m.clearedFields[escalation.FieldSuggestedActions]
	return ok
}

// ResetSuggestedActions resets all changes to the "suggested_actions" field.
func (m *EscalationMutation) ResetSuggestedActions() {
	m.suggested_actions = nil
	m.appendsuggested_actions = nil
	delete(m.clearedFields, escalation.FieldSuggestedActions)
}

// SetCanContinueWithout sets the "can_continue_without" field.
func (m *EscalationMutation) SetCanContinueWithout(b bool) {
	m.can_continue_without = &b
}

// CanContinueWithout returns the value of the "can_continue_without" field in the mutation.
func (m *EscalationMutation) CanContinueWithout() (r bool, exists bool) {
	v := m.can_continue_without
	if v == nil {
		return
	}
	return *v, true
}

// OldCanContinueWithout returns the old "can_continue_without" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldCanContinueWithout(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanContinueWithout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanContinueWithout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanContinueWithout: %w", err)
	}
	return oldValue.CanContinueWithout, nil
}

// ResetCanContinueWithout resets all changes to the "can_continue_without" field.
func (m *EscalationMutation) ResetCanContinueWithout() {
	m.can_continue_without = nil
}

// SetStatus sets the "status" field.
func (m *EscalationMutation) SetStatus(e escalation.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EscalationMutation) Status() (r escalation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldStatus(ctx context.Context) (v escalation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EscalationMutation) ResetStatus() {
	m.status = nil
}

// SetResolution sets the "resolution" field.
func (m *EscalationMutation) SetResolution(value map[string]interface{}) {
	m.resolution = &value
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *EscalationMutation) Resolution() (r map[string]interface{}, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldResolution(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *EscalationMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[escalation.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *EscalationMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[escalation.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *EscalationMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, escalation.FieldResolution)
}

// SetCreatedAt sets the "created_at" field.
func (m *EscalationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EscalationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EscalationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *EscalationMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *EscalationMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *EscalationMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[escalation.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *EscalationMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[escalation.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *EscalationMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, escalation.FieldResolvedAt)
}

// ClearSwarm clears the "swarm" edge to the Swarm entity.
func (m *EscalationMutation) ClearSwarm() {
	m.clearedswarm = true
	m.clearedFields[escalation.FieldSwarmID] = struct{}{}
}

// SwarmCleared reports if the "swarm" edge to the Swarm entity was cleared.
func (m *EscalationMutation) SwarmCleared() bool {
	return m.clearedswarm
}

// SwarmIDs returns the "swarm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SwarmID instead. It exists only for internal usage by the builders.
func (m *EscalationMutation) SwarmIDs() (ids []string) {
	if id := m.swarm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSwarm resets all changes to the "swarm" edge.
func (m *EscalationMutation) ResetSwarm() {
	m.swarm = nil
	m.clearedswarm = false
}

// Where appends a list predicates to the EscalationMutation builder.
func (m *EscalationMutation) Where(ps ...predicate.Escalation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EscalationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EscalationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Escalation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EscalationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EscalationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Escalation).
func (m *EscalationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EscalationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.swarm != nil {
		fields = append(fields, escalation.FieldSwarmID)
	}
	if m.task_id != nil {
		fields = append(fields, escalation.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, escalation.FieldAgentID)
	}
	if m.kind != nil {
		fields = append(fields, escalation.FieldKind)
	}
	if m.severity != nil {
		fields = append(fields, escalation.FieldSeverity)
	}
	if m.description != nil {
		fields = append(fields, escalation.FieldDescription)
	}
	if m.suggested_actions != nil {
		fields = append(fields, escalation.FieldSuggestedActions)
	}
	if m.can_continue_without != nil {
		fields = append(fields, escalation.FieldCanContinueWithout)
	}
	if m.status != nil {
		fields = append(fields, escalation.FieldStatus)
	}
	if m.resolution != nil {
		fields = append(fields, escalation.FieldResolution)
	}
	if m.created_at != nil {
		fields = append(fields, escalation.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, escalation.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EscalationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case escalation.FieldSwarmID:
		return m.SwarmID()
	case escalation.FieldTaskID:
		return m.TaskID()
	case escalation.FieldAgentID:
		return m.AgentID()
	case escalation.FieldKind:
		return m.Kind()
	case escalation.FieldSeverity:
		return m.Severity()
	case escalation.FieldDescription:
		return m.Description()
	case escalation.FieldSuggestedActions:
		return m.SuggestedActions()
	case escalation.FieldCanContinueWithout:
		return m.CanContinueWithout()
	case escalation.FieldStatus:
		return m.Status()
	case escalation.FieldResolution:
		return m.Resolution()
	case escalation.FieldCreatedAt:
		return m.CreatedAt()
	case escalation.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EscalationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case escalation.FieldSwarmID:
		return m.OldSwarmID(ctx)
	case escalation.FieldTaskID:
		return m.OldTaskID(ctx)
	case escalation.FieldAgentID:
		return m.OldAgentID(ctx)
	case escalation.FieldKind:
		return m.OldKind(ctx)
	case escalation.FieldSeverity:
		return m.OldSeverity(ctx)
	case escalation.FieldDescription:
		return m.OldDescription(ctx)
	case escalation.FieldSuggestedActions:
		return m.OldSuggestedActions(ctx)
	case escalation.FieldCanContinueWithout:
		return m.OldCanContinueWithout(ctx)
	case escalation.FieldStatus:
		return m.OldStatus(ctx)
	case escalation.FieldResolution:
		return m.OldResolution(ctx)
	case escalation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case escalation.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Escalation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case escalation.FieldSwarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwarmID(v)
		return nil
	case escalation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case escalation.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case escalation.FieldKind:
		v, ok := value.(escalation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case escalation.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case escalation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case escalation.FieldSuggestedActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedActions(v)
		return nil
	case escalation.FieldCanContinueWithout:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanContinueWithout(v)
		return nil
	case escalation.FieldStatus:
		v, ok := value.(escalation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case escalation.FieldResolution:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case escalation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case escalation.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Escalation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EscalationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EscalationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Escalation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EscalationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(escalation.FieldTaskID) {
		fields = append(fields, escalation.FieldTaskID)
	}
	if m.FieldCleared(escalation.FieldAgentID) {
		fields = append(fields, escalation.FieldAgentID)
	}
	if m.FieldCleared(escalation.FieldSuggestedActions) {
		fields = append(fields, escalation.FieldSuggestedActions)
	}
	if m.FieldCleared(escalation.FieldResolution) {
		fields = append(fields, escalation.FieldResolution)
	}
	if m.FieldCleared(escalation.FieldResolvedAt) {
		fields = append(fields, escalation.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EscalationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EscalationMutation) ClearField(name string) error {
	switch name {
	case escalation.FieldTaskID:
		m.ClearTaskID()
		return nil
	case escalation.FieldAgentID:
		m.ClearAgentID()
		return nil
	case escalation.FieldSuggestedActions:
		m.ClearSuggestedActions()
		return nil
	case escalation.FieldResolution:
		m.ClearResolution()
		return nil
	case escalation.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Escalation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EscalationMutation) ResetField(name string) error {
	switch name {
	case escalation.FieldSwarmID:
		m.ResetSwarmID()
		return nil
	case escalation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case escalation.FieldAgentID:
		m.ResetAgentID()
		return nil
	case escalation.FieldKind:
		m.ResetKind()
		return nil
	case escalation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case escalation.FieldDescription:
		m.ResetDescription()
		return nil
	case escalation.FieldSuggestedActions:
		m.ResetSuggestedActions()
		return nil
	case escalation.FieldCanContinueWithout:
		m.ResetCanContinueWithout()
		return nil
	case escalation.FieldStatus:
		m.ResetStatus()
		return nil
	case escalation.FieldResolution:
		m.ResetResolution()
		return nil
	case escalation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case escalation.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Escalation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EscalationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.swarm != nil {
		edges = append(edges, escalation.EdgeSwarm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EscalationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case escalation.EdgeSwarm:
		if id := m.swarm; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EscalationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EscalationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EscalationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedswarm {
		edges = append(edges, escalation.EdgeSwarm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EscalationMutation) EdgeCleared(name string) bool {
	switch name {
	case escalation.EdgeSwarm:
		return m.clearedswarm
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EscalationMutation) ClearEdge(name string) error {
	switch name {
	case escalation.EdgeSwarm:
		m.ClearSwarm()
		return nil
	}
	return fmt.Errorf("unknown Escalation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EscalationMutation) ResetEdge(name string) error {
	switch name {
	case escalation.EdgeSwarm:
		m.ResetSwarm()
		return nil
	}
	return fmt.Errorf("unknown Escalation edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	swarm_id      *string
	kind          *string
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSwarmID sets the "swarm_id" field.
func (m *EventMutation) SetSwarmID(s string) {
	m.swarm_id = &s
}

// SwarmID returns the value of the "swarm_id" field in the mutation.
func (m *EventMutation) SwarmID() (r string, exists bool) {
	v := m.swarm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSwarmID returns the old "swarm_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSwarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwarmID: %w", err)
	}
	return oldValue.SwarmID, nil
}

// ResetSwarmID resets all changes to the "swarm_id" field.
func (m *EventMutation) ResetSwarmID() {
	m.swarm_id = nil
}

// SetKind sets the "kind" field.
func (m *EventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EventMutation) ResetKind() {
	m.kind = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *EventMutation) ClearData() {
	m.data = nil
	m.clearedFields[event.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *EventMutation) DataCleared() bool {
	_, ok := m.clearedFields[event.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, event.FieldData)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.swarm_id != nil {
		fields = append(fields, event.FieldSwarmID)
	}
	if m.kind != nil {
		fields = append(fields, event.FieldKind)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSwarmID:
		return m.SwarmID()
	case event.FieldKind:
		return m.Kind()
	case event.FieldTimestamp:
		return m.Timestamp()
	case event.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSwarmID:
		return m.OldSwarmID(ctx)
	case event.FieldKind:
		return m.OldKind(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSwarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwarmID(v)
		return nil
	case event.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case event.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldData) {
		fields = append(fields, event.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSwarmID:
		m.ResetSwarmID()
		return nil
	case event.FieldKind:
		m.ResetKind()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// StackTemplateMutation represents an operation that mutates the StackTemplate nodes in the graph.
type StackTemplateMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	backend         *string
	frontend        *string
	database        *string
	description     *string
	embedding       *[]float64
	appendembedding []float64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StackTemplate, error)
	predicates      []predicate.StackTemplate
}

var _ ent.Mutation = (*StackTemplateMutation)(nil)

// stacktemplateOption allows management of the mutation configuration using functional options.
type stacktemplateOption func(*StackTemplateMutation)

// newStackTemplateMutation creates new mutation for the StackTemplate entity.
func newStackTemplateMutation(c config, op Op, opts ...stacktemplateOption) *StackTemplateMutation {
	m := &StackTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeStackTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStackTemplateID sets the ID field of the mutation.
func withStackTemplateID(id string) stacktemplateOption {
	return func(m *StackTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *StackTemplate
		)
		m.oldValue = func(ctx context.Context) (*StackTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StackTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStackTemplate sets the old StackTemplate of the mutation.
func withStackTemplate(node *StackTemplate) stacktemplateOption {
	return func(m *StackTemplateMutation) {
		m.oldValue = func(context.Context) (*StackTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StackTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StackTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StackTemplate entities.
func (m *StackTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StackTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StackTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StackTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *StackTemplateMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StackTemplateMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StackTemplateMutation) ResetTitle() {
	m.title = nil
}

// SetBackend sets the "backend" field.
func (m *StackTemplateMutation) SetBackend(s string) {
	m.backend = &s
}

// Backend returns the value of the "backend" field in the mutation.
func (m *StackTemplateMutation) Backend() (r string, exists bool) {
	v := m.backend
	if v == nil {
		return
	}
	return *v, true
}

// OldBackend returns the old "backend" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldBackend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackend: %w", err)
	}
	return oldValue.Backend, nil
}

// ResetBackend resets all changes to the "backend" field.
func (m *StackTemplateMutation) ResetBackend() {
	m.backend = nil
}

// SetFrontend sets the "frontend" field.
func (m *StackTemplateMutation) SetFrontend(s string) {
	m.frontend = &s
}

// Frontend returns the value of the "frontend" field in the mutation.
func (m *StackTemplateMutation) Frontend() (r string, exists bool) {
	v := m.frontend
	if v == nil {
		return
	}
	return *v, true
}

// OldFrontend returns the old "frontend" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldFrontend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrontend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrontend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrontend: %w", err)
	}
	return oldValue.Frontend, nil
}

// ResetFrontend resets all changes to the "frontend" field.
func (m *StackTemplateMutation) ResetFrontend() {
	m.frontend = nil
}

// SetDatabase sets the "database" field.
func (m *StackTemplateMutation) SetDatabase(s string) {
	m.database = &s
}

// Database returns the value of the "database" field in the mutation.
func (m *StackTemplateMutation) Database() (r string, exists bool) {
	v := m.database
	if v == nil {
		return
	}
	return *v, true
}

// OldDatabase returns the old "database" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldDatabase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatabase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatabase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatabase: %w", err)
	}
	return oldValue.Database, nil
}

// ResetDatabase resets all changes to the "database" field.
func (m *StackTemplateMutation) ResetDatabase() {
	m.database = nil
}

// SetDescription sets the "description" field.
func (m *StackTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StackTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *StackTemplateMutation) ResetDescription() {
	m.description = nil
}

// SetEmbedding sets the "embedding" field.
func (m *StackTemplateMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *StackTemplateMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the StackTemplate entity.
// If the StackTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackTemplateMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *StackTemplateMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *StackTemplateMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *StackTemplateMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
}

// Where appends a list predicates to the StackTemplateMutation builder.
func (m *StackTemplateMutation) Where(ps ...predicate.StackTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StackTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StackTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StackTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StackTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StackTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StackTemplate).
func (m *StackTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StackTemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.title != nil {
		fields = append(fields, stacktemplate.FieldTitle)
	}
	if m.backend != nil {
		fields = append(fields, stacktemplate.FieldBackend)
	}
	if m.frontend != nil {
		fields = append(fields, stacktemplate.FieldFrontend)
	}
	if m.database != nil {
		fields = append(fields, stacktemplate.FieldDatabase)
	}
	if m.description != nil {
		fields = append(fields, stacktemplate.FieldDescription)
	}
	if m.embedding != nil {
		fields = append(fields, stacktemplate.FieldEmbedding)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StackTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stacktemplate.FieldTitle:
		return m.Title()
	case stacktemplate.FieldBackend:
		return m.Backend()
	case stacktemplate.FieldFrontend:
		return m.Frontend()
	case stacktemplate.FieldDatabase:
		return m.Database()
	case stacktemplate.FieldDescription:
		return m.Description()
	case stacktemplate.FieldEmbedding:
		return m.Embedding()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StackTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stacktemplate.FieldTitle:
		return m.OldTitle(ctx)
	case stacktemplate.FieldBackend:
		return m.OldBackend(ctx)
	case stacktemplate.FieldFrontend:
		return m.OldFrontend(ctx)
	case stacktemplate.FieldDatabase:
		return m.OldDatabase(ctx)
	case stacktemplate.FieldDescription:
		return m.OldDescription(ctx)
	case stacktemplate.FieldEmbedding:
		return m.OldEmbedding(ctx)
	}
	return nil, fmt.Errorf("unknown StackTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StackTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stacktemplate.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case stacktemplate.FieldBackend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackend(v)
		return nil
	case stacktemplate.FieldFrontend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrontend(v)
		return nil
	case stacktemplate.FieldDatabase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatabase(v)
		return nil
	case stacktemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case stacktemplate.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	}
	return fmt.Errorf("unknown StackTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StackTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StackTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StackTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StackTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StackTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StackTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StackTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StackTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StackTemplateMutation) ResetField(name string) error {
	switch name {
	case stacktemplate.FieldTitle:
		m.ResetTitle()
		return nil
	case stacktemplate.FieldBackend:
		m.ResetBackend()
		return nil
	case stacktemplate.FieldFrontend:
		m.ResetFrontend()
		return nil
	case stacktemplate.FieldDatabase:
		m.ResetDatabase()
		return nil
	case stacktemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case stacktemplate.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	}
	return fmt.Errorf("unknown StackTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StackTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StackTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StackTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StackTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StackTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StackTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StackTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StackTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StackTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StackTemplate edge %s", name)
}

// SwarmMutation represents an operation that mutates the Swarm nodes in the graph.
type SwarmMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	status             *swarm.Status
	num_agents         *int
	addnum_agents      *int
	complexity         *string
	metadata           *map[string]interface{}
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	error_message      *string
	pod_id             *string
	last_heartbeat_at  *time.Time
	clearedFields      map[string]struct{}
	agents             map[string]struct{}
	removedagents      map[string]struct{}
	clearedagents      bool
	tasks              map[string]struct{}
	removedtasks       map[string]struct{}
	clearedtasks       bool
	escalations        map[string]struct{}
	removedescalations map[string]struct{}
	clearedescalations bool
	done               bool
	oldValue           func(context.Context) (*Swarm, error)
	predicates         []predicate.Swarm
}

var _ ent.Mutation = (*SwarmMutation)(nil)

// swarmOption allows management of the mutation configuration using functional options.
type swarmOption func(*SwarmMutation)

// newSwarmMutation creates new mutation for the Swarm entity.
func newSwarmMutation(c config, op Op, opts ...swarmOption) *SwarmMutation {
	m := &SwarmMutation{
		config:        c,
		op:            op,
		typ:           TypeSwarm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSwarmID sets the ID field of the mutation.
func withSwarmID(id string) swarmOption {
	return func(m *SwarmMutation) {
		var (
			err   error
			once  sync.Once
			value *Swarm
		)
		m.oldValue = func(ctx context.Context) (*Swarm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Swarm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSwarm sets the old Swarm of the mutation.
func withSwarm(node *Swarm) swarmOption {
	return func(m *SwarmMutation) {
		m.oldValue = func(context.Context) (*Swarm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SwarmMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SwarmMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Swarm entities.
func (m *SwarmMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SwarmMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SwarmMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Swarm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SwarmMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SwarmMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SwarmMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *SwarmMutation) SetStatus(s swarm.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SwarmMutation) Status() (r swarm.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldStatus(ctx context.Context) (v swarm.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SwarmMutation) ResetStatus() {
	m.status = nil
}

// SetNumAgents sets the "num_agents" field.
func (m *SwarmMutation) SetNumAgents(i int) {
	m.num_agents = &i
	m.addnum_agents = nil
}

// NumAgents returns the value of the "num_agents" field in the mutation.
func (m *SwarmMutation) NumAgents() (r int, exists bool) {
	v := m.num_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldNumAgents returns the old "num_agents" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldNumAgents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumAgents: %w", err)
	}
	return oldValue.NumAgents, nil
}

// AddNumAgents adds i to the "num_agents" field.
func (m *SwarmMutation) AddNumAgents(i int) {
	if m.addnum_agents != nil {
		*m.addnum_agents += i
	} else {
		m.addnum_agents = &i
	}
}

// AddedNumAgents returns the value that was added to the "num_agents" field in this mutation.
func (m *SwarmMutation) AddedNumAgents() (r int, exists bool) {
	v := m.addnum_agents
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumAgents resets all changes to the "num_agents" field.
func (m *SwarmMutation) ResetNumAgents() {
	m.num_agents = nil
	m.addnum_agents = nil
}

// SetComplexity sets the "complexity" field.
func (m *SwarmMutation) SetComplexity(s string) {
	m.complexity = &s
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *SwarmMutation) Complexity() (r string, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// ClearComplexity clears the value of the "complexity" field.
func (m *SwarmMutation) ClearComplexity() {
	m.complexity = nil
	m.clearedFields[swarm.FieldComplexity] = struct{}{}
}

// ComplexityCleared returns if the "complexity" field was cleared in this mutation.
func (m *SwarmMutation) ComplexityCleared() bool {
	_, ok := m.clearedFields[swarm.FieldComplexity]
	return ok
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *SwarmMutation) ResetComplexity() {
	m.complexity = nil
	delete(m.clearedFields, swarm.FieldComplexity)
}

// SetMetadata sets the "metadata" field.
func (m *SwarmMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SwarmMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SwarmMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[swarm.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SwarmMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[swarm.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SwarmMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, swarm.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SwarmMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SwarmMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SwarmMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SwarmMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SwarmMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SwarmMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[swarm.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SwarmMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[swarm.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SwarmMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, swarm.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SwarmMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SwarmMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SwarmMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[swarm.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SwarmMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[swarm.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SwarmMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, swarm.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *SwarmMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SwarmMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SwarmMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[swarm.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SwarmMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[swarm.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SwarmMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, swarm.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *SwarmMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *SwarmMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *SwarmMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[swarm.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *SwarmMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[swarm.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *SwarmMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, swarm.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *SwarmMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *SwarmMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Swarm entity.
// If the Swarm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SwarmMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *SwarmMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[swarm.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *SwarmMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[swarm.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *SwarmMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, swarm.FieldLastHeartbeatAt)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *SwarmMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *SwarmMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *SwarmMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *SwarmMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *SwarmMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *SwarmMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *SwarmMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *SwarmMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *SwarmMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *SwarmMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *SwarmMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *SwarmMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *SwarmMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *SwarmMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddEscalationIDs adds the "escalations" edge to the Escalation entity by ids.
func (m *SwarmMutation) AddEscalationIDs(ids ...string) {
	if m.escalations == nil {
		m.escalations = make(map[string]struct{})
	}
	for i := range ids {
		m.escalations[ids[i]] = struct{}{}
	}
}

// ClearEscalations clears the "escalations" edge to the Escalation entity.
func (m *SwarmMutation) ClearEscalations() {
	m.clearedescalations = true
}

// EscalationsCleared reports if the "escalations" edge to the Escalation entity was cleared.
func (m *SwarmMutation) EscalationsCleared() bool {
	return m.clearedescalations
}

// RemoveEscalationIDs removes the "escalations" edge to the Escalation entity by IDs.
func (m *SwarmMutation) RemoveEscalationIDs(ids ...string) {
	if m.removedescalations == nil {
		m.removedescalations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.escalations, ids[i])
		m.removedescalations[ids[i]] = struct{}{}
	}
}

// RemovedEscalations returns the removed IDs of the "escalations" edge to the Escalation entity.
func (m *SwarmMutation) RemovedEscalationsIDs() (ids []string) {
	for id := range m.removedescalations {
		ids = append(ids, id)
	}
	return
}

// EscalationsIDs returns the "escalations" edge IDs in the mutation.
func (m *SwarmMutation) EscalationsIDs() (ids []string) {
	for id := range m.escalations {
		ids = append(ids, id)
	}
	return
}

// ResetEscalations resets all changes to the "escalations" edge.
func (m *SwarmMutation) ResetEscalations() {
	m.escalations = nil
	m.clearedescalations = false
	m.removedescalations = nil
}

// Where appends a list predicates to the SwarmMutation builder.
func (m *SwarmMutation) Where(ps ...predicate.Swarm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SwarmMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SwarmMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Swarm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SwarmMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SwarmMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Swarm).
func (m *SwarmMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SwarmMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, swarm.FieldName)
	}
	if m.status != nil {
		fields = append(fields, swarm.FieldStatus)
	}
	if m.num_agents != nil {
		fields = append(fields, swarm.FieldNumAgents)
	}
	if m.complexity != nil {
		fields = append(fields, swarm.FieldComplexity)
	}
	if m.metadata != nil {
		fields = append(fields, swarm.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, swarm.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, swarm.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, swarm.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, swarm.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, swarm.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, swarm.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SwarmMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case swarm.FieldName:
		return m.Name()
	case swarm.FieldStatus:
		return m.Status()
	case swarm.FieldNumAgents:
		return m.NumAgents()
	case swarm.FieldComplexity:
		return m.Complexity()
	case swarm.FieldMetadata:
		return m.Metadata()
	case swarm.FieldCreatedAt:
		return m.CreatedAt()
	case swarm.FieldStartedAt:
		return m.StartedAt()
	case swarm.FieldCompletedAt:
		return m.CompletedAt()
	case swarm.FieldErrorMessage:
		return m.ErrorMessage()
	case swarm.FieldPodID:
		return m.PodID()
	case swarm.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SwarmMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case swarm.FieldName:
		return m.OldName(ctx)
	case swarm.FieldStatus:
		return m.OldStatus(ctx)
	case swarm.FieldNumAgents:
		return m.OldNumAgents(ctx)
	case swarm.FieldComplexity:
		return m.OldComplexity(ctx)
	case swarm.FieldMetadata:
		return m.OldMetadata(ctx)
	case swarm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case swarm.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case swarm.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case swarm.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case swarm.FieldPodID:
		return m.OldPodID(ctx)
	case swarm.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Swarm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SwarmMutation) SetField(name string, value ent.Value) error {
	switch name {
	case swarm.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case swarm.FieldStatus:
		v, ok := value.(swarm.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case swarm.FieldNumAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumAgents(v)
		return nil
	case swarm.FieldComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	case swarm.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case swarm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case swarm.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case swarm.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case swarm.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case swarm.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case swarm.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Swarm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SwarmMutation) AddedFields() []string {
	var fields []string
	if m.addnum_agents != nil {
		fields = append(fields, swarm.FieldNumAgents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SwarmMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case swarm.FieldNumAgents:
		return m.AddedNumAgents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SwarmMutation) AddField(name string, value ent.Value) error {
	switch name {
	case swarm.FieldNumAgents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumAgents(v)
		return nil
	}
	return fmt.Errorf("unknown Swarm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SwarmMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(swarm.FieldComplexity) {
		fields = append(fields, swarm.FieldComplexity)
	}
	if m.FieldCleared(swarm.FieldMetadata) {
		fields = append(fields, swarm.FieldMetadata)
	}
	if m.FieldCleared(swarm.FieldStartedAt) {
		fields = append(fields, swarm.FieldStartedAt)
	}
	if m.FieldCleared(swarm.FieldCompletedAt) {
		fields = append(fields, swarm.FieldCompletedAt)
	}
	if m.FieldCleared(swarm.FieldErrorMessage) {
		fields = append(fields, swarm.FieldErrorMessage)
	}
	if m.FieldCleared(swarm.FieldPodID) {
		fields = append(fields, swarm.FieldPodID)
	}
	if m.FieldCleared(swarm.FieldLastHeartbeatAt) {
		fields = append(fields, swarm.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SwarmMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SwarmMutation) ClearField(name string) error {
	switch name {
	case swarm.FieldComplexity:
		m.ClearComplexity()
		return nil
	case swarm.FieldMetadata:
		m.ClearMetadata()
		return nil
	case swarm.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case swarm.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case swarm.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case swarm.FieldPodID:
		m.ClearPodID()
		return nil
	case swarm.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Swarm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SwarmMutation) ResetField(name string) error {
	switch name {
	case swarm.FieldName:
		m.ResetName()
		return nil
	case swarm.FieldStatus:
		m.ResetStatus()
		return nil
	case swarm.FieldNumAgents:
		m.ResetNumAgents()
		return nil
	case swarm.FieldComplexity:
		m.ResetComplexity()
		return nil
	case swarm.FieldMetadata:
		m.ResetMetadata()
		return nil
	case swarm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case swarm.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case swarm.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case swarm.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case swarm.FieldPodID:
		m.ResetPodID()
		return nil
	case swarm.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Swarm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SwarmMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agents != nil {
		edges = append(edges, swarm.EdgeAgents)
	}
	if m.tasks != nil {
		edges = append(edges, swarm.EdgeTasks)
	}
	if m.escalations != nil {
		edges = append(edges, swarm.EdgeEscalations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SwarmMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case swarm.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case swarm.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case swarm.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.escalations))
		for id := range m.escalations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SwarmMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedagents != nil {
		edges = append(edges, swarm.EdgeAgents)
	}
	if m.removedtasks != nil {
		edges = append(edges, swarm.EdgeTasks)
	}
	if m.removedescalations != nil {
		edges = append(edges, swarm.EdgeEscalations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SwarmMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case swarm.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case swarm.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case swarm.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.removedescalations))
		for id := range m.removedescalations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SwarmMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagents {
		edges = append(edges, swarm.EdgeAgents)
	}
	if m.clearedtasks {
		edges = append(edges, swarm.EdgeTasks)
	}
	if m.clearedescalations {
		edges = append(edges, swarm.EdgeEscalations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SwarmMutation) EdgeCleared(name string) bool {
	switch name {
	case swarm.EdgeAgents:
		return m.clearedagents
	case swarm.EdgeTasks:
		return m.clearedtasks
	case swarm.EdgeEscalations:
		return m.clearedescalations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SwarmMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Swarm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SwarmMutation) ResetEdge(name string) error {
	switch name {
	case swarm.EdgeAgents:
		m.ResetAgents()
		return nil
	case swarm.EdgeTasks:
		m.ResetTasks()
		return nil
	case swarm.EdgeEscalations:
		m.ResetEscalations()
		return nil
	}
	return fmt.Errorf("unknown Swarm edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	task_key           *string
	agent_id           *string
	title              *string
	description        *string
	priority           *int
	addpriority        *int
	status             *task.Status
	dependencies       *[]string
	appenddependencies []string
	data               *map[string]interface{}
	attempts           *int
	addattempts        *int
	max_attempts       *int
	addmax_attempts    *int
	phase              *string
	milestone          *bool
	failure_reason     *string
	last_failed_at     *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	swarm              *string
	clearedswarm       bool
	done               bool
	oldValue           func(context.Context) (*Task, error)
	predicates         []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSwarmID sets the "swarm_id" field.
func (m *TaskMutation) SetSwarmID(s string) {
	m.swarm = &s
}

// SwarmID returns the value of the "swarm_id" field in the mutation.
func (m *TaskMutation) SwarmID() (r string, exists bool) {
	v := m.swarm
	if v == nil {
		return
	}
	return *v, true
}

// OldSwarmID returns the old "swarm_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSwarmID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSwarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSwarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSwarmID: %w", err)
	}
	return oldValue.SwarmID, nil
}

// ResetSwarmID resets all changes to the "swarm_id" field.
func (m *TaskMutation) ResetSwarmID() {
	m.swarm = nil
}

// SetTaskKey sets the "task_key" field.
func (m *TaskMutation) SetTaskKey(s string) {
	m.task_key = &s
}

// TaskKey returns the value of the "task_key" field in the mutation.
func (m *TaskMutation) TaskKey() (r string, exists bool) {
	v := m.task_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskKey returns the old "task_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskKey: %w", err)
	}
	return oldValue.TaskKey, nil
}

// ResetTaskKey resets all changes to the "task_key" field.
func (m *TaskMutation) ResetTaskKey() {
	m.task_key = nil
}

// SetAgentID sets the "agent_id" field.
func (m *TaskMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TaskMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *TaskMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[task.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *TaskMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TaskMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, task.FieldAgentID)
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetDependencies sets the "dependencies" field.
func (m *TaskMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *TaskMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *TaskMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[task.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[task.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, task.FieldDependencies)
}

// SetData sets the "data" field.
func (m *TaskMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *TaskMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *TaskMutation) ClearData() {
	m.data = nil
	m.clearedFields[task.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *TaskMutation) DataCleared() bool {
	_, ok := m.clearedFields[task.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *TaskMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, task.FieldData)
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetPhase sets the "phase" field.
func (m *TaskMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *TaskMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *TaskMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[task.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *TaskMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[task.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *TaskMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, task.FieldPhase)
}

// SetMilestone sets the "milestone" field.
func (m *TaskMutation) SetMilestone(b bool) {
	m.milestone = &b
}

// Milestone returns the value of the "milestone" field in the mutation.
func (m *TaskMutation) Milestone() (r bool, exists bool) {
	v := m.milestone
	if v == nil {
		return
	}
	return *v, true
}

// OldMilestone returns the old "milestone" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMilestone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMilestone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMilestone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMilestone: %w", err)
	}
	return oldValue.Milestone, nil
}

// ResetMilestone resets all changes to the "milestone" field.
func (m *TaskMutation) ResetMilestone() {
	m.milestone = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[task.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, task.FieldFailureReason)
}

// SetLastFailedAt sets the "last_failed_at" field.
func (m *TaskMutation) SetLastFailedAt(t time.Time) {
	m.last_failed_at = &t
}

// LastFailedAt returns the value of the "last_failed_at" field in the mutation.
func (m *TaskMutation) LastFailedAt() (r time.Time, exists bool) {
	v := m.last_failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailedAt returns the old "last_failed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailedAt: %w", err)
	}
	return oldValue.LastFailedAt, nil
}

// ClearLastFailedAt clears the value of the "last_failed_at" field.
func (m *TaskMutation) ClearLastFailedAt() {
	m.last_failed_at = nil
	m.clearedFields[task.FieldLastFailedAt] = struct{}{}
}

// LastFailedAtCleared returns if the "last_failed_at" field was cleared in this mutation.
func (m *TaskMutation) LastFailedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastFailedAt]
	return ok
}

// ResetLastFailedAt resets all changes to the "last_failed_at" field.
func (m *TaskMutation) ResetLastFailedAt() {
	m.last_failed_at = nil
	delete(m.clearedFields, task.FieldLastFailedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSwarm clears the "swarm" edge to the Swarm entity.
func (m *TaskMutation) ClearSwarm() {
	m.clearedswarm = true
	m.clearedFields[task.FieldSwarmID] = struct{}{}
}

// SwarmCleared reports if the "swarm" edge to the Swarm entity was cleared.
func (m *TaskMutation) SwarmCleared() bool {
	return m.clearedswarm
}

// SwarmIDs returns the "swarm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SwarmID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) SwarmIDs() (ids []string) {
	if id := m.swarm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSwarm resets all changes to the "swarm" edge.
func (m *TaskMutation) ResetSwarm() {
	m.swarm = nil
	m.clearedswarm = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.swarm != nil {
		fields = append(fields, task.FieldSwarmID)
	}
	if m.task_key != nil {
		fields = append(fields, task.FieldTaskKey)
	}
	if m.agent_id != nil {
		fields = append(fields, task.FieldAgentID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.dependencies != nil {
		fields = append(fields, task.FieldDependencies)
	}
	if m.data != nil {
		fields = append(fields, task.FieldData)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.phase != nil {
		fields = append(fields, task.FieldPhase)
	}
	if m.milestone != nil {
		fields = append(fields, task.FieldMilestone)
	}
	if m.failure_reason != nil {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.last_failed_at != nil {
		fields = append(fields, task.FieldLastFailedAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldSwarmID:
		return m.SwarmID()
	case task.FieldTaskKey:
		return m.TaskKey()
	case task.FieldAgentID:
		return m.AgentID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldStatus:
		return m.Status()
	case task.FieldDependencies:
		return m.Dependencies()
	case task.FieldData:
		return m.Data()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldPhase:
		return m.Phase()
	case task.FieldMilestone:
		return m.Milestone()
	case task.FieldFailureReason:
		return m.FailureReason()
	case task.FieldLastFailedAt:
		return m.LastFailedAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldSwarmID:
		return m.OldSwarmID(ctx)
	case task.FieldTaskKey:
		return m.OldTaskKey(ctx)
	case task.FieldAgentID:
		return m.OldAgentID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldDependencies:
		return m.OldDependencies(ctx)
	case task.FieldData:
		return m.OldData(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldPhase:
		return m.OldPhase(ctx)
	case task.FieldMilestone:
		return m.OldMilestone(ctx)
	case task.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case task.FieldLastFailedAt:
		return m.OldLastFailedAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldSwarmID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSwarmID(v)
		return nil
	case task.FieldTaskKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskKey(v)
		return nil
	case task.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case task.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case task.FieldMilestone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMilestone(v)
		return nil
	case task.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case task.FieldLastFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailedAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	case task.FieldAttempts:
		return m.AddedAttempts()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldAgentID) {
		fields = append(fields, task.FieldAgentID)
	}
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldDependencies) {
		fields = append(fields, task.FieldDependencies)
	}
	if m.FieldCleared(task.FieldData) {
		fields = append(fields, task.FieldData)
	}
	if m.FieldCleared(task.FieldPhase) {
		fields = append(fields, task.FieldPhase)
	}
	if m.FieldCleared(task.FieldFailureReason) {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.FieldCleared(task.FieldLastFailedAt) {
		fields = append(fields, task.FieldLastFailedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldAgentID:
		m.ClearAgentID()
		return nil
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldDependencies:
		m.ClearDependencies()
		return nil
	case task.FieldData:
		m.ClearData()
		return nil
	case task.FieldPhase:
		m.ClearPhase()
		return nil
	case task.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case task.FieldLastFailedAt:
		m.ClearLastFailedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldSwarmID:
		m.ResetSwarmID()
		return nil
	case task.FieldTaskKey:
		m.ResetTaskKey()
		return nil
	case task.FieldAgentID:
		m.ResetAgentID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldDependencies:
		m.ResetDependencies()
		return nil
	case task.FieldData:
		m.ResetData()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldPhase:
		m.ResetPhase()
		return nil
	case task.FieldMilestone:
		m.ResetMilestone()
		return nil
	case task.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case task.FieldLastFailedAt:
		m.ResetLastFailedAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.swarm != nil {
		edges = append(edges, task.EdgeSwarm)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSwarm:
		if id := m.swarm; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedswarm {
		edges = append(edges, task.EdgeSwarm)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSwarm:
		return m.clearedswarm
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeSwarm:
		m.ClearSwarm()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSwarm:
		m.ResetSwarm()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
