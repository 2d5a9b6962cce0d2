// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewforge/crewforge/ent/agent"
	"github.com/crewforge/crewforge/ent/escalation"
	"github.com/crewforge/crewforge/ent/predicate"
	"github.com/crewforge/crewforge/ent/swarm"
	"github.com/crewforge/crewforge/ent/task"
)

// SwarmQuery is the builder for querying Swarm entities.
type SwarmQuery struct {
	config
	ctx             *QueryContext
	order           []swarm.OrderOption
	inters          []Interceptor
	predicates      []predicate.Swarm
	withAgents      *AgentQuery
	withTasks       *TaskQuery
	withEscalations *EscalationQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SwarmQuery builder.
func (_q *SwarmQuery) Where(ps ...predicate.Swarm) *SwarmQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SwarmQuery) Limit(limit int) *SwarmQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SwarmQuery) Offset(offset int) *SwarmQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SwarmQuery) Unique(unique bool) *SwarmQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SwarmQuery) Order(o ...swarm.OrderOption) *SwarmQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgents chains the current query on the "agents" edge.
func (_q *SwarmQuery) QueryAgents() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(swarm.Table, swarm.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, swarm.AgentsTable, swarm.AgentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTasks chains the current query on the "tasks" edge.
func (_q *SwarmQuery) QueryTasks() *TaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(swarm.Table, swarm.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, swarm.TasksTable, swarm.TasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEscalations chains the current query on the "escalations" edge.
func (_q *SwarmQuery) QueryEscalations() *EscalationQuery {
	query := (&EscalationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(swarm.Table, swarm.FieldID, selector),
			sqlgraph.To(escalation.Table, escalation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, swarm.EscalationsTable, swarm.EscalationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Swarm entity from the query.
// Returns a *NotFoundError when no Swarm was found.
func (_q *SwarmQuery) First(ctx context.Context) (*Swarm, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{swarm.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SwarmQuery) FirstX(ctx context.Context) *Swarm {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Swarm ID from the query.
// Returns a *NotFoundError when no Swarm ID was found.
func (_q *SwarmQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{swarm.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SwarmQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Swarm entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Swarm entity is found.
// Returns a *NotFoundError when no Swarm entities are found.
func (_q *SwarmQuery) Only(ctx context.Context) (*Swarm, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{swarm.Label}
	default:
		return nil, &NotSingularError{swarm.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SwarmQuery) OnlyX(ctx context.Context) *Swarm {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Swarm ID in the query.
// Returns a *NotSingularError when more than one Swarm ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SwarmQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{swarm.Label}
	default:
		err = &NotSingularError{swarm.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SwarmQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Swarms.
func (_q *SwarmQuery) All(ctx context.Context) ([]*Swarm, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Swarm, *SwarmQuery]()
	return withInterceptors[[]*Swarm](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SwarmQuery) AllX(ctx context.Context) []*Swarm {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Swarm IDs.
func (_q *SwarmQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(swarm.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SwarmQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SwarmQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SwarmQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SwarmQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SwarmQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SwarmQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SwarmQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SwarmQuery) Clone() *SwarmQuery {
	if _q == nil {
		return nil
	}
	return &SwarmQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]swarm.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Swarm{}, _q.predicates...),
		withAgents:      _q.withAgents.Clone(),
		withTasks:       _q.withTasks.Clone(),
		withEscalations: _q.withEscalations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgents tells the query-builder to eager-load the nodes that are connected to
// the "agents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SwarmQuery) WithAgents(opts ...func(*AgentQuery)) *SwarmQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgents = query
	return _q
}

// WithTasks tells the query-builder to eager-load the nodes that are connected to
// the "tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SwarmQuery) WithTasks(opts ...func(*TaskQuery)) *SwarmQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTasks = query
	return _q
}

// WithEscalations tells the query-builder to eager-load the nodes that are connected to
// the "escalations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SwarmQuery) WithEscalations(opts ...func(*EscalationQuery)) *SwarmQuery {
	query := (&EscalationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEscalations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Swarm.Query().
//		GroupBy(swarm.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SwarmQuery) GroupBy(field string, fields ...string) *SwarmGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SwarmGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = swarm.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Swarm.Query().
//		Select(swarm.FieldName).
//		Scan(ctx, &v)
func (_q *SwarmQuery) Select(fields ...string) *SwarmSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SwarmSelect{SwarmQuery: _q}
	sbuild.label = swarm.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SwarmSelect configured with the given aggregations.
func (_q *SwarmQuery) Aggregate(fns ...AggregateFunc) *SwarmSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SwarmQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !swarm.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SwarmQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Swarm, error) {
	var (
		nodes       = []*Swarm{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAgents != nil,
			_q.withTasks != nil,
			_q.withEscalations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Swarm).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Swarm{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAgents; query != nil {
		if err := _q.loadAgents(ctx, query, nodes,
			func(n *Swarm) { n.Edges.Agents = []*Agent{} },
			func(n *Swarm, e *Agent) { n.Edges.Agents = append(n.Edges.Agents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTasks; query != nil {
		if err := _q.loadTasks(ctx, query, nodes,
			func(n *Swarm) { n.Edges.Tasks = []*Task{} },
			func(n *Swarm, e *Task) { n.Edges.Tasks = append(n.Edges.Tasks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEscalations; query != nil {
		if err := _q.loadEscalations(ctx, query, nodes,
			func(n *Swarm) { n.Edges.Escalations = []*Escalation{} },
			func(n *Swarm, e *Escalation) { n.Edges.Escalations = append(n.Edges.Escalations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SwarmQuery) loadAgents(ctx context.Context, query *AgentQuery, nodes []*Swarm, init func(*Swarm), assign func(*Swarm, *Agent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Swarm)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agent.FieldSwarmID)
	}
	query.Where(predicate.Agent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(swarm.AgentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SwarmID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "swarm_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SwarmQuery) loadTasks(ctx context.Context, query *TaskQuery, nodes []*Swarm, init func(*Swarm), assign func(*Swarm, *Task)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Swarm)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(task.FieldSwarmID)
	}
	query.Where(predicate.Task(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(swarm.TasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SwarmID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "swarm_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SwarmQuery) loadEscalations(ctx context.Context, query *EscalationQuery, nodes []*Swarm, init func(*Swarm), assign func(*Swarm, *Escalation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Swarm)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(escalation.FieldSwarmID)
	}
	query.Where(predicate.Escalation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(swarm.EscalationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SwarmID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "swarm_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SwarmQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SwarmQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(swarm.Table, swarm.Columns, sqlgraph.NewFieldSpec(swarm.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, swarm.FieldID)
		for i := range fields {
			if fields[i] != swarm.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SwarmQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(swarm.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = swarm.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SwarmQuery) ForUpdate(opts ...sql.LockOption) *SwarmQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SwarmQuery) ForShare(opts ...sql.LockOption) *SwarmQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SwarmGroupBy is the group-by builder for Swarm entities.
type SwarmGroupBy struct {
	selector
	build *SwarmQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SwarmGroupBy) Aggregate(fns ...AggregateFunc) *SwarmGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SwarmGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SwarmQuery, *SwarmGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SwarmGroupBy) sqlScan(ctx context.Context, root *SwarmQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SwarmSelect is the builder for selecting fields of Swarm entities.
type SwarmSelect struct {
	*SwarmQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SwarmSelect) Aggregate(fns ...AggregateFunc) *SwarmSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SwarmSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SwarmQuery, *SwarmSelect](ctx, _s.SwarmQuery, _s, _s.inters, v)
}

func (_s *SwarmSelect) sqlScan(ctx context.Context, root *SwarmQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
