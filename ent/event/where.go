// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// SwarmID applies equality check predicate on the "swarm_id" field. It's identical to SwarmIDEQ.
func SwarmID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSwarmID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKind, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTimestamp, v))
}

// SwarmIDEQ applies the EQ predicate on the "swarm_id" field.
func SwarmIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSwarmID, v))
}

// SwarmIDNEQ applies the NEQ predicate on the "swarm_id" field.
func SwarmIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSwarmID, v))
}

// SwarmIDIn applies the In predicate on the "swarm_id" field.
func SwarmIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSwarmID, vs...))
}

// SwarmIDNotIn applies the NotIn predicate on the "swarm_id" field.
func SwarmIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSwarmID, vs...))
}

// SwarmIDGT applies the GT predicate on the "swarm_id" field.
func SwarmIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSwarmID, v))
}

// SwarmIDGTE applies the GTE predicate on the "swarm_id" field.
func SwarmIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSwarmID, v))
}

// SwarmIDLT applies the LT predicate on the "swarm_id" field.
func SwarmIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSwarmID, v))
}

// SwarmIDLTE applies the LTE predicate on the "swarm_id" field.
func SwarmIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSwarmID, v))
}

// SwarmIDContains applies the Contains predicate on the "swarm_id" field.
func SwarmIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSwarmID, v))
}

// SwarmIDHasPrefix applies the HasPrefix predicate on the "swarm_id" field.
func SwarmIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSwarmID, v))
}

// SwarmIDHasSuffix applies the HasSuffix predicate on the "swarm_id" field.
func SwarmIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSwarmID, v))
}

// SwarmIDEqualFold applies the EqualFold predicate on the "swarm_id" field.
func SwarmIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSwarmID, v))
}

// SwarmIDContainsFold applies the ContainsFold predicate on the "swarm_id" field.
func SwarmIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSwarmID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldKind, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTimestamp, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldData))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
