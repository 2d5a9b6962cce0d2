// Code generated by ent, DO NOT EDIT.

package stacktemplate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/crewforge/crewforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldTitle, v))
}

// Backend applies equality check predicate on the "backend" field. It's identical to BackendEQ.
func Backend(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldBackend, v))
}

// Frontend applies equality check predicate on the "frontend" field. It's identical to FrontendEQ.
func Frontend(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldFrontend, v))
}

// Database applies equality check predicate on the "database" field. It's identical to DatabaseEQ.
func Database(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldDatabase, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldDescription, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldTitle, v))
}

// BackendEQ applies the EQ predicate on the "backend" field.
func BackendEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldBackend, v))
}

// BackendNEQ applies the NEQ predicate on the "backend" field.
func BackendNEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldBackend, v))
}

// BackendIn applies the In predicate on the "backend" field.
func BackendIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldBackend, vs...))
}

// BackendNotIn applies the NotIn predicate on the "backend" field.
func BackendNotIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldBackend, vs...))
}

// BackendGT applies the GT predicate on the "backend" field.
func BackendGT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldBackend, v))
}

// BackendGTE applies the GTE predicate on the "backend" field.
func BackendGTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldBackend, v))
}

// BackendLT applies the LT predicate on the "backend" field.
func BackendLT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldBackend, v))
}

// BackendLTE applies the LTE predicate on the "backend" field.
func BackendLTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldBackend, v))
}

// BackendContains applies the Contains predicate on the "backend" field.
func BackendContains(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContains(FieldBackend, v))
}

// BackendHasPrefix applies the HasPrefix predicate on the "backend" field.
func BackendHasPrefix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasPrefix(FieldBackend, v))
}

// BackendHasSuffix applies the HasSuffix predicate on the "backend" field.
func BackendHasSuffix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasSuffix(FieldBackend, v))
}

// BackendEqualFold applies the EqualFold predicate on the "backend" field.
func BackendEqualFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldBackend, v))
}

// BackendContainsFold applies the ContainsFold predicate on the "backend" field.
func BackendContainsFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldBackend, v))
}

// FrontendEQ applies the EQ predicate on the "frontend" field.
func FrontendEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldFrontend, v))
}

// FrontendNEQ applies the NEQ predicate on the "frontend" field.
func FrontendNEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldFrontend, v))
}

// FrontendIn applies the In predicate on the "frontend" field.
func FrontendIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldFrontend, vs...))
}

// FrontendNotIn applies the NotIn predicate on the "frontend" field.
func FrontendNotIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldFrontend, vs...))
}

// FrontendGT applies the GT predicate on the "frontend" field.
func FrontendGT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldFrontend, v))
}

// FrontendGTE applies the GTE predicate on the "frontend" field.
func FrontendGTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldFrontend, v))
}

// FrontendLT applies the LT predicate on the "frontend" field.
func FrontendLT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldFrontend, v))
}

// FrontendLTE applies the LTE predicate on the "frontend" field.
func FrontendLTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldFrontend, v))
}

// FrontendContains applies the Contains predicate on the "frontend" field.
func FrontendContains(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContains(FieldFrontend, v))
}

// FrontendHasPrefix applies the HasPrefix predicate on the "frontend" field.
func FrontendHasPrefix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasPrefix(FieldFrontend, v))
}

// FrontendHasSuffix applies the HasSuffix predicate on the "frontend" field.
func FrontendHasSuffix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasSuffix(FieldFrontend, v))
}

// FrontendEqualFold applies the EqualFold predicate on the "frontend" field.
func FrontendEqualFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldFrontend, v))
}

// FrontendContainsFold applies the ContainsFold predicate on the "frontend" field.
func FrontendContainsFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldFrontend, v))
}

// DatabaseEQ applies the EQ predicate on the "database" field.
func DatabaseEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldDatabase, v))
}

// DatabaseNEQ applies the NEQ predicate on the "database" field.
func DatabaseNEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldDatabase, v))
}

// DatabaseIn applies the In predicate on the "database" field.
func DatabaseIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldDatabase, vs...))
}

// DatabaseNotIn applies the NotIn predicate on the "database" field.
func DatabaseNotIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldDatabase, vs...))
}

// DatabaseGT applies the GT predicate on the "database" field.
func DatabaseGT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldDatabase, v))
}

// DatabaseGTE applies the GTE predicate on the "database" field.
func DatabaseGTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldDatabase, v))
}

// DatabaseLT applies the LT predicate on the "database" field.
func DatabaseLT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldDatabase, v))
}

// DatabaseLTE applies the LTE predicate on the "database" field.
func DatabaseLTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldDatabase, v))
}

// DatabaseContains applies the Contains predicate on the "database" field.
func DatabaseContains(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContains(FieldDatabase, v))
}

// DatabaseHasPrefix applies the HasPrefix predicate on the "database" field.
func DatabaseHasPrefix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasPrefix(FieldDatabase, v))
}

// DatabaseHasSuffix applies the HasSuffix predicate on the "database" field.
func DatabaseHasSuffix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasSuffix(FieldDatabase, v))
}

// DatabaseEqualFold applies the EqualFold predicate on the "database" field.
func DatabaseEqualFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldDatabase, v))
}

// DatabaseContainsFold applies the ContainsFold predicate on the "database" field.
func DatabaseContainsFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldDatabase, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StackTemplate {
	return predicate.StackTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StackTemplate) predicate.StackTemplate {
	return predicate.StackTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StackTemplate) predicate.StackTemplate {
	return predicate.StackTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StackTemplate) predicate.StackTemplate {
	return predicate.StackTemplate(sql.NotPredicates(p))
}
