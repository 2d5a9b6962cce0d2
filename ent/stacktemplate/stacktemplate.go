// Code generated by ent, DO NOT EDIT.

package stacktemplate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stacktemplate type in the database.
	Label = "stack_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "template_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBackend holds the string denoting the backend field in the database.
	FieldBackend = "backend"
	// FieldFrontend holds the string denoting the frontend field in the database.
	FieldFrontend = "frontend"
	// FieldDatabase holds the string denoting the database field in the database.
	FieldDatabase = "database"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// Table holds the table name of the stacktemplate in the database.
	Table = "stack_templates"
)

// Columns holds all SQL columns for stacktemplate fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldBackend,
	FieldFrontend,
	FieldDatabase,
	FieldDescription,
	FieldEmbedding,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the StackTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBackend orders the results by the backend field.
func ByBackend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackend, opts...).ToFunc()
}

// ByFrontend orders the results by the frontend field.
func ByFrontend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrontend, opts...).ToFunc()
}

// ByDatabase orders the results by the database field.
func ByDatabase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatabase, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
