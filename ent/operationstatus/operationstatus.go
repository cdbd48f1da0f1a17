// Code generated by ent, DO NOT EDIT.

package operationstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the operationstatus type in the database.
	Label = "operation_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOperationID holds the string denoting the operation_id field in the database.
	FieldOperationID = "operation_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldTerminal holds the string denoting the terminal field in the database.
	FieldTerminal = "terminal"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// Table holds the table name of the operationstatus in the database.
	Table = "operation_status"
)

// Columns holds all SQL columns for operationstatus fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOperationID,
	FieldPhase,
	FieldDetail,
	FieldTerminal,
	FieldSuccess,
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

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// OperationIDValidator is a validator for the "operation_id" field. It is called by the builders before save.
	OperationIDValidator func(string) error
	// PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	PhaseValidator func(string) error
	// DefaultTerminal holds the default value on creation for the "terminal" field.
	DefaultTerminal bool
)

// OrderOption defines the ordering options for the OperationStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOperationID orders the results by the operation_id field.
func ByOperationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByTerminal orders the results by the terminal field.
func ByTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminal, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}
