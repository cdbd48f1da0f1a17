// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentType is the predicate function for agenttype builders.
type AgentType func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// DomainEvent is the predicate function for domainevent builders.
type DomainEvent func(*sql.Selector)

// OperationStatus is the predicate function for operationstatus builders.
type OperationStatus func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
