// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"dir-steward.io/steward/ent/operationstatus"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// OperationStatus is the model entity for the OperationStatus schema.
type OperationStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OperationID holds the value of the "operation_id" field.
	OperationID string `json:"operation_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// Terminal holds the value of the "terminal" field.
	Terminal bool `json:"terminal,omitempty"`
	// Success holds the value of the "success" field.
	Success      bool `json:"success,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OperationStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case operationstatus.FieldTerminal, operationstatus.FieldSuccess:
			values[i] = new(sql.NullBool)
		case operationstatus.FieldID, operationstatus.FieldOperationID, operationstatus.FieldPhase, operationstatus.FieldDetail:
			values[i] = new(sql.NullString)
		case operationstatus.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OperationStatus fields.
func (_m *OperationStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case operationstatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case operationstatus.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case operationstatus.FieldOperationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_id", values[i])
			} else if value.Valid {
				_m.OperationID = value.String
			}
		case operationstatus.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case operationstatus.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case operationstatus.FieldTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field terminal", values[i])
			} else if value.Valid {
				_m.Terminal = value.Bool
			}
		case operationstatus.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OperationStatus.
// This includes values selected through modifiers, order, etc.
func (_m *OperationStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OperationStatus.
// Note that you need to call OperationStatus.Unwrap() before calling this method if this OperationStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OperationStatus) Update() *OperationStatusUpdateOne {
	return NewOperationStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OperationStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OperationStatus) Unwrap() *OperationStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OperationStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OperationStatus) String() string {
	var builder strings.Builder
	builder.WriteString("OperationStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("operation_id=")
	builder.WriteString(_m.OperationID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Terminal))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteByte(')')
	return builder.String()
}

// OperationStatusSlice is a parsable slice of OperationStatus.
type OperationStatusSlice []*OperationStatus
