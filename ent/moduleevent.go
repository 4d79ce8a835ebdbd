// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sdey/revu/ent/moduleevent"
)

// ModuleEvent is the model entity for the ModuleEvent schema.
type ModuleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner whose progress changed
	LearnerID string `json:"learner_id,omitempty"`
	// Owning course
	CourseID string `json:"course_id,omitempty"`
	// The chapter that changed state
	ModuleID string `json:"module_id,omitempty"`
	// complete or reset
	Action       string `json:"action,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModuleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moduleevent.FieldID, moduleevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case moduleevent.FieldLearnerID, moduleevent.FieldCourseID, moduleevent.FieldModuleID, moduleevent.FieldAction:
			values[i] = new(sql.NullString)
		case moduleevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModuleEvent fields.
func (_m *ModuleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moduleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case moduleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case moduleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case moduleevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case moduleevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case moduleevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case moduleevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModuleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ModuleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModuleEvent.
// Note that you need to call ModuleEvent.Unwrap() before calling this method if this ModuleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModuleEvent) Update() *ModuleEventUpdateOne {
	return NewModuleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModuleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModuleEvent) Unwrap() *ModuleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModuleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModuleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ModuleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteByte(')')
	return builder.String()
}

// ModuleEvents is a parsable slice of ModuleEvent.
type ModuleEvents []*ModuleEvent
