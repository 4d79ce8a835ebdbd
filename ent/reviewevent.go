// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sdey/revu/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner this action belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Owning course
	CourseID string `json:"course_id,omitempty"`
	// Owning chapter
	ModuleID string `json:"module_id,omitempty"`
	// The reviewed item
	ItemID string `json:"item_id,omitempty"`
	// flashcard or activity
	ItemKind string `json:"item_kind,omitempty"`
	// rate or skip
	Action string `json:"action,omitempty"`
	// easy, medium, or hard (empty for skips)
	Difficulty string `json:"difficulty,omitempty"`
	// Milliseconds the item was on screen
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldLearnerID, reviewevent.FieldSessionID, reviewevent.FieldCourseID, reviewevent.FieldModuleID, reviewevent.FieldItemID, reviewevent.FieldItemKind, reviewevent.FieldAction, reviewevent.FieldDifficulty:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case reviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reviewevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case reviewevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case reviewevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reviewevent.FieldItemKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_kind", values[i])
			} else if value.Valid {
				_m.ItemKind = value.String
			}
		case reviewevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case reviewevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case reviewevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
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
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("item_kind=")
	builder.WriteString(_m.ItemKind)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
