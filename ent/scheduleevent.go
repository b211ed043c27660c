// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// ScheduleEvent is the model entity for the ScheduleEvent schema.
type ScheduleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Track holds the value of the "track" field.
	Track string `json:"track,omitempty"`
	// assigned | rolled_over | backfilled | range_exhausted
	Kind string `json:"kind,omitempty"`
	// Study-day the action applies to
	Day string `json:"day,omitempty"`
	// LessonNos holds the value of the "lesson_nos" field.
	LessonNos []int `json:"lesson_nos,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID        string `json:"run_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleevent.FieldLessonNos:
			values[i] = new([]byte)
		case scheduleevent.FieldID, scheduleevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case scheduleevent.FieldUserID, scheduleevent.FieldTrack, scheduleevent.FieldKind, scheduleevent.FieldDay, scheduleevent.FieldRunID:
			values[i] = new(sql.NullString)
		case scheduleevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleEvent fields.
func (_m *ScheduleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scheduleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scheduleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scheduleevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case scheduleevent.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case scheduleevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case scheduleevent.FieldDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.String
			}
		case scheduleevent.FieldLessonNos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_nos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LessonNos); err != nil {
					return fmt.Errorf("unmarshal field lesson_nos: %w", err)
				}
			}
		case scheduleevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduleEvent.
// Note that you need to call ScheduleEvent.Unwrap() before calling this method if this ScheduleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduleEvent) Update() *ScheduleEventUpdateOne {
	return NewScheduleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduleEvent) Unwrap() *ScheduleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day)
	builder.WriteString(", ")
	builder.WriteString("lesson_nos=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonNos))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleEvents is a parsable slice of ScheduleEvent.
type ScheduleEvents []*ScheduleEvent
