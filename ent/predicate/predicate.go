// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProgressDoc is the predicate function for progressdoc builders.
type ProgressDoc func(*sql.Selector)

// ScheduleEvent is the predicate function for scheduleevent builders.
type ScheduleEvent func(*sql.Selector)
