// Package progress defines the canonical per-learner progress document
// and the tolerant normalizer that maps persisted (possibly legacy)
// shapes into it. Every other component works exclusively with the
// canonical form; legacy-shape handling never leaks out of this package.
package progress

import (
	"time"

	"github.com/abhisek/lessonq/internal/dayutil"
)

// TimestampLayout is the wire format for record timestamps. Records are
// dated at midnight UTC of their study-day, so the offset always renders
// as "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CompletionRecord marks a lesson the learner finished successfully.
type CompletionRecord struct {
	LessonNo    int
	Level       string
	CompletedAt time.Time
}

// FailureRecord marks a lesson the learner failed or missed. Rollover
// and backfill date AttemptedAt to midnight UTC of the day the lesson
// was missed, not the day the record was written.
type FailureRecord struct {
	LessonNo    int
	Level       string
	AttemptedAt time.Time
}

// CurrentAssignment is a lesson still to be studied on Day. All entries
// of a valid cohort share the same Day; anything else is stale and must
// be rolled over before scheduling proceeds.
type CurrentAssignment struct {
	LessonNo int
	Day      string
}

// Document is the canonical progress document for one (user, track).
type Document struct {
	Completed  []CompletionRecord
	Failed     []FailureRecord
	Current    []CurrentAssignment
	CurrentDay string
}

// Touched returns the set of lesson numbers present anywhere in the
// document. The scheduler never re-assigns a touched number.
func (d *Document) Touched() map[int]bool {
	touched := make(map[int]bool, len(d.Completed)+len(d.Failed)+len(d.Current))
	for _, c := range d.Completed {
		touched[c.LessonNo] = true
	}
	for _, f := range d.Failed {
		touched[f.LessonNo] = true
	}
	for _, c := range d.Current {
		touched[c.LessonNo] = true
	}
	return touched
}

// CompletedOn counts completions recorded on the given study-day.
func (d *Document) CompletedOn(day string) int {
	n := 0
	for _, c := range d.Completed {
		if dayString(c.CompletedAt) == day {
			n++
		}
	}
	return n
}

// FailedOn counts failures recorded on the given study-day.
func (d *Document) FailedOn(day string) int {
	n := 0
	for _, f := range d.Failed {
		if dayString(f.AttemptedAt) == day {
			n++
		}
	}
	return n
}

// CurrentOn counts current assignments dated to the given study-day.
func (d *Document) CurrentOn(day string) int {
	n := 0
	for _, c := range d.Current {
		if c.Day == day {
			n++
		}
	}
	return n
}

// ActivityDays returns every study-day the document shows activity on:
// the day marker plus all completion and failure days, deduplicated.
func (d *Document) ActivityDays() []string {
	seen := make(map[string]bool)
	add := func(day string) {
		if day != "" {
			seen[day] = true
		}
	}
	add(d.CurrentDay)
	for _, c := range d.Completed {
		add(dayString(c.CompletedAt))
	}
	for _, f := range d.Failed {
		add(dayString(f.AttemptedAt))
	}
	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	return days
}

// dayString renders a record timestamp as its study-day. Midnight-UTC
// dated records map back to their own day under the study-day offset;
// live completion timestamps follow the same convention as Today.
func dayString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return dayutil.DayOf(t)
}
