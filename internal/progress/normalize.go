package progress

import (
	"time"

	"github.com/abhisek/lessonq/internal/dayutil"
)

// Normalize maps a raw persisted document into the canonical form.
//
// Two historical shapes are tolerated for failed entries: the canonical
// one keyed by attemptedAt, and a legacy one keyed by LessonDate (a day
// string), which normalizes to midnight UTC of that day. Current entries
// may be stored as objects or as bare lesson numbers; bare numbers get
// an empty Day. Missing or malformed fields never fail: absent arrays
// normalize to empty, unreadable entries are dropped.
func Normalize(raw map[string]any) Document {
	var doc Document
	if raw == nil {
		return doc
	}

	for _, entry := range asSlice(raw["completed"]) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		no, ok := asInt(m["lessonNo"])
		if !ok {
			continue
		}
		doc.Completed = append(doc.Completed, CompletionRecord{
			LessonNo:    no,
			Level:       asString(m["level"]),
			CompletedAt: asTimestamp(m["completedAt"]),
		})
	}

	for _, entry := range asSlice(raw["failed"]) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		no, ok := asInt(m["lessonNo"])
		if !ok {
			continue
		}
		attempted := asTimestamp(m["attemptedAt"])
		if attempted.IsZero() {
			// Legacy shape: day string under LessonDate.
			if t, err := dayutil.MidnightUTC(asString(m["LessonDate"])); err == nil {
				attempted = t
			}
		}
		doc.Failed = append(doc.Failed, FailureRecord{
			LessonNo:    no,
			Level:       asString(m["level"]),
			AttemptedAt: attempted,
		})
	}

	for _, entry := range asSlice(raw["current"]) {
		switch v := entry.(type) {
		case map[string]any:
			no, ok := asInt(v["lessonNo"])
			if !ok {
				continue
			}
			day := asString(v["LessonDate"])
			if !dayutil.Valid(day) {
				day = ""
			}
			doc.Current = append(doc.Current, CurrentAssignment{LessonNo: no, Day: day})
		default:
			// Legacy shape: bare lesson number, assignment day unknown.
			if no, ok := asInt(v); ok {
				doc.Current = append(doc.Current, CurrentAssignment{LessonNo: no})
			}
		}
	}

	if day := asString(raw["currentDateISO"]); dayutil.Valid(day) {
		doc.CurrentDay = day
	}

	return doc
}

// Raw renders the document in the canonical persisted shape. All writes
// use this shape; legacy forms exist on the read path only.
func (d *Document) Raw() map[string]any {
	completed := make([]any, 0, len(d.Completed))
	for _, c := range d.Completed {
		completed = append(completed, map[string]any{
			"lessonNo":    c.LessonNo,
			"level":       c.Level,
			"completedAt": c.CompletedAt.UTC().Format(TimestampLayout),
		})
	}
	failed := make([]any, 0, len(d.Failed))
	for _, f := range d.Failed {
		failed = append(failed, map[string]any{
			"lessonNo":    f.LessonNo,
			"level":       f.Level,
			"attemptedAt": f.AttemptedAt.UTC().Format(TimestampLayout),
		})
	}
	current := make([]any, 0, len(d.Current))
	for _, c := range d.Current {
		current = append(current, map[string]any{
			"lessonNo":   c.LessonNo,
			"LessonDate": c.Day,
		})
	}
	return map[string]any{
		"completed":      completed,
		"failed":         failed,
		"current":        current,
		"currentDateISO": d.CurrentDay,
	}
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt accepts the numeric representations JSON decoding can produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// asTimestamp parses a record timestamp, tolerating RFC3339 with or
// without fractional seconds and bare day strings. Returns the zero
// time when nothing parses.
func asTimestamp(v any) time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := dayutil.MidnightUTC(s); err == nil {
		return t
	}
	return time.Time{}
}
