package progress

import (
	"fmt"
	"sort"
	"strings"
)

// Fingerprint reduces the document to the fields that matter for
// scheduling: lesson numbers and their day strings, order-insensitive,
// plus the cohort day marker. Incidental fields (levels, sub-day time
// components) are ignored so that re-serialization noise never counts
// as a material change.
func (d *Document) Fingerprint() string {
	parts := make([]string, 0, 4)

	completed := make([]string, 0, len(d.Completed))
	for _, c := range d.Completed {
		completed = append(completed, fmt.Sprintf("%d@%s", c.LessonNo, dayString(c.CompletedAt)))
	}
	sort.Strings(completed)
	parts = append(parts, "c:"+strings.Join(completed, ","))

	failed := make([]string, 0, len(d.Failed))
	for _, f := range d.Failed {
		failed = append(failed, fmt.Sprintf("%d@%s", f.LessonNo, dayString(f.AttemptedAt)))
	}
	sort.Strings(failed)
	parts = append(parts, "f:"+strings.Join(failed, ","))

	current := make([]string, 0, len(d.Current))
	for _, c := range d.Current {
		current = append(current, fmt.Sprintf("%d@%s", c.LessonNo, c.Day))
	}
	sort.Strings(current)
	parts = append(parts, "q:"+strings.Join(current, ","))

	parts = append(parts, "d:"+d.CurrentDay)
	return strings.Join(parts, ";")
}

// Equal reports whether two documents are materially identical under
// the Fingerprint comparison. The diff-before-write policy uses this to
// keep repeated scheduling calls idempotent.
func Equal(a, b *Document) bool {
	return a.Fingerprint() == b.Fingerprint()
}
