package progress

import (
	"testing"
	"time"
)

func TestNormalize_Canonical(t *testing.T) {
	raw := map[string]any{
		"completed": []any{
			map[string]any{"lessonNo": float64(121), "level": "intermediate", "completedAt": "2025-10-16T09:30:00.000Z"},
		},
		"failed": []any{
			map[string]any{"lessonNo": float64(122), "level": "intermediate", "attemptedAt": "2025-10-16T00:00:00.000Z"},
		},
		"current": []any{
			map[string]any{"lessonNo": float64(123), "LessonDate": "2025-10-17"},
		},
		"currentDateISO": "2025-10-17",
	}

	doc := Normalize(raw)

	if len(doc.Completed) != 1 || doc.Completed[0].LessonNo != 121 {
		t.Fatalf("completed = %+v", doc.Completed)
	}
	if doc.Completed[0].Level != "intermediate" {
		t.Errorf("level = %q", doc.Completed[0].Level)
	}
	if len(doc.Failed) != 1 || doc.Failed[0].LessonNo != 122 {
		t.Fatalf("failed = %+v", doc.Failed)
	}
	wantAttempted := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	if !doc.Failed[0].AttemptedAt.Equal(wantAttempted) {
		t.Errorf("attemptedAt = %v, want %v", doc.Failed[0].AttemptedAt, wantAttempted)
	}
	if len(doc.Current) != 1 || doc.Current[0].LessonNo != 123 || doc.Current[0].Day != "2025-10-17" {
		t.Fatalf("current = %+v", doc.Current)
	}
	if doc.CurrentDay != "2025-10-17" {
		t.Errorf("currentDay = %q", doc.CurrentDay)
	}
}

func TestNormalize_LegacyFailedShape(t *testing.T) {
	raw := map[string]any{
		"failed": []any{
			map[string]any{"lessonNo": float64(87), "LessonDate": "2025-09-03"},
		},
	}

	doc := Normalize(raw)

	if len(doc.Failed) != 1 {
		t.Fatalf("failed = %+v", doc.Failed)
	}
	want := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	if !doc.Failed[0].AttemptedAt.Equal(want) {
		t.Errorf("attemptedAt = %v, want midnight UTC of LessonDate", doc.Failed[0].AttemptedAt)
	}
}

func TestNormalize_LegacyBareCurrentNumbers(t *testing.T) {
	raw := map[string]any{
		"current": []any{float64(41), float64(42)},
	}

	doc := Normalize(raw)

	if len(doc.Current) != 2 {
		t.Fatalf("current = %+v", doc.Current)
	}
	for i, want := range []int{41, 42} {
		if doc.Current[i].LessonNo != want {
			t.Errorf("current[%d] = %d, want %d", i, doc.Current[i].LessonNo, want)
		}
		if doc.Current[i].Day != "" {
			t.Errorf("current[%d].Day = %q, want empty for bare number", i, doc.Current[i].Day)
		}
	}
}

func TestNormalize_MissingAndMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"nil document", nil},
		{"empty document", map[string]any{}},
		{"wrong types", map[string]any{
			"completed":      "not-a-list",
			"failed":         []any{"not-a-map", map[string]any{"level": "a"}},
			"current":        []any{"nope"},
			"currentDateISO": 42,
		}},
		{"unparseable dates", map[string]any{
			"failed":         []any{map[string]any{"lessonNo": float64(5), "LessonDate": "someday"}},
			"currentDateISO": "not-a-day",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Normalize(tt.raw)
			if doc.Completed == nil && doc.Failed == nil && doc.Current == nil {
				return // fully empty is fine
			}
			for _, f := range doc.Failed {
				if f.LessonNo == 0 {
					t.Errorf("kept entry without lessonNo: %+v", f)
				}
			}
			if doc.CurrentDay != "" {
				t.Errorf("currentDay = %q, want empty", doc.CurrentDay)
			}
		})
	}
}

func TestRaw_RoundTripsCanonicalShape(t *testing.T) {
	doc := Document{
		Completed: []CompletionRecord{
			{LessonNo: 10, Level: "beginner", CompletedAt: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)},
		},
		Failed: []FailureRecord{
			{LessonNo: 11, AttemptedAt: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)},
		},
		Current:    []CurrentAssignment{{LessonNo: 12, Day: "2025-10-17"}},
		CurrentDay: "2025-10-17",
	}

	raw := doc.Raw()

	failed := raw["failed"].([]any)[0].(map[string]any)
	if got := failed["attemptedAt"]; got != "2025-10-16T00:00:00.000Z" {
		t.Errorf("attemptedAt = %v, want millisecond-Z format", got)
	}
	back := Normalize(raw)
	if !Equal(&doc, &back) {
		t.Errorf("round trip changed document:\n before %s\n after  %s", doc.Fingerprint(), back.Fingerprint())
	}
}
