package progress

import (
	"testing"
	"time"
)

func TestEqual_IgnoresIncidentalFields(t *testing.T) {
	a := Document{
		Completed: []CompletionRecord{
			{LessonNo: 5, Level: "beginner", CompletedAt: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)},
		},
		CurrentDay: "2025-10-17",
	}
	// Same lesson and day, different level string and sub-day time.
	b := Document{
		Completed: []CompletionRecord{
			{LessonNo: 5, Level: "", CompletedAt: time.Date(2025, 10, 16, 9, 45, 0, 0, time.UTC)},
		},
		CurrentDay: "2025-10-17",
	}

	if !Equal(&a, &b) {
		t.Errorf("documents differ only in incidental fields:\n a %s\n b %s", a.Fingerprint(), b.Fingerprint())
	}
}

func TestEqual_OrderInsensitive(t *testing.T) {
	day := "2025-10-17"
	a := Document{
		Current:    []CurrentAssignment{{LessonNo: 1, Day: day}, {LessonNo: 2, Day: day}},
		CurrentDay: day,
	}
	b := Document{
		Current:    []CurrentAssignment{{LessonNo: 2, Day: day}, {LessonNo: 1, Day: day}},
		CurrentDay: day,
	}
	if !Equal(&a, &b) {
		t.Error("expected order-insensitive equality")
	}
}

func TestEqual_MaterialChanges(t *testing.T) {
	base := Document{
		Current:    []CurrentAssignment{{LessonNo: 1, Day: "2025-10-17"}},
		CurrentDay: "2025-10-17",
	}

	tests := []struct {
		name  string
		other Document
	}{
		{"different lesson number", Document{
			Current:    []CurrentAssignment{{LessonNo: 2, Day: "2025-10-17"}},
			CurrentDay: "2025-10-17",
		}},
		{"different cohort day", Document{
			Current:    []CurrentAssignment{{LessonNo: 1, Day: "2025-10-18"}},
			CurrentDay: "2025-10-18",
		}},
		{"day marker moved", Document{
			Current:    []CurrentAssignment{{LessonNo: 1, Day: "2025-10-17"}},
			CurrentDay: "2025-10-18",
		}},
		{"entry moved to failed", Document{
			Failed:     []FailureRecord{{LessonNo: 1, AttemptedAt: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)}},
			CurrentDay: "2025-10-17",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(&base, &tt.other) {
				t.Error("expected documents to differ")
			}
		})
	}
}
