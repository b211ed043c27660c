package store

import "testing"

func TestValidateDocument_AcceptsCanonicalShape(t *testing.T) {
	raw := map[string]any{
		"completed": []any{
			map[string]any{"lessonNo": 121, "level": "intermediate", "completedAt": "2025-10-16T09:30:00.000Z"},
		},
		"failed": []any{
			map[string]any{"lessonNo": 131, "level": "", "attemptedAt": "2025-10-17T00:00:00.000Z"},
		},
		"current": []any{
			map[string]any{"lessonNo": 132, "LessonDate": "2025-10-18"},
		},
		"currentDateISO": "2025-10-18",
	}
	if err := validateDocument(raw); err != nil {
		t.Errorf("validateDocument: %v", err)
	}
}

func TestValidateDocument_RejectsLegacyAndBrokenShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"missing arrays", map[string]any{"currentDateISO": "2025-10-18"}},
		{"legacy failed shape", map[string]any{
			"completed":      []any{},
			"failed":         []any{map[string]any{"lessonNo": 7, "LessonDate": "2025-10-17"}},
			"current":        []any{},
			"currentDateISO": "2025-10-18",
		}},
		{"bare current numbers", map[string]any{
			"completed":      []any{},
			"failed":         []any{},
			"current":        []any{131},
			"currentDateISO": "2025-10-18",
		}},
		{"zero lesson number", map[string]any{
			"completed":      []any{},
			"failed":         []any{},
			"current":        []any{map[string]any{"lessonNo": 0, "LessonDate": "2025-10-18"}},
			"currentDateISO": "2025-10-18",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateDocument(tt.raw); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
