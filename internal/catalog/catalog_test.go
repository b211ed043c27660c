package catalog

import "testing"

func TestLessonRange_Valid(t *testing.T) {
	tests := []struct {
		name string
		r    LessonRange
		want bool
	}{
		{"normal range", LessonRange{Start: 120, End: 140}, true},
		{"single lesson", LessonRange{Start: 7, End: 7}, true},
		{"reversed", LessonRange{Start: 140, End: 120}, false},
		{"zero value", LessonRange{}, false},
		{"zero start", LessonRange{Start: 0, End: 10}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLessonRange_SizeAndContains(t *testing.T) {
	r := LessonRange{Start: 120, End: 140}
	if got := r.Size(); got != 21 {
		t.Errorf("Size = %d, want 21", got)
	}
	if !r.Contains(120) || !r.Contains(140) {
		t.Error("bounds should be inclusive")
	}
	if r.Contains(119) || r.Contains(141) {
		t.Error("numbers outside bounds should not be contained")
	}
	if got := (LessonRange{}).Size(); got != 0 {
		t.Errorf("invalid range Size = %d, want 0", got)
	}
}

func TestCatalog_DropsInvalidRanges(t *testing.T) {
	c := New(map[string]LessonRange{
		"ok":     {Start: 1, End: 10},
		"broken": {Start: 10, End: 1},
	})
	if _, ok := c.Range("ok"); !ok {
		t.Error("expected valid level to resolve")
	}
	if _, ok := c.Range("broken"); ok {
		t.Error("expected invalid range to be dropped")
	}
	if _, ok := c.Range("missing"); ok {
		t.Error("expected unknown level to miss")
	}
}

func TestDefault_CoversContiguousLevels(t *testing.T) {
	c := Default()
	levels := c.Levels()
	if len(levels) != 4 {
		t.Fatalf("levels = %v", levels)
	}
	beginner, _ := c.Range("beginner")
	elementary, _ := c.Range("elementary")
	if elementary.Start != beginner.End+1 {
		t.Errorf("elementary starts at %d, want %d", elementary.Start, beginner.End+1)
	}
}
