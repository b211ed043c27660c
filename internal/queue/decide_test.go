package queue

import (
	"testing"
	"time"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/progress"
)

func midnight(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestDecide_FreshLearnerGetsQuota(t *testing.T) {
	doc := &progress.Document{}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 2)

	if !d.Assign || d.Reason != ReasonOk {
		t.Fatalf("decision = %+v", d)
	}
	want := []int{120, 121}
	if len(d.LessonNumbers) != len(want) {
		t.Fatalf("numbers = %v, want %v", d.LessonNumbers, want)
	}
	for i := range want {
		if d.LessonNumbers[i] != want[i] {
			t.Errorf("numbers[%d] = %d, want %d", i, d.LessonNumbers[i], want[i])
		}
	}
}

func TestDecide_QuotaMetShortCircuits(t *testing.T) {
	today := "2025-10-18"
	tests := []struct {
		name string
		doc  progress.Document
	}{
		{"two completions today", progress.Document{
			Completed: []progress.CompletionRecord{
				{LessonNo: 120, CompletedAt: midnight(today)},
				{LessonNo: 121, CompletedAt: midnight(today)},
			},
		}},
		{"full current cohort today", progress.Document{
			Current: []progress.CurrentAssignment{
				{LessonNo: 120, Day: today},
				{LessonNo: 121, Day: today},
			},
		}},
		{"one of each", progress.Document{
			Completed: []progress.CompletionRecord{{LessonNo: 120, CompletedAt: midnight(today)}},
			Current:   []progress.CurrentAssignment{{LessonNo: 121, Day: today}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(&tt.doc, today, catalog.LessonRange{Start: 120, End: 140}, 2)
			if d.Assign || d.Reason != ReasonQuotaMet {
				t.Errorf("decision = %+v, want QuotaMet with no numbers", d)
			}
			if len(d.LessonNumbers) != 0 {
				t.Errorf("numbers = %v, want none", d.LessonNumbers)
			}
		})
	}
}

func TestDecide_NeverReassignsTouched(t *testing.T) {
	doc := &progress.Document{
		Completed: []progress.CompletionRecord{{LessonNo: 125, CompletedAt: midnight("2025-10-15")}},
		Failed:    []progress.FailureRecord{{LessonNo: 127, AttemptedAt: midnight("2025-10-16")}},
		Current:   []progress.CurrentAssignment{{LessonNo: 129, Day: "2025-10-17"}},
	}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 3)

	if d.Reason != ReasonOk {
		t.Fatalf("decision = %+v", d)
	}
	touched := doc.Touched()
	for _, n := range d.LessonNumbers {
		if touched[n] {
			t.Errorf("re-assigned touched number %d", n)
		}
		if n <= 129 {
			t.Errorf("assigned %d, want strictly above highest touched (129)", n)
		}
	}
}

func TestDecide_SkippedNumbersStaySkipped(t *testing.T) {
	// 120..124 untouched but 130 already failed: the walk seeds past
	// 130 and never revisits the gap.
	doc := &progress.Document{
		Failed: []progress.FailureRecord{{LessonNo: 130, AttemptedAt: midnight("2025-10-10")}},
	}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 2)

	if d.Reason != ReasonOk {
		t.Fatalf("decision = %+v", d)
	}
	for i, want := range []int{131, 132} {
		if d.LessonNumbers[i] != want {
			t.Errorf("numbers[%d] = %d, want %d", i, d.LessonNumbers[i], want)
		}
	}
}

func TestDecide_PartialAllocationNearRangeEnd(t *testing.T) {
	doc := &progress.Document{
		Completed: []progress.CompletionRecord{{LessonNo: 139, CompletedAt: midnight("2025-10-17")}},
	}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 3)

	if d.Reason != ReasonOk {
		t.Fatalf("decision = %+v", d)
	}
	if len(d.LessonNumbers) != 1 || d.LessonNumbers[0] != 140 {
		t.Errorf("numbers = %v, want [140]", d.LessonNumbers)
	}
}

func TestDecide_RangeExhausted(t *testing.T) {
	doc := &progress.Document{
		Completed: []progress.CompletionRecord{{LessonNo: 140, CompletedAt: midnight("2025-10-17")}},
	}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 2)

	if d.Assign || d.Reason != ReasonRangeExhausted {
		t.Errorf("decision = %+v, want RangeExhausted", d)
	}
}

func TestDecide_TouchedOutsideRangeIgnoredForSeed(t *testing.T) {
	// A completion from another level's range must not move the seed.
	doc := &progress.Document{
		Completed: []progress.CompletionRecord{{LessonNo: 500, CompletedAt: midnight("2025-10-17")}},
	}
	d := Decide(doc, "2025-10-18", catalog.LessonRange{Start: 120, End: 140}, 2)

	if d.Reason != ReasonOk || d.LessonNumbers[0] != 120 {
		t.Errorf("decision = %+v, want to start at 120", d)
	}
}
