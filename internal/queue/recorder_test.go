package queue

import (
	"context"
	"testing"
	"time"
)

func TestRecordCompletion_MovesLessonOutOfCurrent(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)
	ctx := context.Background()

	_, err := o.EnsureDailyQueue(ctx, "u1", "main",
		Params{Range: testRange, Quota: 2, Level: "intermediate"},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	at := time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC)
	if err := o.RecordCompletion(ctx, "u1", "main", 120, "intermediate", at); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Completed) != 1 || doc.Completed[0].LessonNo != 120 {
		t.Fatalf("completed = %+v", doc.Completed)
	}
	if len(doc.Current) != 1 || doc.Current[0].LessonNo != 121 {
		t.Fatalf("current = %+v, want only lesson 121 left", doc.Current)
	}
}

func TestRecordFailure_DatedToStudyDayMidnight(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)
	ctx := context.Background()

	// 19:30 UTC is already the next study-day under the UTC+6 offset.
	at := time.Date(2025, 10, 17, 19, 30, 0, 0, time.UTC)
	if err := o.RecordFailure(ctx, "u1", "main", 123, "intermediate", at); err != nil {
		t.Fatalf("record failure: %v", err)
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Failed) != 1 {
		t.Fatalf("failed = %+v", doc.Failed)
	}
	if got := doc.Failed[0].AttemptedAt.Format("2006-01-02T15:04:05.000Z07:00"); got != "2025-10-18T00:00:00.000Z" {
		t.Errorf("attemptedAt = %s, want midnight UTC of the study-day", got)
	}
}

func TestRecord_SettledLessonIsNoOp(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)
	ctx := context.Background()
	at := time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC)

	if err := o.RecordCompletion(ctx, "u1", "main", 120, "", at); err != nil {
		t.Fatalf("first record: %v", err)
	}
	savesBefore := docs.saves

	// Completing again, or failing a completed lesson, changes nothing.
	if err := o.RecordCompletion(ctx, "u1", "main", 120, "", at); err != nil {
		t.Fatalf("duplicate completion: %v", err)
	}
	if err := o.RecordFailure(ctx, "u1", "main", 120, "", at); err != nil {
		t.Fatalf("failure after completion: %v", err)
	}

	if docs.saves != savesBefore {
		t.Errorf("saves = %d, want %d (no writes for settled lesson)", docs.saves, savesBefore)
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Completed) != 1 || len(doc.Failed) != 0 {
		t.Errorf("document changed: completed=%d failed=%d", len(doc.Completed), len(doc.Failed))
	}
}

func TestRecord_RejectsNonPositiveLessonNumber(t *testing.T) {
	o := NewOrchestrator(newMemDocs(), nil, nil)
	if err := o.RecordCompletion(context.Background(), "u1", "main", 0, "", time.Time{}); err == nil {
		t.Error("expected error for lesson number 0")
	}
}
