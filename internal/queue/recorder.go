package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lessonq/internal/dayutil"
	"github.com/abhisek/lessonq/internal/progress"
	"github.com/abhisek/lessonq/internal/store"
)

// RecordCompletion marks a lesson finished successfully. The lesson is
// removed from the current cohort and appended to completed. Recording
// the same number twice is a silent no-op: completion and failure
// records are append-only and a lesson number appears at most once
// across the document.
func (o *Orchestrator) RecordCompletion(ctx context.Context, userID, track string, lessonNo int, level string, at time.Time) error {
	return o.record(ctx, userID, track, lessonNo, level, at, true)
}

// RecordFailure marks a lesson failed by the learner. The failure is
// dated to midnight UTC of the study-day it happened on.
func (o *Orchestrator) RecordFailure(ctx context.Context, userID, track string, lessonNo int, level string, at time.Time) error {
	return o.record(ctx, userID, track, lessonNo, level, at, false)
}

func (o *Orchestrator) record(ctx context.Context, userID, track string, lessonNo int, level string, at time.Time, completed bool) error {
	if lessonNo <= 0 {
		return fmt.Errorf("lesson number must be positive, got %d", lessonNo)
	}
	if at.IsZero() {
		at = time.Now()
	}

	rec, err := o.docs.Load(ctx, userID, track)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	var doc progress.Document
	quota := 0
	if rec != nil {
		doc = progress.Normalize(rec.Raw)
		quota = rec.Quota
		if level == "" {
			level = rec.Level
		}
	}

	touched := doc.Touched()
	alreadyCurrent := false
	for _, cur := range doc.Current {
		if cur.LessonNo == lessonNo {
			alreadyCurrent = true
		}
	}
	if touched[lessonNo] && !alreadyCurrent {
		return nil // already settled as completed or failed
	}

	// Drop the lesson from the current cohort.
	var kept []progress.CurrentAssignment
	for _, cur := range doc.Current {
		if cur.LessonNo != lessonNo {
			kept = append(kept, cur)
		}
	}
	doc.Current = kept

	day := dayutil.DayOf(at)
	midnight, err := dayutil.MidnightUTC(day)
	if err != nil {
		return err
	}

	if completed {
		doc.Completed = append(doc.Completed, progress.CompletionRecord{
			LessonNo:    lessonNo,
			Level:       level,
			CompletedAt: at.UTC(),
		})
	} else {
		doc.Failed = append(doc.Failed, progress.FailureRecord{
			LessonNo:    lessonNo,
			Level:       level,
			AttemptedAt: midnight,
		})
	}

	if _, err := o.docs.Save(ctx, userID, track, store.DocUpdate{
		Level: level,
		Quota: quota,
		Raw:   doc.Raw(),
	}); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
