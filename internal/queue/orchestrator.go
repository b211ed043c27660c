package queue

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/dayutil"
	"github.com/abhisek/lessonq/internal/logger"
	"github.com/abhisek/lessonq/internal/progress"
	"github.com/abhisek/lessonq/internal/store"
)

// ErrRangeMissing indicates the caller omitted the lesson range or
// supplied one with start > end. No read or write is performed.
var ErrRangeMissing = errors.New("lesson range missing or invalid")

// BackfillPolicy controls whether yesterday is part of the backfill
// window.
type BackfillPolicy int

const (
	// BackfillIncludeYesterday backfills every day between the last
	// activity and today. This is the authoritative default.
	BackfillIncludeYesterday BackfillPolicy = iota
	// BackfillSkipYesterday leaves yesterday alone and backfills only
	// older days. Boundary semantics need product clarification; kept
	// for compatibility with existing callers.
	BackfillSkipYesterday
)

// Quota bounds. Callers supply purchased capacity; anything outside the
// product's sold tiers is coerced rather than rejected.
const (
	MinQuota = 2
	MaxQuota = 3
)

// Params carries the per-call scheduling inputs.
type Params struct {
	Range catalog.LessonRange
	Quota int
	Level string
}

// Options carries optional knobs, primarily for testing and the
// sweeper.
type Options struct {
	// Today overrides the wall-clock study-day.
	Today string
	// Backfill selects the backfill window policy.
	Backfill BackfillPolicy
	// RunID tags appended events with a sweep run identifier.
	RunID string
}

// Result reports what EnsureDailyQueue did.
type Result struct {
	Wrote    bool
	Reason   Reason
	Current  []progress.CurrentAssignment
	Revision int64
}

// Orchestrator is the stateful entry point of the scheduler. It owns
// rollover, backfill, today's assignment, and the diff-before-write
// persistence policy. Safe for concurrent use; per-call state lives in
// Options and the change log.
type Orchestrator struct {
	docs   store.ProgressDocRepo
	events store.EventRepo
	log    logger.Logger
}

// NewOrchestrator creates an Orchestrator. events and log may be nil.
func NewOrchestrator(docs store.ProgressDocRepo, events store.EventRepo, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Orchestrator{docs: docs, events: events, log: log}
}

// EnsureDailyQueue makes sure the learner has today's lesson queue:
// stale current assignments become failures dated their own day, wholly
// skipped days get failure records up to quota, and today receives new
// lesson numbers unless the quota is already met or the range is
// exhausted. The document is written back only when it materially
// changed, making repeated calls with unchanged inputs idempotent.
func (o *Orchestrator) EnsureDailyQueue(ctx context.Context, userID, track string, p Params, opts Options) (Result, error) {
	if !p.Range.Valid() {
		return Result{}, ErrRangeMissing
	}

	today := opts.Today
	if today == "" {
		today = dayutil.Today()
	} else if !dayutil.Valid(today) {
		return Result{}, fmt.Errorf("today override: %w", dayutil.ErrInvalidDate)
	}

	quota := p.Quota
	if quota < MinQuota {
		quota = MinQuota
	} else if quota > MaxQuota {
		quota = MaxQuota
	}

	rec, err := o.docs.Load(ctx, userID, track)
	if err != nil {
		return Result{}, fmt.Errorf("load progress: %w", err)
	}
	var original progress.Document
	if rec != nil {
		original = progress.Normalize(rec.Raw)
	}

	next := original
	changes := newChangeLog(userID, track, opts.RunID)

	rolled, err := o.rollover(&next, today, p.Level, changes)
	if err != nil {
		return Result{}, err
	}
	if err := o.backfill(&next, today, p, quota, opts.Backfill, changes); err != nil {
		return Result{}, err
	}

	// A lesson rolled over in this call keeps its slot in today's
	// quota: the learner buys missed lessons back, they are not
	// replaced with fresh capacity.
	effQuota := quota - rolled
	if effQuota < 0 {
		effQuota = 0
	}

	reason := o.assignToday(&next, today, p, effQuota, changes)
	next.CurrentDay = today

	result := Result{Reason: reason, Current: next.Current}
	if rec != nil {
		result.Revision = rec.Revision
	}

	if rec != nil && progress.Equal(&original, &next) {
		o.log.Debugf("no material change for user=%s track=%s day=%s", userID, track, today)
		return result, nil
	}

	rev, err := o.docs.Save(ctx, userID, track, store.DocUpdate{
		Level: p.Level,
		Quota: quota,
		Raw:   next.Raw(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("save progress: %w", err)
	}
	result.Wrote = true
	result.Revision = rev

	changes.flush(ctx, o.events, o.log)
	o.log.Infow("daily queue updated", map[string]any{
		"user":     userID,
		"track":    track,
		"day":      today,
		"reason":   string(reason),
		"assigned": len(next.Current),
		"revision": rev,
	})
	return result, nil
}

// rollover converts every current assignment not dated today into a
// failure record dated midnight of its own assignment day, preserving
// when the lesson was actually missed. Entries with an unknown day
// (legacy bare numbers or externally appended ones) fall back to the
// document's day marker, then to yesterday.
func (o *Orchestrator) rollover(doc *progress.Document, today, level string, changes *changeLog) (int, error) {
	var kept []progress.CurrentAssignment
	staleByDay := make(map[string][]int)
	rolled := 0

	for _, cur := range doc.Current {
		if cur.Day == today {
			kept = append(kept, cur)
			continue
		}
		day := cur.Day
		if day == "" {
			day = doc.CurrentDay
		}
		if day == "" || day == today {
			var err error
			day, err = dayutil.AddDays(today, -1)
			if err != nil {
				return 0, err
			}
		}
		at, err := dayutil.MidnightUTC(day)
		if err != nil {
			return 0, err
		}
		doc.Failed = append(doc.Failed, progress.FailureRecord{
			LessonNo:    cur.LessonNo,
			Level:       level,
			AttemptedAt: at,
		})
		staleByDay[day] = append(staleByDay[day], cur.LessonNo)
		rolled++
	}

	doc.Current = kept
	days := make([]string, 0, len(staleByDay))
	for day := range staleByDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		changes.add(store.EventRolledOver, day, staleByDay[day])
	}
	return rolled, nil
}

// backfill records failure entries for quota shortfalls on every day
// strictly between the earliest recorded activity and today, so a
// learner who disappears for a stretch comes back to an honest ledger
// instead of a silent gap. Allocation shares the Decider's forward walk
// and consumes numbers, so backfilled days and today never collide.
func (o *Orchestrator) backfill(doc *progress.Document, today string, p Params, quota int, policy BackfillPolicy, changes *changeLog) error {
	days := doc.ActivityDays()
	if len(days) == 0 {
		return nil // fresh learner, nothing to backfill
	}
	earliest := days[0]
	for _, d := range days[1:] {
		if d < earliest {
			earliest = d
		}
	}

	missed, err := dayutil.DaysStrictlyBetween(earliest, today)
	if err != nil {
		return err
	}
	if policy == BackfillSkipYesterday && len(missed) > 0 {
		yesterday, err := dayutil.AddDays(today, -1)
		if err != nil {
			return err
		}
		if missed[len(missed)-1] == yesterday {
			missed = missed[:len(missed)-1]
		}
	}

	touched := doc.Touched()
	for _, day := range missed {
		accounted := doc.CompletedOn(day) + doc.FailedOn(day)
		if accounted >= quota {
			continue
		}
		nums := allocate(touched, p.Range, quota-accounted)
		if len(nums) == 0 {
			break // range exhausted, nothing left to record
		}
		at, err := dayutil.MidnightUTC(day)
		if err != nil {
			return err
		}
		for _, n := range nums {
			doc.Failed = append(doc.Failed, progress.FailureRecord{
				LessonNo:    n,
				Level:       p.Level,
				AttemptedAt: at,
			})
			touched[n] = true
		}
		changes.add(store.EventBackfilled, day, nums)
	}
	return nil
}

// assignToday fills today's cohort. A surviving same-day cohort is kept
// untouched, even when a purchase flow appended extra entries outside
// the Decider. Failures already dated today count toward the quota
// here, so failing a full cohort does not unlock a fresh one.
func (o *Orchestrator) assignToday(doc *progress.Document, today string, p Params, quota int, changes *changeLog) Reason {
	if len(doc.Current) > 0 {
		return ReasonOk
	}
	if doc.CompletedOn(today)+doc.FailedOn(today) >= quota {
		doc.Current = nil
		return ReasonQuotaMet
	}

	decision := Decide(doc, today, p.Range, quota)
	switch decision.Reason {
	case ReasonOk:
		for _, n := range decision.LessonNumbers {
			doc.Current = append(doc.Current, progress.CurrentAssignment{LessonNo: n, Day: today})
		}
		changes.add(store.EventAssigned, today, decision.LessonNumbers)
	case ReasonRangeExhausted:
		doc.Current = nil
		changes.add(store.EventRangeExhausted, today, nil)
	case ReasonQuotaMet:
		doc.Current = nil
	}
	return decision.Reason
}

// changeLog accumulates schedule events during a call and appends them
// only after a successful write, so unchanged calls leave no trace.
type changeLog struct {
	userID string
	track  string
	runID  string
	events []store.ScheduleEventData
}

func newChangeLog(userID, track, runID string) *changeLog {
	return &changeLog{userID: userID, track: track, runID: runID}
}

func (c *changeLog) add(kind, day string, nums []int) {
	c.events = append(c.events, store.ScheduleEventData{
		UserID:    c.userID,
		Track:     c.track,
		Kind:      kind,
		Day:       day,
		LessonNos: nums,
		RunID:     c.runID,
	})
}

func (c *changeLog) flush(ctx context.Context, repo store.EventRepo, log logger.Logger) {
	if repo == nil {
		return
	}
	for _, ev := range c.events {
		if err := repo.AppendScheduleEvent(ctx, ev); err != nil {
			log.Warnf("append schedule event %s: %v", ev.Kind, err)
		}
	}
}
