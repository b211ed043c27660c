// Package queue implements the daily lesson-queue scheduler: the pure
// decision function that picks today's lesson numbers, and the stateful
// orchestrator that rolls over stale assignments, backfills skipped
// days, and persists the result at most once per effective change.
package queue

import (
	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/progress"
)

// Reason explains the outcome of a scheduling decision.
type Reason string

const (
	// ReasonOk means new lesson numbers were (or would be) assigned.
	ReasonOk Reason = "ok"
	// ReasonQuotaMet means today's quota is already accounted for.
	ReasonQuotaMet Reason = "quota_met"
	// ReasonRangeExhausted means no untouched numbers remain in range.
	ReasonRangeExhausted Reason = "no_more_lessons"
)

// Decision is the outcome of Decide.
type Decision struct {
	Assign        bool
	Reason        Reason
	LessonNumbers []int
}

// Decide determines whether new lesson numbers should be assigned today
// and which ones. Pure: same document, day, range and quota always give
// the same decision.
//
// The quota check runs first and short-circuits everything else: when
// completions plus current assignments already cover today's quota, no
// range walk happens at all.
func Decide(doc *progress.Document, today string, rng catalog.LessonRange, quota int) Decision {
	doneToday := doc.CompletedOn(today) + doc.CurrentOn(today)
	if doneToday >= quota {
		return Decision{Reason: ReasonQuotaMet}
	}

	need := quota - doneToday
	nums := allocate(doc.Touched(), rng, need)
	if len(nums) == 0 {
		return Decision{Reason: ReasonRangeExhausted}
	}
	return Decision{Assign: true, Reason: ReasonOk, LessonNumbers: nums}
}

// allocate collects up to need untouched lesson numbers, walking
// forward from one past the highest touched number in range (or from
// rng.Start when nothing in range is touched). The walk never revisits
// a number below the seed: skipped numbers become backfill failures,
// not future assignments.
func allocate(touched map[int]bool, rng catalog.LessonRange, need int) []int {
	seed := rng.Start - 1
	for n := range touched {
		if rng.Contains(n) && n > seed {
			seed = n
		}
	}

	var nums []int
	for n := seed + 1; n <= rng.End && len(nums) < need; n++ {
		if touched[n] {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}
