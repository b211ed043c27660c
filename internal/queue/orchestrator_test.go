package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/progress"
	"github.com/abhisek/lessonq/internal/store"
)

// memDocs is an in-memory ProgressDocRepo for tests.
type memDocs struct {
	recs  map[string]*store.DocRecord
	loads int
	saves int
}

func newMemDocs() *memDocs {
	return &memDocs{recs: make(map[string]*store.DocRecord)}
}

func (m *memDocs) key(userID, track string) string { return userID + "|" + track }

func (m *memDocs) Load(_ context.Context, userID, track string) (*store.DocRecord, error) {
	m.loads++
	rec, ok := m.recs[m.key(userID, track)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memDocs) Save(_ context.Context, userID, track string, upd store.DocUpdate) (int64, error) {
	m.saves++
	rec, ok := m.recs[m.key(userID, track)]
	rev := int64(1)
	if ok {
		rev = rec.Revision + 1
	}
	m.recs[m.key(userID, track)] = &store.DocRecord{
		UserID: userID, Track: track,
		Level: upd.Level, Quota: upd.Quota,
		Revision: rev, Raw: upd.Raw,
	}
	return rev, nil
}

func (m *memDocs) List(_ context.Context) ([]store.DocRecord, error) {
	var out []store.DocRecord
	for _, rec := range m.recs {
		out = append(out, *rec)
	}
	return out, nil
}

func (m *memDocs) Delete(_ context.Context, userID, track string) error {
	delete(m.recs, m.key(userID, track))
	return nil
}

// memEvents is an in-memory EventRepo for tests.
type memEvents struct {
	appended []store.ScheduleEventData
}

func (m *memEvents) AppendScheduleEvent(_ context.Context, data store.ScheduleEventData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *memEvents) QueryScheduleEvents(_ context.Context, _, _ string, _ store.QueryOpts) ([]store.ScheduleEventRecord, error) {
	return nil, nil
}

func (m *memEvents) kinds() []string {
	var out []string
	for _, ev := range m.appended {
		out = append(out, ev.Kind)
	}
	return out
}

func docOf(t *testing.T, m *memDocs, userID, track string) progress.Document {
	t.Helper()
	rec, ok := m.recs[m.key(userID, track)]
	if !ok {
		t.Fatal("no document stored")
	}
	return progress.Normalize(rec.Raw)
}

var testRange = catalog.LessonRange{Start: 120, End: 140}

func TestEnsureDailyQueue_RangeMissingFailsBeforeIO(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: catalog.LessonRange{Start: 140, End: 120}, Quota: 2},
		Options{Today: "2025-10-18"})
	if !errors.Is(err, ErrRangeMissing) {
		t.Fatalf("err = %v, want ErrRangeMissing", err)
	}
	if docs.loads != 0 || docs.saves != 0 {
		t.Errorf("I/O performed: loads=%d saves=%d", docs.loads, docs.saves)
	}
}

func TestEnsureDailyQueue_InvalidTodayOverride(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "18/10/2025"})
	if err == nil {
		t.Fatal("expected error for unparseable today override")
	}
	if docs.saves != 0 {
		t.Errorf("saves = %d, want 0", docs.saves)
	}
}

func TestEnsureDailyQueue_FreshLearner(t *testing.T) {
	docs := newMemDocs()
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2, Level: "intermediate"},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !res.Wrote || res.Reason != ReasonOk {
		t.Fatalf("result = %+v", res)
	}
	if len(res.Current) != 2 {
		t.Fatalf("current = %+v, want 2 entries", res.Current)
	}
	for i, want := range []int{120, 121} {
		if res.Current[i].LessonNo != want || res.Current[i].Day != "2025-10-18" {
			t.Errorf("current[%d] = %+v, want lesson %d dated today", i, res.Current[i], want)
		}
	}
	if got := events.kinds(); len(got) != 1 || got[0] != store.EventAssigned {
		t.Errorf("events = %v, want [assigned]", got)
	}
}

// Concrete rollover acceptance scenario: one stale current lesson from
// yesterday becomes a failure dated yesterday, and today's cohort holds
// exactly one fresh lesson (the rolled-over lesson kept its slot).
func TestEnsureDailyQueue_RolloverScenario(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 3,
		Raw: map[string]any{
			"completed":      []any{},
			"failed":         []any{},
			"current":        []any{map[string]any{"lessonNo": float64(131), "LessonDate": "2025-10-17"}},
			"currentDateISO": "2025-10-17",
		},
	}
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !res.Wrote {
		t.Fatal("expected a write")
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Failed) != 1 || doc.Failed[0].LessonNo != 131 {
		t.Fatalf("failed = %+v", doc.Failed)
	}
	if got := doc.Failed[0].AttemptedAt.Format("2006-01-02T15:04:05.000Z07:00"); got != "2025-10-17T00:00:00.000Z" {
		t.Errorf("attemptedAt = %s, want midnight UTC of the missed day", got)
	}
	if len(doc.Current) != 1 || doc.Current[0].Day != "2025-10-18" {
		t.Fatalf("current = %+v, want one entry dated 2025-10-18", doc.Current)
	}
	if doc.Current[0].LessonNo != 132 {
		t.Errorf("assigned lesson = %d, want 132 (forward from 131)", doc.Current[0].LessonNo)
	}
	if doc.CurrentDay != "2025-10-18" {
		t.Errorf("currentDateISO = %q, want 2025-10-18", doc.CurrentDay)
	}
}

func TestEnsureDailyQueue_Idempotent(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)
	ctx := context.Background()
	params := Params{Range: testRange, Quota: 2}
	opts := Options{Today: "2025-10-18"}

	first, err := o.EnsureDailyQueue(ctx, "u1", "main", params, opts)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !first.Wrote {
		t.Fatal("first call should write")
	}

	second, err := o.EnsureDailyQueue(ctx, "u1", "main", params, opts)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.Wrote {
		t.Error("second call with unchanged inputs must not write")
	}
	if second.Revision != first.Revision {
		t.Errorf("revision = %d, want %d", second.Revision, first.Revision)
	}
	if docs.saves != 1 {
		t.Errorf("saves = %d, want 1", docs.saves)
	}
}

// Backfill completeness: an empty document whose day marker sits two
// days back gets the skipped day fully recorded as failures and a full
// cohort for today.
func TestEnsureDailyQueue_BackfillSkippedDay(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"completed":      []any{},
			"failed":         []any{},
			"current":        []any{},
			"currentDateISO": "2025-10-16",
		},
	}
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !res.Wrote {
		t.Fatal("expected a write")
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Failed) != 2 {
		t.Fatalf("failed = %+v, want exactly 2 backfill records", doc.Failed)
	}
	for _, f := range doc.Failed {
		if got := f.AttemptedAt.Format("2006-01-02"); got != "2025-10-17" {
			t.Errorf("backfill failure dated %s, want 2025-10-17", got)
		}
	}
	if len(doc.Current) != 2 {
		t.Fatalf("current = %+v, want 2-entry cohort", doc.Current)
	}
	for _, c := range doc.Current {
		if c.Day != "2025-10-18" {
			t.Errorf("cohort entry dated %q, want today", c.Day)
		}
	}

	// Backfilled numbers and today's numbers never overlap.
	seen := make(map[int]bool)
	for _, f := range doc.Failed {
		if seen[f.LessonNo] {
			t.Errorf("lesson %d appears twice", f.LessonNo)
		}
		seen[f.LessonNo] = true
	}
	for _, c := range doc.Current {
		if seen[c.LessonNo] {
			t.Errorf("lesson %d assigned today but also backfilled", c.LessonNo)
		}
	}
}

func TestEnsureDailyQueue_SkipYesterdayPolicy(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"currentDateISO": "2025-10-15",
		},
	}
	o := NewOrchestrator(docs, nil, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18", Backfill: BackfillSkipYesterday})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	doc := docOf(t, docs, "u1", "main")
	days := make(map[string]int)
	for _, f := range doc.Failed {
		days[f.AttemptedAt.Format("2006-01-02")]++
	}
	if days["2025-10-16"] != 2 {
		t.Errorf("2025-10-16 failures = %d, want 2", days["2025-10-16"])
	}
	if days["2025-10-17"] != 0 {
		t.Errorf("yesterday was backfilled under skip-yesterday policy: %v", days)
	}
}

func TestEnsureDailyQueue_QuotaMetByCompletions(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"completed": []any{
				map[string]any{"lessonNo": float64(120), "completedAt": "2025-10-18T00:00:00.000Z"},
				map[string]any{"lessonNo": float64(121), "completedAt": "2025-10-18T00:00:00.000Z"},
			},
			"currentDateISO": "2025-10-18",
		},
	}
	o := NewOrchestrator(docs, nil, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if res.Reason != ReasonQuotaMet {
		t.Errorf("reason = %s, want quota_met", res.Reason)
	}
	if len(res.Current) != 0 {
		t.Errorf("current = %+v, want empty", res.Current)
	}
}

// Failing the whole cohort does not unlock a fresh one: failures dated
// today fill the quota just like completions do.
func TestEnsureDailyQueue_FailedTodayQuotaMet(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)
	ctx := context.Background()
	params := Params{Range: testRange, Quota: 2, Level: "intermediate"}
	opts := Options{Today: "2025-10-18"}

	first, err := o.EnsureDailyQueue(ctx, "u1", "main", params, opts)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(first.Current) != 2 {
		t.Fatalf("current = %+v, want 2 entries", first.Current)
	}

	// 10:00 UTC falls inside the 2025-10-18 study-day.
	at := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)
	for _, cur := range first.Current {
		if err := o.RecordFailure(ctx, "u1", "main", cur.LessonNo, "intermediate", at); err != nil {
			t.Fatalf("record failure %d: %v", cur.LessonNo, err)
		}
	}

	res, err := o.EnsureDailyQueue(ctx, "u1", "main", params, opts)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if res.Reason != ReasonQuotaMet {
		t.Errorf("reason = %s, want quota_met", res.Reason)
	}
	if len(res.Current) != 0 {
		t.Errorf("current = %+v, want empty", res.Current)
	}
	doc := docOf(t, docs, "u1", "main")
	if got := len(doc.Touched()); got != 2 {
		t.Errorf("touched lessons = %d, want 2 (quota never exceeded)", got)
	}
}

func TestEnsureDailyQueue_RunIDTagsEvents(t *testing.T) {
	docs := newMemDocs()
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18", RunID: "run-1"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(events.appended) == 0 {
		t.Fatal("no events appended")
	}
	for _, ev := range events.appended {
		if ev.RunID != "run-1" {
			t.Errorf("event %s RunID = %q, want run-1", ev.Kind, ev.RunID)
		}
	}
}

// Rollover events for a multi-day pileup come out in day order.
func TestEnsureDailyQueue_MultiDayRolloverEventOrder(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"current": []any{
				map[string]any{"lessonNo": float64(126), "LessonDate": "2025-10-16"},
				map[string]any{"lessonNo": float64(125), "LessonDate": "2025-10-15"},
			},
			"currentDateISO": "2025-10-16",
		},
	}
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	var rolledDays []string
	for _, ev := range events.appended {
		if ev.Kind == store.EventRolledOver {
			rolledDays = append(rolledDays, ev.Day)
		}
	}
	want := []string{"2025-10-15", "2025-10-16"}
	if len(rolledDays) != len(want) {
		t.Fatalf("rolled-over days = %v, want %v", rolledDays, want)
	}
	for i := range want {
		if rolledDays[i] != want[i] {
			t.Errorf("rolled-over days = %v, want %v", rolledDays, want)
		}
	}
}

func TestEnsureDailyQueue_RangeExhausted(t *testing.T) {
	rng := catalog.LessonRange{Start: 120, End: 121}
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"completed": []any{
				map[string]any{"lessonNo": float64(120), "completedAt": "2025-10-17T00:00:00.000Z"},
			},
			"failed": []any{
				map[string]any{"lessonNo": float64(121), "attemptedAt": "2025-10-17T00:00:00.000Z"},
			},
			"currentDateISO": "2025-10-17",
		},
	}
	events := &memEvents{}
	o := NewOrchestrator(docs, events, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: rng, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if res.Reason != ReasonRangeExhausted {
		t.Errorf("reason = %s, want no_more_lessons", res.Reason)
	}
	if len(res.Current) != 0 {
		t.Errorf("current = %+v, want empty", res.Current)
	}
	doc := docOf(t, docs, "u1", "main")
	if doc.CurrentDay != "2025-10-18" {
		t.Errorf("currentDateISO = %q, want updated to today", doc.CurrentDay)
	}
	found := false
	for _, k := range events.kinds() {
		if k == store.EventRangeExhausted {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %v, want range_exhausted", events.kinds())
	}
}

// A purchase flow may append entries to current directly. Stale
// externally appended entries roll over like any other.
func TestEnsureDailyQueue_ExternallyAppendedCurrent(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 1,
		Raw: map[string]any{
			"current": []any{
				map[string]any{"lessonNo": float64(125), "LessonDate": "2025-10-17"},
				float64(126), // legacy bare number, day unknown
			},
			"currentDateISO": "2025-10-17",
		},
	}
	o := NewOrchestrator(docs, nil, nil)

	_, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	doc := docOf(t, docs, "u1", "main")
	if len(doc.Failed) != 2 {
		t.Fatalf("failed = %+v, want both stale entries rolled over", doc.Failed)
	}
	for _, f := range doc.Failed {
		if got := f.AttemptedAt.Format("2006-01-02"); got != "2025-10-17" {
			t.Errorf("rollover dated %s, want the document's day marker", got)
		}
	}
	// Both of today's slots were consumed by the rolled-over lessons.
	if len(doc.Current) != 0 {
		t.Errorf("current = %+v, want empty", doc.Current)
	}
}

func TestEnsureDailyQueue_SameDayCohortSurvives(t *testing.T) {
	docs := newMemDocs()
	docs.recs["u1|main"] = &store.DocRecord{
		UserID: "u1", Track: "main", Revision: 2,
		Raw: map[string]any{
			"current": []any{
				map[string]any{"lessonNo": float64(122), "LessonDate": "2025-10-18"},
			},
			"currentDateISO": "2025-10-18",
		},
	}
	o := NewOrchestrator(docs, nil, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 2},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if res.Wrote {
		t.Error("surviving cohort must not trigger a write")
	}
	if len(res.Current) != 1 || res.Current[0].LessonNo != 122 {
		t.Errorf("current = %+v, want the surviving entry untouched", res.Current)
	}
}

func TestEnsureDailyQueue_QuotaClamped(t *testing.T) {
	docs := newMemDocs()
	o := NewOrchestrator(docs, nil, nil)

	res, err := o.EnsureDailyQueue(context.Background(), "u1", "main",
		Params{Range: testRange, Quota: 99},
		Options{Today: "2025-10-18"})
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(res.Current) != MaxQuota {
		t.Errorf("current = %d entries, want clamped to %d", len(res.Current), MaxQuota)
	}
}
