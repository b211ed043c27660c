package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/queue"
	"github.com/abhisek/lessonq/internal/store"
)

// memDocs is a minimal in-memory ProgressDocRepo for sweep tests.
type memDocs struct {
	recs map[string]*store.DocRecord
}

func (m *memDocs) key(u, tr string) string { return u + "|" + tr }

func (m *memDocs) Load(_ context.Context, u, tr string) (*store.DocRecord, error) {
	rec, ok := m.recs[m.key(u, tr)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memDocs) Save(_ context.Context, u, tr string, upd store.DocUpdate) (int64, error) {
	rev := int64(1)
	if rec, ok := m.recs[m.key(u, tr)]; ok {
		rev = rec.Revision + 1
	}
	m.recs[m.key(u, tr)] = &store.DocRecord{
		UserID: u, Track: tr, Level: upd.Level, Quota: upd.Quota,
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

func (m *memDocs) Delete(_ context.Context, u, tr string) error {
	delete(m.recs, m.key(u, tr))
	return nil
}

func TestRunOnce_SweepsAllUsers(t *testing.T) {
	docs := &memDocs{recs: map[string]*store.DocRecord{
		"u1|main": {
			UserID: "u1", Track: "main", Level: "beginner", Quota: 2, Revision: 1,
			Raw: map[string]any{"currentDateISO": "2020-01-01"},
		},
		"u2|main": {
			UserID: "u2", Track: "main", Level: "unknown-level", Quota: 2, Revision: 1,
			Raw: map[string]any{},
		},
	}}
	orch := queue.NewOrchestrator(docs, nil, nil)
	s := New(orch, docs, catalog.Default(), queue.BackfillIncludeYesterday, time.Minute, nil)

	require.NoError(t, s.RunOnce(context.Background()))

	// u1 was swept: stale day marker forces a rewrite with a fresh cohort.
	rec, err := docs.Load(context.Background(), "u1", "main")
	require.NoError(t, err)
	assert.Greater(t, rec.Revision, int64(1), "swept document should have been rewritten")

	// u2 has an unknown level and is skipped untouched.
	rec, err = docs.Load(context.Background(), "u2", "main")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Revision)
}

func TestRunOnce_IdempotentAcrossRuns(t *testing.T) {
	docs := &memDocs{recs: map[string]*store.DocRecord{
		"u1|main": {
			UserID: "u1", Track: "main", Level: "beginner", Quota: 2, Revision: 1,
			Raw: map[string]any{"currentDateISO": "2020-01-01"},
		},
	}}
	orch := queue.NewOrchestrator(docs, nil, nil)
	s := New(orch, docs, catalog.Default(), queue.BackfillIncludeYesterday, time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, s.RunOnce(ctx))
	rec, err := docs.Load(ctx, "u1", "main")
	require.NoError(t, err)
	rev := rec.Revision

	// Nothing changed between sweeps, so nothing is rewritten.
	require.NoError(t, s.RunOnce(ctx))
	rec, err = docs.Load(ctx, "u1", "main")
	require.NoError(t, err)
	assert.Equal(t, rev, rec.Revision)
}
