package store

import (
	"context"
	"testing"
)

// stubDocs counts calls against a fixed backing map.
type stubDocs struct {
	recs  map[string]*DocRecord
	loads int
	saves int
}

func (s *stubDocs) key(u, tr string) string { return u + "|" + tr }

func (s *stubDocs) Load(_ context.Context, u, tr string) (*DocRecord, error) {
	s.loads++
	rec, ok := s.recs[s.key(u, tr)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *stubDocs) Save(_ context.Context, u, tr string, upd DocUpdate) (int64, error) {
	s.saves++
	rev := int64(1)
	if rec, ok := s.recs[s.key(u, tr)]; ok {
		rev = rec.Revision + 1
	}
	s.recs[s.key(u, tr)] = &DocRecord{
		UserID: u, Track: tr, Level: upd.Level, Quota: upd.Quota,
		Revision: rev, Raw: upd.Raw,
	}
	return rev, nil
}

func (s *stubDocs) List(_ context.Context) ([]DocRecord, error) {
	var out []DocRecord
	for _, rec := range s.recs {
		out = append(out, *rec)
	}
	return out, nil
}

func (s *stubDocs) Delete(_ context.Context, u, tr string) error {
	delete(s.recs, s.key(u, tr))
	return nil
}

func validRaw() map[string]any {
	return map[string]any{
		"completed":      []any{},
		"failed":         []any{},
		"current":        []any{},
		"currentDateISO": "2025-10-18",
	}
}

func TestDocCache_ReadThrough(t *testing.T) {
	backing := &stubDocs{recs: map[string]*DocRecord{
		"u1|main": {UserID: "u1", Track: "main", Revision: 4, Raw: validRaw()},
	}}
	cache := NewDocCache(backing)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec, err := cache.Load(ctx, "u1", "main")
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if rec == nil || rec.Revision != 4 {
			t.Fatalf("load %d: rec = %+v", i, rec)
		}
	}
	if backing.loads != 1 {
		t.Errorf("backing loads = %d, want 1", backing.loads)
	}
	if got := cache.Revision("u1", "main"); got != 4 {
		t.Errorf("cached revision = %d, want 4", got)
	}
}

func TestDocCache_MissingDocNotCached(t *testing.T) {
	backing := &stubDocs{recs: map[string]*DocRecord{}}
	cache := NewDocCache(backing)
	ctx := context.Background()

	if rec, _ := cache.Load(ctx, "u1", "main"); rec != nil {
		t.Fatalf("rec = %+v, want nil", rec)
	}

	// A write that bypasses the cache must be visible on the next read.
	if _, err := backing.Save(ctx, "u1", "main", DocUpdate{Raw: validRaw()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	rec, err := cache.Load(ctx, "u1", "main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected document after backing write")
	}
}

func TestDocCache_SaveRefreshesEntry(t *testing.T) {
	backing := &stubDocs{recs: map[string]*DocRecord{}}
	cache := NewDocCache(backing)
	ctx := context.Background()

	rev, err := cache.Save(ctx, "u1", "main", DocUpdate{Level: "beginner", Quota: 2, Raw: validRaw()})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if rev != 1 {
		t.Errorf("rev = %d, want 1", rev)
	}

	loadsBefore := backing.loads
	rec, err := cache.Load(ctx, "u1", "main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Revision != 1 {
		t.Errorf("revision = %d, want 1", rec.Revision)
	}
	if backing.loads != loadsBefore {
		t.Error("load after save should be served from cache")
	}
}

func TestDocCache_InvalidateForcesReload(t *testing.T) {
	backing := &stubDocs{recs: map[string]*DocRecord{
		"u1|main": {UserID: "u1", Track: "main", Revision: 1, Raw: validRaw()},
	}}
	cache := NewDocCache(backing)
	ctx := context.Background()

	if _, err := cache.Load(ctx, "u1", "main"); err != nil {
		t.Fatalf("load: %v", err)
	}
	backing.recs["u1|main"].Revision = 9
	cache.Invalidate("u1", "main")

	rec, err := cache.Load(ctx, "u1", "main")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Revision != 9 {
		t.Errorf("revision = %d, want 9 after invalidation", rec.Revision)
	}
}
