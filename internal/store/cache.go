package store

import (
	"context"
	"sync"
)

// DocCache is a read-through cache over a ProgressDocRepo. Each entry
// carries the revision it was read at, so callers can tell "this copy
// is for revision N" instead of trusting mutation timing. Writes go
// through to the backing repo and refresh the entry with the revision
// the write produced.
type DocCache struct {
	mu      sync.Mutex
	backing ProgressDocRepo
	entries map[cacheKey]*DocRecord
}

type cacheKey struct {
	userID string
	track  string
}

// NewDocCache wraps a ProgressDocRepo with a read-through cache.
func NewDocCache(backing ProgressDocRepo) *DocCache {
	return &DocCache{
		backing: backing,
		entries: make(map[cacheKey]*DocRecord),
	}
}

// Load returns the cached record if present, otherwise reads through.
// A nil record (no document yet) is not cached, so first writes are
// always visible.
func (c *DocCache) Load(ctx context.Context, userID, track string) (*DocRecord, error) {
	key := cacheKey{userID: userID, track: track}

	c.mu.Lock()
	if rec, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return rec, nil
	}
	c.mu.Unlock()

	rec, err := c.backing.Load(ctx, userID, track)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		c.mu.Lock()
		c.entries[key] = rec
		c.mu.Unlock()
	}
	return rec, nil
}

// Save writes through to the backing repo and replaces the cached entry
// with the written document at its new revision.
func (c *DocCache) Save(ctx context.Context, userID, track string, upd DocUpdate) (int64, error) {
	rev, err := c.backing.Save(ctx, userID, track, upd)
	if err != nil {
		// The write may or may not have landed; drop the entry so the
		// next read goes to the source of truth.
		c.Invalidate(userID, track)
		return 0, err
	}

	c.mu.Lock()
	c.entries[cacheKey{userID: userID, track: track}] = &DocRecord{
		UserID:   userID,
		Track:    track,
		Level:    upd.Level,
		Quota:    upd.Quota,
		Revision: rev,
		Raw:      upd.Raw,
	}
	c.mu.Unlock()
	return rev, nil
}

// List always reads through; the sweeper needs the authoritative set.
func (c *DocCache) List(ctx context.Context) ([]DocRecord, error) {
	return c.backing.List(ctx)
}

// Delete removes the document and its cache entry.
func (c *DocCache) Delete(ctx context.Context, userID, track string) error {
	if err := c.backing.Delete(ctx, userID, track); err != nil {
		return err
	}
	c.Invalidate(userID, track)
	return nil
}

// Invalidate drops the cached entry for (userID, track).
func (c *DocCache) Invalidate(userID, track string) {
	c.mu.Lock()
	delete(c.entries, cacheKey{userID: userID, track: track})
	c.mu.Unlock()
}

// Revision returns the revision of the cached entry, or 0 when not
// cached.
func (c *DocCache) Revision(userID, track string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.entries[cacheKey{userID: userID, track: track}]; ok {
		return rec.Revision
	}
	return 0
}
