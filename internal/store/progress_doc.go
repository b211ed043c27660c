package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lessonq/ent"
	"github.com/abhisek/lessonq/ent/progressdoc"
)

// DocRecord is a progress document row as stored, with its revision.
type DocRecord struct {
	UserID    string
	Track     string
	Level     string
	Quota     int
	Revision  int64
	Raw       map[string]any
	UpdatedAt time.Time
}

// DocUpdate is the payload of a full-document replace.
type DocUpdate struct {
	Level string
	Quota int
	Raw   map[string]any
}

// ProgressDocRepo manages per-(user, track) progress documents. Writes
// are full-document replaces; the revision increments on every write so
// readers can tell which version of the document they hold.
type ProgressDocRepo interface {
	// Load returns the document for (userID, track), or nil if none
	// exists yet.
	Load(ctx context.Context, userID, track string) (*DocRecord, error)

	// Save replaces the document, creating it if absent, and returns
	// the new revision.
	Save(ctx context.Context, userID, track string, upd DocUpdate) (int64, error)

	// List returns every stored document. Used by the sweeper.
	List(ctx context.Context) ([]DocRecord, error)

	// Delete removes the document for (userID, track) if present.
	Delete(ctx context.Context, userID, track string) error
}

// progressDocRepo implements ProgressDocRepo using the ent client.
type progressDocRepo struct {
	client *ent.Client
}

func (r *progressDocRepo) Load(ctx context.Context, userID, track string) (*DocRecord, error) {
	d, err := r.client.ProgressDoc.Query().
		Where(progressdoc.UserID(userID), progressdoc.Track(track)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress doc: %w", err)
	}
	return entDocToRecord(d), nil
}

func (r *progressDocRepo) Save(ctx context.Context, userID, track string, upd DocUpdate) (int64, error) {
	if err := validateDocument(upd.Raw); err != nil {
		return 0, fmt.Errorf("canonical shape check: %w", err)
	}

	existing, err := r.client.ProgressDoc.Query().
		Where(progressdoc.UserID(userID), progressdoc.Track(track)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query progress doc: %w", err)
	}

	if existing == nil {
		created, err := r.client.ProgressDoc.Create().
			SetUserID(userID).
			SetTrack(track).
			SetLevel(upd.Level).
			SetQuota(upd.Quota).
			SetRevision(1).
			SetData(upd.Raw).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create progress doc: %w", err)
		}
		return created.Revision, nil
	}

	rev := existing.Revision + 1
	_, err = existing.Update().
		SetLevel(upd.Level).
		SetQuota(upd.Quota).
		SetRevision(rev).
		SetData(upd.Raw).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update progress doc: %w", err)
	}
	return rev, nil
}

func (r *progressDocRepo) List(ctx context.Context) ([]DocRecord, error) {
	docs, err := r.client.ProgressDoc.Query().
		Order(ent.Asc(progressdoc.FieldUserID), ent.Asc(progressdoc.FieldTrack)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress docs: %w", err)
	}
	records := make([]DocRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, *entDocToRecord(d))
	}
	return records, nil
}

func (r *progressDocRepo) Delete(ctx context.Context, userID, track string) error {
	_, err := r.client.ProgressDoc.Delete().
		Where(progressdoc.UserID(userID), progressdoc.Track(track)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress doc: %w", err)
	}
	return nil
}

func entDocToRecord(d *ent.ProgressDoc) *DocRecord {
	return &DocRecord{
		UserID:    d.UserID,
		Track:     d.Track,
		Level:     d.Level,
		Quota:     d.Quota,
		Revision:  d.Revision,
		Raw:       d.Data,
		UpdatedAt: d.UpdatedAt,
	}
}
