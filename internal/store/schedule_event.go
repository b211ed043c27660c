package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lessonq/ent"
	"github.com/abhisek/lessonq/ent/scheduleevent"
)

// Schedule event kinds.
const (
	EventAssigned       = "assigned"
	EventRolledOver     = "rolled_over"
	EventBackfilled     = "backfilled"
	EventRangeExhausted = "range_exhausted"
)

// ScheduleEventData is the payload for appending a schedule event.
type ScheduleEventData struct {
	UserID    string
	Track     string
	Kind      string
	Day       string
	LessonNos []int
	RunID     string
}

// ScheduleEventRecord is a schedule event as read back from the log.
type ScheduleEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ScheduleEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// EventRepo appends and queries the append-only schedule event log.
type EventRepo interface {
	AppendScheduleEvent(ctx context.Context, data ScheduleEventData) error
	QueryScheduleEvents(ctx context.Context, userID, track string, opts QueryOpts) ([]ScheduleEventRecord, error)
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendScheduleEvent(ctx context.Context, data ScheduleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScheduleEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetTrack(data.Track).
		SetKind(data.Kind).
		SetDay(data.Day).
		SetLessonNos(data.LessonNos).
		SetRunID(data.RunID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save schedule event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScheduleEvents(ctx context.Context, userID, track string, opts QueryOpts) ([]ScheduleEventRecord, error) {
	q := r.client.ScheduleEvent.Query().
		Where(scheduleevent.UserID(userID), scheduleevent.Track(track)).
		Order(ent.Asc(scheduleevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(scheduleevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule events: %w", err)
	}

	records := make([]ScheduleEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ScheduleEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ScheduleEventData: ScheduleEventData{
				UserID:    e.UserID,
				Track:     e.Track,
				Kind:      e.Kind,
				Day:       e.Day,
				LessonNos: e.LessonNos,
				RunID:     e.RunID,
			},
		})
	}
	return records, nil
}
