// Package sweeper runs the daily-queue orchestrator across every
// stored learner on a timer, so queues roll over shortly after the
// study-day boundary even when nobody opens the app.
package sweeper

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/logger"
	"github.com/abhisek/lessonq/internal/queue"
	"github.com/abhisek/lessonq/internal/store"
)

// Sweeper schedules periodic sweeps over all progress documents.
type Sweeper struct {
	scheduler *gocron.Scheduler
	orch      *queue.Orchestrator
	docs      store.ProgressDocRepo
	catalog   *catalog.Catalog
	policy    queue.BackfillPolicy
	interval  time.Duration
	log       logger.Logger
}

// New creates a sweeper. log may be nil.
func New(orch *queue.Orchestrator, docs store.ProgressDocRepo, cat *catalog.Catalog, policy queue.BackfillPolicy, interval time.Duration, log logger.Logger) *Sweeper {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Sweeper{
		scheduler: gocron.NewScheduler(time.UTC),
		orch:      orch,
		docs:      docs,
		catalog:   cat,
		policy:    policy,
		interval:  interval,
		log:       log,
	}
}

// Start begins the periodic sweep in a non-blocking manner.
func (s *Sweeper) Start() {
	s.scheduler.Every(s.interval).Do(func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.log.Errorf("sweep failed: %v", err)
		}
	})
	s.scheduler.StartAsync()
}

// Stop terminates the periodic sweep.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

// RunOnce sweeps every stored document once. Per-user failures are
// logged and skipped so one bad document cannot stall the sweep.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	runID := uuid.NewString()

	records, err := s.docs.List(ctx)
	if err != nil {
		return err
	}

	swept, wrote := 0, 0
	for _, rec := range records {
		rng, ok := s.catalog.Range(rec.Level)
		if !ok {
			s.log.Warnf("sweep %s: user=%s track=%s has unknown level %q, skipping",
				runID, rec.UserID, rec.Track, rec.Level)
			continue
		}
		res, err := s.orch.EnsureDailyQueue(ctx, rec.UserID, rec.Track,
			queue.Params{Range: rng, Quota: rec.Quota, Level: rec.Level},
			queue.Options{Backfill: s.policy, RunID: runID})
		if err != nil {
			s.log.Errorf("sweep %s: user=%s track=%s: %v", runID, rec.UserID, rec.Track, err)
			continue
		}
		swept++
		if res.Wrote {
			wrote++
		}
	}

	s.log.Infow("sweep finished", map[string]any{
		"run":   runID,
		"swept": swept,
		"wrote": wrote,
		"total": len(records),
	})
	return nil
}
