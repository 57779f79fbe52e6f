// Package scheduler runs the background refresh jobs for worker mode
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/config"
	"mlbstats/ingestion/internal/loader"
	"mlbstats/ingestion/internal/metrics"
	"mlbstats/ingestion/internal/repository"
)

// Scheduler manages the nightly incremental statcast refresh. Statcast is the
// only source that grows daily; the archive sources update once a season and
// are loaded on demand.
type Scheduler struct {
	cfg    *config.Config
	loader *loader.Loader
	db     *repository.Database
	cron   *cron.Cron
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config, l *loader.Loader, db *repository.Database) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		loader: l,
		db:     db,
		cron:   cron.New(),
	}
}

// Start registers the nightly refresh and starts the cron loop
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.NightlyRefreshCron, func() {
		if err := s.RefreshStatcast(ctx); err != nil {
			log.Error().Err(err).Msg("Nightly statcast refresh failed")
			metrics.RecordError("scheduler", "refresh")
			return
		}
		metrics.LastSuccessfulRefresh.SetToCurrentTime()
	}); err != nil {
		return fmt.Errorf("failed to schedule nightly refresh: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.NightlyRefreshCron).
		Msg("Nightly statcast refresh scheduled")

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Info().Msg("Scheduler stopped")
}

// RefreshStatcast loads every day between the newest stored pitch and
// yesterday. An empty table means no baseline exists and the refresh is a
// no-op; backfills are an operator decision, not something to kick off at 2am.
func (s *Scheduler) RefreshStatcast(ctx context.Context) error {
	log.Info().Msg("Running nightly statcast refresh...")

	_, newest, ok, err := s.db.Statcast.DateRange(ctx)
	if err != nil {
		return fmt.Errorf("statcast refresh: %w", err)
	}
	if !ok {
		log.Info().Msg("No statcast baseline loaded, skipping refresh")
		return nil
	}

	start := newest.AddDate(0, 0, 1)
	end := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	if start.After(end) {
		log.Info().Msg("Statcast already current")
		return nil
	}

	if err := s.loader.LoadStatcast(ctx, start, end); err != nil {
		return fmt.Errorf("statcast refresh: %w", err)
	}

	log.Info().
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Msg("Nightly statcast refresh complete")

	return nil
}
