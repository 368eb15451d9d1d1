package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockTracker/internal/config"
)

// Job produces one report. It is called once per cron tick.
type Job func(ctx context.Context) error

// Scheduler re-runs a report job on a cron schedule.
type Scheduler struct {
	Cron   *cron.Cron
	Job    Job
	Logger zerolog.Logger
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler. Specs carry a leading seconds field and
// a tick is skipped while the previous report is still running.
func NewScheduler(ctx context.Context, job Job, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithParser(config.CronParser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Job:    job,
		Logger: logger,
		Ctx:    ctx,
	}
}

// Register schedules the job on the given spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	s.Logger.Info().Str("cron", spec).Msg("report task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info().Msg("scheduler stopped")
}

// RunNow executes the job immediately and returns its error.
func (s *Scheduler) RunNow() error {
	return s.Job(s.Ctx)
}

// Wait blocks until the scheduler's context is done, then stops it.
func (s *Scheduler) Wait() {
	<-s.Ctx.Done()
	s.Stop()
}

func (s *Scheduler) run() {
	if s.Ctx.Err() != nil {
		return
	}
	s.Logger.Info().Msg("running scheduled report")
	if err := s.Job(s.Ctx); err != nil {
		s.Logger.Error().Err(err).Msg("scheduled report failed")
	}
}
