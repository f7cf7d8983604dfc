// Package scheduler runs the periodic expiry reminder inside the server
// process.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type reminder interface {
	RemindExpiring(ctx context.Context, now time.Time) (int, error)
}

// Scheduler fires job-expiry reminders on a standard 5-field cron spec.
type Scheduler struct {
	reminder reminder
	schedule cron.Schedule
	spec     string
	log      *slog.Logger
	now      func() time.Time
}

// New parses spec and returns a Scheduler. It does not start anything.
func New(logger *slog.Logger, r reminder, spec string) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}
	return &Scheduler{
		reminder: r,
		schedule: schedule,
		spec:     spec,
		log:      logger.With("component", "scheduler"),
		now:      time.Now,
	}, nil
}

// Next returns the first activation strictly after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Run blocks until ctx is cancelled, then waits for a running reminder to
// finish.
func (s *Scheduler) Run(ctx context.Context) error {
	cronLog := cron.PrintfLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelWarn))

	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() { s.remind(ctx) }))
	c.Start()

	s.log.InfoContext(ctx, "scheduler started",
		slog.String("spec", s.spec),
		slog.Time("next_run", s.Next(s.now())),
	)

	<-ctx.Done()
	<-c.Stop().Done()

	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) remind(ctx context.Context) {
	start := s.now()

	sent, err := s.reminder.RemindExpiring(ctx, start)
	if err != nil {
		s.log.ErrorContext(ctx, "expiry reminder failed", slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "expiry reminder finished",
		slog.Int("sent", sent),
		slog.Duration("duration", s.now().Sub(start)),
	)
}
