// Command expiry-reminder notifies employers whose open postings close within
// the configured reminder window. It runs a single pass and exits, for
// deployments that disable the in-process scheduler and rely on an external
// cron job instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	jobrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/job"
	notificationrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/notification"
	resumerepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/resume"
	userrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/jobportal-backend/internal/app"
	"github.com/heartmarshall/jobportal-backend/internal/config"
	jobsvc "github.com/heartmarshall/jobportal-backend/internal/service/job"
	notificationsvc "github.com/heartmarshall/jobportal-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	notifier := notificationsvc.NewService(logger, notificationrepo.New(pool))
	jobs := jobsvc.NewService(logger, jobsvc.Config{
		MatchFanoutLimit:  cfg.Portal.MatchFanoutLimit,
		ReminderDaysAhead: cfg.Scheduler.ReminderDaysAhead,
	}, jobrepo.New(pool), users, users, resumerepo.New(pool), notifier, postgres.NewTxManager(pool))

	now := time.Now()

	sent, err := jobs.RemindExpiring(ctx, now)
	if err != nil {
		logger.Error("expiry reminder failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("expiry reminder completed",
		slog.Int("sent", sent),
		slog.Int("days_ahead", cfg.Scheduler.ReminderDaysAhead),
	)
}
