package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	applicationrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/application"
	jobrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/job"
	notificationrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/notification"
	resumerepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/resume"
	savedjobrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/savedjob"
	userrepo "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/jobportal-backend/internal/auth"
	"github.com/heartmarshall/jobportal-backend/internal/config"
	"github.com/heartmarshall/jobportal-backend/internal/scheduler"
	applicationsvc "github.com/heartmarshall/jobportal-backend/internal/service/application"
	authsvc "github.com/heartmarshall/jobportal-backend/internal/service/auth"
	jobsvc "github.com/heartmarshall/jobportal-backend/internal/service/job"
	notificationsvc "github.com/heartmarshall/jobportal-backend/internal/service/notification"
	profilesvc "github.com/heartmarshall/jobportal-backend/internal/service/profile"
	savedjobsvc "github.com/heartmarshall/jobportal-backend/internal/service/savedjob"
	"github.com/heartmarshall/jobportal-backend/internal/transport/middleware"
	"github.com/heartmarshall/jobportal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, then serves
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories
	users := userrepo.New(pool)
	jobs := jobrepo.New(pool)
	apps := applicationrepo.New(pool)
	resumes := resumerepo.New(pool)
	saved := savedjobrepo.New(pool)
	notifications := notificationrepo.New(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	notificationService := notificationsvc.NewService(logger, notifications)
	authService := authsvc.NewService(logger, users, txm, jwtManager, cfg.Auth)
	profileService := profilesvc.NewService(logger, users, resumes, txm)
	jobService := jobsvc.NewService(logger, jobsvc.Config{
		MatchFanoutLimit:  cfg.Portal.MatchFanoutLimit,
		ReminderDaysAhead: cfg.Scheduler.ReminderDaysAhead,
	}, jobs, users, users, resumes, notificationService, txm)
	applicationService := applicationsvc.NewService(logger, cfg.Portal, apps, apps, jobs, users, resumes, notificationService, txm)
	savedJobService := savedjobsvc.NewService(logger, saved, users, jobs)

	// Transport
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	var authLimit middleware.Middleware
	if cfg.Server.AuthRateLimit > 0 {
		authLimit = limiter.Limit(cfg.Server.AuthRateLimit)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, Version),
		Auth:          rest.NewAuthHandler(authService, logger),
		Jobs:          rest.NewJobHandler(jobService, profileService, logger),
		Applications:  rest.NewApplicationHandler(applicationService, profileService, logger),
		Profiles:      rest.NewProfileHandler(profileService, logger),
		Seekers:       rest.NewSeekerHandler(profileService, savedJobService, applicationService, jobService, logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
	}, authLimit)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var background []func(context.Context) error
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(logger, jobService, cfg.Scheduler.ExpiryReminderCron)
		if err != nil {
			return err
		}
		background = append(background, sched.Run)
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout, background...)
}

// serve runs srv and every background task until ctx is cancelled or one of
// them fails, then shuts the server down within shutdownTimeout.
func serve(
	ctx context.Context,
	logger *slog.Logger,
	srv *http.Server,
	shutdownTimeout time.Duration,
	background ...func(context.Context) error,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	for _, task := range background {
		g.Go(func() error {
			return task(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func migrate(ctx context.Context, logger *slog.Logger, dsn string) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}
