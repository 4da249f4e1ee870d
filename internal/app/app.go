package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/workchatseattle/community-backend/internal/adapter/postgres"
	auditrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/audit"
	eventrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/event"
	mentorrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/mentor"
	tagrepo "github.com/workchatseattle/community-backend/internal/adapter/postgres/tag"
	"github.com/workchatseattle/community-backend/internal/auth"
	"github.com/workchatseattle/community-backend/internal/config"
	"github.com/workchatseattle/community-backend/internal/metrics"
	"github.com/workchatseattle/community-backend/internal/service/event"
	"github.com/workchatseattle/community-backend/internal/service/mentor"
	"github.com/workchatseattle/community-backend/internal/service/moderation"
	"github.com/workchatseattle/community-backend/internal/transport/middleware"
	"github.com/workchatseattle/community-backend/internal/transport/rest"
)

// rateLimitSweepInterval bounds how often idle rate limit buckets are dropped.
const rateLimitSweepInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled. Shutdown drains in-flight requests within
// cfg.Server.ShutdownTimeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHandler(cfg, logger, pool),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// newHandler wires repositories, services and HTTP handlers over pool.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) http.Handler {
	// Repositories
	txm := postgres.NewTxManager(pool)
	tags := tagrepo.New(pool)
	mentors := mentorrepo.New(pool)
	events := eventrepo.New(pool)
	audits := auditrepo.New(pool)

	// Services
	mentorSvc := mentor.NewService(logger, mentors, tags, audits, txm)
	moderationSvc := moderation.NewService(logger, mentors, events, audits, txm)
	eventSvc := event.NewService(logger, events, audits, txm)

	// Transport
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	m := metrics.New()

	return rest.NewRouter(rest.RouterDeps{
		Config:         *cfg,
		Logger:         logger,
		TokenValidator: jwtManager,
		RequestMetrics: m,
		MetricsHandler: m.Handler(),
		RateLimiter:    middleware.NewRateLimiter(rateLimitSweepInterval),
		Health: rest.NewHealthHandler(Version, rest.HealthCheck{
			Name: "database",
			Ping: pool.Ping,
		}),
		Mentor: rest.NewMentorHandler(mentorSvc, m, logger),
		Event:  rest.NewEventHandler(eventSvc, logger),
		Admin:  rest.NewAdminHandler(moderationSvc, eventSvc, m, logger),
	})
}

// serve runs srv until ctx is cancelled or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
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
		logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
