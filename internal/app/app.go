package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/restoration-backend/internal/auth"
	"github.com/heartmarshall/restoration-backend/internal/config"
	"github.com/heartmarshall/restoration-backend/internal/service/restoration"
	"github.com/heartmarshall/restoration-backend/internal/telemetry"
	"github.com/heartmarshall/restoration-backend/internal/transport/middleware"
	"github.com/heartmarshall/restoration-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// restoration service behind the REST API and serves until ctx is cancelled,
// then drains requests and pending notifications.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, Version)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	deps, err := NewDeps(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, deps, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

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
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHandler assembles the middleware stack and routes.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps *Deps, limiter *middleware.RateLimiter) http.Handler {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	checks := []rest.HealthCheck{{Name: "database", Pinger: deps.Pool}}
	if deps.Photos != nil {
		checks = append(checks, rest.HealthCheck{Name: "storage", Pinger: deps.Photos, Optional: true})
	}

	api := middleware.Chain(
		middleware.RequireOperator,
		middleware.Source(restoration.SourceDashboard),
		limiter.Limit(cfg.RateLimit.MutationsPerMinute),
	)

	router := rest.NewRouter(
		rest.NewHealthHandler(BuildVersion(), checks...),
		rest.NewRestorationHandler(deps.Restorations, logger),
		api,
	)

	// Auth runs outside Logger so request logs carry the operator.
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
	)(router)
}
