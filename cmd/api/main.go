// Command api runs the Outings HTTP service: weekend and same-day activity
// recommendations for a single household, backed by Postgres and public
// weather/routing upstreams.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outings/internal/api/handlers"
	"outings/internal/config"
	"outings/internal/core"
	"outings/internal/db"
	"outings/internal/engine"
	"outings/internal/events"
	"outings/internal/external"
	"outings/internal/hours"
	"outings/internal/travel"
	"outings/internal/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("service", cfg.Service),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Build.Version),
	)

	clock, err := cfg.NewClock()
	if err != nil {
		return fmt.Errorf("building clock: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("resolving home timezone: %w", err)
	}
	home := cfg.HomeLocation()

	ctx := context.Background()

	pool, err := newDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	activityRepo := db.NewActivityRepository(pool)
	logRepo := db.NewLogRepository(pool)
	prefRepo := db.NewPreferenceRepository(pool)
	eventRepo := db.NewEventRepository(pool)

	weatherHTTP := &http.Client{Timeout: cfg.Weather.Timeout}
	openMeteo := external.NewOpenMeteoClient(weatherHTTP, cfg.Weather.OpenMeteoBaseURL, cfg.Weather.UserAgent, home, cfg.Home.Timezone)
	nws := external.NewNWSClient(weatherHTTP, cfg.Weather.NWSBaseURL, cfg.Weather.UserAgent, home)

	routingHTTP := &http.Client{Timeout: cfg.Routing.Timeout}
	osrm := external.NewOSRMClient(routingHTTP, cfg.Routing.OSRMBaseURL, cfg.Weather.UserAgent)

	weatherSvc := weather.NewService(openMeteo, nws, clock, loc, logger)
	travelEst := travel.NewEstimator(osrm, cfg.Routing.FallbackMph, logger)
	eval := hours.NewEvaluator(clock, loc)

	recEngine := engine.New(
		activityRepo,
		logRepo,
		prefRepo,
		weatherSvc,
		travelEst,
		eval,
		clock,
		engine.Options{
			Home:         home,
			DefaultLimit: cfg.Engine.DefaultLimit,
			WeekendLimit: cfg.Engine.WeekendLimit,
			LogWindow:    cfg.Engine.LogWindow,
		},
		logger,
	)
	eventsSvc := events.NewService(eventRepo, clock, loc, 0)

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.HealthProbes = []core.HealthProbe{db.NewProbe(pool)}
	srv.OnShutdown(func(context.Context) error {
		pool.Close()
		return nil
	})

	recHandler := handlers.NewRecommendationsHandler(recEngine, logger)
	logsHandler := handlers.NewLogsHandler(logRepo, clock, srv.Validator, logger)
	prefsHandler := handlers.NewPreferencesHandler(prefRepo, srv.Validator, logger)
	eventsHandler := handlers.NewEventsHandler(eventsSvc, logger)

	srv.V1RouteRegistrars = []func(chi.Router){
		recHandler.RegisterRoutes,
		logsHandler.RegisterRoutes,
		prefsHandler.RegisterRoutes,
		eventsHandler.RegisterRoutes,
	}
	srv.MountRoutes()

	return runHTTPServer(srv, cfg.Server.Port, logger)
}

func newDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func runHTTPServer(srv *core.Server, port string, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", httpServer.Addr))
		serverErr <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.Any("error", err))
		httpServer.Close()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown hooks failed", slog.Any("error", err))
	}
	logger.Info("shutdown complete")
	return nil
}
