// Package main is the entrypoint for the AstroDaily API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/astrodaily/astrodaily/internal/analytics"
	"github.com/astrodaily/astrodaily/internal/cache"
	"github.com/astrodaily/astrodaily/internal/config"
	"github.com/astrodaily/astrodaily/internal/genai"
	"github.com/astrodaily/astrodaily/internal/generator"
	"github.com/astrodaily/astrodaily/internal/handler"
	"github.com/astrodaily/astrodaily/internal/horoscope"
	"github.com/astrodaily/astrodaily/internal/metrics"
	"github.com/astrodaily/astrodaily/internal/middleware"
	"github.com/astrodaily/astrodaily/internal/repository"
	"github.com/astrodaily/astrodaily/internal/server"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache and event stream
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	recorder := metrics.NewInMemory()
	horoscopeRepo := repository.NewHoroscopeRepository(repo)
	eventRepo := repository.NewEventRepository(repo)

	// Resolution pipeline: fallback, day cache, stored readings, AI.
	// Without a gateway key the AI layer stays off and the pipeline
	// resolves from the remaining layers.
	gen := generator.New(nil)
	var horoscopeSvc *horoscope.Service
	if cfg.AIEnabled() {
		aiClient := genai.NewClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel, logger)
		horoscopeSvc = horoscope.NewService(gen, cacheClient, horoscopeRepo, aiClient, logger, recorder, nil)
		logger.Info("AI generation enabled", "model", cfg.AIModel)
	} else {
		horoscopeSvc = horoscope.NewService(gen, cacheClient, horoscopeRepo, nil, logger, recorder, nil)
		logger.Info("AI generation disabled, serving deterministic readings")
	}

	// Analytics: fire-and-forget publisher into a Redis stream, one
	// consumer-group worker draining it into Postgres, and an on-demand
	// aggregator over the stored rows.
	publisher := analytics.NewPublisher(cacheClient.Client(), logger, recorder)
	worker := analytics.NewWorker(cacheClient.Client(), eventRepo, logger, analytics.NewConsumerID(), recorder)
	aggregator := analytics.NewAggregator(eventRepo, logger, nil)
	aggregator.SetPageSize(cfg.AnalyticsPageSize)
	aggregator.SetMaxPages(cfg.AnalyticsMaxPages)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	horoscopeHandler := handler.NewHoroscopeHandler(horoscopeSvc, logger)
	trackHandler := handler.NewTrackHandler(publisher, logger, nil)
	analyticsHandler := handler.NewAnalyticsHandler(aggregator, logger)
	adminHandler := handler.NewAdminHandler(horoscopeRepo, cacheClient, logger, recorder, nil)
	metricsHandler := handler.NewMetricsHandler(recorder)

	r := setupRouter(
		healthHandler,
		horoscopeHandler,
		trackHandler,
		analyticsHandler,
		adminHandler,
		metricsHandler,
		cacheClient,
		cfg,
		logger,
	)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// The worker outlives in-flight HTTP requests: it is registered
	// first so it shuts down last, after the tracking endpoint has
	// stopped producing.
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()
	srv.OnShutdown("analytics worker", worker.Shutdown)
	go func() {
		if err := worker.Run(workerCtx); err != nil && workerCtx.Err() == nil {
			logger.Error("analytics worker exited", "error", err)
		}
	}()

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	healthHandler *handler.HealthHandler,
	horoscopeHandler *handler.HoroscopeHandler,
	trackHandler *handler.TrackHandler,
	analyticsHandler *handler.AnalyticsHandler,
	adminHandler *handler.AdminHandler,
	metricsHandler *handler.MetricsHandler,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: cfg.IsDevelopment(),
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", handler.Hello)

	adminAuth := middleware.AdminAuth(middleware.AdminAuthConfig{
		Logger:  logger,
		KeyHash: cfg.AdminKeyHash,
	})

	trackRateLimit := middleware.RateLimitIP(middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitTrackEnabled,
		RPS:     cfg.RateLimitTrackRPS,
		Burst:   cfg.RateLimitTrackBurst,
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public read surface
		r.Get("/signs", horoscopeHandler.Signs)
		r.Get("/horoscope/{signID}", horoscopeHandler.Get)

		// Tracking ingestion: unauthenticated, so rate limited per IP
		r.With(trackRateLimit).Post("/analytics/events", trackHandler.Track)

		// Admin surface
		r.With(adminAuth).Get("/analytics/summary", analyticsHandler.Summary)
		r.With(adminAuth).Post("/analytics/summary", analyticsHandler.Summary)
		r.With(adminAuth).Put("/admin/horoscopes/{signID}/{date}", adminHandler.UpsertHoroscope)
	})

	// 404 and 405 handlers
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
