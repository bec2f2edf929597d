// Package main is the entrypoint for the Bookstore API server.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/auth"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/config"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/handler"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/metrics"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/middleware"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/server"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/service"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/store"
	"github.com/bhujbalpratik/Bookstore-RESTAPI/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize document stores
	userStore, err := store.NewUserStore(cfg.UsersFile())
	if err != nil {
		logger.Error("failed to open users store", "error", err, "path", cfg.UsersFile())
		os.Exit(1)
	}
	bookStore, err := store.NewBookStore(cfg.BooksFile())
	if err != nil {
		logger.Error("failed to open books store", "error", err, "path", cfg.BooksFile())
		os.Exit(1)
	}
	logger.Info("document stores ready", "data_dir", cfg.DataDir)

	// Initialize token manager and validator
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	validator := validation.New()

	// Initialize services
	metricsRecorder := metrics.NewInMemory()
	userService := service.NewUserService(userStore, tokens, metricsRecorder)
	bookService := service.NewBookService(bookStore, metricsRecorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(userStore, bookStore)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)
	userHandler := handler.NewUserHandler(userService, validator, logger, cfg.IsProduction())
	bookHandler := handler.NewBookHandler(bookService, validator, logger)

	// Setup router
	r := setupRouter(h, healthHandler, metricsHandler, userHandler, bookHandler, tokens, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_url", cfg.BaseURL,
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
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	metricsHandler *handler.MetricsHandler,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	tokens *auth.TokenManager,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	corsCfg.AllowCredentials = true
	r.Use(middleware.CORS(corsCfg))

	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Logger:  logger,
		Enabled: cfg.RateLimitEnabled,
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
	}))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// Root info endpoint
	r.Get("/", h.Hello)

	authCfg := middleware.AuthConfig{
		Logger: logger,
		Tokens: tokens,
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Registration and login never require a token
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/logout", userHandler.Logout)
		})

		// Profile management (requires authentication)
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Get("/me", userHandler.Me)
			r.Patch("/me", userHandler.Update)
			r.Delete("/me", userHandler.Delete)
		})

		// Book catalog (requires authentication)
		r.Route("/books", func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Get("/", bookHandler.List)
			r.Post("/", bookHandler.Create)
			r.Get("/{id}", bookHandler.Get)
			r.Patch("/{id}", bookHandler.Update)
			r.Delete("/{id}", bookHandler.Delete)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
