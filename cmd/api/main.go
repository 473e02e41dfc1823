package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/nestworth/nestworth-backend/internal/config"
	"github.com/nestworth/nestworth-backend/internal/handler"
	"github.com/nestworth/nestworth-backend/internal/integrations/openai"
	"github.com/nestworth/nestworth-backend/internal/mailer"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/repository/postgres"
	"github.com/nestworth/nestworth-backend/internal/repository/storage"
	"github.com/nestworth/nestworth-backend/internal/service"
	"github.com/nestworth/nestworth-backend/internal/websocket"
)

// @title NestWorth API
// @version 1.0
// @description Backend for NestWorth, a five-year baby cost planning service.
//
// @BasePath /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token, prefixed with "Bearer "
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Verify database connection
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	projectionRepo := postgres.NewProjectionRepository(pool)
	exportRepo := postgres.NewExportRepository(pool)
	resetTokenRepo := postgres.NewResetTokenRepository(pool)

	// Initialize services
	authService := service.NewAuthService(userRepo, resetTokenRepo, cfg.JWTSecret, cfg.JWTExpiresIn, cfg.AppBaseURL)
	profileService := service.NewProfileService(profileRepo)
	projectionService := service.NewProjectionService(profileRepo, projectionRepo, service.NewAssumptionService(), service.NewWarningService())
	summaryService := service.NewSummaryService(projectionService)
	exportService := service.NewExportService(exportRepo, projectionService)
	maintenanceService := service.NewMaintenanceService(resetTokenRepo, projectionRepo, log.Logger)

	// Optional integrations
	if cfg.SMTP.Enabled() {
		authService.SetMailer(mailer.NewSMTPMailer(cfg.SMTP))
	} else {
		log.Info().Msg("SMTP not configured, password reset links will be logged")
	}

	if cfg.S3.Enabled() {
		archive, err := storage.NewS3ExportArchive(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize export archive")
		}
		exportService.SetArchive(archive)
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Export archiving enabled")
	}

	if cfg.OpenAI.Enabled() {
		summaryService.SetCompletionClient(openai.NewClient(openai.Config{
			APIKey: cfg.OpenAI.APIKey,
			Model:  cfg.OpenAI.Model,
		}))
		log.Info().Str("model", cfg.OpenAI.Model).Msg("LLM summaries enabled")
	}

	// WebSocket hub for real-time updates
	hub := websocket.NewHub()
	profileService.SetEventPublisher(hub)
	projectionService.SetEventPublisher(hub)
	exportService.SetEventPublisher(hub)

	// Nightly cleanup of expired reset tokens and stale projections
	maintenanceService.Start()
	defer maintenanceService.Stop()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	projectionHandler := handler.NewProjectionHandler(projectionService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	exportHandler := handler.NewExportHandler(exportService)
	wsHandler := handler.NewWebSocketHandler(hub, authService, cfg.CORSOrigins)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/healthz", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
	})

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", handler.ServeOpenAPISpec)

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, authHandler, profileHandler, projectionHandler, summaryHandler, exportHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
