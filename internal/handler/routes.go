package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nestworth/nestworth-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, profileHandler *ProfileHandler, projectionHandler *ProjectionHandler, summaryHandler *SummaryHandler, exportHandler *ExportHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")
	rateLimit := middleware.RateLimitMiddleware(rateLimiter)

	// Auth routes (public, rate limited to slow credential stuffing)
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup, rateLimit)
	auth.POST("/login", authHandler.Login, rateLimit)
	auth.POST("/forgot-password", authHandler.ForgotPassword, rateLimit)
	auth.POST("/reset-password", authHandler.ResetPassword, rateLimit)

	// Auth routes (protected)
	auth.GET("/me", authHandler.Me, authMiddleware.Authenticate())
	auth.POST("/logout", authHandler.Logout, authMiddleware.Authenticate())

	// Financial profile routes (protected)
	profiles := api.Group("/profiles")
	profiles.Use(authMiddleware.Authenticate())
	profiles.GET("", profileHandler.GetProfile)
	profiles.PUT("", profileHandler.SaveProfile)

	// Projection routes (protected; recalculation is rate limited)
	projections := api.Group("/projections")
	projections.Use(authMiddleware.Authenticate())
	projections.GET("", projectionHandler.GetProjection)
	projections.POST("/calculate", projectionHandler.CalculateProjection, rateLimit)

	// Summary routes (protected, rate limited: each call may hit the LLM)
	summaries := api.Group("/summaries")
	summaries.Use(authMiddleware.Authenticate())
	summaries.Use(rateLimit)
	summaries.POST("/generate", summaryHandler.GenerateSummary)
	summaries.POST("/generate-assumptions", summaryHandler.GenerateAssumptions)

	// Export routes (protected)
	exports := api.Group("/exports")
	exports.Use(authMiddleware.Authenticate())
	exports.POST("/pdf", exportHandler.ExportPDF, rateLimit)
	exports.GET("", exportHandler.ListExports)

	// WebSocket endpoint (token authenticated via query param)
	e.GET("/ws", wsHandler.HandleWS)
}
