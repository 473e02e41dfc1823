package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/service"
)

// SummaryHandler handles narrative summary HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GenerateSummaryRequest represents the generate summary request
type GenerateSummaryRequest struct {
	CustomInstructions string `json:"customInstructions"`
}

// SummaryResponse represents a generated narrative
type SummaryResponse struct {
	Summary     string `json:"summary"`
	Source      string `json:"source"`
	GeneratedAt string `json:"generatedAt"`
}

// GenerateSummary godoc
// @Summary Generate plan summary
// @Description Produces a narrative summary of the user's projection, via LLM when configured
// @Tags summaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateSummaryRequest false "Optional instructions"
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /summaries/generate [post]
func (h *SummaryHandler) GenerateSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	// Body is optional
	var req GenerateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.summaryService.Generate(c.Request().Context(), userID, req.CustomInstructions)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Create your financial profile first")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to generate summary")
		return NewInternalError(c, "Failed to generate summary")
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		Summary:     result.Text,
		Source:      result.Source,
		GeneratedAt: result.GeneratedAt.Format(time.RFC3339),
	})
}

// GenerateAssumptions handles POST /summaries/generate-assumptions.
// Explains the resolved cost assumptions behind the current projection.
func (h *SummaryHandler) GenerateAssumptions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	result, err := h.summaryService.ExplainAssumptions(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Create your financial profile first")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to explain assumptions")
		return NewInternalError(c, "Failed to explain assumptions")
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		Summary:     result.Text,
		Source:      result.Source,
		GeneratedAt: result.GeneratedAt.Format(time.RFC3339),
	})
}
