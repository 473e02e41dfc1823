package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/service"
)

// ExportHandler handles PDF export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportRecordResponse represents one export record
type ExportRecordResponse struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"sizeBytes"`
	Archived    bool   `json:"archived"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ExportPDF godoc
// @Summary Export plan as PDF
// @Description Renders the user's projection as a downloadable PDF plan
// @Tags exports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /exports/pdf [post]
func (h *ExportHandler) ExportPDF(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	record, data, err := h.exportService.ExportPDF(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Create your financial profile first")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to export PDF")
		return NewInternalError(c, "Failed to export PDF")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", record.Filename))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// ListExports handles GET /exports.
// Archived entries carry a short-lived presigned download URL.
func (h *ExportHandler) ListExports(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	items, err := h.exportService.List(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list exports")
		return NewInternalError(c, "Failed to list exports")
	}

	response := make([]ExportRecordResponse, len(items))
	for i, item := range items {
		response[i] = ExportRecordResponse{
			ID:          item.Record.ID.String(),
			Filename:    item.Record.Filename,
			SizeBytes:   item.Record.SizeBytes,
			Archived:    item.Record.ObjectPath != nil,
			DownloadURL: item.DownloadURL,
			CreatedAt:   item.Record.CreatedAt.Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, response)
}
