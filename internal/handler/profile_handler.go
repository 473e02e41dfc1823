package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/service"
)

// ProfileHandler handles financial profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ParentalLeaveRequest represents one partner's leave terms in a request
type ParentalLeaveRequest struct {
	DurationWeeks int    `json:"durationWeeks"`
	PercentPaid   string `json:"percentPaid"`
}

// SaveProfileRequest represents the save profile request
type SaveProfileRequest struct {
	Partner1Income     string               `json:"partner1Income"`
	Partner2Income     string               `json:"partner2Income"`
	PostalCode         string               `json:"postalCode"`
	DueDate            string               `json:"dueDate"`
	CurrentSavings     string               `json:"currentSavings"`
	ChildcareType      string               `json:"childcareType"`
	Partner1Leave      ParentalLeaveRequest `json:"partner1Leave"`
	Partner2Leave      ParentalLeaveRequest `json:"partner2Leave"`
	MonthlyHousingCost string               `json:"monthlyHousingCost"`
}

// ParentalLeaveResponse represents one partner's leave terms in a response
type ParentalLeaveResponse struct {
	DurationWeeks int    `json:"durationWeeks"`
	PercentPaid   string `json:"percentPaid"`
}

// FinancialProfileResponse represents the financial profile response
type FinancialProfileResponse struct {
	ID                 string                `json:"id"`
	Partner1Income     string                `json:"partner1Income"`
	Partner2Income     string                `json:"partner2Income"`
	PostalCode         string                `json:"postalCode"`
	DueDate            string                `json:"dueDate"`
	CurrentSavings     string                `json:"currentSavings"`
	ChildcareType      string                `json:"childcareType"`
	Partner1Leave      ParentalLeaveResponse `json:"partner1Leave"`
	Partner2Leave      ParentalLeaveResponse `json:"partner2Leave"`
	MonthlyHousingCost string                `json:"monthlyHousingCost"`
	CreatedAt          string                `json:"createdAt"`
	UpdatedAt          string                `json:"updatedAt"`
}

func profileToResponse(p *domain.FinancialProfile) FinancialProfileResponse {
	return FinancialProfileResponse{
		ID:             p.ID.String(),
		Partner1Income: p.Partner1Income.StringFixed(2),
		Partner2Income: p.Partner2Income.StringFixed(2),
		PostalCode:     p.PostalCode,
		DueDate:        p.DueDate.Format("2006-01-02"),
		CurrentSavings: p.CurrentSavings.StringFixed(2),
		ChildcareType:  string(p.ChildcareType),
		Partner1Leave: ParentalLeaveResponse{
			DurationWeeks: p.Partner1Leave.DurationWeeks,
			PercentPaid:   p.Partner1Leave.PercentPaid.StringFixed(2),
		},
		Partner2Leave: ParentalLeaveResponse{
			DurationWeeks: p.Partner2Leave.DurationWeeks,
			PercentPaid:   p.Partner2Leave.PercentPaid.StringFixed(2),
		},
		MonthlyHousingCost: p.MonthlyHousingCost.StringFixed(2),
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
}

// profileFieldError maps a profile validation error to the offending field
func profileFieldError(err error) (ValidationError, bool) {
	switch {
	case errors.Is(err, domain.ErrNegativeIncome):
		return ValidationError{Field: "income", Message: "Income must not be negative"}, true
	case errors.Is(err, domain.ErrNegativeSavings):
		return ValidationError{Field: "currentSavings", Message: "Savings must not be negative"}, true
	case errors.Is(err, domain.ErrNegativeHousingCost):
		return ValidationError{Field: "monthlyHousingCost", Message: "Housing cost must not be negative"}, true
	case errors.Is(err, domain.ErrInvalidPostalCode):
		return ValidationError{Field: "postalCode", Message: "Postal code must be exactly 5 digits"}, true
	case errors.Is(err, domain.ErrInvalidChildcareType):
		return ValidationError{Field: "childcareType", Message: "Childcare type must be daycare, nanny, or stay_at_home"}, true
	case errors.Is(err, domain.ErrMissingDueDate):
		return ValidationError{Field: "dueDate", Message: "Due date is required"}, true
	case errors.Is(err, domain.ErrInvalidLeaveDuration):
		return ValidationError{Field: "leave", Message: "Leave duration must be between 0 and 52 weeks"}, true
	case errors.Is(err, domain.ErrInvalidLeavePercent):
		return ValidationError{Field: "leave", Message: "Leave pay percent must be between 0 and 100"}, true
	}
	return ValidationError{}, false
}

// GetProfile godoc
// @Summary Get financial profile
// @Description Returns the authenticated user's financial profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FinancialProfileResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /profiles [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	profile, err := h.profileService.Get(userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Financial profile not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get financial profile")
		return NewInternalError(c, "Failed to get financial profile")
	}

	return c.JSON(http.StatusOK, profileToResponse(profile))
}

// SaveProfile godoc
// @Summary Save financial profile
// @Description Creates or replaces the authenticated user's financial profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body SaveProfileRequest true "Financial profile"
// @Success 200 {object} FinancialProfileResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /profiles [put]
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	partner1Income, err := decimal.NewFromString(req.Partner1Income)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "partner1Income", Message: "Partner 1 income must be a valid number"},
		})
	}
	partner2Income, err := decimal.NewFromString(req.Partner2Income)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "partner2Income", Message: "Partner 2 income must be a valid number"},
		})
	}
	currentSavings, err := decimal.NewFromString(req.CurrentSavings)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "currentSavings", Message: "Current savings must be a valid number"},
		})
	}
	housingCost, err := decimal.NewFromString(req.MonthlyHousingCost)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "monthlyHousingCost", Message: "Monthly housing cost must be a valid number"},
		})
	}
	partner1Percent, err := decimal.NewFromString(req.Partner1Leave.PercentPaid)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "partner1Leave.percentPaid", Message: "Leave pay percent must be a valid number"},
		})
	}
	partner2Percent, err := decimal.NewFromString(req.Partner2Leave.PercentPaid)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "partner2Leave.percentPaid", Message: "Leave pay percent must be a valid number"},
		})
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "dueDate", Message: "Due date must be in YYYY-MM-DD format"},
		})
	}

	profile := &domain.FinancialProfile{
		UserID:         userID,
		Partner1Income: partner1Income,
		Partner2Income: partner2Income,
		PostalCode:     strings.TrimSpace(req.PostalCode),
		DueDate:        dueDate,
		CurrentSavings: currentSavings,
		ChildcareType:  domain.ChildcareType(req.ChildcareType),
		Partner1Leave: domain.ParentalLeave{
			DurationWeeks: req.Partner1Leave.DurationWeeks,
			PercentPaid:   partner1Percent,
		},
		Partner2Leave: domain.ParentalLeave{
			DurationWeeks: req.Partner2Leave.DurationWeeks,
			PercentPaid:   partner2Percent,
		},
		MonthlyHousingCost: housingCost,
	}

	saved, err := h.profileService.Save(profile)
	if err != nil {
		if fieldErr, ok := profileFieldError(err); ok {
			return NewValidationError(c, "Validation failed", []ValidationError{fieldErr})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to save financial profile")
		return NewInternalError(c, "Failed to save financial profile")
	}

	log.Info().Str("user_id", userID.String()).Str("postal_code", saved.PostalCode).Msg("Financial profile saved")

	return c.JSON(http.StatusOK, profileToResponse(saved))
}
