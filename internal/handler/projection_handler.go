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

// ProjectionHandler handles projection HTTP requests
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// MonthlyIncomeResponse represents one month's income split by partner
type MonthlyIncomeResponse struct {
	Partner1 string `json:"partner1"`
	Partner2 string `json:"partner2"`
	Total    string `json:"total"`
}

// ExpenseBreakdownResponse represents expenses by category
type ExpenseBreakdownResponse struct {
	Housing       string `json:"housing"`
	Childcare     string `json:"childcare"`
	Diapers       string `json:"diapers"`
	Food          string `json:"food"`
	Healthcare    string `json:"healthcare"`
	Clothing      string `json:"clothing"`
	OneTime       string `json:"oneTime"`
	Miscellaneous string `json:"miscellaneous"`
	Total         string `json:"total"`
}

// MonthlyProjectionResponse represents one month of the forecast
type MonthlyProjectionResponse struct {
	Month             int                      `json:"month"`
	Year              int                      `json:"year"`
	MonthOfYear       int                      `json:"monthOfYear"`
	BabyAgeMonths     int                      `json:"babyAgeMonths"`
	Income            MonthlyIncomeResponse    `json:"income"`
	Expenses          ExpenseBreakdownResponse `json:"expenses"`
	NetCashflow       string                   `json:"netCashflow"`
	CumulativeSavings string                   `json:"cumulativeSavings"`
}

// YearlySummaryResponse represents one projection year's totals
type YearlySummaryResponse struct {
	Year          int                      `json:"year"`
	TotalIncome   string                   `json:"totalIncome"`
	Expenses      ExpenseBreakdownResponse `json:"expenses"`
	NetCashflow   string                   `json:"netCashflow"`
	EndingSavings string                   `json:"endingSavings"`
}

// WarningResponse represents a projection warning
type WarningResponse struct {
	Severity       string `json:"severity"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	AffectedMonths []int  `json:"affectedMonths,omitempty"`
	Recommendation string `json:"recommendation"`
}

// ChildcareCostsResponse represents the resolved monthly childcare figures
type ChildcareCostsResponse struct {
	Daycare string `json:"daycare"`
	Nanny   string `json:"nanny"`
}

// AssumptionsResponse represents the resolved cost assumptions
type AssumptionsResponse struct {
	CostBand            string                 `json:"costBand"`
	Region              string                 `json:"region,omitempty"`
	RegionMatched       bool                   `json:"regionMatched"`
	WeeklyInfantCost    string                 `json:"weeklyInfantCost"`
	OneTimeCosts        map[string]string      `json:"oneTimeCosts"`
	MonthZeroRecurring  map[string]string      `json:"monthZeroRecurring"`
	ChildcareCosts      ChildcareCostsResponse `json:"childcareCosts"`
	ChildcareStartMonth int                    `json:"childcareStartMonth"`
}

// ProjectionResponse represents the complete projection API response
type ProjectionResponse struct {
	ID                 string                      `json:"id"`
	ProfileID          string                      `json:"profileId"`
	Assumptions        AssumptionsResponse         `json:"assumptions"`
	MonthlyProjections []MonthlyProjectionResponse `json:"monthlyProjections"`
	YearlyProjections  []YearlySummaryResponse     `json:"yearlyProjections"`
	TotalCost          string                      `json:"totalCost"`
	Warnings           []WarningResponse           `json:"warnings"`
	GeneratedAt        string                      `json:"generatedAt"`
}

func toExpenseBreakdownResponse(e domain.ExpenseBreakdown) ExpenseBreakdownResponse {
	return ExpenseBreakdownResponse{
		Housing:       e.Housing.StringFixed(2),
		Childcare:     e.Childcare.StringFixed(2),
		Diapers:       e.Diapers.StringFixed(2),
		Food:          e.Food.StringFixed(2),
		Healthcare:    e.Healthcare.StringFixed(2),
		Clothing:      e.Clothing.StringFixed(2),
		OneTime:       e.OneTime.StringFixed(2),
		Miscellaneous: e.Miscellaneous.StringFixed(2),
		Total:         e.Total.StringFixed(2),
	}
}

func toAssumptionsResponse(a domain.ExpenseAssumptions) AssumptionsResponse {
	oneTime := make(map[string]string, len(a.OneTimeCosts))
	for item, cost := range a.OneTimeCosts {
		oneTime[item] = cost.StringFixed(2)
	}
	recurring := make(map[string]string, len(a.MonthZeroRecurring))
	for field, cost := range a.MonthZeroRecurring {
		recurring[string(field)] = cost.StringFixed(2)
	}

	return AssumptionsResponse{
		CostBand:           string(a.CostBand),
		Region:             a.Region,
		RegionMatched:      a.RegionMatched,
		WeeklyInfantCost:   a.WeeklyInfantCost.StringFixed(2),
		OneTimeCosts:       oneTime,
		MonthZeroRecurring: recurring,
		ChildcareCosts: ChildcareCostsResponse{
			Daycare: a.ChildcareCosts.Daycare.StringFixed(2),
			Nanny:   a.ChildcareCosts.Nanny.StringFixed(2),
		},
		ChildcareStartMonth: a.ChildcareStartMonth,
	}
}

func toProjectionResponse(p *domain.Projection) ProjectionResponse {
	monthly := make([]MonthlyProjectionResponse, len(p.Monthly))
	for i, m := range p.Monthly {
		monthly[i] = MonthlyProjectionResponse{
			Month:         m.Month,
			Year:          m.Year,
			MonthOfYear:   m.MonthOfYear,
			BabyAgeMonths: m.BabyAgeMonths,
			Income: MonthlyIncomeResponse{
				Partner1: m.Income.Partner1.StringFixed(2),
				Partner2: m.Income.Partner2.StringFixed(2),
				Total:    m.Income.Total.StringFixed(2),
			},
			Expenses:          toExpenseBreakdownResponse(m.Expenses),
			NetCashflow:       m.NetCashflow.StringFixed(2),
			CumulativeSavings: m.CumulativeSavings.StringFixed(2),
		}
	}

	yearly := make([]YearlySummaryResponse, len(p.Yearly))
	for i, y := range p.Yearly {
		yearly[i] = YearlySummaryResponse{
			Year:          y.Year,
			TotalIncome:   y.TotalIncome.StringFixed(2),
			Expenses:      toExpenseBreakdownResponse(y.Expenses),
			NetCashflow:   y.NetCashflow.StringFixed(2),
			EndingSavings: y.EndingSavings.StringFixed(2),
		}
	}

	warnings := make([]WarningResponse, len(p.Warnings))
	for i, w := range p.Warnings {
		warnings[i] = WarningResponse{
			Severity:       string(w.Severity),
			Title:          w.Title,
			Message:        w.Message,
			AffectedMonths: w.AffectedMonths,
			Recommendation: w.Recommendation,
		}
	}

	return ProjectionResponse{
		ID:                 p.ID.String(),
		ProfileID:          p.ProfileID.String(),
		Assumptions:        toAssumptionsResponse(p.Assumptions),
		MonthlyProjections: monthly,
		YearlyProjections:  yearly,
		TotalCost:          p.TotalCost.StringFixed(2),
		Warnings:           warnings,
		GeneratedAt:        p.GeneratedAt.Format(time.RFC3339),
	}
}

// GetProjection godoc
// @Summary Get cost projection
// @Description Returns the user's 5-year projection, recomputing it if the profile changed
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProjectionResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /projections [get]
func (h *ProjectionHandler) GetProjection(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	projection, err := h.projectionService.Get(userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Create your financial profile first")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get projection")
		return NewInternalError(c, "Failed to get projection")
	}

	return c.JSON(http.StatusOK, toProjectionResponse(projection))
}

// CalculateProjection handles POST /projections/calculate.
// Always recomputes from the stored profile, replacing the cached copy.
func (h *ProjectionHandler) CalculateProjection(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	projection, err := h.projectionService.Calculate(userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Create your financial profile first")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to calculate projection")
		return NewInternalError(c, "Failed to calculate projection")
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("total_cost", projection.TotalCost.StringFixed(2)).
		Int("warnings", len(projection.Warnings)).
		Msg("Projection calculated")

	return c.JSON(http.StatusOK, toProjectionResponse(projection))
}
