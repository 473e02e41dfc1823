package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// Warning policy thresholds
var (
	// savingsBufferMonths is how many months of combined income the
	// household should keep in reserve
	savingsBufferMonths = decimal.NewFromInt(3)
	// childcareBurdenRatio is the share of combined income above which
	// childcare is flagged
	childcareBurdenRatio = decimal.NewFromFloat(0.3)
	// extendedLeaveMonths is the leave length above which reduced pay is flagged
	extendedLeaveMonths = decimal.NewFromInt(3)
)

// WarningService derives warnings from a computed projection. Each rule is
// evaluated independently against the full monthly series and contributes at
// most one warning; the result order is fixed by rule order, not severity.
type WarningService struct{}

// NewWarningService creates a new WarningService
func NewWarningService() *WarningService {
	return &WarningService{}
}

// Detect runs every warning rule against the monthly series
func (s *WarningService) Detect(profile *domain.FinancialProfile, assumptions domain.ExpenseAssumptions, monthly []domain.MonthlyProjection) []domain.Warning {
	warnings := []domain.Warning{}

	if w := s.detectNegativeCashflow(monthly); w != nil {
		warnings = append(warnings, *w)
	}
	if w := s.detectLowSavingsBuffer(profile, monthly); w != nil {
		warnings = append(warnings, *w)
	}
	if w := s.detectHighChildcareBurden(profile, assumptions); w != nil {
		warnings = append(warnings, *w)
	}
	if w := s.detectExtendedLeave(profile); w != nil {
		warnings = append(warnings, *w)
	}

	return warnings
}

func (s *WarningService) detectNegativeCashflow(monthly []domain.MonthlyProjection) *domain.Warning {
	affected := []int{}
	for _, m := range monthly {
		if m.NetCashflow.IsNegative() {
			affected = append(affected, m.Month)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	return &domain.Warning{
		Severity:       domain.WarningSeverityCritical,
		Title:          "Negative Monthly Cashflow",
		Message:        fmt.Sprintf("Your expenses exceed your income in %d of the next 60 months.", len(affected)),
		AffectedMonths: affected,
		Recommendation: "Review the affected months and look for expenses you can reduce or defer, or build additional savings before the due date.",
	}
}

func (s *WarningService) detectLowSavingsBuffer(profile *domain.FinancialProfile, monthly []domain.MonthlyProjection) *domain.Warning {
	if len(monthly) == 0 {
		return nil
	}

	minimum := monthly[0].CumulativeSavings
	for _, m := range monthly[1:] {
		if m.CumulativeSavings.LessThan(minimum) {
			minimum = m.CumulativeSavings
		}
	}

	target := profile.CombinedIncome().Mul(savingsBufferMonths)
	if !minimum.LessThan(target) {
		return nil
	}

	return &domain.Warning{
		Severity:       domain.WarningSeverityImportant,
		Title:          "Low Savings Buffer",
		Message:        fmt.Sprintf("Your projected savings dip to $%s, below the recommended buffer of $%s (3 months of combined income).", minimum.StringFixed(2), target.StringFixed(2)),
		Recommendation: "Aim to keep at least three months of combined income in reserve throughout the projection.",
	}
}

func (s *WarningService) detectHighChildcareBurden(profile *domain.FinancialProfile, assumptions domain.ExpenseAssumptions) *domain.Warning {
	childcare := assumptions.MonthlyChildcare(profile.ChildcareType)
	if childcare.IsZero() {
		return nil
	}

	income := profile.CombinedIncome()
	if income.IsZero() || !childcare.GreaterThan(income.Mul(childcareBurdenRatio)) {
		return nil
	}

	share := childcare.Div(income).Mul(decimal.NewFromInt(100))
	return &domain.Warning{
		Severity:       domain.WarningSeverityImportant,
		Title:          "High Childcare Cost",
		Message:        fmt.Sprintf("Childcare at $%s per month is %s%% of your combined income, above the recommended 30%%.", childcare.StringFixed(2), share.StringFixed(0)),
		Recommendation: "Compare daycare and nanny options in your area, or consider whether a parent staying home would improve your cashflow.",
	}
}

func (s *WarningService) detectExtendedLeave(profile *domain.FinancialProfile) *domain.Warning {
	longest := profile.Partner1Leave.Months()
	if profile.Partner2Leave.Months().GreaterThan(longest) {
		longest = profile.Partner2Leave.Months()
	}
	if !longest.GreaterThan(extendedLeaveMonths) {
		return nil
	}

	fullPay := decimal.NewFromInt(100)
	if !profile.Partner1Leave.PercentPaid.LessThan(fullPay) && !profile.Partner2Leave.PercentPaid.LessThan(fullPay) {
		return nil
	}

	return &domain.Warning{
		Severity:       domain.WarningSeverityInformational,
		Title:          "Extended Leave at Reduced Pay",
		Message:        fmt.Sprintf("A parental leave of %s months at reduced pay will lower your household income during the first year.", longest.StringFixed(1)),
		Recommendation: "Plan for the income gap during leave, for example by setting aside the difference before the due date.",
	}
}
