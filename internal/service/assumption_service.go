package service

import (
	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/refdata"
)

// Weekly infant rate thresholds that split regions into cost bands
const (
	lowBandBelow  = 280
	highBandAbove = 400
)

// AssumptionService resolves a postal code into the cost assumptions a
// projection runs on: regional cost band, catalog tier, one-time purchase
// prices, the month-zero recurring baseline, and monthly childcare rates.
type AssumptionService struct{}

// NewAssumptionService creates a new AssumptionService
func NewAssumptionService() *AssumptionService {
	return &AssumptionService{}
}

// DetermineCostBand maps a weekly infant childcare rate onto a cost band
func (s *AssumptionService) DetermineCostBand(weeklyInfant int) domain.CostBand {
	switch {
	case weeklyInfant < lowBandBelow:
		return domain.CostBandLow
	case weeklyInfant > highBandAbove:
		return domain.CostBandHigh
	default:
		return domain.CostBandMedium
	}
}

// Resolve builds the full assumption set for a postal code. Unmatched codes
// fall back to the national average rates with RegionMatched false.
func (s *AssumptionService) Resolve(postalCode string) domain.ExpenseAssumptions {
	rate, matched := refdata.LookupChildcare(postalCode)
	if !matched {
		rate = refdata.NationalAverageRate()
	}

	band := s.DetermineCostBand(rate.WeeklyInfant)
	tier := band.Tier()

	weekly := decimal.NewFromInt(int64(rate.WeeklyInfant))
	daycare := weekly.Mul(domain.WeeksPerMonth).Round(0)
	nanny := weekly.Mul(domain.NannyRateMultiplier).Mul(domain.WeeksPerMonth).Round(0)

	oneTime := make(map[string]decimal.Decimal)
	for _, item := range refdata.EssentialOneTimeItems() {
		oneTime[item.Name] = item.Cost.AtTier(tier)
	}

	return domain.ExpenseAssumptions{
		CostBand:            band,
		Region:              rate.Region(),
		RegionMatched:       matched,
		WeeklyInfantCost:    weekly,
		OneTimeCosts:        oneTime,
		MonthZeroRecurring:  refdata.RecurringTotalsAt(0, tier),
		ChildcareCosts:      domain.ChildcareCosts{Daycare: daycare, Nanny: nanny},
		ChildcareStartMonth: domain.DefaultChildcareStartMonth,
	}
}
