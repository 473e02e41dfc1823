package domain

import "github.com/shopspring/decimal"

// Projection horizon
const (
	ProjectionMonths = 60
	ProjectionYears  = 5
)

// DefaultChildcareStartMonth is the baby age (in months) at which paid
// childcare begins under the default policy.
const DefaultChildcareStartMonth = 6

// Policy constants shared by the assumption resolver and the projection
// engine. They are hardcoded product policy, not derived values.
var (
	// WeeksPerMonth converts leave weeks and weekly childcare rates to months
	WeeksPerMonth = decimal.NewFromFloat(4.33)
	// NannyRateMultiplier scales the daycare weekly rate to a nanny rate
	NannyRateMultiplier = decimal.NewFromFloat(1.8)
)

// CostBand classifies a region's expense level from its childcare pricing
type CostBand string

const (
	CostBandLow    CostBand = "low"
	CostBandMedium CostBand = "medium"
	CostBandHigh   CostBand = "high"
)

// CostTier selects a column of the expense catalogs
type CostTier string

const (
	CostTierLow     CostTier = "low"
	CostTierAverage CostTier = "average"
	CostTierHigh    CostTier = "high"
)

// Tier maps a cost band to the catalog tier used for pricing.
// The medium band prices at the catalog's average column.
func (b CostBand) Tier() CostTier {
	switch b {
	case CostBandLow:
		return CostTierLow
	case CostBandHigh:
		return CostTierHigh
	default:
		return CostTierAverage
	}
}

// ChildcareCosts holds the resolved monthly childcare figures
type ChildcareCosts struct {
	Daycare decimal.Decimal `json:"daycare"`
	Nanny   decimal.Decimal `json:"nanny"`
}

// ExpenseAssumptions is the resolved cost bundle for a profile. It is derived
// once per profile by the assumption resolver and never mutated afterwards.
type ExpenseAssumptions struct {
	CostBand            CostBand                         `json:"costBand"`
	Region              string                           `json:"region,omitempty"`
	RegionMatched       bool                             `json:"regionMatched"`
	WeeklyInfantCost    decimal.Decimal                  `json:"weeklyInfantCost"`
	OneTimeCosts        map[string]decimal.Decimal       `json:"oneTimeCosts"`
	MonthZeroRecurring  map[ExpenseField]decimal.Decimal `json:"monthZeroRecurring"`
	ChildcareCosts      ChildcareCosts                   `json:"childcareCosts"`
	ChildcareStartMonth int                              `json:"childcareStartMonth"`
}

// OneTimeTotal sums the resolved one-time purchase costs
func (a ExpenseAssumptions) OneTimeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, cost := range a.OneTimeCosts {
		total = total.Add(cost)
	}
	return total
}

// MonthlyChildcare returns the monthly childcare cost for the given
// arrangement. Stay-at-home care always costs zero.
func (a ExpenseAssumptions) MonthlyChildcare(t ChildcareType) decimal.Decimal {
	switch t {
	case ChildcareTypeDaycare:
		return a.ChildcareCosts.Daycare
	case ChildcareTypeNanny:
		return a.ChildcareCosts.Nanny
	default:
		return decimal.Zero
	}
}
