package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

func TestDetermineCostBand(t *testing.T) {
	svc := NewAssumptionService()

	tests := []struct {
		name         string
		weeklyInfant int
		want         domain.CostBand
	}{
		{"below low threshold", 279, domain.CostBandLow},
		{"at low threshold", 280, domain.CostBandMedium},
		{"mid range", 340, domain.CostBandMedium},
		{"at high threshold", 400, domain.CostBandMedium},
		{"above high threshold", 401, domain.CostBandHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.DetermineCostBand(tt.weeklyInfant))
		})
	}
}

func TestResolve_NationalFallback(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("99999")

	assert.False(t, assumptions.RegionMatched)
	assert.Equal(t, "National Average", assumptions.Region)
	assert.Equal(t, domain.CostBandMedium, assumptions.CostBand)
	assert.Equal(t, "340", assumptions.WeeklyInfantCost.String())
	// 340 * 4.33 = 1472.2 rounds to 1472
	assert.Equal(t, "1472", assumptions.ChildcareCosts.Daycare.String())
	// 340 * 1.8 * 4.33 = 2649.96 rounds to 2650
	assert.Equal(t, "2650", assumptions.ChildcareCosts.Nanny.String())
	assert.Equal(t, domain.DefaultChildcareStartMonth, assumptions.ChildcareStartMonth)
}

func TestResolve_HighCostRegion(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("10001")

	assert.True(t, assumptions.RegionMatched)
	assert.Equal(t, "New York, NY", assumptions.Region)
	assert.Equal(t, domain.CostBandHigh, assumptions.CostBand)
	// 450 * 4.33 = 1948.5 rounds half away from zero to 1949
	assert.Equal(t, "1949", assumptions.ChildcareCosts.Daycare.String())
	// 450 * 1.8 * 4.33 = 3507.3 rounds to 3507
	assert.Equal(t, "3507", assumptions.ChildcareCosts.Nanny.String())

	// High band prices the one-time catalog at the high tier
	assert.Equal(t, "800", assumptions.OneTimeCosts["Crib"].String())
	assert.Equal(t, "800", assumptions.OneTimeCosts["Stroller"].String())
	assert.Equal(t, "2850", assumptions.OneTimeTotal().String())
}

func TestResolve_LowCostRegion(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("35004")

	assert.True(t, assumptions.RegionMatched)
	assert.Equal(t, domain.CostBandLow, assumptions.CostBand)
	// 240 * 4.33 = 1039.2 rounds to 1039
	assert.Equal(t, "1039", assumptions.ChildcareCosts.Daycare.String())
	assert.Equal(t, "150", assumptions.OneTimeCosts["Crib"].String())
	assert.Equal(t, "530", assumptions.OneTimeTotal().String())
}

func TestResolve_HalfDollarRoundsUp(t *testing.T) {
	svc := NewAssumptionService()

	// Little Rock: 250 * 4.33 = 1082.5 rounds to 1083
	assumptions := svc.Resolve("71601")

	assert.Equal(t, "1083", assumptions.ChildcareCosts.Daycare.String())
}

func TestResolve_MonthZeroRecurring(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("99999")

	require.Len(t, assumptions.MonthZeroRecurring, len(domain.RecurringExpenseFields))
	assert.Equal(t, "115", assumptions.MonthZeroRecurring[domain.ExpenseFieldDiapers].String())
	assert.Equal(t, "150", assumptions.MonthZeroRecurring[domain.ExpenseFieldFood].String())
	assert.Equal(t, "50", assumptions.MonthZeroRecurring[domain.ExpenseFieldClothing].String())
	assert.Equal(t, "75", assumptions.MonthZeroRecurring[domain.ExpenseFieldHealthcare].String())
	assert.Equal(t, "170", assumptions.MonthZeroRecurring[domain.ExpenseFieldMiscellaneous].String())
}

func TestResolve_OneTimeEssentialsOnly(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("99999")

	require.Len(t, assumptions.OneTimeCosts, 6)
	assert.Equal(t, "1120", assumptions.OneTimeTotal().String())
	_, hasMattress := assumptions.OneTimeCosts["Crib Mattress"]
	assert.False(t, hasMattress)
}

func TestResolve_MonthlyChildcare(t *testing.T) {
	svc := NewAssumptionService()

	assumptions := svc.Resolve("99999")

	assert.Equal(t, "1472", assumptions.MonthlyChildcare(domain.ChildcareTypeDaycare).String())
	assert.Equal(t, "2650", assumptions.MonthlyChildcare(domain.ChildcareTypeNanny).String())
	assert.Equal(t, "0", assumptions.MonthlyChildcare(domain.ChildcareTypeStayAtHome).String())
}
