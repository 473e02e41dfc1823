package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestChildcareTypeValid(t *testing.T) {
	tests := []struct {
		name     string
		ct       ChildcareType
		expected bool
	}{
		{"daycare", ChildcareTypeDaycare, true},
		{"nanny", ChildcareTypeNanny, true},
		{"stay at home", ChildcareTypeStayAtHome, true},
		{"unknown value", ChildcareType("grandparents"), false},
		{"empty value", ChildcareType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ct.Valid() != tt.expected {
				t.Errorf("ChildcareType(%q).Valid() = %v, want %v", tt.ct, tt.ct.Valid(), tt.expected)
			}
		})
	}
}

func TestChildcareTypeValuesMatchDatabaseConstraints(t *testing.T) {
	// These values must match the CHECK constraint in the database:
	// CHECK (childcare_type IN ('daycare', 'nanny', 'stay_at_home'))
	dbConstraintValues := []string{"daycare", "nanny", "stay_at_home"}
	for _, dbVal := range dbConstraintValues {
		if !ChildcareType(dbVal).Valid() {
			t.Errorf("Database constraint value %q not accepted by ChildcareType.Valid", dbVal)
		}
	}
}

func TestParentalLeaveMonths(t *testing.T) {
	tests := []struct {
		name     string
		weeks    int
		expected string
	}{
		{"twelve weeks", 12, "2.77"},
		{"twenty six weeks", 26, "6.00"},
		{"zero weeks", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leave := ParentalLeave{DurationWeeks: tt.weeks, PercentPaid: decimal.NewFromInt(100)}
			got := leave.Months().Round(2).StringFixed(2)
			if got != tt.expected {
				t.Errorf("Months() for %d weeks = %s, want %s", tt.weeks, got, tt.expected)
			}
		})
	}
}

func validTestProfile() *FinancialProfile {
	return &FinancialProfile{
		Partner1Income:     decimal.NewFromInt(5000),
		Partner2Income:     decimal.NewFromInt(4500),
		PostalCode:         "94102",
		DueDate:            time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC),
		CurrentSavings:     decimal.NewFromInt(10000),
		ChildcareType:      ChildcareTypeDaycare,
		Partner1Leave:      ParentalLeave{DurationWeeks: 12, PercentPaid: decimal.NewFromInt(100)},
		Partner2Leave:      ParentalLeave{DurationWeeks: 12, PercentPaid: decimal.NewFromInt(60)},
		MonthlyHousingCost: decimal.NewFromInt(2000),
	}
}

func TestFinancialProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *FinancialProfile)
		wantErr error
	}{
		{"valid profile", func(p *FinancialProfile) {}, nil},
		{"zero income is allowed", func(p *FinancialProfile) {
			p.Partner1Income = decimal.Zero
			p.Partner2Income = decimal.Zero
		}, nil},
		{"negative partner1 income", func(p *FinancialProfile) {
			p.Partner1Income = decimal.NewFromInt(-1)
		}, ErrNegativeIncome},
		{"negative partner2 income", func(p *FinancialProfile) {
			p.Partner2Income = decimal.NewFromInt(-1)
		}, ErrNegativeIncome},
		{"negative savings", func(p *FinancialProfile) {
			p.CurrentSavings = decimal.NewFromInt(-500)
		}, ErrNegativeSavings},
		{"negative housing cost", func(p *FinancialProfile) {
			p.MonthlyHousingCost = decimal.NewFromInt(-200)
		}, ErrNegativeHousingCost},
		{"postal code too short", func(p *FinancialProfile) {
			p.PostalCode = "9410"
		}, ErrInvalidPostalCode},
		{"postal code with letters", func(p *FinancialProfile) {
			p.PostalCode = "ABC12"
		}, ErrInvalidPostalCode},
		{"unknown childcare type", func(p *FinancialProfile) {
			p.ChildcareType = ChildcareType("au_pair")
		}, ErrInvalidChildcareType},
		{"missing due date", func(p *FinancialProfile) {
			p.DueDate = time.Time{}
		}, ErrMissingDueDate},
		{"leave longer than a year", func(p *FinancialProfile) {
			p.Partner2Leave.DurationWeeks = 53
		}, ErrInvalidLeaveDuration},
		{"negative leave duration", func(p *FinancialProfile) {
			p.Partner1Leave.DurationWeeks = -1
		}, ErrInvalidLeaveDuration},
		{"leave paid above 100 percent", func(p *FinancialProfile) {
			p.Partner1Leave.PercentPaid = decimal.NewFromInt(150)
		}, ErrInvalidLeavePercent},
		{"negative leave percent", func(p *FinancialProfile) {
			p.Partner2Leave.PercentPaid = decimal.NewFromInt(-10)
		}, ErrInvalidLeavePercent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validTestProfile()
			tt.mutate(profile)
			err := profile.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCombinedIncome(t *testing.T) {
	profile := validTestProfile()
	got := profile.CombinedIncome()
	if !got.Equal(decimal.NewFromInt(9500)) {
		t.Errorf("CombinedIncome() = %s, want 9500", got)
	}
}
