package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChildcareType represents the household's childcare arrangement
type ChildcareType string

const (
	ChildcareTypeDaycare    ChildcareType = "daycare"
	ChildcareTypeNanny      ChildcareType = "nanny"
	ChildcareTypeStayAtHome ChildcareType = "stay_at_home"
)

// Valid returns true if the childcare type is a known value
func (t ChildcareType) Valid() bool {
	switch t {
	case ChildcareTypeDaycare, ChildcareTypeNanny, ChildcareTypeStayAtHome:
		return true
	}
	return false
}

// ParentalLeave describes one partner's parental leave terms
type ParentalLeave struct {
	DurationWeeks int             `json:"durationWeeks"`
	PercentPaid   decimal.Decimal `json:"percentPaid"`
}

// Months converts the leave duration to months using the 4.33 weeks-per-month policy
func (l ParentalLeave) Months() decimal.Decimal {
	return decimal.NewFromInt(int64(l.DurationWeeks)).Div(WeeksPerMonth)
}

var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

// FinancialProfile is the static household snapshot every projection is computed from.
// One profile per user; recalculating always starts from the stored profile.
type FinancialProfile struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"userId"`
	Partner1Income     decimal.Decimal `json:"partner1Income"`
	Partner2Income     decimal.Decimal `json:"partner2Income"`
	PostalCode         string          `json:"postalCode"`
	DueDate            time.Time       `json:"dueDate"`
	CurrentSavings     decimal.Decimal `json:"currentSavings"`
	ChildcareType      ChildcareType   `json:"childcareType"`
	Partner1Leave      ParentalLeave   `json:"partner1Leave"`
	Partner2Leave      ParentalLeave   `json:"partner2Leave"`
	MonthlyHousingCost decimal.Decimal `json:"monthlyHousingCost"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Validate checks the profile invariants. The projection engine assumes a
// validated profile, so this must run at the input boundary.
func (p *FinancialProfile) Validate() error {
	if p.Partner1Income.IsNegative() || p.Partner2Income.IsNegative() {
		return ErrNegativeIncome
	}
	if p.CurrentSavings.IsNegative() {
		return ErrNegativeSavings
	}
	if p.MonthlyHousingCost.IsNegative() {
		return ErrNegativeHousingCost
	}
	if !postalCodePattern.MatchString(p.PostalCode) {
		return ErrInvalidPostalCode
	}
	if !p.ChildcareType.Valid() {
		return ErrInvalidChildcareType
	}
	if p.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	for _, leave := range []ParentalLeave{p.Partner1Leave, p.Partner2Leave} {
		if leave.DurationWeeks < 0 || leave.DurationWeeks > 52 {
			return ErrInvalidLeaveDuration
		}
		if leave.PercentPaid.IsNegative() || leave.PercentPaid.GreaterThan(decimal.NewFromInt(100)) {
			return ErrInvalidLeavePercent
		}
	}
	return nil
}

// CombinedIncome returns both partners' monthly take-home income summed
func (p *FinancialProfile) CombinedIncome() decimal.Decimal {
	return p.Partner1Income.Add(p.Partner2Income)
}

// ProfileRepository defines the interface for financial profile persistence
type ProfileRepository interface {
	GetByUserID(userID uuid.UUID) (*FinancialProfile, error)
	Upsert(profile *FinancialProfile) (*FinancialProfile, error)
}
