package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseField identifies a recurring expense category in projection output
type ExpenseField string

const (
	ExpenseFieldDiapers       ExpenseField = "diapers"
	ExpenseFieldFood          ExpenseField = "food"
	ExpenseFieldClothing      ExpenseField = "clothing"
	ExpenseFieldHealthcare    ExpenseField = "healthcare"
	ExpenseFieldMiscellaneous ExpenseField = "miscellaneous"
)

// RecurringExpenseFields lists every recurring field in display order
var RecurringExpenseFields = []ExpenseField{
	ExpenseFieldDiapers,
	ExpenseFieldFood,
	ExpenseFieldClothing,
	ExpenseFieldHealthcare,
	ExpenseFieldMiscellaneous,
}

// MonthlyIncome is one month's income split by partner
type MonthlyIncome struct {
	Partner1 decimal.Decimal `json:"partner1"`
	Partner2 decimal.Decimal `json:"partner2"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseBreakdown is one month's (or one year's summed) expenses by category
type ExpenseBreakdown struct {
	Housing       decimal.Decimal `json:"housing"`
	Childcare     decimal.Decimal `json:"childcare"`
	Diapers       decimal.Decimal `json:"diapers"`
	Food          decimal.Decimal `json:"food"`
	Healthcare    decimal.Decimal `json:"healthcare"`
	Clothing      decimal.Decimal `json:"clothing"`
	OneTime       decimal.Decimal `json:"oneTime"`
	Miscellaneous decimal.Decimal `json:"miscellaneous"`
	Total         decimal.Decimal `json:"total"`
}

// Add returns the field-wise sum of two breakdowns
func (e ExpenseBreakdown) Add(other ExpenseBreakdown) ExpenseBreakdown {
	return ExpenseBreakdown{
		Housing:       e.Housing.Add(other.Housing),
		Childcare:     e.Childcare.Add(other.Childcare),
		Diapers:       e.Diapers.Add(other.Diapers),
		Food:          e.Food.Add(other.Food),
		Healthcare:    e.Healthcare.Add(other.Healthcare),
		Clothing:      e.Clothing.Add(other.Clothing),
		OneTime:       e.OneTime.Add(other.OneTime),
		Miscellaneous: e.Miscellaneous.Add(other.Miscellaneous),
		Total:         e.Total.Add(other.Total),
	}
}

// MonthlyProjection is one month of the 60-month forecast.
// Month is 1-based; BabyAgeMonths is Month-1 (the baby is born in month 1).
type MonthlyProjection struct {
	Month             int              `json:"month"`
	Year              int              `json:"year"`
	MonthOfYear       int              `json:"monthOfYear"`
	BabyAgeMonths     int              `json:"babyAgeMonths"`
	Income            MonthlyIncome    `json:"income"`
	Expenses          ExpenseBreakdown `json:"expenses"`
	NetCashflow       decimal.Decimal  `json:"netCashflow"`
	CumulativeSavings decimal.Decimal  `json:"cumulativeSavings"`
}

// YearlySummary aggregates the 12 monthly records of one projection year.
// EndingSavings carries the cumulative savings of the year's last month.
type YearlySummary struct {
	Year          int              `json:"year"`
	TotalIncome   decimal.Decimal  `json:"totalIncome"`
	Expenses      ExpenseBreakdown `json:"expenses"`
	NetCashflow   decimal.Decimal  `json:"netCashflow"`
	EndingSavings decimal.Decimal  `json:"endingSavings"`
}

// WarningSeverity orders warnings by how urgently they need attention
type WarningSeverity string

const (
	WarningSeverityCritical      WarningSeverity = "critical"
	WarningSeverityImportant     WarningSeverity = "important"
	WarningSeverityInformational WarningSeverity = "informational"
)

// Warning is a derived finding about a projection. Warnings are facts about
// the monthly series and are never stored apart from their projection.
type Warning struct {
	Severity       WarningSeverity `json:"severity"`
	Title          string          `json:"title"`
	Message        string          `json:"message"`
	AffectedMonths []int           `json:"affectedMonths,omitempty"`
	Recommendation string          `json:"recommendation"`
}

// Projection is the complete projection envelope. It is a value recomputed
// from scratch whenever the profile changes; the stored copy is only a cache.
type Projection struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	ProfileID   uuid.UUID           `json:"profileId"`
	Profile     *FinancialProfile   `json:"profile"`
	Assumptions ExpenseAssumptions  `json:"assumptions"`
	Monthly     []MonthlyProjection `json:"monthlyProjections"`
	Yearly      []YearlySummary     `json:"yearlyProjections"`
	TotalCost   decimal.Decimal     `json:"totalCost"`
	Warnings    []Warning           `json:"warnings"`
	GeneratedAt time.Time           `json:"generatedAt"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ProjectionRepository defines the interface for projection cache persistence
type ProjectionRepository interface {
	GetByUserID(userID uuid.UUID) (*Projection, error)
	Save(projection *Projection) (*Projection, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
