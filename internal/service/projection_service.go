package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/refdata"
	"github.com/nestworth/nestworth-backend/internal/websocket"
)

// oneTimePurchaseAge schedules each essential purchase by baby age in months.
// Birth-month gear comes first, the stroller and changing table follow, and
// the high chair arrives with solid food. Items without an entry default to
// the birth month.
var oneTimePurchaseAge = map[string]int{
	"Crib":              0,
	"Car Seat (Infant)": 0,
	"Baby Monitor":      0,
	"Stroller":          1,
	"Changing Table":    1,
	"High Chair":        2,
}

// ProjectionService computes the 60-month cost projection and manages its
// stored copy. The stored projection is only a cache: it is recomputed from
// the profile whenever the profile is newer.
type ProjectionService struct {
	profileRepo    domain.ProfileRepository
	projectionRepo domain.ProjectionRepository
	assumptionSvc  *AssumptionService
	warningSvc     *WarningService
	eventPublisher websocket.EventPublisher
}

// NewProjectionService creates a new ProjectionService
func NewProjectionService(
	profileRepo domain.ProfileRepository,
	projectionRepo domain.ProjectionRepository,
	assumptionSvc *AssumptionService,
	warningSvc *WarningService,
) *ProjectionService {
	return &ProjectionService{
		profileRepo:    profileRepo,
		projectionRepo: projectionRepo,
		assumptionSvc:  assumptionSvc,
		warningSvc:     warningSvc,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ProjectionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *ProjectionService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// Get returns the user's projection, serving the stored copy when it is at
// least as new as the profile and recomputing otherwise.
func (s *ProjectionService) Get(userID uuid.UUID) (*domain.Projection, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	cached, err := s.projectionRepo.GetByUserID(userID)
	if err == nil && !profile.UpdatedAt.After(cached.CreatedAt) {
		return cached, nil
	}
	if err != nil && !errors.Is(err, domain.ErrProjectionNotFound) {
		return nil, err
	}

	return s.recalculate(profile)
}

// Calculate recomputes the user's projection from the stored profile,
// replacing any cached copy.
func (s *ProjectionService) Calculate(userID uuid.UUID) (*domain.Projection, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.recalculate(profile)
}

func (s *ProjectionService) recalculate(profile *domain.FinancialProfile) (*domain.Projection, error) {
	assumptions := s.assumptionSvc.Resolve(profile.PostalCode)
	monthly, yearly, totalCost := s.project(profile, assumptions)

	projection := &domain.Projection{
		ID:          uuid.New(),
		UserID:      profile.UserID,
		ProfileID:   profile.ID,
		Profile:     profile,
		Assumptions: assumptions,
		Monthly:     monthly,
		Yearly:      yearly,
		TotalCost:   totalCost,
		Warnings:    s.warningSvc.Detect(profile, assumptions, monthly),
		GeneratedAt: time.Now().UTC(),
	}

	saved, err := s.projectionRepo.Save(projection)
	if err != nil {
		return nil, err
	}

	s.publishEvent(profile.UserID, websocket.ProjectionCalculated(saved))
	return saved, nil
}

// project runs the deterministic 60-month forecast. Month 1 is the birth
// month, so the baby's age in a given month is month-1.
func (s *ProjectionService) project(profile *domain.FinancialProfile, assumptions domain.ExpenseAssumptions) ([]domain.MonthlyProjection, []domain.YearlySummary, decimal.Decimal) {
	tier := assumptions.CostBand.Tier()
	childcare := assumptions.MonthlyChildcare(profile.ChildcareType)
	stayAtHome := stayAtHomePartner(profile)

	monthly := make([]domain.MonthlyProjection, 0, domain.ProjectionMonths)
	cumulative := profile.CurrentSavings

	for month := 1; month <= domain.ProjectionMonths; month++ {
		babyAge := month - 1

		income := domain.MonthlyIncome{
			Partner1: partnerIncome(profile.Partner1Income, profile.Partner1Leave, babyAge, stayAtHome == 1),
			Partner2: partnerIncome(profile.Partner2Income, profile.Partner2Leave, babyAge, stayAtHome == 2),
		}
		income.Total = income.Partner1.Add(income.Partner2)

		recurring := refdata.RecurringTotalsAt(babyAge, tier)
		expenses := domain.ExpenseBreakdown{
			Housing:       profile.MonthlyHousingCost,
			Diapers:       recurring[domain.ExpenseFieldDiapers],
			Food:          recurring[domain.ExpenseFieldFood],
			Healthcare:    recurring[domain.ExpenseFieldHealthcare],
			Clothing:      recurring[domain.ExpenseFieldClothing],
			Miscellaneous: recurring[domain.ExpenseFieldMiscellaneous],
			OneTime:       oneTimeCostsAt(babyAge, assumptions.OneTimeCosts),
		}
		if babyAge >= assumptions.ChildcareStartMonth {
			expenses.Childcare = childcare
		} else {
			expenses.Childcare = decimal.Zero
		}
		expenses.Total = expenses.Housing.
			Add(expenses.Childcare).
			Add(expenses.Diapers).
			Add(expenses.Food).
			Add(expenses.Healthcare).
			Add(expenses.Clothing).
			Add(expenses.OneTime).
			Add(expenses.Miscellaneous)

		net := income.Total.Sub(expenses.Total)
		cumulative = cumulative.Add(net)

		monthly = append(monthly, domain.MonthlyProjection{
			Month:             month,
			Year:              (month-1)/12 + 1,
			MonthOfYear:       (month-1)%12 + 1,
			BabyAgeMonths:     babyAge,
			Income:            income,
			Expenses:          expenses,
			NetCashflow:       net,
			CumulativeSavings: cumulative,
		})
	}

	yearly := summarizeYears(monthly)

	totalCost := decimal.Zero
	for _, y := range yearly {
		totalCost = totalCost.Add(y.Expenses.Total)
	}

	return monthly, yearly, totalCost
}

// summarizeYears folds the monthly series into one summary per projection year
func summarizeYears(monthly []domain.MonthlyProjection) []domain.YearlySummary {
	yearly := make([]domain.YearlySummary, 0, domain.ProjectionYears)
	for year := 1; year <= domain.ProjectionYears; year++ {
		summary := domain.YearlySummary{Year: year}
		for _, m := range monthly {
			if m.Year != year {
				continue
			}
			summary.TotalIncome = summary.TotalIncome.Add(m.Income.Total)
			summary.Expenses = summary.Expenses.Add(m.Expenses)
			summary.NetCashflow = summary.NetCashflow.Add(m.NetCashflow)
			summary.EndingSavings = m.CumulativeSavings
		}
		yearly = append(yearly, summary)
	}
	return yearly
}

// partnerIncome returns one partner's income for a month. During leave the
// base income is scaled by the paid percentage; a stay-at-home partner earns
// nothing once their leave window ends.
func partnerIncome(base decimal.Decimal, leave domain.ParentalLeave, babyAge int, staysHome bool) decimal.Decimal {
	onLeave := decimal.NewFromInt(int64(babyAge)).LessThan(leave.Months())
	switch {
	case onLeave:
		return base.Mul(leave.PercentPaid).Div(decimal.NewFromInt(100))
	case staysHome:
		return decimal.Zero
	default:
		return base
	}
}

// stayAtHomePartner picks which partner stays home under the stay-at-home
// arrangement: the lower earner, with ties going to partner 2. Returns 0 for
// other childcare types.
func stayAtHomePartner(profile *domain.FinancialProfile) int {
	if profile.ChildcareType != domain.ChildcareTypeStayAtHome {
		return 0
	}
	if profile.Partner1Income.LessThan(profile.Partner2Income) {
		return 1
	}
	return 2
}

// oneTimeCostsAt sums the one-time purchases scheduled for a baby age
func oneTimeCostsAt(babyAge int, costs map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for name, cost := range costs {
		if oneTimePurchaseAge[name] == babyAge {
			total = total.Add(cost)
		}
	}
	return total
}
