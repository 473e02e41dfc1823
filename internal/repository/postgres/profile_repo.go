package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// ProfileRepository implements domain.ProfileRepository using PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, partner1_income, partner2_income, postal_code, due_date,
	current_savings, childcare_type,
	partner1_leave_weeks, partner1_leave_percent,
	partner2_leave_weeks, partner2_leave_percent,
	monthly_housing_cost, created_at, updated_at`

// GetByUserID retrieves the financial profile for a user
func (r *ProfileRepository) GetByUserID(userID uuid.UUID) (*domain.FinancialProfile, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+profileColumns+` FROM financial_profiles WHERE user_id = $1`,
		uuidToPg(userID))

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Upsert inserts the user's profile or replaces the existing one. The
// updated_at bump on replace is what marks any cached projection stale.
func (r *ProfileRepository) Upsert(profile *domain.FinancialProfile) (*domain.FinancialProfile, error) {
	partner1Income, err := decimalToPgNumeric(profile.Partner1Income)
	if err != nil {
		return nil, err
	}
	partner2Income, err := decimalToPgNumeric(profile.Partner2Income)
	if err != nil {
		return nil, err
	}
	currentSavings, err := decimalToPgNumeric(profile.CurrentSavings)
	if err != nil {
		return nil, err
	}
	partner1Percent, err := decimalToPgNumeric(profile.Partner1Leave.PercentPaid)
	if err != nil {
		return nil, err
	}
	partner2Percent, err := decimalToPgNumeric(profile.Partner2Leave.PercentPaid)
	if err != nil {
		return nil, err
	}
	housingCost, err := decimalToPgNumeric(profile.MonthlyHousingCost)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO financial_profiles (
			user_id, partner1_income, partner2_income, postal_code, due_date,
			current_savings, childcare_type,
			partner1_leave_weeks, partner1_leave_percent,
			partner2_leave_weeks, partner2_leave_percent,
			monthly_housing_cost
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			partner1_income = EXCLUDED.partner1_income,
			partner2_income = EXCLUDED.partner2_income,
			postal_code = EXCLUDED.postal_code,
			due_date = EXCLUDED.due_date,
			current_savings = EXCLUDED.current_savings,
			childcare_type = EXCLUDED.childcare_type,
			partner1_leave_weeks = EXCLUDED.partner1_leave_weeks,
			partner1_leave_percent = EXCLUDED.partner1_leave_percent,
			partner2_leave_weeks = EXCLUDED.partner2_leave_weeks,
			partner2_leave_percent = EXCLUDED.partner2_leave_percent,
			monthly_housing_cost = EXCLUDED.monthly_housing_cost,
			updated_at = now()
		RETURNING `+profileColumns,
		uuidToPg(profile.UserID),
		partner1Income,
		partner2Income,
		profile.PostalCode,
		timeToPgDate(profile.DueDate),
		currentSavings,
		string(profile.ChildcareType),
		int32(profile.Partner1Leave.DurationWeeks),
		partner1Percent,
		int32(profile.Partner2Leave.DurationWeeks),
		partner2Percent,
		housingCost)

	return scanProfile(row)
}

func scanProfile(row pgx.Row) (*domain.FinancialProfile, error) {
	var (
		id              pgtype.UUID
		userID          pgtype.UUID
		partner1Income  pgtype.Numeric
		partner2Income  pgtype.Numeric
		dueDate         pgtype.Date
		currentSavings  pgtype.Numeric
		childcareType   string
		partner1Weeks   int32
		partner1Percent pgtype.Numeric
		partner2Weeks   int32
		partner2Percent pgtype.Numeric
		housingCost     pgtype.Numeric
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
		profile         domain.FinancialProfile
	)
	err := row.Scan(
		&id, &userID, &partner1Income, &partner2Income, &profile.PostalCode, &dueDate,
		&currentSavings, &childcareType,
		&partner1Weeks, &partner1Percent,
		&partner2Weeks, &partner2Percent,
		&housingCost, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.ID = pgToUUID(id)
	profile.UserID = pgToUUID(userID)
	profile.Partner1Income = pgNumericToDecimal(partner1Income)
	profile.Partner2Income = pgNumericToDecimal(partner2Income)
	profile.DueDate = pgDateToTime(dueDate)
	profile.CurrentSavings = pgNumericToDecimal(currentSavings)
	profile.ChildcareType = domain.ChildcareType(childcareType)
	profile.Partner1Leave = domain.ParentalLeave{
		DurationWeeks: int(partner1Weeks),
		PercentPaid:   pgNumericToDecimal(partner1Percent),
	}
	profile.Partner2Leave = domain.ParentalLeave{
		DurationWeeks: int(partner2Weeks),
		PercentPaid:   pgNumericToDecimal(partner2Percent),
	}
	profile.MonthlyHousingCost = pgNumericToDecimal(housingCost)
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time
	return &profile, nil
}

// Helper functions

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  t,
		Valid: true,
	}
}

func pgDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return d.Time
}
