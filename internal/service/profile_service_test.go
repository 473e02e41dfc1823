package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/testutil"
)

func TestProfileSave_Success(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	svc := NewProfileService(profileRepo)

	userID := uuid.New()
	profile := testProfile(userID)
	profile.ID = uuid.Nil

	saved, err := svc.Save(profile)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.UpdatedAt.IsZero())

	fetched, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, fetched.ID)
}

func TestProfileSave_ReplacesExisting(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	svc := NewProfileService(profileRepo)

	userID := uuid.New()
	first, err := svc.Save(testProfile(userID))
	require.NoError(t, err)

	update := testProfile(userID)
	update.MonthlyHousingCost = decimal.NewFromInt(3200)

	second, err := svc.Save(update)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert keeps the profile identity")
	assert.Equal(t, "3200", second.MonthlyHousingCost.String())
}

func TestProfileSave_PublishesEvent(t *testing.T) {
	profileRepo := testutil.NewMockProfileRepository()
	svc := NewProfileService(profileRepo)

	publisher := &capturePublisher{}
	svc.SetEventPublisher(publisher)

	userID := uuid.New()
	_, err := svc.Save(testProfile(userID))
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, userID, publisher.userIDs[0])
	assert.Equal(t, "profile.updated", publisher.events[0].Type)
}

func TestProfileSave_ValidationFailures(t *testing.T) {
	svc := NewProfileService(testutil.NewMockProfileRepository())

	tests := []struct {
		name    string
		mutate  func(p *domain.FinancialProfile)
		wantErr error
	}{
		{"negative income", func(p *domain.FinancialProfile) {
			p.Partner2Income = decimal.NewFromInt(-1)
		}, domain.ErrNegativeIncome},
		{"negative savings", func(p *domain.FinancialProfile) {
			p.CurrentSavings = decimal.NewFromInt(-100)
		}, domain.ErrNegativeSavings},
		{"negative housing", func(p *domain.FinancialProfile) {
			p.MonthlyHousingCost = decimal.NewFromInt(-1)
		}, domain.ErrNegativeHousingCost},
		{"short postal code", func(p *domain.FinancialProfile) {
			p.PostalCode = "1234"
		}, domain.ErrInvalidPostalCode},
		{"non-numeric postal code", func(p *domain.FinancialProfile) {
			p.PostalCode = "1000a"
		}, domain.ErrInvalidPostalCode},
		{"unknown childcare type", func(p *domain.FinancialProfile) {
			p.ChildcareType = domain.ChildcareType("au_pair")
		}, domain.ErrInvalidChildcareType},
		{"leave percent above 100", func(p *domain.FinancialProfile) {
			p.Partner1Leave.PercentPaid = decimal.NewFromInt(120)
		}, domain.ErrInvalidLeavePercent},
		{"leave longer than a year", func(p *domain.FinancialProfile) {
			p.Partner2Leave.DurationWeeks = 53
		}, domain.ErrInvalidLeaveDuration},
		{"missing due date", func(p *domain.FinancialProfile) {
			p.DueDate = time.Time{}
		}, domain.ErrMissingDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile(uuid.New())
			tt.mutate(profile)

			_, err := svc.Save(profile)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	svc := NewProfileService(testutil.NewMockProfileRepository())

	_, err := svc.Get(uuid.New())

	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}
