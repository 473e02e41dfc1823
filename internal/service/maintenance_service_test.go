package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/testutil"
)

func TestRunCleanup_RemovesExpiredTokensAndStaleProjections(t *testing.T) {
	resetRepo := testutil.NewMockPasswordResetRepository()
	projectionRepo := testutil.NewMockProjectionRepository()
	now := time.Now().UTC()

	require.NoError(t, resetRepo.Create(&domain.PasswordResetToken{
		Token:     "expired",
		UserID:    uuid.New(),
		ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, resetRepo.Create(&domain.PasswordResetToken{
		Token:     "fresh",
		UserID:    uuid.New(),
		ExpiresAt: now.Add(time.Hour),
	}))

	staleUser := uuid.New()
	projectionRepo.AddProjection(&domain.Projection{
		ID:        uuid.New(),
		UserID:    staleUser,
		CreatedAt: now.Add(-91 * 24 * time.Hour),
	})
	recentUser := uuid.New()
	projectionRepo.AddProjection(&domain.Projection{
		ID:        uuid.New(),
		UserID:    recentUser,
		CreatedAt: now.Add(-24 * time.Hour),
	})

	svc := NewMaintenanceService(resetRepo, projectionRepo, zerolog.Nop())
	svc.runCleanup()

	assert.NotContains(t, resetRepo.Tokens, "expired")
	assert.Contains(t, resetRepo.Tokens, "fresh")
	assert.NotContains(t, projectionRepo.Projections, staleUser)
	assert.Contains(t, projectionRepo.Projections, recentUser)
}

func TestRunCleanup_EmptyStoresAreFine(t *testing.T) {
	svc := NewMaintenanceService(testutil.NewMockPasswordResetRepository(), testutil.NewMockProjectionRepository(), zerolog.Nop())
	svc.runCleanup()
}

func TestMaintenanceStartStop(t *testing.T) {
	svc := NewMaintenanceService(testutil.NewMockPasswordResetRepository(), testutil.NewMockProjectionRepository(), zerolog.Nop())

	require.NoError(t, svc.Start())
	require.NoError(t, svc.Start(), "second start should be a no-op")

	svc.Stop()
	svc.Stop()
}
