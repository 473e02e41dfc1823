package service

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

const (
	// maintenanceSchedule runs the cleanup nightly at 03:00 server time
	maintenanceSchedule = "0 3 * * *"
	// staleProjectionAge is how long an untouched cached projection is kept.
	// Projections are recomputed on demand, so dropping old caches only costs
	// a recalculation on the user's next visit.
	staleProjectionAge = 90 * 24 * time.Hour
)

// MaintenanceService clears expired password reset tokens and stale
// projection caches on a nightly schedule
type MaintenanceService struct {
	resetRepo      domain.PasswordResetRepository
	projectionRepo domain.ProjectionRepository
	logger         zerolog.Logger
	cron           *cron.Cron
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(resetRepo domain.PasswordResetRepository, projectionRepo domain.ProjectionRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{
		resetRepo:      resetRepo,
		projectionRepo: projectionRepo,
		logger:         logger.With().Str("component", "maintenance").Logger(),
	}
}

// Start schedules the nightly cleanup
func (s *MaintenanceService) Start() error {
	if s.cron != nil {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(maintenanceSchedule, s.runCleanup); err != nil {
		return err
	}
	c.Start()
	s.cron = c

	s.logger.Info().Str("schedule", maintenanceSchedule).Msg("Maintenance schedule started")
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish
func (s *MaintenanceService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
	s.logger.Info().Msg("Maintenance schedule stopped")
}

// runCleanup performs one maintenance pass. Each step logs its own failure
// and the pass continues, so one broken table never blocks the others.
func (s *MaintenanceService) runCleanup() {
	start := time.Now()
	now := start.UTC()

	tokensDeleted, err := s.resetRepo.DeleteExpired(now)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete expired reset tokens")
	}

	projectionsDeleted, err := s.projectionRepo.DeleteOlderThan(now.Add(-staleProjectionAge))
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete stale projections")
	}

	s.logger.Info().
		Int64("reset_tokens_deleted", tokensDeleted).
		Int64("projections_deleted", projectionsDeleted).
		Dur("elapsed", time.Since(start)).
		Msg("Completed maintenance run")
}
