package service

import (
	"github.com/google/uuid"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/websocket"
)

// ProfileService handles financial profile reads and writes. Saving a profile
// bumps its UpdatedAt, which is what marks the stored projection stale.
type ProfileService struct {
	profileRepo    domain.ProfileRepository
	eventPublisher websocket.EventPublisher
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ProfileService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Get retrieves the user's financial profile
func (s *ProfileService) Get(userID uuid.UUID) (*domain.FinancialProfile, error) {
	return s.profileRepo.GetByUserID(userID)
}

// Save validates and stores the user's financial profile, replacing any
// previous one
func (s *ProfileService) Save(profile *domain.FinancialProfile) (*domain.FinancialProfile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.profileRepo.Upsert(profile)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(saved.UserID, websocket.ProfileUpdated(saved))
	}
	return saved, nil
}
