package testutil

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByID     map[uuid.UUID]*domain.User
	ByEmail  map[string]*domain.User
	CreateFn func(user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByID:    make(map[uuid.UUID]*domain.User),
		ByEmail: make(map[string]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Create creates a new user
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
	return user, nil
}

// UpdatePassword updates a user's password hash
func (m *MockUserRepository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	user, ok := m.ByID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
}

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	Profiles      map[uuid.UUID]*domain.FinancialProfile
	GetByUserIDFn func(userID uuid.UUID) (*domain.FinancialProfile, error)
	UpsertFn      func(profile *domain.FinancialProfile) (*domain.FinancialProfile, error)
}

// NewMockProfileRepository creates a new MockProfileRepository
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles: make(map[uuid.UUID]*domain.FinancialProfile),
	}
}

// GetByUserID retrieves a profile by user ID
func (m *MockProfileRepository) GetByUserID(userID uuid.UUID) (*domain.FinancialProfile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(userID)
	}
	if profile, ok := m.Profiles[userID]; ok {
		return profile, nil
	}
	return nil, domain.ErrProfileNotFound
}

// Upsert creates or replaces the user's profile
func (m *MockProfileRepository) Upsert(profile *domain.FinancialProfile) (*domain.FinancialProfile, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(profile)
	}
	now := time.Now().UTC()
	if existing, ok := m.Profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.ID = uuid.New()
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	m.Profiles[profile.UserID] = profile
	return profile, nil
}

// AddProfile adds a profile to the mock repository (helper for tests)
func (m *MockProfileRepository) AddProfile(profile *domain.FinancialProfile) {
	m.Profiles[profile.UserID] = profile
}

// MockProjectionRepository is a mock implementation of domain.ProjectionRepository
type MockProjectionRepository struct {
	Projections map[uuid.UUID]*domain.Projection
	SaveCount   int
	SaveFn      func(projection *domain.Projection) (*domain.Projection, error)
}

// NewMockProjectionRepository creates a new MockProjectionRepository
func NewMockProjectionRepository() *MockProjectionRepository {
	return &MockProjectionRepository{
		Projections: make(map[uuid.UUID]*domain.Projection),
	}
}

// GetByUserID retrieves the stored projection for a user
func (m *MockProjectionRepository) GetByUserID(userID uuid.UUID) (*domain.Projection, error) {
	if projection, ok := m.Projections[userID]; ok {
		return projection, nil
	}
	return nil, domain.ErrProjectionNotFound
}

// Save stores the projection, replacing any previous one for the user
func (m *MockProjectionRepository) Save(projection *domain.Projection) (*domain.Projection, error) {
	m.SaveCount++
	if m.SaveFn != nil {
		return m.SaveFn(projection)
	}
	projection.CreatedAt = time.Now().UTC()
	m.Projections[projection.UserID] = projection
	return projection, nil
}

// DeleteOlderThan removes projections stored before the cutoff
func (m *MockProjectionRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	var deleted int64
	for userID, projection := range m.Projections {
		if projection.CreatedAt.Before(cutoff) {
			delete(m.Projections, userID)
			deleted++
		}
	}
	return deleted, nil
}

// AddProjection adds a projection to the mock repository (helper for tests)
func (m *MockProjectionRepository) AddProjection(projection *domain.Projection) {
	m.Projections[projection.UserID] = projection
}

// MockExportRepository is a mock implementation of domain.ExportRepository
type MockExportRepository struct {
	Exports  map[uuid.UUID][]*domain.ExportRecord
	CreateFn func(record *domain.ExportRecord) (*domain.ExportRecord, error)
}

// NewMockExportRepository creates a new MockExportRepository
func NewMockExportRepository() *MockExportRepository {
	return &MockExportRepository{
		Exports: make(map[uuid.UUID][]*domain.ExportRecord),
	}
}

// Create records a generated export
func (m *MockExportRepository) Create(record *domain.ExportRecord) (*domain.ExportRecord, error) {
	if m.CreateFn != nil {
		return m.CreateFn(record)
	}
	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()
	m.Exports[record.UserID] = append(m.Exports[record.UserID], record)
	return record, nil
}

// ListByUserID returns a user's export records, newest first
func (m *MockExportRepository) ListByUserID(userID uuid.UUID) ([]*domain.ExportRecord, error) {
	records := m.Exports[userID]
	reversed := make([]*domain.ExportRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	return reversed, nil
}

// MockPasswordResetRepository is a mock implementation of domain.PasswordResetRepository
type MockPasswordResetRepository struct {
	Tokens map[string]*domain.PasswordResetToken
}

// NewMockPasswordResetRepository creates a new MockPasswordResetRepository
func NewMockPasswordResetRepository() *MockPasswordResetRepository {
	return &MockPasswordResetRepository{
		Tokens: make(map[string]*domain.PasswordResetToken),
	}
}

// Create stores a reset token
func (m *MockPasswordResetRepository) Create(token *domain.PasswordResetToken) error {
	token.CreatedAt = time.Now().UTC()
	m.Tokens[token.Token] = token
	return nil
}

// GetByToken retrieves a reset token
func (m *MockPasswordResetRepository) GetByToken(token string) (*domain.PasswordResetToken, error) {
	if t, ok := m.Tokens[token]; ok {
		return t, nil
	}
	return nil, domain.ErrTokenNotFound
}

// MarkUsed marks a reset token as consumed
func (m *MockPasswordResetRepository) MarkUsed(token string) error {
	t, ok := m.Tokens[token]
	if !ok {
		return domain.ErrTokenNotFound
	}
	now := time.Now().UTC()
	t.UsedAt = &now
	return nil
}

// DeleteExpired removes tokens that expired before now
func (m *MockPasswordResetRepository) DeleteExpired(now time.Time) (int64, error) {
	var deleted int64
	for key, token := range m.Tokens {
		if token.Expired(now) {
			delete(m.Tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

// MockExportArchive is a mock implementation of domain.ExportArchive
type MockExportArchive struct {
	Objects  map[string][]byte
	UploadFn func(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
}

// NewMockExportArchive creates a new MockExportArchive
func NewMockExportArchive() *MockExportArchive {
	return &MockExportArchive{
		Objects: make(map[string][]byte),
	}
}

// Upload stores the object in memory and returns its path
func (m *MockExportArchive) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, objectPath, data, contentType, size)
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Objects[objectPath] = content
	return objectPath, nil
}

// GeneratePresignedURL returns a stable fake download URL for the object
func (m *MockExportArchive) GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	if _, ok := m.Objects[objectPath]; !ok {
		return "", domain.ErrExportNotFound
	}
	return fmt.Sprintf("https://storage.test/%s?expires=%d", objectPath, int64(expiry.Seconds())), nil
}

// Delete removes the object
func (m *MockExportArchive) Delete(ctx context.Context, objectPath string) error {
	delete(m.Objects, objectPath)
	return nil
}

// SentMail captures one email handed to the MockMailer
type SentMail struct {
	To       string
	ResetURL string
}

// MockMailer is a mock implementation of domain.Mailer
type MockMailer struct {
	Sent   []SentMail
	SendFn func(to, resetURL string) error
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendPasswordReset records the outgoing reset email
func (m *MockMailer) SendPasswordReset(to, resetURL string) error {
	if m.SendFn != nil {
		return m.SendFn(to, resetURL)
	}
	m.Sent = append(m.Sent, SentMail{To: to, ResetURL: resetURL})
	return nil
}
