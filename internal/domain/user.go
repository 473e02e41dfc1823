package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(id uuid.UUID) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) (*User, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

// PasswordResetToken is a single-use, time-limited credential for resetting a
// forgotten password
type PasswordResetToken struct {
	Token     string     `json:"token"`
	UserID    uuid.UUID  `json:"userId"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"usedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Expired returns true if the token is no longer valid at the given time
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// PasswordResetRepository defines the interface for reset token persistence
type PasswordResetRepository interface {
	Create(token *PasswordResetToken) error
	GetByToken(token string) (*PasswordResetToken, error)
	MarkUsed(token string) error
	DeleteExpired(now time.Time) (int64, error)
}
