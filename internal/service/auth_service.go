package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// resetTokenTTL is how long a password reset link stays valid
const resetTokenTTL = time.Hour

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles signup, login, and password reset
type AuthService struct {
	userRepo   domain.UserRepository
	resetRepo  domain.PasswordResetRepository
	mailer     domain.Mailer
	jwtSecret  []byte
	jwtExpiry  time.Duration
	appBaseURL string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, resetRepo domain.PasswordResetRepository, jwtSecret string, jwtExpiry time.Duration, appBaseURL string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		jwtSecret:  []byte(jwtSecret),
		jwtExpiry:  jwtExpiry,
		appBaseURL: strings.TrimSuffix(appBaseURL, "/"),
	}
}

// SetMailer sets the mailer used for password reset email. Without one,
// reset links are only logged.
func (s *AuthService) SetMailer(mailer domain.Mailer) {
	s.mailer = mailer
}

// Signup registers a new account and returns the user with a session token
func (s *AuthService) Signup(email, password string, name *string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) || len(email) > domain.MaxEmailLength {
		return nil, "", domain.ErrInvalidInput
	}
	if len(password) < domain.MinPasswordLength {
		return nil, "", domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.Create(&domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	log.Info().Str("user_id", user.ID.String()).Msg("New user registered")
	return user, token, nil
}

// Login verifies credentials and returns the user with a session token
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUserByID retrieves a user by their ID
func (s *AuthService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}

// GenerateToken issues a signed session token for the user
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates a session token and returns the user ID it carries
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domain.ErrTokenExpired
		}
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !token.Valid {
		return uuid.Nil, domain.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// ForgotPassword issues a reset token and mails the reset link. Unknown
// addresses are ignored so the endpoint doesn't reveal which emails exist.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Info().Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	if err := s.resetRepo.Create(&domain.PasswordResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token)
	if s.mailer == nil {
		log.Info().Str("user_id", user.ID.String()).Str("reset_url", resetURL).Msg("Mailer not configured, logging reset link")
		return nil
	}

	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to send password reset email")
		return err
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < domain.MinPasswordLength {
		return domain.ErrInvalidInput
	}

	reset, err := s.resetRepo.GetByToken(token)
	if err != nil {
		return err
	}
	if reset.UsedAt != nil {
		return domain.ErrTokenUsed
	}
	if reset.Expired(time.Now().UTC()) {
		return domain.ErrTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(reset.UserID, string(hash)); err != nil {
		return err
	}
	if err := s.resetRepo.MarkUsed(token); err != nil {
		return err
	}

	log.Info().Str("user_id", reset.UserID.String()).Msg("Password reset completed")
	return nil
}
