package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents the forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the reset password request body
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Create an account with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, token, err := h.authService.Signup(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return NewConflictError(c, "An account with this email already exists")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "email", Message: "Email must be valid"},
				{Field: "password", Message: "Password must be at least 8 characters"},
			})
		}
		log.Error().Err(err).Msg("Failed to sign up user")
		return NewInternalError(c, "Failed to create account")
	}

	log.Info().Str("user_id", user.ID.String()).Msg("User signed up")

	return c.JSON(http.StatusCreated, AuthResponse{
		User:  userToResponse(user),
		Token: token,
	})
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} ProblemDetails
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return NewUnauthorizedError(c, "Invalid email or password")
		}
		log.Error().Err(err).Msg("Failed to log in user")
		return NewInternalError(c, "Failed to log in")
	}

	return c.JSON(http.StatusOK, AuthResponse{
		User:  userToResponse(user),
		Token: token,
	})
}

// Me returns the current authenticated user's information
// GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get user")
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, userToResponse(user))
}

// Logout handles user logout. Tokens are stateless, so this only exists for
// the audit trail; clients discard the token.
// POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	log.Info().Str("user_id", userID.String()).Msg("User logged out")

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "Logged out successfully",
	})
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Send a reset link to the given email. Always returns 202 so the endpoint can't be used to probe which emails are registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Forgot password request"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} ProblemDetails
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Email == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "email", Message: "Email is required"},
		})
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		log.Error().Err(err).Msg("Failed to process password reset request")
		return NewInternalError(c, "Failed to process request")
	}

	return c.JSON(http.StatusAccepted, MessageResponse{
		Message: "If that email is registered, a reset link is on its way",
	})
}

// ResetPassword godoc
// @Summary Reset a forgotten password
// @Description Set a new password using a reset token from email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset password request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	err := h.authService.ResetPassword(req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "newPassword", Message: "Password must be at least 8 characters"},
			})
		case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenUsed):
			return NewUnauthorizedError(c, "Reset link is invalid or has expired")
		}
		log.Error().Err(err).Msg("Failed to reset password")
		return NewInternalError(c, "Failed to reset password")
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "Password updated. You can now log in with your new password.",
	})
}
