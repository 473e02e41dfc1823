package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/middleware"
	"github.com/nestworth/nestworth-backend/internal/service"
	"github.com/nestworth/nestworth-backend/internal/testutil"
)

// Helper to set up auth context
func setupAuthContext(c echo.Context, userID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newTestAuthHandler() (*AuthHandler, *testutil.MockUserRepository, *testutil.MockPasswordResetRepository) {
	userRepo := testutil.NewMockUserRepository()
	resetRepo := testutil.NewMockPasswordResetRepository()
	authService := service.NewAuthService(userRepo, resetRepo, "test-secret", time.Hour, "http://localhost:3000")
	return NewAuthHandler(authService), userRepo, resetRepo
}

func addTestUser(userRepo *testutil.MockUserRepository, email, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	userRepo.AddUser(user)
	return user
}

func TestSignup_NewUser(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	reqBody := `{"email": "new@example.com", "password": "hunter2hunter2", "name": "New Parent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.User.Email != "new@example.com" {
		t.Errorf("Expected email 'new@example.com', got %s", response.User.Email)
	}

	if response.Token == "" {
		t.Error("Expected a session token, got empty string")
	}

	if response.User.Name == nil || *response.User.Name != "New Parent" {
		t.Errorf("Expected name 'New Parent', got %v", response.User.Name)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	e := echo.New()
	handler, userRepo, _ := newTestAuthHandler()

	addTestUser(userRepo, "taken@example.com", "password123")

	reqBody := `{"email": "taken@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Signup(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}
}

func TestSignup_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email": "not-an-email", "password": "password123"}`},
		{"short password", `{"email": "ok@example.com", "password": "short"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			handler, _, _ := newTestAuthHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.Signup(c)
			if err != nil {
				t.Fatalf("Expected JSON response, got error: %v", err)
			}

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}

			var problemDetails ProblemDetails
			if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}

			if problemDetails.Type != ErrorTypeValidation {
				t.Errorf("Expected error type %s, got %s", ErrorTypeValidation, problemDetails.Type)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo, _ := newTestAuthHandler()

	addTestUser(userRepo, "parent@example.com", "password123")

	reqBody := `{"email": "parent@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Token == "" {
		t.Error("Expected a session token, got empty string")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e := echo.New()
	handler, userRepo, _ := newTestAuthHandler()

	addTestUser(userRepo, "parent@example.com", "password123")

	reqBody := `{"email": "parent@example.com", "password": "wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	reqBody := `{"email": "nobody@example.com", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestMe_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo, _ := newTestAuthHandler()

	user := addTestUser(userRepo, "me@example.com", "password123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, user.ID)

	err := handler.Me(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Email != "me@example.com" {
		t.Errorf("Expected email 'me@example.com', got %s", response.Email)
	}
}

func TestMe_MissingAuth(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Don't set up auth context

	err := handler.Me(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestForgotPassword_AlwaysAccepted(t *testing.T) {
	e := echo.New()
	handler, userRepo, resetRepo := newTestAuthHandler()

	addTestUser(userRepo, "known@example.com", "password123")

	// Unknown addresses get the same response as known ones
	for _, email := range []string{"known@example.com", "unknown@example.com"} {
		reqBody := `{"email": "` + email + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password", strings.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.ForgotPassword(c)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", email, err)
		}

		if rec.Code != http.StatusAccepted {
			t.Errorf("Expected status 202 for %s, got %d", email, rec.Code)
		}
	}

	if len(resetRepo.Tokens) != 1 {
		t.Errorf("Expected exactly one reset token, got %d", len(resetRepo.Tokens))
	}
}

func TestForgotPassword_EmptyEmail(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password", strings.NewReader(`{"email": ""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ForgotPassword(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestResetPassword_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo, resetRepo := newTestAuthHandler()

	user := addTestUser(userRepo, "reset@example.com", "old-password")
	resetRepo.Create(&domain.PasswordResetToken{
		Token:     "valid-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})

	reqBody := `{"token": "valid-token", "newPassword": "new-password-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	// The stored hash must now match the new password
	stored, err := userRepo.GetByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-123")) != nil {
		t.Error("Expected stored hash to match the new password")
	}
}

func TestResetPassword_InvalidToken(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	reqBody := `{"token": "no-such-token", "newPassword": "new-password-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestResetPassword_UsedToken(t *testing.T) {
	e := echo.New()
	handler, userRepo, resetRepo := newTestAuthHandler()

	user := addTestUser(userRepo, "reset@example.com", "old-password")
	used := time.Now().UTC().Add(-time.Minute)
	resetRepo.Create(&domain.PasswordResetToken{
		Token:     "used-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		UsedAt:    &used,
	})

	reqBody := `{"token": "used-token", "newPassword": "new-password-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestResetPassword_ShortPassword(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestAuthHandler()

	reqBody := `{"token": "whatever", "newPassword": "short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ResetPassword(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
