package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nestworth/nestworth-backend/internal/service"
	"github.com/nestworth/nestworth-backend/internal/testutil"
)

type stubCompletionClient struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestSummaryHandler() (*SummaryHandler, *service.SummaryService, *testutil.MockProfileRepository) {
	profileRepo := testutil.NewMockProfileRepository()
	projectionService := service.NewProjectionService(profileRepo, testutil.NewMockProjectionRepository(), service.NewAssumptionService(), service.NewWarningService())
	summaryService := service.NewSummaryService(projectionService)
	return NewSummaryHandler(summaryService), summaryService, profileRepo
}

func TestGenerateSummary_TemplateFallback(t *testing.T) {
	e := echo.New()
	handler, _, profileRepo := newTestSummaryHandler()

	userID := uuid.New()
	addTestProfile(profileRepo, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, userID)

	err := handler.GenerateSummary(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Source != service.SummarySourceTemplate {
		t.Errorf("Expected source 'template', got %s", response.Source)
	}
	if !strings.Contains(response.Summary, "$236,523") {
		t.Errorf("Expected summary to mention the total cost, got: %s", response.Summary)
	}
	if response.GeneratedAt == "" {
		t.Error("Expected a generatedAt timestamp")
	}
}

func TestGenerateSummary_UsesLLMWhenConfigured(t *testing.T) {
	e := echo.New()
	handler, summaryService, profileRepo := newTestSummaryHandler()

	userID := uuid.New()
	addTestProfile(profileRepo, userID)

	client := &stubCompletionClient{reply: "A warm narrative about your plan."}
	summaryService.SetCompletionClient(client)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries/generate", strings.NewReader(`{"customInstructions": "keep it short"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, userID)

	err := handler.GenerateSummary(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Source != service.SummarySourceLLM {
		t.Errorf("Expected source 'llm', got %s", response.Source)
	}
	if response.Summary != "A warm narrative about your plan." {
		t.Errorf("Unexpected summary text: %s", response.Summary)
	}
	if client.calls != 1 {
		t.Errorf("Expected 1 completion call, got %d", client.calls)
	}
}

func TestGenerateSummary_NoProfile(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestSummaryHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, uuid.New())

	err := handler.GenerateSummary(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGenerateSummary_MissingAuth(t *testing.T) {
	e := echo.New()
	handler, _, _ := newTestSummaryHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Don't set up auth context

	err := handler.GenerateSummary(c)
	if err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGenerateAssumptions_Template(t *testing.T) {
	e := echo.New()
	handler, _, profileRepo := newTestSummaryHandler()

	userID := uuid.New()
	addTestProfile(profileRepo, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries/generate-assumptions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	setupAuthContext(c, userID)

	err := handler.GenerateAssumptions(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !strings.Contains(response.Summary, "national average rates") {
		t.Errorf("Expected an unmatched-region explanation, got: %s", response.Summary)
	}
}
