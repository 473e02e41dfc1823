package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProblemDetails is the RFC 7807 error body every handler returns on failure
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError pinpoints one rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problem type URIs, one per error family
const (
	ErrorTypeValidation   = "https://nestworth.app/errors/validation"
	ErrorTypeNotFound     = "https://nestworth.app/errors/not-found"
	ErrorTypeUnauthorized = "https://nestworth.app/errors/unauthorized"
	ErrorTypeForbidden    = "https://nestworth.app/errors/forbidden"
	ErrorTypeConflict     = "https://nestworth.app/errors/conflict"
	ErrorTypeInternal     = "https://nestworth.app/errors/internal"
)

func problem(c echo.Context, status int, errType, title, detail string, fieldErrors []ValidationError) error {
	return c.JSON(status, ProblemDetails{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   fieldErrors,
	})
}

// NewValidationError responds 400 with optional per-field details
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return problem(c, http.StatusBadRequest, ErrorTypeValidation, "Validation Error", detail, errors)
}

// NewNotFoundError responds 404
func NewNotFoundError(c echo.Context, detail string) error {
	return problem(c, http.StatusNotFound, ErrorTypeNotFound, "Not Found", detail, nil)
}

// NewUnauthorizedError responds 401
func NewUnauthorizedError(c echo.Context, detail string) error {
	return problem(c, http.StatusUnauthorized, ErrorTypeUnauthorized, "Unauthorized", detail, nil)
}

// NewForbiddenError responds 403
func NewForbiddenError(c echo.Context, detail string) error {
	return problem(c, http.StatusForbidden, ErrorTypeForbidden, "Forbidden", detail, nil)
}

// NewConflictError responds 409
func NewConflictError(c echo.Context, detail string) error {
	return problem(c, http.StatusConflict, ErrorTypeConflict, "Conflict", detail, nil)
}

// NewInternalError responds 500
func NewInternalError(c echo.Context, detail string) error {
	return problem(c, http.StatusInternalServerError, ErrorTypeInternal, "Internal Server Error", detail, nil)
}
