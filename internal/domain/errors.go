package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalError      = errors.New("internal error")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("financial profile not found")
	ErrProjectionNotFound = errors.New("projection not found")
	ErrExportNotFound     = errors.New("export not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token is expired")
	ErrTokenUsed          = errors.New("token has already been used")
	ErrTokenNotFound      = errors.New("token not found")
)

// Profile validation errors
var (
	ErrNegativeIncome       = errors.New("income must not be negative")
	ErrNegativeSavings      = errors.New("savings must not be negative")
	ErrNegativeHousingCost  = errors.New("housing cost must not be negative")
	ErrInvalidPostalCode    = errors.New("postal code must be 5 digits")
	ErrInvalidChildcareType = errors.New("invalid childcare type")
	ErrInvalidLeavePercent  = errors.New("leave pay percent must be between 0 and 100")
	ErrInvalidLeaveDuration = errors.New("leave duration must be between 0 and 52 weeks")
	ErrMissingDueDate       = errors.New("due date is required")
)

// Auth validation constants
const (
	MinPasswordLength = 8
	MaxEmailLength    = 255
)
