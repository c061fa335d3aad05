package utils

import "time"

// Application Constants
const (
	AppName    = "GoFund"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1

	// Cache TTLs
	DefaultCacheTTL  = 10 * time.Minute
	LanguageCacheTTL = 30 * time.Minute
	CampaignCacheTTL = 5 * time.Minute

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes surfaced in API responses
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidReference = "INVALID_REFERENCE"
	ErrCodeGuardViolation   = "GUARD_VIOLATION"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInternal         = "INTERNAL_ERROR"
)
