package domain

import "errors"

// Verification errors
var (
	ErrNoPhoneNumber      = errors.New("profile has no phone number")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAttemptNotFound    = errors.New("verification attempt not found")
	ErrGatewayUnavailable = errors.New("sms gateway unavailable")
)

// Catalog errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Cache errors
var (
	ErrCacheUnavailable = errors.New("view counter cache unavailable")
)
