package core

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")      // 401 from login
	ErrSessionExpired     = errors.New("session expired")                // 401 on an authenticated call
	ErrSessionIncomplete  = errors.New("session missing required field") // malformed identity payload
)

// Transport errors
var (
	ErrNetwork = errors.New("network failure")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("response not found in cache")
)

// Config errors (client construction)
var (
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrUploadsNotConfigured = errors.New("image upload host is not configured")
	ErrBackendURLRequired   = errors.New("backend URL is required")
	ErrSessionStoreRequired = errors.New("session store is required")
)

// APIError carries a non-2xx backend response: the HTTP status and the
// server-supplied message verbatim. Validation failures (400/422) surface
// through this type so the server's message reaches the user untouched.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsValidation reports whether the error represents a server-side
// payload rejection.
func (e *APIError) IsValidation() bool {
	return e.Status == 400 || e.Status == 422
}
